// Copyright 2025 The Jotline Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// ValidateNote validates a Note according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - UserId must not be empty
//   - Content must not be empty
//   - CreatedAt must not be in the future
//
// NOT validated (populated by processors or optional):
//   - Vector (can be empty until the embedding processor runs)
//   - Title and Tags (optional)
//
// Validation happens at the ingestion boundary only; the scorers accept
// whatever collection they are handed.
func ValidateNote(note *Note) error {
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrInvalidNote)
	}

	if note.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyNoteId)
	}

	if note.UserId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyUserId)
	}

	if note.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyContent)
	}

	if !IsValidTimestamp(note.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrInvalidTimestamp)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
// The zero value is valid; ingestion defaults it to the current time.
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
