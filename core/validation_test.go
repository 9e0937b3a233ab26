package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateNote(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	tests := []struct {
		name    string
		note    *Note
		wantErr error
	}{
		{
			name: "valid note",
			note: &Note{
				Id:        "1",
				UserId:    "user-a",
				Title:     "Groceries",
				Content:   "milk, eggs, coffee",
				CreatedAt: validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid note without title or tags",
			note: &Note{
				Id:        "2",
				UserId:    "user-a",
				Content:   "untitled scribble",
				CreatedAt: validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid note with empty vector",
			note: &Note{
				Id:        "3",
				UserId:    "user-a",
				Content:   "not yet embedded",
				Vector:    nil,
				CreatedAt: validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid note with zero timestamp",
			note: &Note{
				Id:      "4",
				UserId:  "user-a",
				Content: "ingestion will default CreatedAt",
			},
			wantErr: nil,
		},
		{
			name:    "nil note",
			note:    nil,
			wantErr: ErrInvalidNote,
		},
		{
			name: "empty id",
			note: &Note{
				UserId:    "user-a",
				Content:   "hello",
				CreatedAt: validTime,
			},
			wantErr: ErrEmptyNoteId,
		},
		{
			name: "empty user id",
			note: &Note{
				Id:        "5",
				Content:   "hello",
				CreatedAt: validTime,
			},
			wantErr: ErrEmptyUserId,
		},
		{
			name: "empty content",
			note: &Note{
				Id:        "6",
				UserId:    "user-a",
				Content:   "",
				CreatedAt: validTime,
			},
			wantErr: ErrEmptyContent,
		},
		{
			name: "future timestamp",
			note: &Note{
				Id:        "7",
				UserId:    "user-a",
				Content:   "hello",
				CreatedAt: futureTime,
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNote(tt.note)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateNote() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateNote() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateNote() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
