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


// Package search provides hybrid lexical and semantic retrieval over a
// user's note collection.
//
// The Searcher type combines:
//   - Lexical scoring using TF-IDF over content, title and tags
//   - Semantic scoring via an external vector similarity index
//   - Rank-based fusion with recency and length boosts
//
// A query gate filters out conversational filler before either scorer
// runs. The two scorers execute concurrently and each degrades to an
// empty result on failure, so a broken index never hides keyword hits.
package search
