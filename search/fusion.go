package search

import (
	"slices"
	"time"

	"github.com/jotline/jotline/core"
)

// Fuse merges the two scorers' outputs into one ranked, deduplicated
// list. Both inputs must already be ordered best-first. Each note id
// appears at most once in the output; a note present in both lists
// sums both rank contributions and is tagged MatchTypeBoth.
//
// Rank scoring: with totalResults = max(len(semantic), len(lexical))
// and r the 1-based rank, a semantic entry contributes
// (totalResults-r) x 1.5 and a lexical entry (totalResults-r) x 1.0.
// Semantic rank is weighted higher since it captures meaning rather
// than surface term overlap, but an exact keyword hit still adds up.
//
// On top of the rank score every entry gets a recency boost that
// decays linearly to zero at RecencyWindowDays, and a length boost
// rewarding substantive notes, capped at LengthBoostWeight.
//
// Fuse is a pure computation: given the same inputs and the same now,
// the output is identical. Ties keep semantic-list order first, then
// lexical-list order.
func Fuse(lexical, semantic []*core.Note, now time.Time, weights Weights) []*core.ScoredNote {
	weights.ApplyDefaults()

	totalResults := max(len(lexical), len(semantic))
	if totalResults == 0 {
		return []*core.ScoredNote{}
	}

	merged := make(map[core.ID]*core.ScoredNote, totalResults)
	order := make([]core.ID, 0, len(lexical)+len(semantic))

	for i, note := range semantic {
		// A stale index can hand back the same id more than once; only
		// the best-ranked occurrence counts.
		if _, ok := merged[note.Id]; ok {
			continue
		}
		rank := i + 1
		merged[note.Id] = &core.ScoredNote{
			Note:      note,
			Score:     float64(totalResults-rank) * weights.SemanticRankWeight,
			MatchType: core.MatchTypeSemantic,
		}
		order = append(order, note.Id)
	}

	for i, note := range lexical {
		rank := i + 1
		contribution := float64(totalResults-rank) * weights.LexicalRankWeight
		if entry, ok := merged[note.Id]; ok {
			entry.Score += contribution
			entry.MatchType = core.MatchTypeBoth
			continue
		}
		merged[note.Id] = &core.ScoredNote{
			Note:      note,
			Score:     contribution,
			MatchType: core.MatchTypeLexical,
		}
		order = append(order, note.Id)
	}

	results := make([]*core.ScoredNote, 0, len(order))
	for _, id := range order {
		entry := merged[id]
		entry.Score += recencyBoost(entry.Note.CreatedAt, now, weights) +
			lengthBoost(entry.Note.Content, weights)
		results = append(results, entry)
	}

	slices.SortStableFunc(results, func(a, b *core.ScoredNote) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(results) > weights.MaxResults {
		results = results[:weights.MaxResults]
	}
	return results
}

// recencyBoost decays linearly from 1 at age zero to 0 at the recency
// window, clamped at zero for older notes.
func recencyBoost(createdAt time.Time, now time.Time, weights Weights) float64 {
	days := now.Sub(createdAt).Hours() / 24
	boost := 1 - days/weights.RecencyWindowDays
	if boost < 0 {
		return 0
	}
	return boost
}

// lengthBoost rewards longer content, saturating at LengthNorm bytes
// of content and capped at LengthBoostWeight.
func lengthBoost(content string, weights Weights) float64 {
	ratio := float64(len(content)) / weights.LengthNorm
	if ratio > 1 {
		ratio = 1
	}
	return ratio * weights.LengthBoostWeight
}
