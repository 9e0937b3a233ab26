package search

import (
	"context"
	"time"

	"github.com/jotline/jotline/core"
)

// fixtureNow is the injected clock instant used by deterministic tests.
var fixtureNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// sampleNotes returns the eleven-note collection used across the
// scorer tests. All notes belong to user-1.
func sampleNotes() []*core.Note {
	mk := func(id, title, content string, ageDays int, tags ...string) *core.Note {
		return &core.Note{
			Id:        core.ID(id),
			UserId:    "user-1",
			Title:     title,
			Content:   content,
			Tags:      tags,
			CreatedAt: fixtureNow.AddDate(0, 0, -ageDays),
		}
	}

	return []*core.Note{
		mk("1", "JavaScript Basics",
			"JavaScript is a versatile language. JavaScript powers interactive pages and JavaScript runs in every browser.",
			2, "javascript", "programming"),
		mk("2", "Go Concurrency",
			"Goroutines and channels make concurrent pipelines readable.",
			5, "go", "programming"),
		mk("3", "Sourdough Starter",
			"Feed the starter twice daily and keep it warm near the oven.",
			40, "cooking"),
		mk("4", "TypeScript Migration",
			"TypeScript compiles down to JavaScript before shipping to the browser.",
			8, "typescript"),
		mk("5", "Standup Summary",
			"Discussed the release checklist and the flaky integration suite.",
			1, "work"),
		mk("6", "Frontend Reading List",
			"Articles about rendering frameworks and the modern web platform.",
			12, "javascript", "frontend"),
		mk("7", "Garden Plan",
			"Tomatoes along the fence, basil between the rows.",
			60, "garden"),
		mk("8", "Workout Log",
			"Intervals on Tuesday, long slow run on Sunday morning.",
			3, "fitness"),
		mk("9", "Book Quotes",
			"Collected passages about craftsmanship and deliberate practice.",
			25),
		mk("10", "Travel Ideas",
			"Overnight train routes through the alps, shoulder season only.",
			90, "travel"),
		mk("11", "Ramen Broth",
			"Simmer the bones overnight and season the tare separately.",
			15, "cooking"),
	}
}

func noteIds(notes []*core.Note) []string {
	ids := make([]string, len(notes))
	for i, note := range notes {
		ids[i] = string(note.Id)
	}
	return ids
}

func scoredIds(results []*core.ScoredNote) []string {
	ids := make([]string, len(results))
	for i, result := range results {
		ids[i] = string(result.Note.Id)
	}
	return ids
}

// mockIndex is a test double for VectorIndex with injectable behavior.
type mockIndex struct {
	SearchFunc func(ctx context.Context, query string, topK int, filter Filter) ([]core.SimilarityMatch, error)

	calls   int
	filters []Filter
}

var _ VectorIndex = (*mockIndex)(nil)

func (m *mockIndex) Search(ctx context.Context, query string, topK int, filter Filter) ([]core.SimilarityMatch, error) {
	m.calls++
	m.filters = append(m.filters, filter)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, topK, filter)
	}
	return []core.SimilarityMatch{}, nil
}
