package search

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/jotline/jotline/core"
)

// LexicalSearch scores notes against the query with TF-IDF, computed
// independently over content, title and tags, and returns the notes
// with a non-zero combined score, best first. Empty query or empty
// collection yields an empty result, not an error.
//
// Ties keep their input order (stable sort).
func (s *Searcher) LexicalSearch(query string, notes []*core.Note) []*core.Note {
	return lexicalSearch(query, notes, s.weights, s.logger)
}

func lexicalSearch(query string, notes []*core.Note, weights Weights, logger *slog.Logger) []*core.Note {
	queryTerms := tokenize(query)
	if len(queryTerms) == 0 || len(notes) == 0 {
		return []*core.Note{}
	}

	// Notes without content are excluded from corpus construction.
	docs := make([]*core.Note, 0, len(notes))
	for _, note := range notes {
		if note == nil {
			continue
		}
		if note.Content == "" {
			logger.Debug("skipping note without content", "id", note.Id)
			continue
		}
		docs = append(docs, note)
	}
	if len(docs) == 0 {
		return []*core.Note{}
	}

	contents := make([]string, len(docs))
	titles := make([]string, len(docs))
	tags := make([]string, len(docs))
	for i, note := range docs {
		contents[i] = stripMarkup(note.Content)
		titles[i] = note.Title
		tags[i] = strings.Join(note.Tags, " ")
	}

	contentCorpus := newCorpus(contents)
	titleCorpus := newCorpus(titles)
	tagCorpus := newCorpus(tags)

	type hit struct {
		note  *core.Note
		score float64
	}

	hits := make([]hit, 0, len(docs))
	for i, note := range docs {
		score := weights.ContentWeight*contentCorpus.score(queryTerms, i) +
			weights.TitleWeight*titleCorpus.score(queryTerms, i) +
			weights.TagWeight*tagCorpus.score(queryTerms, i)
		if score == 0 {
			continue
		}
		hits = append(hits, hit{note: note, score: score})
	}

	slices.SortStableFunc(hits, func(a, b hit) int {
		if a.score > b.score {
			return -1
		}
		if a.score < b.score {
			return 1
		}
		return 0
	})

	results := make([]*core.Note, len(hits))
	for i, h := range hits {
		results[i] = h.note
	}
	return results
}
