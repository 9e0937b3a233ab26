package search

import (
	"github.com/jotline/jotline/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results
// during search. Hooks are invoked sequentially from the calling
// goroutine.
type SearchMonitor interface {
	Start(query string)
	Skipped(query string)
	AfterLexicalSearch(notes []*core.Note)
	AfterSemanticSearch(notes []*core.Note)
	Finish(results []*core.ScoredNote)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) Skipped(_ string)                      {}
func (n *noopMonitor) AfterLexicalSearch(_ []*core.Note)     {}
func (n *noopMonitor) AfterSemanticSearch(_ []*core.Note)    {}
func (n *noopMonitor) Finish(_ []*core.ScoredNote)           {}
