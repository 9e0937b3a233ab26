package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_ShouldSkip(t *testing.T) {
	gate := NewGate(GateConfig{})

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{
			name:  "conversational marker ok",
			query: "ok",
			want:  true,
		},
		{
			name:  "conversational marker inside longer text",
			query: "thanks for that explanation",
			want:  true,
		},
		{
			name:  "below minimum length",
			query: "kubernetes log",
			want:  true,
		},
		{
			name:  "empty query",
			query: "",
			want:  true,
		},
		{
			name:  "whitespace only",
			query: "    \t  ",
			want:  true,
		},
		{
			name:  "short question stub",
			query: "would that work",
			want:  true,
		},
		{
			name:  "question with substantive remainder",
			query: "how do I configure the dev environment",
			want:  false,
		},
		{
			name:  "substantive query at minimum length",
			query: "kubernetes logs",
			want:  false,
		},
		{
			name:  "substantive query",
			query: "notes about the sourdough starter schedule",
			want:  false,
		},
		{
			name:  "mixed case is normalized",
			query: "THANKS, that was great",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.ShouldSkip(tt.query))
		})
	}
}

func TestGate_ShouldSkip_Idempotent(t *testing.T) {
	gate := NewGate(GateConfig{})

	for _, query := range []string{"ok", "notes about the garden fence", "would that work"} {
		first := gate.ShouldSkip(query)
		second := gate.ShouldSkip(query)
		assert.Equal(t, first, second, "gate must be a pure function of %q", query)
	}
}

func TestGate_CustomConfig(t *testing.T) {
	gate := NewGate(GateConfig{
		MinQueryLength: 3,
		Fillers:        []string{"zzz"},
	})

	assert.False(t, gate.ShouldSkip("dogs"))
	assert.True(t, gate.ShouldSkip("zzz dogs"))
	assert.True(t, gate.ShouldSkip("ab"))
}
