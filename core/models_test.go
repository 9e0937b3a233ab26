package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %s vs %s", id1, id2)
			}
			if id1 == "" {
				t.Error("IDFromContent() produced empty ID")
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestMatchType_String(t *testing.T) {
	tests := []struct {
		name      string
		matchType MatchType
		want      string
	}{
		{name: "lexical", matchType: MatchTypeLexical, want: "lexical"},
		{name: "semantic", matchType: MatchTypeSemantic, want: "semantic"},
		{name: "both", matchType: MatchTypeBoth, want: "both"},
		{name: "zero value", matchType: MatchType(0), want: "unknown"},
		{name: "out of range", matchType: MatchType(42), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.matchType.String()
			if got != tt.want {
				t.Errorf("MatchType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
