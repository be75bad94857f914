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
			content: "biryani",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "multi word term",
			content: "(vocabulary,new york)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("(vocabulary,burger)")
	id2 := IDFromContent("(protected,burger)")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestLexiconEntry_Tuple(t *testing.T) {
	tests := []struct {
		name  string
		entry LexiconEntry
		want  string
	}{
		{
			name: "vocabulary term",
			entry: LexiconEntry{
				Term: "colombo",
				Kind: KindVocabulary,
			},
			want: "(vocabulary,colombo)",
		},
		{
			name: "misspelling term",
			entry: LexiconEntry{
				Term:      "berger",
				Kind:      KindMisspelling,
				Canonical: "burger",
			},
			want: "(misspelling,berger)",
		},
		{
			name: "multi word term",
			entry: LexiconEntry{
				Term: "new york",
				Kind: KindProtected,
			},
			want: "(protected,new york)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Tuple(); got != tt.want {
				t.Errorf("Tuple() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normalized", in: "chicken curry", want: "chicken curry"},
		{name: "mixed case", in: "Chicken Curry", want: "chicken curry"},
		{name: "surrounding whitespace", in: "  pizza \t", want: "pizza"},
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSource_String(t *testing.T) {
	tests := []struct {
		source Source
		want   string
	}{
		{SourceLexical, "lexical"},
		{SourceContext, "context"},
		{SourceRerank, "rerank"},
		{SourceHeuristic, "heuristic"},
		{Source(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.source.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.source, got, tt.want)
		}
	}
}
