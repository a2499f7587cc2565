package answer

import (
	"reflect"
	"testing"
)

func TestWantsWordList(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"only words capitalized", "Give me Only Words please", true},
		{"just words", "just words, nothing else", true},
		{"not a passage", "I want a list, NOT A PASSAGE", true},
		{"not a paragraph", "not a paragraph please", true},
		{"no explanation", "answers with no explanation", true},
		{"plain question", "explain in detail", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WantsWordList(tt.text); got != tt.want {
				t.Fatalf("WantsWordList(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"punctuation and digits stripped", "Hello, World! 123", []string{"Hello", "World"}},
		{"hyphen splits words", "well-known fact", []string{"well", "known", "fact"}},
		{"collapsed whitespace", "  a \t b \n c  ", []string{"a", "b", "c"}},
		{"only symbols", "123 !!! ...", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractWords(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractWords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractRequestedCount(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"basic", "give me 5 words starting with a", 5, true},
		{"singular", "1 word only", 1, true},
		{"no count", "some words please", 0, false},
		{"first occurrence wins", "10 words then 3 words", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractRequestedCount(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ExtractRequestedCount(%q) = (%d, %v), want (%d, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractStartingLetter(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"basic", "give me 5 words starting with a", "a", true},
		{"uppercase letter lowered", "words Starting With B", "b", true},
		{"absent", "give me 5 words", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractStartingLetter(tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("ExtractStartingLetter(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
