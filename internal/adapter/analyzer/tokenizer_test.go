package analyzer

import (
	"reflect"
	"testing"
)

func TestTokenizer_Tokenize_KeepsPunctuation(t *testing.T) {
	tok := NewTokenizer(true)

	tokens := tok.Tokenize("The dog ran. It didn't stop!")
	expected := []string{"The", "dog", "ran", ".", "It", "didn't", "stop", "!"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("expected %v, got %v", expected, tokens)
	}
}

func TestTokenizer_Tokenize_DropsPunctuation(t *testing.T) {
	tok := NewTokenizer(false)

	tokens := tok.Tokenize("Hello, world -- again.")
	expected := []string{"Hello", "world", "again"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("expected %v, got %v", expected, tokens)
	}
}

func TestTokenizer_Delimiters(t *testing.T) {
	tok := NewTokenizer(true)

	tokens := tok.Tokenize("``Quoted'' text--with dashes")
	expected := []string{"``", "Quoted", "''", "text", "--", "with", "dashes"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("expected %v, got %v", expected, tokens)
	}
}

func TestTokenizer_EmptyInput(t *testing.T) {
	tok := NewTokenizer(true)

	if tokens := tok.Tokenize(""); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(tokens))
	}
	if tokens := tok.Tokenize("   \n\t "); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for whitespace input, got %d", len(tokens))
	}
}

func TestTokenizer_Joiners(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"well-known", []string{"well-known"}},
		{"rock'n'roll", []string{"rock'n'roll"}},
		{"dogs'", []string{"dogs", "'"}},
		{"-start", []string{"-", "start"}},
		{"end-", []string{"end", "-"}},
		{"123abc456", []string{"123abc456"}},
		{"wait...", []string{"wait", "..."}},
	}

	tok := NewTokenizer(true)
	for _, tt := range tests {
		tokens := tok.Tokenize(tt.input)
		if !reflect.DeepEqual(tokens, tt.expected) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, tokens, tt.expected)
		}
	}
}
