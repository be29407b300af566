package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	stopwords := NewStopwordSet([]string{"the", "and", "with", "this"})

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple lowercase", "steal expensive cars", []string{"steal", "expensive", "cars"}},
		{"with punctuation", "steal, cars!", []string{"steal", "cars"}},
		{"uppercase input", "STEAL Cars", []string{"steal", "cars"}},
		{"short tokens dropped", "go to the car", []string{"car"}},
		{"stopwords dropped", "the driver and the getaway", []string{"driver", "getaway"}},
		{"stopword uppercase in input", "THE driver", []string{"driver"}},
		{"multiple spaces", "steal   cars", []string{"steal", "cars"}},
		{"leading and trailing spaces", "  steal cars  ", []string{"steal", "cars"}},
		{"hyphenated word collapses", "state-of-the-art", []string{"stateoftheart"}},
		{"numbers kept", "route 666 planning", []string{"route", "666", "planning"}},
		{"underscore is a word character", "my_var", []string{"my_var"}},
		{"only punctuation", "!@#$%", []string{}},
		{"newlines and tabs", "steal\ncars\texpensive", []string{"steal", "cars", "expensive"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input, stopwords)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize_NilStopwords(t *testing.T) {
	got := Tokenize("steal the cars", nil)
	want := []string{"steal", "the", "cars"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize with nil stopwords = %v, want %v", got, want)
	}
}

// Tokenizing the joined output of a previous tokenization must not change the
// term sequence: all filters have already been applied.
func TestTokenize_Idempotent(t *testing.T) {
	inputs := []string{
		"The driver steals an expensive car, quickly!",
		"preparation: rent a van; load stolen goods",
		"   mixed CASE    with-punctuation??  ",
	}
	stopwords := NewStopwordSet([]string{"the", "with"})

	for _, input := range inputs {
		once := Tokenize(input, stopwords)
		twice := Tokenize(strings.Join(once, " "), stopwords)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Tokenize not idempotent for %q: first %v, second %v", input, once, twice)
		}
	}
}

func TestTokenize_ExcludesEveryStopword(t *testing.T) {
	words := []string{"the", "and", "een", "van", "voor"}
	stopwords := NewStopwordSet(words)

	for _, w := range words {
		tokens := Tokenize("xxx "+w+" yyy", stopwords)
		for _, tok := range tokens {
			if tok == w {
				t.Errorf("stopword %q survived tokenization: %v", w, tokens)
			}
		}
	}
}

func TestNewStopwordSet_Lowers(t *testing.T) {
	set := NewStopwordSet([]string{"The", "AND"})
	if !set.Contains("the") || !set.Contains("and") {
		t.Errorf("stopword set should be pre-lowered, got %v", set)
	}
}
