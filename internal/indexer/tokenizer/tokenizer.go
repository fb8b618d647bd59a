// Package tokenizer splits raw text into words and validates it. Words are
// maximal runs of non-space characters; text containing control characters
// is rejected.
package tokenizer

import (
	"strings"

	apperrors "github.com/Dess457/search-server/pkg/errors"
)

// Split breaks text on single spaces, dropping empty words and keeping
// left-to-right order. Only ' ' separates words.
func Split(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' '
	})
	if words == nil {
		return []string{}
	}
	return words
}

// IsValid reports whether text is free of control characters (code points
// below the space character).
func IsValid(text string) bool {
	return strings.IndexFunc(text, func(r rune) bool {
		return r >= 0 && r < ' '
	}) < 0
}

// StopWords is an immutable set of words excluded from indexing and
// from queries.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a set from words, deduplicating and dropping empty
// entries. Any word containing control characters fails the whole set.
func NewStopWords(words []string) (*StopWords, error) {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		if !IsValid(word) {
			return nil, apperrors.Newf(apperrors.ErrInvalidCharacters, "stop word %q", word)
		}
		if word == "" {
			continue
		}
		set[word] = struct{}{}
	}
	return &StopWords{words: set}, nil
}

// ParseStopWords splits text with Split and builds the set from the result.
func ParseStopWords(text string) (*StopWords, error) {
	if !IsValid(text) {
		return nil, apperrors.New(apperrors.ErrInvalidCharacters, "stop words text")
	}
	return NewStopWords(Split(text))
}

// Contains reports membership. A nil set contains nothing.
func (s *StopWords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

func (s *StopWords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// SplitNoStop validates text and returns its words with stop words removed.
func SplitNoStop(text string, stop *StopWords) ([]string, error) {
	if !IsValid(text) {
		return nil, apperrors.New(apperrors.ErrInvalidCharacters, "document text")
	}
	words := Split(text)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if stop.Contains(word) {
			continue
		}
		kept = append(kept, word)
	}
	return kept, nil
}
