package parser

import (
	"sort"
	"strings"

	"github.com/Dess457/search-server/internal/indexer/tokenizer"
	apperrors "github.com/Dess457/search-server/pkg/errors"
)

const minusSigil = "-"

// Query holds the distinct plus and minus words of a raw query. Word order
// in the raw text does not matter.
type Query struct {
	PlusTerms  map[string]struct{}
	MinusTerms map[string]struct{}
	RawQuery   string
}

func newQuery(raw string) *Query {
	return &Query{
		PlusTerms:  make(map[string]struct{}),
		MinusTerms: make(map[string]struct{}),
		RawQuery:   raw,
	}
}

// Parse splits raw into words, drops stop words and sorts the rest into
// plus and minus terms. A word starting with "-" is a minus term. A word
// ending in "-" or containing "--" fails with ErrMalformedTerm.
//
// A word with control characters does not fail the call: it yields an empty
// query, so nothing matches.
func Parse(raw string, stop *tokenizer.StopWords) (*Query, error) {
	plan := newQuery(raw)
	for _, word := range tokenizer.Split(raw) {
		if !tokenizer.IsValid(word) {
			return newQuery(raw), nil
		}
		term, isMinus, err := parseWord(word)
		if err != nil {
			return nil, err
		}
		if stop.Contains(term) {
			continue
		}
		if isMinus {
			plan.MinusTerms[term] = struct{}{}
		} else {
			plan.PlusTerms[term] = struct{}{}
		}
	}
	return plan, nil
}

func parseWord(word string) (string, bool, error) {
	if strings.HasSuffix(word, minusSigil) || strings.Contains(word, "--") {
		return "", false, apperrors.Newf(apperrors.ErrMalformedTerm, "%q", word)
	}
	if strings.HasPrefix(word, minusSigil) {
		return word[len(minusSigil):], true, nil
	}
	return word, false, nil
}

// Plus returns the plus terms in lexicographic order.
func (q *Query) Plus() []string {
	return sortedKeys(q.PlusTerms)
}

// Minus returns the minus terms in lexicographic order.
func (q *Query) Minus() []string {
	return sortedKeys(q.MinusTerms)
}

func (q *Query) IsEmpty() bool {
	return len(q.PlusTerms) == 0 && len(q.MinusTerms) == 0
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
