// Package document defines the values exchanged between the search engine
// and its callers: document statuses, stored document data and ranked
// results.
package document

import (
	"fmt"
	"strings"

	apperrors "github.com/Dess457/search-server/pkg/errors"
)

// Status is a caller-assigned tag. The engine never changes it.
type Status int

const (
	StatusActive Status = iota
	StatusIrrelevant
	StatusExcluded
	StatusRemoved
)

var statusNames = [...]string{"ACTIVE", "IRRELEVANT", "EXCLUDED", "REMOVED"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// ParseStatus accepts the upper- or lower-case status name.
func ParseStatus(name string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range statusNames {
		if n == upper {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown document status %q", apperrors.ErrInvalidArgument, name)
}

// Data is what the store keeps for each ingested document.
type Data struct {
	Rating int
	Status Status
}

// Result is a single ranked hit returned by a query.
type Result struct {
	ID        int     `json:"document_id"`
	Relevance float64 `json:"relevance"`
	Rating    int     `json:"rating"`
}

func (r Result) String() string {
	return fmt.Sprintf("{ document_id = %d, relevance = %g, rating = %d }", r.ID, r.Relevance, r.Rating)
}

// Predicate decides whether a document is a ranking candidate.
type Predicate func(id int, status Status, rating int) bool

// WithStatus returns a predicate accepting only documents tagged status.
func WithStatus(status Status) Predicate {
	return func(_ int, s Status, _ int) bool {
		return s == status
	}
}
