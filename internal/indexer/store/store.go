// Package store keeps the authoritative record of ingested documents: their
// ids in insertion order and their rating and status.
package store

import (
	"github.com/Dess457/search-server/internal/document"
	apperrors "github.com/Dess457/search-server/pkg/errors"
)

type Store struct {
	docs  map[int]document.Data
	order []int
}

func New() *Store {
	return &Store{
		docs: make(map[int]document.Data),
	}
}

// Check reports whether id could be added without modifying the store.
func (s *Store) Check(id int) error {
	if id < 0 {
		return apperrors.Newf(apperrors.ErrNegativeID, "id %d", id)
	}
	if _, exists := s.docs[id]; exists {
		return apperrors.Newf(apperrors.ErrDuplicateID, "id %d", id)
	}
	return nil
}

// Add records a document the caller has already passed through Check. The
// rating is the truncated mean of ratings, or zero when no ratings are given.
func (s *Store) Add(id int, status document.Status, ratings []int) document.Data {
	data := document.Data{
		Rating: AverageRating(ratings),
		Status: status,
	}
	s.docs[id] = data
	s.order = append(s.order, id)
	return data
}

func (s *Store) Get(id int) (document.Data, bool) {
	data, ok := s.docs[id]
	return data, ok
}

func (s *Store) Count() int {
	return len(s.order)
}

// IDAt returns the id inserted at the zero-based position.
func (s *Store) IDAt(position int) (int, error) {
	if position < 0 || position >= len(s.order) {
		return 0, apperrors.Newf(apperrors.ErrOutOfRange, "position %d, document count %d", position, len(s.order))
	}
	return s.order[position], nil
}

// IDs returns a copy of all ids in insertion order.
func (s *Store) IDs() []int {
	ids := make([]int, len(s.order))
	copy(ids, s.order)
	return ids
}

// AverageRating truncates toward zero, matching integer division.
func AverageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}
