package index

import (
	"sort"

	apperrors "github.com/Dess457/search-server/pkg/errors"
)

// MemoryIndex maps each term to the documents containing it together with
// the term's normalized frequency in that document.
type MemoryIndex struct {
	index    map[string]map[int]float64
	docTerms map[int]map[string]float64
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		index:    make(map[string]map[int]float64),
		docTerms: make(map[int]map[string]float64),
	}
}

// Record adds the already filtered words of one document. Every occurrence
// contributes 1/len(words), so a document's weights sum to one. A document
// can be recorded only once.
func (m *MemoryIndex) Record(docID int, words []string) error {
	if len(words) == 0 {
		return apperrors.Newf(apperrors.ErrEmptyDocument, "id %d", docID)
	}
	if _, exists := m.docTerms[docID]; exists {
		return apperrors.Newf(apperrors.ErrDuplicateID, "id %d already indexed", docID)
	}

	weight := 1.0 / float64(len(words))
	termData := make(map[string]float64)
	for _, word := range words {
		termData[word] += weight
	}

	for term, tf := range termData {
		docs, exists := m.index[term]
		if !exists {
			docs = make(map[int]float64)
			m.index[term] = docs
		}
		docs[docID] = tf
	}
	m.docTerms[docID] = termData
	return nil
}

// DocumentFrequency is the number of documents containing term.
func (m *MemoryIndex) DocumentFrequency(term string) int {
	return len(m.index[term])
}

// Postings returns a copy of the term's postings keyed by document id. The
// map is empty for unseen terms.
func (m *MemoryIndex) Postings(term string) map[int]float64 {
	docs := m.index[term]
	result := make(map[int]float64, len(docs))
	for id, tf := range docs {
		result[id] = tf
	}
	return result
}

// Contains reports whether docID contributed term.
func (m *MemoryIndex) Contains(term string, docID int) bool {
	_, ok := m.index[term][docID]
	return ok
}

// Search returns the term's postings sorted by document id.
func (m *MemoryIndex) Search(term string) PostingList {
	docs, exists := m.index[term]
	if !exists {
		return nil
	}
	result := make(PostingList, 0, len(docs))
	for id, tf := range docs {
		result = append(result, Posting{DocID: id, Weight: tf})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DocID < result[j].DocID
	})
	return result
}

// TermFrequencies returns a copy of the document's term vector, or nil if the
// document was never recorded.
func (m *MemoryIndex) TermFrequencies(docID int) map[string]float64 {
	terms, ok := m.docTerms[docID]
	if !ok {
		return nil
	}
	result := make(map[string]float64, len(terms))
	for term, tf := range terms {
		result[term] = tf
	}
	return result
}

// Snapshot lists every term with its postings, both sorted.
func (m *MemoryIndex) Snapshot() []TermEntry {
	entries := make([]TermEntry, 0, len(m.index))
	for term := range m.index {
		entries = append(entries, TermEntry{
			Term:     term,
			Postings: m.Search(term),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Term < entries[j].Term
	})
	return entries
}

func (m *MemoryIndex) Terms() int {
	return len(m.index)
}
