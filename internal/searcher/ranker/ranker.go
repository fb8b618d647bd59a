package ranker

import (
	"math"
	"sort"

	"github.com/Dess457/search-server/internal/document"
	"github.com/Dess457/search-server/internal/searcher/parser"
)

const (
	// MaxResultDocumentCount caps every ranked result list.
	MaxResultDocumentCount = 5
	// RelevanceEpsilon is the tolerance under which two relevances tie. It is
	// wider than machine epsilon so sums reached in a different term order
	// still compare equal.
	RelevanceEpsilon = 1e-6
)

// Source is the read side of the index and document store.
type Source interface {
	TotalDocs() int
	Postings(term string) map[int]float64
	Document(id int) (document.Data, bool)
}

// Rank scores every candidate with TF-IDF, drops documents matched by a
// minus term, and returns at most MaxResultDocumentCount results ordered by
// relevance, then rating.
func Rank(q *parser.Query, src Source, keep document.Predicate) []document.Result {
	result := FindAll(q, src, keep)
	Sort(result)
	if len(result) > MaxResultDocumentCount {
		result = result[:MaxResultDocumentCount]
	}
	return result
}

// FindAll returns every surviving candidate, unsorted by relevance but in
// ascending id order.
func FindAll(q *parser.Query, src Source, keep document.Predicate) []document.Result {
	scores := make(map[int]float64)
	totalDocs := src.TotalDocs()
	for _, term := range q.Plus() {
		postings := src.Postings(term)
		if len(postings) == 0 {
			continue
		}
		idf := computeIDF(totalDocs, len(postings))
		for docID, tf := range postings {
			data, ok := src.Document(docID)
			if !ok || !keep(docID, data.Status, data.Rating) {
				continue
			}
			scores[docID] += tf * idf
		}
	}
	for _, term := range q.Minus() {
		for docID := range src.Postings(term) {
			delete(scores, docID)
		}
	}

	ids := make([]int, 0, len(scores))
	for docID := range scores {
		ids = append(ids, docID)
	}
	sort.Ints(ids)

	result := make([]document.Result, 0, len(ids))
	for _, docID := range ids {
		data, _ := src.Document(docID)
		result = append(result, document.Result{
			ID:        docID,
			Relevance: scores[docID],
			Rating:    data.Rating,
		})
	}
	return result
}

// Sort orders results by descending relevance. Relevances closer than
// RelevanceEpsilon tie and fall back to descending rating; exact ties keep
// their input order.
func Sort(result []document.Result) {
	sort.SliceStable(result, func(i, j int) bool {
		if math.Abs(result[i].Relevance-result[j].Relevance) < RelevanceEpsilon {
			return result[i].Rating > result[j].Rating
		}
		return result[i].Relevance > result[j].Relevance
	})
}

func computeIDF(totalDocs int, docFreq int) float64 {
	if totalDocs == 0 || docFreq == 0 {
		return 0
	}
	return math.Log(float64(totalDocs) / float64(docFreq))
}
