package indexer

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Dess457/search-server/internal/document"
	"github.com/Dess457/search-server/internal/indexer/index"
	"github.com/Dess457/search-server/internal/indexer/store"
	"github.com/Dess457/search-server/internal/indexer/tokenizer"
	"github.com/Dess457/search-server/internal/searcher/parser"
	"github.com/Dess457/search-server/internal/searcher/ranker"
	apperrors "github.com/Dess457/search-server/pkg/errors"
	"github.com/Dess457/search-server/pkg/metrics"
)

// Engine owns the document store and inverted index and answers ranked
// queries over them. It is built for a load-then-query pattern: the lock
// keeps callers safe but ingestion is not meant to interleave with queries.
type Engine struct {
	mu       sync.RWMutex
	stop     *tokenizer.StopWords
	memIndex *index.MemoryIndex
	docs     *store.Store
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics makes the engine update m on every call.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// New creates an engine whose stop words are the given collection.
func New(stopWords []string, opts ...Option) (*Engine, error) {
	stop, err := tokenizer.NewStopWords(stopWords)
	if err != nil {
		return nil, fmt.Errorf("building stop words: %w", err)
	}
	return newEngine(stop, opts), nil
}

// NewFromText creates an engine whose stop words are the space-separated
// words of text.
func NewFromText(text string, opts ...Option) (*Engine, error) {
	stop, err := tokenizer.ParseStopWords(text)
	if err != nil {
		return nil, fmt.Errorf("building stop words: %w", err)
	}
	return newEngine(stop, opts), nil
}

func newEngine(stop *tokenizer.StopWords, opts []Option) *Engine {
	e := &Engine{
		stop:     stop,
		memIndex: index.NewMemoryIndex(),
		docs:     store.New(),
		logger:   slog.Default().With("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddDocument validates and indexes one document. On any error the engine is
// left exactly as it was.
func (e *Engine) AddDocument(id int, text string, status document.Status, ratings []int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.docs.Check(id); err != nil {
		return e.reject(id, err)
	}
	words, err := tokenizer.SplitNoStop(text, e.stop)
	if err != nil {
		return e.reject(id, err)
	}
	if err := e.memIndex.Record(id, words); err != nil {
		return e.reject(id, err)
	}
	data := e.docs.Add(id, status, ratings)

	e.logger.Debug("document indexed",
		"doc_id", id,
		"word_count", len(words),
		"status", status.String(),
		"rating", data.Rating,
	)
	if e.metrics != nil {
		e.metrics.DocsIndexedTotal.Inc()
		e.metrics.DocumentCount.Set(float64(e.docs.Count()))
		e.metrics.IndexTerms.Set(float64(e.memIndex.Terms()))
	}
	return nil
}

func (e *Engine) reject(id int, err error) error {
	kind := apperrors.KindOf(err)
	e.logger.Warn("document rejected",
		"doc_id", id,
		"kind", kind.String(),
		"error", err,
	)
	if e.metrics != nil {
		e.metrics.IngestRejectsTotal.WithLabelValues(kind.String()).Inc()
	}
	return fmt.Errorf("adding document %d: %w", id, err)
}

// FindTopDocuments ranks the documents accepted by keep. A nil keep selects
// active documents.
func (e *Engine) FindTopDocuments(rawQuery string, keep document.Predicate) ([]document.Result, error) {
	if keep == nil {
		keep = document.WithStatus(document.StatusActive)
	}
	start := time.Now()

	q, err := parser.Parse(rawQuery, e.stop)
	if err != nil {
		e.observeSearch(start, -1)
		return nil, fmt.Errorf("parsing query %q: %w", rawQuery, err)
	}

	e.mu.RLock()
	results := ranker.Rank(q, corpus{idx: e.memIndex, docs: e.docs}, keep)
	e.mu.RUnlock()

	e.logger.Debug("query executed",
		"query", rawQuery,
		"plus_terms", q.Plus(),
		"minus_terms", q.Minus(),
		"results", len(results),
	)
	e.observeSearch(start, len(results))
	return results, nil
}

// FindTopDocumentsByStatus ranks only documents tagged status.
func (e *Engine) FindTopDocumentsByStatus(rawQuery string, status document.Status) ([]document.Result, error) {
	return e.FindTopDocuments(rawQuery, document.WithStatus(status))
}

// FindTopActive ranks only active documents.
func (e *Engine) FindTopActive(rawQuery string) ([]document.Result, error) {
	return e.FindTopDocumentsByStatus(rawQuery, document.StatusActive)
}

func (e *Engine) observeSearch(start time.Time, results int) {
	if e.metrics == nil {
		return
	}
	e.metrics.SearchLatency.Observe(time.Since(start).Seconds())
	switch {
	case results < 0:
		e.metrics.SearchQueriesTotal.WithLabelValues("error").Inc()
		return
	case results == 0:
		e.metrics.SearchQueriesTotal.WithLabelValues("zero_result").Inc()
	default:
		e.metrics.SearchQueriesTotal.WithLabelValues("hit").Inc()
	}
	e.metrics.SearchResultsCount.Observe(float64(results))
}

// MatchDocument returns the plus terms of rawQuery that occur in the
// document, sorted. If any minus term occurs in it the list is empty.
func (e *Engine) MatchDocument(rawQuery string, id int) ([]string, document.Status, error) {
	matched, status, err := e.matchDocument(rawQuery, id)
	if e.metrics != nil {
		outcome := "matched"
		switch {
		case err != nil:
			outcome = "error"
		case matched == nil:
			outcome = "excluded"
		case len(matched) == 0:
			outcome = "empty"
		}
		e.metrics.MatchRequestsTotal.WithLabelValues(outcome).Inc()
	}
	if matched == nil && err == nil {
		matched = []string{}
	}
	return matched, status, err
}

// matchDocument returns a nil slice when a minus term excluded the document.
func (e *Engine) matchDocument(rawQuery string, id int) ([]string, document.Status, error) {
	if id < 0 {
		return nil, 0, apperrors.Newf(apperrors.ErrNegativeID, "id %d", id)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	q, err := parser.Parse(rawQuery, e.stop)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing query %q: %w", rawQuery, err)
	}
	data, ok := e.docs.Get(id)
	if !ok {
		return nil, 0, apperrors.Newf(apperrors.ErrNotFound, "document %d", id)
	}

	for _, term := range q.Minus() {
		if e.memIndex.Contains(term, id) {
			return nil, data.Status, nil
		}
	}
	matched := make([]string, 0, len(q.PlusTerms))
	for _, term := range q.Plus() {
		if e.memIndex.Contains(term, id) {
			matched = append(matched, term)
		}
	}
	return matched, data.Status, nil
}

func (e *Engine) DocumentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.docs.Count()
}

// DocumentIDAt returns the id of the document added at position, counting
// from zero. Positions outside [0, DocumentCount()) fail with ErrOutOfRange.
func (e *Engine) DocumentIDAt(position int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.docs.IDAt(position)
}

// DocumentIDs returns all ids in insertion order.
func (e *Engine) DocumentIDs() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.docs.IDs()
}

// TermFrequencies returns a copy of the document's term frequency vector.
func (e *Engine) TermFrequencies(id int) (map[string]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	freqs := e.memIndex.TermFrequencies(id)
	if freqs == nil {
		return nil, apperrors.Newf(apperrors.ErrNotFound, "document %d", id)
	}
	return freqs, nil
}

// Snapshot lists every indexed term with its postings.
func (e *Engine) Snapshot() []index.TermEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.memIndex.Snapshot()
}

// corpus adapts the index and store to ranker.Source.
type corpus struct {
	idx  *index.MemoryIndex
	docs *store.Store
}

func (c corpus) TotalDocs() int {
	return c.docs.Count()
}

func (c corpus) Postings(term string) map[int]float64 {
	return c.idx.Postings(term)
}

func (c corpus) Document(id int) (document.Data, bool) {
	return c.docs.Get(id)
}
