// Package benchmark contains Go benchmarks for the engine, the inverted
// index and the query pipeline, measuring throughput and allocations.
package benchmark

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Dess457/search-server/internal/document"
	"github.com/Dess457/search-server/internal/indexer"
	"github.com/Dess457/search-server/internal/indexer/index"
	"github.com/Dess457/search-server/internal/indexer/tokenizer"
)

var benchStopWords = []string{"and", "in", "on", "with", "the", "of", "a"}

var vocabulary = []string{
	"cat", "dog", "fluffy", "tail", "collar", "groomed", "eyes", "starling",
	"white", "black", "fashionable", "expressive", "parrot", "hamster", "tortoise",
	"long", "short", "striped", "spotted", "brown",
}

func docText(i int) string {
	n := len(vocabulary)
	return fmt.Sprintf("%s %s and %s %s in the %s",
		vocabulary[i%n], vocabulary[(i*7+1)%n], vocabulary[(i*3+2)%n],
		vocabulary[(i*11+3)%n], vocabulary[(i*5+4)%n])
}

func newBenchEngine(b *testing.B, docs int) *indexer.Engine {
	b.Helper()
	e, err := indexer.New(benchStopWords, indexer.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		b.Fatalf("indexer.New: %v", err)
	}
	for i := 0; i < docs; i++ {
		if err := e.AddDocument(i, docText(i), document.Status(i%4), []int{i % 10, -(i % 3)}); err != nil {
			b.Fatalf("AddDocument(%d): %v", i, err)
		}
	}
	return e
}

// BenchmarkMemoryIndexRecord measures per-document insert throughput into
// the in-memory inverted index.
func BenchmarkMemoryIndexRecord(b *testing.B) {
	stop, _ := tokenizer.NewStopWords(benchStopWords)
	words, _ := tokenizer.SplitNoStop(docText(1), stop)
	mi := index.NewMemoryIndex()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mi.Record(i, words)
	}
}

// BenchmarkMemoryIndexSearch measures single-term lookup latency over
// 10 000 documents.
func BenchmarkMemoryIndexSearch(b *testing.B) {
	stop, _ := tokenizer.NewStopWords(benchStopWords)
	mi := index.NewMemoryIndex()
	for i := 0; i < 10000; i++ {
		words, _ := tokenizer.SplitNoStop(docText(i), stop)
		_ = mi.Record(i, words)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mi.Search("cat")
	}
}

// BenchmarkMemoryIndexSnapshot measures the cost of a full sorted dump.
func BenchmarkMemoryIndexSnapshot(b *testing.B) {
	stop, _ := tokenizer.NewStopWords(benchStopWords)
	mi := index.NewMemoryIndex()
	for i := 0; i < 5000; i++ {
		words, _ := tokenizer.SplitNoStop(docText(i), stop)
		_ = mi.Record(i, words)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mi.Snapshot()
	}
}

// BenchmarkEngineAddDocument measures full engine ingestion throughput at
// various pre-loaded corpus sizes.
func BenchmarkEngineAddDocument(b *testing.B) {
	for _, preload := range []int{0, 1000, 10000} {
		b.Run(fmt.Sprintf("preloaded_%d", preload), func(b *testing.B) {
			e := newBenchEngine(b, preload)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = e.AddDocument(preload+i, docText(i), document.StatusActive, []int{5})
			}
		})
	}
}
