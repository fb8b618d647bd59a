package benchmark

import (
	"fmt"
	"testing"

	"github.com/Dess457/search-server/internal/document"
	"github.com/Dess457/search-server/internal/indexer/tokenizer"
	"github.com/Dess457/search-server/internal/searcher/parser"
)

// BenchmarkQueryParse measures query parsing latency for queries of varying
// complexity.
func BenchmarkQueryParse(b *testing.B) {
	stop, _ := tokenizer.NewStopWords(benchStopWords)
	queries := []struct {
		name  string
		query string
	}{
		{"single", "cat"},
		{"plus", "fluffy groomed cat"},
		{"with_minus", "fluffy cat -collar -dog"},
		{"stop_words", "the cat and the dog in a collar"},
		{"long", "cat dog fluffy tail collar groomed eyes starling white black -parrot -hamster"},
	}

	for _, q := range queries {
		b.Run(q.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = parser.Parse(q.query, stop)
			}
		})
	}
}

// BenchmarkFindTopDocuments measures end-to-end ranking over corpora of
// increasing size.
func BenchmarkFindTopDocuments(b *testing.B) {
	for _, docs := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("docs_%d", docs), func(b *testing.B) {
			e := newBenchEngine(b, docs)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := e.FindTopActive("fluffy groomed cat -collar"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFindTopDocumentsPredicate measures ranking with a caller
// predicate that reads rating and id.
func BenchmarkFindTopDocumentsPredicate(b *testing.B) {
	e := newBenchEngine(b, 10000)
	keep := func(id int, _ document.Status, rating int) bool {
		return id%2 == 0 && rating >= 0
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.FindTopDocuments("cat dog tail", keep); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindTopDocumentsParallel measures concurrent read throughput.
func BenchmarkFindTopDocumentsParallel(b *testing.B) {
	e := newBenchEngine(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = e.FindTopActive("striped brown tortoise")
		}
	})
}

// BenchmarkMatchDocument measures single-document matching.
func BenchmarkMatchDocument(b *testing.B) {
	e := newBenchEngine(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = e.MatchDocument("fluffy cat -parrot", i%10000)
	}
}
