// Package loader reads corpus files and feeds their records to the engine.
// Records are validated concurrently, then added one at a time in file
// order so the engine only ever sees a single writer.
package loader

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Dess457/search-server/internal/document"
	"github.com/Dess457/search-server/internal/ingestion"
	"github.com/Dess457/search-server/internal/ingestion/validator"
)

// Adder is the ingestion side of the engine.
type Adder interface {
	AddDocument(id int, text string, status document.Status, ratings []int) error
}

// RecordError reports which record stopped an ingestion run.
type RecordError struct {
	Index int
	ID    int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (id %d): %v", e.Index, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// LoadFile decodes a YAML corpus file. JSON files decode too.
func LoadFile(path string) (*ingestion.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()
	corpus, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return corpus, nil
}

func Decode(r io.Reader) (*ingestion.Corpus, error) {
	var corpus ingestion.Corpus
	if err := yaml.NewDecoder(r).Decode(&corpus); err != nil {
		if err == io.EOF {
			return &corpus, nil
		}
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}
	return &corpus, nil
}

// Ingest validates every record and adds them to dst in order. It stops at
// the first record that fails validation or ingestion and returns a
// *RecordError; records before it stay ingested. It returns the number of
// records added.
func Ingest(ctx context.Context, dst Adder, records []ingestion.Record) (int, error) {
	logger := slog.Default().With("component", "loader")

	statuses := make([]document.Status, len(records))
	errs := make([]error, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range records {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			statuses[i], errs[i] = validator.ValidateRecord(&records[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("validating corpus: %w", err)
	}

	added := 0
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		err := errs[i]
		if err == nil {
			err = dst.AddDocument(rec.ID, rec.Text, statuses[i], rec.Ratings)
		}
		if err != nil {
			logger.Warn("corpus ingestion stopped",
				"record", i,
				"doc_id", rec.ID,
				"added", added,
				"error", err,
			)
			return added, &RecordError{Index: i, ID: rec.ID, Err: err}
		}
		added++
	}
	logger.Info("corpus ingested", "documents", added)
	return added, nil
}
