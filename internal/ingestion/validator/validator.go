// Package validator checks corpus records before they reach the engine and
// returns per-field error details.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Dess457/search-server/internal/document"
	"github.com/Dess457/search-server/internal/indexer/tokenizer"
	"github.com/Dess457/search-server/internal/ingestion"
	apperrors "github.com/Dess457/search-server/pkg/errors"
)

// ValidationError holds per-field validation failure messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s:%s", field, e.Fields[field]))
	}
	return strings.Join(parts, "; ")
}

// Unwrap makes every ValidationError an ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInvalidArgument
}

// ValidateRecord checks the id, text and status of rec. Duplicate ids and
// stop-word-only text are left to the engine, which owns that state.
func ValidateRecord(rec *ingestion.Record) (document.Status, error) {
	errs := make(map[string]string)

	if rec.ID < 0 {
		errs["id"] = "id must not be negative"
	}
	if !tokenizer.IsValid(rec.Text) {
		errs["text"] = "text must not contain control characters"
	} else if len(tokenizer.Split(rec.Text)) == 0 {
		errs["text"] = "text is required"
	}
	status := document.StatusActive
	if rec.Status != "" {
		parsed, err := document.ParseStatus(rec.Status)
		if err != nil {
			errs["status"] = err.Error()
		}
		status = parsed
	}
	if len(errs) > 0 {
		return 0, &ValidationError{Fields: errs}
	}
	return status, nil
}
