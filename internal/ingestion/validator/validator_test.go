package validator

import (
	"errors"
	"testing"

	"github.com/Dess457/search-server/internal/document"
	"github.com/Dess457/search-server/internal/ingestion"
	apperrors "github.com/Dess457/search-server/pkg/errors"
)

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name   string
		rec    ingestion.Record
		status document.Status
		fields []string
	}{
		{"valid default status", ingestion.Record{ID: 1, Text: "cat"}, document.StatusActive, nil},
		{"valid explicit status", ingestion.Record{ID: 0, Text: "cat", Status: "excluded"}, document.StatusExcluded, nil},
		{"negative id", ingestion.Record{ID: -3, Text: "cat"}, 0, []string{"id"}},
		{"blank text", ingestion.Record{ID: 1, Text: "   "}, 0, []string{"text"}},
		{"control characters", ingestion.Record{ID: 1, Text: "c\x03at"}, 0, []string{"text"}},
		{"everything wrong", ingestion.Record{ID: -1, Text: "", Status: "gone"}, 0, []string{"id", "text", "status"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ValidateRecord(&tt.rec)
			if len(tt.fields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				if status != tt.status {
					t.Fatalf("status = %v, want %v", status, tt.status)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !errors.Is(err, apperrors.ErrInvalidArgument) {
				t.Fatalf("ValidationError should be an invalid argument")
			}
			if len(verr.Fields) != len(tt.fields) {
				t.Fatalf("fields = %v, want %v", verr.Fields, tt.fields)
			}
			for _, f := range tt.fields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("missing field %q in %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestValidationErrorMessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"text": "b", "id": "a"}}
	if got := err.Error(); got != "id:a; text:b" {
		t.Fatalf("Error() = %q", got)
	}
}
