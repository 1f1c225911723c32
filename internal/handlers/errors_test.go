package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"folio.dev/internal/models"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", fmt.Errorf("%w: x", models.ErrProjectNotFound), http.StatusNotFound, "PROJECT_NOT_FOUND"},
		{"wrapped twice", fmt.Errorf("lookup: %w", fmt.Errorf("%w: y", models.ErrProjectNotFound)), http.StatusNotFound, "PROJECT_NOT_FOUND"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, message := mapError(tt.err)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", status, tt.wantStatus)
			}
			if code != tt.wantCode {
				t.Fatalf("code = %q, want %q", code, tt.wantCode)
			}
			if tt.wantStatus == http.StatusInternalServerError && message != "Internal server error" {
				t.Fatalf("message = %q, internal details leaked", message)
			}
		})
	}
}
