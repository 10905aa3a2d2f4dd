package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/notes"
	"notekeeper/internal/service"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        &service.ValidationError{Field: "id", Message: "cannot be empty"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped invalid input",
			err:        fmt.Errorf("op: %w", service.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			err:        service.WrapError(fmt.Errorf("note n1: %w", notes.ErrNotFound), "open note"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid section",
			err:        fmt.Errorf("section s1: %w", notes.ErrInvalidSection),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "persistence failure",
			err:        &notes.PersistenceError{Op: "delete note", Err: errors.New("disk full")},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleServiceError(w, context.Background(), tt.err, "default message")

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Error, "error response should carry a message")
		})
	}
}

func TestDecodeRequest(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
		wantField  string
	}{
		{name: "valid", body: `{"section_id":"s1"}`, wantOK: true},
		{name: "malformed JSON", body: `{"section_id":`, wantStatus: http.StatusBadRequest},
		{name: "missing required field", body: `{}`, wantStatus: http.StatusBadRequest, wantField: "section_id: required"},
		{name: "field too long", body: `{"section_id":"` + strings.Repeat("x", 200) + `"}`, wantStatus: http.StatusBadRequest, wantField: "section_id: max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst SectionRefRequest
			ok := decodeRequest(w, req, v, &dst)

			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, "s1", dst.SectionID)
				return
			}
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantField != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, []string{tt.wantField}, resp.Fields)
			}
		})
	}
}
