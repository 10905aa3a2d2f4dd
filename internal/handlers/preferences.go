package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"notekeeper/internal/notes"
	"notekeeper/internal/service"
)

// PreferencesHandler handles HTTP requests for user preferences.
type PreferencesHandler struct {
	notesService service.NotesService
	validate     *validator.Validate
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(notesService service.NotesService) *PreferencesHandler {
	return &PreferencesHandler{
		notesService: notesService,
		validate:     newValidator(),
	}
}

// GetSort returns the persisted sort option.
//
// GET /api/preferences/sort
func (h *PreferencesHandler) GetSort(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, SortResponse{
		Sort:    h.notesService.GetSortOption(ctx),
		Options: notes.SortOptions,
	})
}

// SetSort persists a new sort option.
//
// PUT /api/preferences/sort
func (h *PreferencesHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SortRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	opt, err := h.notesService.SetSortOption(ctx, req.Sort)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to set sort option")
		return
	}
	writeJSON(ctx, w, http.StatusOK, SortResponse{Sort: opt, Options: notes.SortOptions})
}
