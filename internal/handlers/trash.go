package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"notekeeper/internal/service"
)

// TrashHandler handles HTTP requests for trashed notes and sections.
type TrashHandler struct {
	notesService service.NotesService
	validate     *validator.Validate
}

// NewTrashHandler creates a new TrashHandler.
func NewTrashHandler(notesService service.NotesService) *TrashHandler {
	return &TrashHandler{
		notesService: notesService,
		validate:     newValidator(),
	}
}

// Notes lists trashed notes, newest deletion first.
//
// GET /api/trash/notes
func (h *TrashHandler) Notes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.notesService.GetDeletedNotes(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list trashed notes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toTrashedNoteResponses(list))
}

// Sections lists trashed sections, newest deletion first.
//
// GET /api/trash/sections
func (h *TrashHandler) Sections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.notesService.ListDeletedSections(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list trashed sections")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toTrashedSectionResponses(list))
}

// Empty permanently removes the listed trashed notes.
//
// POST /api/trash/empty
func (h *TrashHandler) Empty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EmptyTrashRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	n, err := h.notesService.EmptyTrash(ctx, req.IDs)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to empty trash")
		return
	}
	writeJSON(ctx, w, http.StatusOK, CountResponse{Count: n})
}

// Sweep purges trashed items past their retention.
//
// POST /api/trash/sweep
func (h *TrashHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.notesService.Sweep(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to sweep trash")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// PurgeSection permanently removes a trashed section.
//
// DELETE /api/trash/sections/{id}
func (h *TrashHandler) PurgeSection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.notesService.PurgeSection(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to purge section")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
