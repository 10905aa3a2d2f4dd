package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"notekeeper/internal/service"
)

// SectionsHandler handles HTTP requests for sections.
type SectionsHandler struct {
	notesService service.NotesService
	validate     *validator.Validate
}

// NewSectionsHandler creates a new SectionsHandler.
func NewSectionsHandler(notesService service.NotesService) *SectionsHandler {
	return &SectionsHandler{
		notesService: notesService,
		validate:     newValidator(),
	}
}

// List returns the active sections.
//
// GET /api/sections
func (h *SectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.notesService.ListSections(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list sections")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toSectionResponses(list))
}

// Create makes a new section.
//
// POST /api/sections
func (h *SectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SectionNameRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	s, err := h.notesService.CreateSection(ctx, req.Name)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create section")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toSectionResponse(s))
}

// GetActive returns the active section, or null.
//
// GET /api/sections/active
func (h *SectionsHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, err := h.notesService.GetActiveSection(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get active section")
		return
	}

	var resp ActiveSectionResponse
	if s != nil {
		sr := toSectionResponse(*s)
		resp.Section = &sr
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// SetActive selects the active section.
//
// PUT /api/sections/active
func (h *SectionsHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetActiveSectionRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	if err := h.notesService.SetActiveSection(ctx, req.SectionID); err != nil {
		handleServiceError(w, ctx, err, "Failed to set active section")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Notes lists the active notes of one section.
//
// GET /api/sections/{id}/notes
func (h *SectionsHandler) Notes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.notesService.GetNotesForSection(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list section notes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponses(list))
}

// Rename changes an active section's name.
//
// PUT /api/sections/{id}
func (h *SectionsHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SectionNameRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	s, err := h.notesService.RenameSection(ctx, chi.URLParam(r, "id"), req.Name)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to rename section")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toSectionResponse(s))
}

// Delete moves a section and its notes to the trash.
//
// DELETE /api/sections/{id}
func (h *SectionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	n, err := h.notesService.DeleteSection(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to delete section")
		return
	}
	writeJSON(ctx, w, http.StatusOK, CountResponse{Count: n})
}

// Restore takes a section out of the trash.
//
// POST /api/sections/{id}/restore
func (h *SectionsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, err := h.notesService.RestoreSection(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to restore section")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toSectionResponse(s))
}
