package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"notekeeper/internal/service"
)

// NotesHandler handles HTTP requests for notes.
type NotesHandler struct {
	notesService service.NotesService
	validate     *validator.Validate
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(notesService service.NotesService) *NotesHandler {
	return &NotesHandler{
		notesService: notesService,
		validate:     newValidator(),
	}
}

// List returns the active section's notes in the preferred order.
//
// GET /api/notes
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.notesService.GetListOfNotes(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list notes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponses(list))
}

// Create makes a new empty note in the active section.
//
// POST /api/notes
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	n, err := h.notesService.NewNote(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create note")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toNoteResponse(n))
}

// Search finds notes across all sections.
//
// GET /api/notes/search?q=
func (h *NotesHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results, err := h.notesService.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search notes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponses(results))
}

// Get returns one note, trashed or not.
//
// GET /api/notes/{id}
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	n, err := h.notesService.OpenNote(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to open note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponse(n))
}

// Update replaces a note's title and content.
//
// PUT /api/notes/{id}
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EditNoteRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	n, err := h.notesService.EditNote(ctx, chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to edit note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponse(n))
}

// Delete moves a note to the trash.
//
// DELETE /api/notes/{id}
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.notesService.DeleteNote(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Move reassigns an active note to another section.
//
// POST /api/notes/{id}/move
func (h *NotesHandler) Move(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SectionRefRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	n, err := h.notesService.MoveNoteToSection(ctx, chi.URLParam(r, "id"), req.SectionID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to move note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponse(n))
}

// Restore takes a note out of the trash into a section.
//
// POST /api/notes/{id}/restore
func (h *NotesHandler) Restore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SectionRefRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	n, err := h.notesService.RestoreNoteToSection(ctx, chi.URLParam(r, "id"), req.SectionID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to restore note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponse(n))
}
