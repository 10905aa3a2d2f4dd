package handlers

import (
	"time"

	"notekeeper/internal/notes"
	"notekeeper/internal/service"
)

// NoteResponse represents a note in HTTP responses.
type NoteResponse struct {
	ID        string     `json:"id"`
	SectionID string     `json:"section_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Preview   string     `json:"preview"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SectionResponse represents a section in HTTP responses.
type SectionResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// EditNoteRequest replaces a note's title and content. Both may be empty.
type EditNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SectionRefRequest names a target section.
type SectionRefRequest struct {
	SectionID string `json:"section_id" validate:"required,max=128"`
}

// SetActiveSectionRequest selects the active section; an empty id clears it.
type SetActiveSectionRequest struct {
	SectionID string `json:"section_id" validate:"max=128"`
}

// SectionNameRequest carries a section name. Blank names become "General".
type SectionNameRequest struct {
	Name string `json:"name" validate:"max=200"`
}

// EmptyTrashRequest lists trashed notes to purge. An empty list is a no-op.
type EmptyTrashRequest struct {
	IDs []string `json:"ids" validate:"dive,required,max=128"`
}

// SortRequest carries a sort option.
type SortRequest struct {
	Sort string `json:"sort" validate:"required,max=32"`
}

// SortResponse reports the current sort option and the valid choices.
type SortResponse struct {
	Sort    notes.SortOption   `json:"sort"`
	Options []notes.SortOption `json:"options"`
}

// CountResponse reports how many items an operation affected.
type CountResponse struct {
	Count int `json:"count"`
}

// ActiveSectionResponse wraps the active section, null when none is set.
type ActiveSectionResponse struct {
	Section *SectionResponse `json:"section"`
}

func toNoteResponse(n notes.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		SectionID: n.SectionID,
		Title:     n.Title,
		Content:   n.Content,
		Preview:   notes.Preview(n.Content, notes.DefaultPreviewLength),
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		DeletedAt: n.DeletedAt,
	}
}

func toNoteResponses(list []notes.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNoteResponse(n))
	}
	return out
}

func toTrashedNoteResponses(list []service.TrashedNote) []NoteResponse {
	out := make([]NoteResponse, 0, len(list))
	for _, tn := range list {
		resp := toNoteResponse(tn.Note)
		expires := tn.ExpiresAt
		resp.ExpiresAt = &expires
		out = append(out, resp)
	}
	return out
}

func toSectionResponse(s notes.Section) SectionResponse {
	return SectionResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		DeletedAt: s.DeletedAt,
	}
}

func toSectionResponses(list []notes.Section) []SectionResponse {
	out := make([]SectionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSectionResponse(s))
	}
	return out
}

func toTrashedSectionResponses(list []service.TrashedSection) []SectionResponse {
	out := make([]SectionResponse, 0, len(list))
	for _, ts := range list {
		resp := toSectionResponse(ts.Section)
		expires := ts.ExpiresAt
		resp.ExpiresAt = &expires
		out = append(out, resp)
	}
	return out
}
