package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_notes_service.go -package=mocks -mock_names=NotesService=MockNotesService notekeeper/internal/service NotesService

import (
	"context"
	"slices"
	"strings"
	"time"

	"notekeeper/internal/contextutil"
	"notekeeper/internal/notes"
)

// TrashedNote is a note in the trash together with the instant it will be purged.
type TrashedNote struct {
	notes.Note
	ExpiresAt time.Time
}

// TrashedSection is a section in the trash together with the instant it will be purged.
type TrashedSection struct {
	notes.Section
	ExpiresAt time.Time
}

// NotesService is the single API surface over notes, sections, the trash,
// search and the sort preference. It also tracks the active section.
type NotesService interface {
	// NewNote creates an empty note in the active section, creating and
	// activating a "General" section when none is active.
	NewNote(ctx context.Context) (notes.Note, error)
	// OpenNote returns a note in any state.
	OpenNote(ctx context.Context, id string) (notes.Note, error)
	// EditNote replaces the title and content of an active note.
	EditNote(ctx context.Context, id, title, content string) (notes.Note, error)
	// DeleteNote moves a note to the trash.
	DeleteNote(ctx context.Context, id string) error
	// MoveNoteToSection reassigns an active note.
	MoveNoteToSection(ctx context.Context, id, sectionID string) (notes.Note, error)
	// RestoreNoteToSection takes a note out of the trash into sectionID.
	RestoreNoteToSection(ctx context.Context, id, sectionID string) (notes.Note, error)
	// EmptyTrash permanently removes the listed trashed notes.
	EmptyTrash(ctx context.Context, ids []string) (int, error)
	// GetListOfNotes lists the active notes of the active section, or of all
	// sections when none is active, in the preferred order.
	GetListOfNotes(ctx context.Context) ([]notes.Note, error)
	// GetDeletedNotes sweeps expired items and lists the trashed notes.
	GetDeletedNotes(ctx context.Context) ([]TrashedNote, error)
	// Search finds active notes across all sections, in the preferred order.
	Search(ctx context.Context, query string) ([]notes.Note, error)

	// ListSections lists the active sections.
	ListSections(ctx context.Context) ([]notes.Section, error)
	// ListDeletedSections sweeps expired items and lists the trashed sections.
	ListDeletedSections(ctx context.Context) ([]TrashedSection, error)
	// CreateSection creates a section and activates it when none is active.
	CreateSection(ctx context.Context, name string) (notes.Section, error)
	// RenameSection renames an active section.
	RenameSection(ctx context.Context, id, name string) (notes.Section, error)
	// DeleteSection trashes a section with its notes and returns how many notes were trashed.
	DeleteSection(ctx context.Context, id string) (int, error)
	// RestoreSection takes a section out of the trash; its notes stay trashed.
	RestoreSection(ctx context.Context, id string) (notes.Section, error)
	// PurgeSection permanently removes a trashed section.
	PurgeSection(ctx context.Context, id string) error
	// GetNotesForSection lists the active notes of one section in the preferred order.
	GetNotesForSection(ctx context.Context, id string) ([]notes.Note, error)

	// SetActiveSection selects the active section; an empty id clears it.
	SetActiveSection(ctx context.Context, id string) error
	// GetActiveSection returns the active section, or nil when none is set.
	GetActiveSection(ctx context.Context) (*notes.Section, error)

	// GetSortOption returns the persisted sort option.
	GetSortOption(ctx context.Context) notes.SortOption
	// SetSortOption parses and persists a sort option.
	SetSortOption(ctx context.Context, option string) (notes.SortOption, error)

	// Sweep purges trashed items past their retention.
	Sweep(ctx context.Context) (notes.SweepResult, error)
}

// notesService implements NotesService.
type notesService struct {
	core *notes.Core
	// activeSectionID is only written by commit hooks, under the core's write lock.
	activeSectionID string
}

// NewNotesService creates a new NotesService over core.
func NewNotesService(core *notes.Core) NotesService {
	return &notesService{core: core}
}

func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: field, Message: "cannot be empty"}
	}
	return nil
}

// activeSection returns the active section if it is still active.
func (s *notesService) activeSection(tx *notes.Tx) (notes.Section, bool) {
	if s.activeSectionID == "" {
		return notes.Section{}, false
	}
	return s.core.Sections.Active(tx, s.activeSectionID)
}

func (s *notesService) NewNote(ctx context.Context) (notes.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var n notes.Note
	err := s.core.Do(ctx, "new note", func(tx *notes.Tx) error {
		sec, ok := s.activeSection(tx)
		if !ok {
			sec, ok = s.core.Sections.ActiveByName(tx, notes.DefaultSectionName)
			if !ok {
				sec = s.core.Sections.Create(tx, notes.DefaultSectionName)
				logger.InfoContext(ctx, "creating default section", "section_id", sec.ID)
			}
			tx.OnCommit(func() { s.activeSectionID = sec.ID })
		}

		var err error
		n, err = s.core.Notes.Create(tx, sec.ID)
		return err
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create note", "error", err)
		return notes.Note{}, WrapError(err, "failed to create note")
	}

	logger.InfoContext(ctx, "note created", "note_id", n.ID, "section_id", n.SectionID)
	return n, nil
}

func (s *notesService) OpenNote(ctx context.Context, id string) (notes.Note, error) {
	if err := requireID("id", id); err != nil {
		return notes.Note{}, err
	}

	var (
		n   notes.Note
		err error
	)
	s.core.View(func() {
		n, err = s.core.Notes.Get(nil, id)
	})
	if err != nil {
		return notes.Note{}, WrapError(err, "failed to open note")
	}
	return n, nil
}

func (s *notesService) EditNote(ctx context.Context, id, title, content string) (notes.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireID("id", id); err != nil {
		return notes.Note{}, err
	}

	var n notes.Note
	err := s.core.Do(ctx, "edit note", func(tx *notes.Tx) error {
		var err error
		n, err = s.core.Notes.Edit(tx, id, title, content)
		return err
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to edit note", "note_id", id, "error", err)
		return notes.Note{}, WrapError(err, "failed to edit note")
	}

	logger.InfoContext(ctx, "note edited", "note_id", id, "title_length", len(title), "content_length", len(content))
	return n, nil
}

func (s *notesService) DeleteNote(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireID("id", id); err != nil {
		return err
	}

	err := s.core.Do(ctx, "delete note", func(tx *notes.Tx) error {
		return s.core.Notes.SoftDelete(tx, id)
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to delete note", "note_id", id, "error", err)
		return WrapError(err, "failed to delete note")
	}

	logger.InfoContext(ctx, "note moved to trash", "note_id", id)
	return nil
}

func (s *notesService) MoveNoteToSection(ctx context.Context, id, sectionID string) (notes.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireID("id", id); err != nil {
		return notes.Note{}, err
	}
	if err := requireID("section_id", sectionID); err != nil {
		return notes.Note{}, err
	}

	var n notes.Note
	err := s.core.Do(ctx, "move note", func(tx *notes.Tx) error {
		var err error
		n, err = s.core.Notes.MoveToSection(tx, id, sectionID)
		return err
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to move note", "note_id", id, "section_id", sectionID, "error", err)
		return notes.Note{}, WrapError(err, "failed to move note")
	}

	logger.InfoContext(ctx, "note moved", "note_id", id, "section_id", sectionID)
	return n, nil
}

func (s *notesService) RestoreNoteToSection(ctx context.Context, id, sectionID string) (notes.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireID("id", id); err != nil {
		return notes.Note{}, err
	}
	if err := requireID("section_id", sectionID); err != nil {
		return notes.Note{}, err
	}

	var n notes.Note
	err := s.core.Do(ctx, "restore note", func(tx *notes.Tx) error {
		var err error
		n, err = s.core.Notes.Restore(tx, id, sectionID)
		return err
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to restore note", "note_id", id, "section_id", sectionID, "error", err)
		return notes.Note{}, WrapError(err, "failed to restore note")
	}

	logger.InfoContext(ctx, "note restored", "note_id", id, "section_id", sectionID)
	return n, nil
}

func (s *notesService) EmptyTrash(ctx context.Context, ids []string) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)
	for _, id := range ids {
		if err := requireID("ids", id); err != nil {
			return 0, err
		}
	}

	var purged int
	err := s.core.Do(ctx, "empty trash", func(tx *notes.Tx) error {
		purged = s.core.Trash.EmptyTrash(tx, ids)
		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to empty trash", "error", err)
		return 0, WrapError(err, "failed to empty trash")
	}

	logger.InfoContext(ctx, "trash emptied", "requested", len(ids), "purged", purged)
	return purged, nil
}

func (s *notesService) GetListOfNotes(ctx context.Context) ([]notes.Note, error) {
	var list []notes.Note
	s.core.View(func() {
		if sec, ok := s.activeSection(nil); ok {
			list = s.core.Notes.ListActive(nil, sec.ID)
		} else {
			list = s.core.Notes.ListAllActive(nil)
		}
		list = notes.SortNotes(list, s.core.Sort.Get())
	})
	return list, nil
}

func (s *notesService) GetDeletedNotes(ctx context.Context) ([]TrashedNote, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}

	var out []TrashedNote
	s.core.View(func() {
		for _, n := range s.core.Trash.DeletedNotes(nil) {
			out = append(out, TrashedNote{Note: n, ExpiresAt: s.core.Trash.ExpiresAt(*n.DeletedAt)})
		}
	})
	slices.SortStableFunc(out, func(a, b TrashedNote) int {
		return b.DeletedAt.Compare(*a.DeletedAt)
	})
	return out, nil
}

func (s *notesService) Search(ctx context.Context, query string) ([]notes.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.ensureIndex(ctx); err != nil {
		return nil, err
	}

	var results []notes.Note
	s.core.View(func() {
		results = notes.SortNotes(s.core.Index.Search(query), s.core.Sort.Get())
	})

	logger.DebugContext(ctx, "search completed", "query_length", len(query), "results", len(results))
	return results, nil
}

// ensureIndex rebuilds the search index when it no longer matches the
// active note set.
func (s *notesService) ensureIndex(ctx context.Context) error {
	var indexed, active int
	s.core.View(func() {
		indexed = s.core.Index.Len()
		active = s.core.Notes.CountActive()
	})
	if indexed == active {
		return nil
	}

	contextutil.LoggerFromContext(ctx).WarnContext(ctx, "search index out of date, rebuilding",
		"indexed", indexed, "active", active)
	err := s.core.Do(ctx, "rebuild index", func(tx *notes.Tx) error {
		tx.OnCommit(func() {
			s.core.Index.Rebuild(s.core.Notes.ListAllActive(nil))
		})
		return nil
	})
	return WrapError(err, "failed to rebuild search index")
}

func (s *notesService) ListSections(ctx context.Context) ([]notes.Section, error) {
	var list []notes.Section
	s.core.View(func() {
		list = s.core.Sections.ListActive(nil)
	})
	return list, nil
}

func (s *notesService) ListDeletedSections(ctx context.Context) ([]TrashedSection, error) {
	if _, err := s.Sweep(ctx); err != nil {
		return nil, err
	}

	var out []TrashedSection
	s.core.View(func() {
		for _, sec := range s.core.Trash.DeletedSections(nil) {
			out = append(out, TrashedSection{Section: sec, ExpiresAt: s.core.Trash.ExpiresAt(*sec.DeletedAt)})
		}
	})
	slices.SortStableFunc(out, func(a, b TrashedSection) int {
		return b.DeletedAt.Compare(*a.DeletedAt)
	})
	return out, nil
}

func (s *notesService) CreateSection(ctx context.Context, name string) (notes.Section, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var sec notes.Section
	err := s.core.Do(ctx, "create section", func(tx *notes.Tx) error {
		sec = s.core.Sections.Create(tx, name)
		if _, ok := s.activeSection(tx); !ok {
			tx.OnCommit(func() { s.activeSectionID = sec.ID })
		}
		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create section", "error", err)
		return notes.Section{}, WrapError(err, "failed to create section")
	}

	logger.InfoContext(ctx, "section created", "section_id", sec.ID, "name", sec.Name)
	return sec, nil
}

func (s *notesService) RenameSection(ctx context.Context, id, name string) (notes.Section, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireID("id", id); err != nil {
		return notes.Section{}, err
	}

	var sec notes.Section
	err := s.core.Do(ctx, "rename section", func(tx *notes.Tx) error {
		var err error
		sec, err = s.core.Sections.Rename(tx, id, name)
		return err
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to rename section", "section_id", id, "error", err)
		return notes.Section{}, WrapError(err, "failed to rename section")
	}

	logger.InfoContext(ctx, "section renamed", "section_id", id, "name", sec.Name)
	return sec, nil
}

func (s *notesService) DeleteSection(ctx context.Context, id string) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireID("id", id); err != nil {
		return 0, err
	}

	var cascaded int
	err := s.core.Do(ctx, "delete section", func(tx *notes.Tx) error {
		var err error
		cascaded, err = s.core.Sections.SoftDelete(tx, id)
		if err != nil {
			return err
		}
		tx.OnCommit(func() {
			if s.activeSectionID == id {
				s.activeSectionID = ""
			}
		})
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to delete section", "section_id", id, "error", err)
		return 0, WrapError(err, "failed to delete section")
	}

	logger.InfoContext(ctx, "section moved to trash", "section_id", id, "notes_trashed", cascaded)
	return cascaded, nil
}

func (s *notesService) RestoreSection(ctx context.Context, id string) (notes.Section, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireID("id", id); err != nil {
		return notes.Section{}, err
	}

	var sec notes.Section
	err := s.core.Do(ctx, "restore section", func(tx *notes.Tx) error {
		var err error
		sec, err = s.core.Sections.Restore(tx, id)
		if err != nil {
			return err
		}
		if _, ok := s.activeSection(tx); !ok {
			tx.OnCommit(func() { s.activeSectionID = sec.ID })
		}
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to restore section", "section_id", id, "error", err)
		return notes.Section{}, WrapError(err, "failed to restore section")
	}

	logger.InfoContext(ctx, "section restored", "section_id", id)
	return sec, nil
}

func (s *notesService) PurgeSection(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireID("id", id); err != nil {
		return err
	}

	err := s.core.Do(ctx, "purge section", func(tx *notes.Tx) error {
		sec, err := s.core.Sections.Get(tx, id)
		if err != nil {
			return err
		}
		if !sec.IsDeleted() {
			return &ValidationError{Field: "id", Message: "section is not in the trash"}
		}
		s.core.Sections.Purge(tx, []string{id})
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to purge section", "section_id", id, "error", err)
		return WrapError(err, "failed to purge section")
	}

	logger.InfoContext(ctx, "section purged", "section_id", id)
	return nil
}

func (s *notesService) GetNotesForSection(ctx context.Context, id string) ([]notes.Note, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	var (
		list []notes.Note
		err  error
	)
	s.core.View(func() {
		if _, err = s.core.Sections.Get(nil, id); err != nil {
			return
		}
		list = notes.SortNotes(s.core.Notes.ListActive(nil, id), s.core.Sort.Get())
	})
	if err != nil {
		return nil, WrapError(err, "failed to list section notes")
	}
	return list, nil
}

func (s *notesService) SetActiveSection(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	err := s.core.Do(ctx, "set active section", func(tx *notes.Tx) error {
		if id != "" {
			if _, ok := s.core.Sections.Active(tx, id); !ok {
				return WrapError(notes.ErrInvalidSection, "section "+id)
			}
		}
		tx.OnCommit(func() { s.activeSectionID = id })
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to set active section", "section_id", id, "error", err)
		return WrapError(err, "failed to set active section")
	}

	logger.InfoContext(ctx, "active section changed", "section_id", id)
	return nil
}

func (s *notesService) GetActiveSection(ctx context.Context) (*notes.Section, error) {
	var active *notes.Section
	s.core.View(func() {
		if sec, ok := s.activeSection(nil); ok {
			active = &sec
		}
	})
	return active, nil
}

func (s *notesService) GetSortOption(ctx context.Context) notes.SortOption {
	var option notes.SortOption
	s.core.View(func() {
		option = s.core.Sort.Get()
	})
	return option
}

func (s *notesService) SetSortOption(ctx context.Context, option string) (notes.SortOption, error) {
	logger := contextutil.LoggerFromContext(ctx)

	parsed, err := notes.ParseSortOption(option)
	if err != nil {
		return "", &ValidationError{Field: "sort", Message: err.Error()}
	}

	err = s.core.Do(ctx, "set sort option", func(tx *notes.Tx) error {
		return s.core.Sort.Set(tx, parsed)
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to save sort option", "error", err)
		return "", WrapError(err, "failed to save sort option")
	}

	logger.InfoContext(ctx, "sort option changed", "sort", parsed)
	return parsed, nil
}

func (s *notesService) Sweep(ctx context.Context) (notes.SweepResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var res notes.SweepResult
	err := s.core.Do(ctx, "sweep trash", func(tx *notes.Tx) error {
		res = s.core.Trash.Sweep(tx)
		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to sweep trash", "error", err)
		return notes.SweepResult{}, WrapError(err, "failed to sweep trash")
	}

	if res.NotesPurged > 0 || res.SectionsPurged > 0 {
		logger.InfoContext(ctx, "expired trash purged",
			"notes_purged", res.NotesPurged, "sections_purged", res.SectionsPurged)
	}
	return res, nil
}
