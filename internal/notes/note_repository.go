package notes

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"notekeeper/internal/clock"
	"notekeeper/internal/storage"
)

// NoteRepository owns the in-memory note collection. Mutations take a Tx and
// are only published when the owning UnitOfWork commits; reads without a Tx
// see committed state. Callers serialize access through the UnitOfWork.
type NoteRepository struct {
	notes    map[string]Note
	sections *SectionRepository
	index    *SearchIndex
	clock    clock.Clock
	newID    func() string
}

func newNoteRepository(clk clock.Clock, index *SearchIndex, newID func() string) *NoteRepository {
	return &NoteRepository{
		notes: make(map[string]Note),
		index: index,
		clock: clk,
		newID: newID,
	}
}

func (r *NoteRepository) load(records []storage.NoteRecord) {
	for _, rec := range records {
		r.notes[rec.ID] = noteFromRecord(rec)
	}
}

func (r *NoteRepository) lookup(tx *Tx, id string) (Note, bool) {
	if s := tx.noteStage(); s != nil {
		n, ok, gone := s.lookup(id)
		if ok {
			return n, true
		}
		if gone {
			return Note{}, false
		}
	}
	n, ok := r.notes[id]
	return n, ok
}

func (r *NoteRepository) stage(tx *Tx, n Note) {
	tx.notes.set(n.ID, n)
	tx.enlist(r)
}

func (r *NoteRepository) collect(tx *Tx, keep func(Note) bool) []Note {
	var out []Note
	each(r.notes, tx.noteStage(), func(n Note) {
		if keep(n) {
			out = append(out, n)
		}
	})
	sortNotesByCreation(out)
	return out
}

// Create stages a new empty note in sectionID, which must be active.
func (r *NoteRepository) Create(tx *Tx, sectionID string) (Note, error) {
	if _, ok := r.sections.Active(tx, sectionID); !ok {
		return Note{}, invalidSection(sectionID)
	}

	now := r.clock.Now()
	n := Note{
		ID:        r.newID(),
		SectionID: sectionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.stage(tx, n)
	return n, nil
}

// Get returns a note in any state, trashed included.
func (r *NoteRepository) Get(tx *Tx, id string) (Note, error) {
	n, ok := r.lookup(tx, id)
	if !ok {
		return Note{}, noteNotFound(id)
	}
	return n, nil
}

// Edit replaces title and content of an active note and advances UpdatedAt,
// even when neither value changed.
func (r *NoteRepository) Edit(tx *Tx, id, title, content string) (Note, error) {
	n, ok := r.lookup(tx, id)
	if !ok || n.IsDeleted() {
		return Note{}, noteNotFound(id)
	}

	n.Title = title
	n.Content = content
	n.UpdatedAt = r.clock.Now()
	r.stage(tx, n)
	return n, nil
}

// ListActive returns the active notes of one section, oldest first.
func (r *NoteRepository) ListActive(tx *Tx, sectionID string) []Note {
	return r.collect(tx, func(n Note) bool {
		return !n.IsDeleted() && n.SectionID == sectionID
	})
}

// ListAllActive returns every active note, oldest first.
func (r *NoteRepository) ListAllActive(tx *Tx) []Note {
	return r.collect(tx, func(n Note) bool {
		return !n.IsDeleted()
	})
}

// ListDeleted returns every trashed note, oldest first.
func (r *NoteRepository) ListDeleted(tx *Tx) []Note {
	return r.collect(tx, Note.IsDeleted)
}

// SoftDelete moves a note to the trash. Deleting a trashed note is a no-op.
func (r *NoteRepository) SoftDelete(tx *Tx, id string) error {
	n, ok := r.lookup(tx, id)
	if !ok {
		return noteNotFound(id)
	}
	if n.IsDeleted() {
		return nil
	}

	n.DeletedAt = timePtr(r.clock.Now())
	r.stage(tx, n)
	return nil
}

// softDeleteInSection trashes every active note of a section, keeping their
// SectionID, and returns how many were trashed.
func (r *NoteRepository) softDeleteInSection(tx *Tx, sectionID string) int {
	now := r.clock.Now()
	active := r.ListActive(tx, sectionID)
	for _, n := range active {
		n.DeletedAt = timePtr(now)
		r.stage(tx, n)
	}
	return len(active)
}

// Restore takes a note out of the trash into target, which must be active.
// Restoring an active note just moves it.
func (r *NoteRepository) Restore(tx *Tx, id, target string) (Note, error) {
	n, ok := r.lookup(tx, id)
	if !ok {
		return Note{}, noteNotFound(id)
	}
	if _, ok := r.sections.Active(tx, target); !ok {
		return Note{}, invalidSection(target)
	}

	n.DeletedAt = nil
	n.SectionID = target
	n.UpdatedAt = r.clock.Now()
	r.stage(tx, n)
	return n, nil
}

// MoveToSection reassigns an active note to target, which must be active.
func (r *NoteRepository) MoveToSection(tx *Tx, id, target string) (Note, error) {
	n, ok := r.lookup(tx, id)
	if !ok || n.IsDeleted() {
		return Note{}, noteNotFound(id)
	}
	if _, ok := r.sections.Active(tx, target); !ok {
		return Note{}, invalidSection(target)
	}

	n.SectionID = target
	n.UpdatedAt = r.clock.Now()
	r.stage(tx, n)
	return n, nil
}

// Purge removes notes permanently and returns how many existed.
// Unknown ids are ignored.
func (r *NoteRepository) Purge(tx *Tx, ids []string) int {
	purged := 0
	for _, id := range ids {
		if _, ok := r.lookup(tx, id); !ok {
			continue
		}
		tx.notes.purge(id)
		purged++
	}
	if purged > 0 {
		tx.enlist(r)
	}
	return purged
}

// CountActive returns the number of committed active notes.
func (r *NoteRepository) CountActive() int {
	count := 0
	for _, n := range r.notes {
		if !n.IsDeleted() {
			count++
		}
	}
	return count
}

func (r *NoteRepository) commit(tx *Tx) {
	var upserts []Note
	for id, n := range tx.notes.put {
		r.notes[id] = n
		upserts = append(upserts, n)
	}

	var removals []string
	for id := range tx.notes.purged {
		delete(r.notes, id)
		removals = append(removals, id)
	}

	r.index.apply(upserts, removals)
}

func sortNotesByCreation(notes []Note) {
	slices.SortFunc(notes, func(a, b Note) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

func newUUID() string {
	return uuid.NewString()
}
