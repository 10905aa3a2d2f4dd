package notes

import (
	"context"
	"time"

	"notekeeper/internal/clock"
)

// Core bundles the repositories, the trash policy, the sort preference and the
// search index behind one UnitOfWork. Mutations go through Do; reads through View.
type Core struct {
	*UnitOfWork

	Notes    *NoteRepository
	Sections *SectionRepository
	Trash    *Trash
	Sort     *SortPreference
	Index    *SearchIndex
}

type options struct {
	retention time.Duration
	newID     func() string
}

// Option configures Open.
type Option func(*options)

// WithRetention overrides DefaultRetention. Non-positive values are ignored.
func WithRetention(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.retention = d
		}
	}
}

// WithIDGenerator replaces the UUID generator for new notes and sections.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// Open loads the persisted state from store and returns a ready Core.
// The index is rebuilt from the loaded active notes.
func Open(ctx context.Context, store LocalStorage, clk clock.Clock, index *SearchIndex, opts ...Option) (*Core, error) {
	o := options{
		retention: DefaultRetention,
		newID:     newUUID,
	}
	for _, opt := range opts {
		opt(&o)
	}

	snap, err := store.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	notes := newNoteRepository(clk, index, o.newID)
	sections := newSectionRepository(clk, o.newID)
	notes.sections = sections
	sections.notes = notes

	notes.load(snap.Notes)
	sections.load(snap.Sections)

	pref := newSortPreference()
	pref.load(snap.Preferences)

	index.Rebuild(notes.ListAllActive(nil))

	return &Core{
		UnitOfWork: NewUnitOfWork(store),
		Notes:      notes,
		Sections:   sections,
		Trash:      newTrash(o.retention, clk, notes, sections),
		Sort:       pref,
		Index:      index,
	}, nil
}
