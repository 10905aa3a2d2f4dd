package notes

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_local_storage.go -package=mocks notekeeper/internal/notes LocalStorage

import (
	"context"
	"maps"
	"slices"
	"sync"

	"notekeeper/internal/storage"
)

// LocalStorage is the durable store behind the repositories.
// This interface is defined from the core's perspective (consumer-first).
type LocalStorage interface {
	// Load returns the complete persisted state.
	Load(ctx context.Context) (storage.Snapshot, error)
	// Apply writes a changeset atomically.
	Apply(ctx context.Context, cs storage.Changeset) error
}

// staged holds the pending writes of one collection inside a Tx.
type staged[T any] struct {
	put    map[string]T
	purged map[string]struct{}
}

func newStaged[T any]() staged[T] {
	return staged[T]{
		put:    make(map[string]T),
		purged: make(map[string]struct{}),
	}
}

func (s *staged[T]) set(id string, v T) {
	s.put[id] = v
	delete(s.purged, id)
}

func (s *staged[T]) purge(id string) {
	delete(s.put, id)
	s.purged[id] = struct{}{}
}

// lookup reports a staged value (ok) or a staged purge (gone).
func (s *staged[T]) lookup(id string) (v T, ok bool, gone bool) {
	if v, ok := s.put[id]; ok {
		return v, true, false
	}
	_, gone = s.purged[id]
	return v, false, gone
}

// each calls fn for every record visible through the overlay: committed
// records with staged replacements applied, minus staged purges, plus
// records that only exist in the overlay. A nil overlay visits committed only.
func each[T any](committed map[string]T, s *staged[T], fn func(T)) {
	for id, v := range committed {
		if s != nil {
			sv, ok, gone := s.lookup(id)
			if gone {
				continue
			}
			if ok {
				v = sv
			}
		}
		fn(v)
	}
	if s == nil {
		return
	}
	for id, v := range s.put {
		if _, ok := committed[id]; !ok {
			fn(v)
		}
	}
}

type committer interface {
	commit(tx *Tx)
}

// Tx stages mutations across the repositories, the sort preference and the
// search index. Nothing staged is visible outside the Tx until the owning
// UnitOfWork has persisted it.
type Tx struct {
	ctx        context.Context
	op         string
	notes      staged[Note]
	sections   staged[Section]
	prefs      map[string]string
	committers []committer
	hooks      []func()
}

func newTx(ctx context.Context, op string) *Tx {
	return &Tx{
		ctx:      ctx,
		op:       op,
		notes:    newStaged[Note](),
		sections: newStaged[Section](),
		prefs:    make(map[string]string),
	}
}

// Context returns the context the Tx was started with.
func (tx *Tx) Context() context.Context {
	return tx.ctx
}

// Op returns the operation name used in errors and logs.
func (tx *Tx) Op() string {
	return tx.op
}

// OnCommit registers fn to run after the Tx has been persisted.
// Hooks do not run when the Tx fails.
func (tx *Tx) OnCommit(fn func()) {
	tx.hooks = append(tx.hooks, fn)
}

func (tx *Tx) enlist(c committer) {
	if !slices.Contains(tx.committers, c) {
		tx.committers = append(tx.committers, c)
	}
}

func (tx *Tx) noteStage() *staged[Note] {
	if tx == nil {
		return nil
	}
	return &tx.notes
}

func (tx *Tx) sectionStage() *staged[Section] {
	if tx == nil {
		return nil
	}
	return &tx.sections
}

// changeset converts the staged writes into storage records, ordered by id.
func (tx *Tx) changeset() storage.Changeset {
	var cs storage.Changeset

	for _, id := range slices.Sorted(maps.Keys(tx.sections.put)) {
		cs.PutSections = append(cs.PutSections, sectionToRecord(tx.sections.put[id]))
	}
	cs.DeleteSections = slices.Sorted(maps.Keys(tx.sections.purged))

	for _, id := range slices.Sorted(maps.Keys(tx.notes.put)) {
		cs.PutNotes = append(cs.PutNotes, noteToRecord(tx.notes.put[id]))
	}
	cs.DeleteNotes = slices.Sorted(maps.Keys(tx.notes.purged))

	if len(tx.prefs) > 0 {
		cs.PutPreferences = maps.Clone(tx.prefs)
	}
	return cs
}

// UnitOfWork is the single exclusion scope around the repositories, the
// search index and the sort preference. Do serializes writers; View lets
// readers observe only fully committed state.
type UnitOfWork struct {
	mu      sync.RWMutex
	storage LocalStorage
}

// NewUnitOfWork creates a UnitOfWork persisting through storage.
func NewUnitOfWork(storage LocalStorage) *UnitOfWork {
	return &UnitOfWork{storage: storage}
}

// Do runs fn against a fresh Tx under the write lock. When fn succeeds the
// staged changes are applied to storage in one call and then published to
// memory; when fn or storage fails, the Tx is discarded and state is unchanged.
func (u *UnitOfWork) Do(ctx context.Context, op string, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	tx := newTx(ctx, op)
	if err := fn(tx); err != nil {
		return err
	}

	cs := tx.changeset()
	if !cs.Empty() {
		if err := u.storage.Apply(tx.Context(), cs); err != nil {
			return &PersistenceError{Op: tx.Op(), Err: err}
		}
	}

	for _, c := range tx.committers {
		c.commit(tx)
	}
	for _, hook := range tx.hooks {
		hook()
	}
	return nil
}

// View runs fn under the read lock.
func (u *UnitOfWork) View(fn func()) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	fn()
}
