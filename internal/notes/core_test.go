package notes_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"notekeeper/internal/clock"
	"notekeeper/internal/notes"
	"notekeeper/internal/notes/mocks"
	"notekeeper/internal/storage"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	core  *notes.Core
	clock *clock.Fake
	store *storage.Store
	path  string
}

// sequentialIDs returns a generator producing id-001, id-002, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func newFixture(t *testing.T, opts ...notes.Option) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.db")
	store := openStore(t, path)
	clk := clock.NewFake(epoch)

	opts = append([]notes.Option{notes.WithIDGenerator(sequentialIDs())}, opts...)
	core, err := notes.Open(context.Background(), store, clk, notes.NewSearchIndex(time.Minute), opts...)
	require.NoError(t, err)

	return &fixture{core: core, clock: clk, store: store, path: path}
}

func openStore(t *testing.T, path string) *storage.Store {
	t.Helper()

	db, err := storage.New(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, storage.Migrate(db))
	return storage.NewStore(db)
}

func (f *fixture) do(t *testing.T, fn func(tx *notes.Tx) error) {
	t.Helper()
	require.NoError(t, f.core.Do(context.Background(), t.Name(), fn))
}

func (f *fixture) createSection(t *testing.T, name string) notes.Section {
	t.Helper()
	var sec notes.Section
	f.do(t, func(tx *notes.Tx) error {
		sec = f.core.Sections.Create(tx, name)
		return nil
	})
	return sec
}

func (f *fixture) createNote(t *testing.T, sectionID, title, content string) notes.Note {
	t.Helper()
	var n notes.Note
	f.do(t, func(tx *notes.Tx) error {
		created, err := f.core.Notes.Create(tx, sectionID)
		if err != nil {
			return err
		}
		n, err = f.core.Notes.Edit(tx, created.ID, title, content)
		return err
	})
	return n
}

func (f *fixture) deleteNote(t *testing.T, id string) {
	t.Helper()
	f.do(t, func(tx *notes.Tx) error {
		return f.core.Notes.SoftDelete(tx, id)
	})
}

func (f *fixture) sweep(t *testing.T) notes.SweepResult {
	t.Helper()
	var res notes.SweepResult
	f.do(t, func(tx *notes.Tx) error {
		res = f.core.Trash.Sweep(tx)
		return nil
	})
	return res
}

func ids(list []notes.Note) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		out = append(out, n.ID)
	}
	return out
}

func TestOpen_ReloadsPersistedState(t *testing.T) {
	f := newFixture(t)

	work := f.createSection(t, "Work")
	kept := f.createNote(t, work.ID, "Kept", "stays active")
	trashed := f.createNote(t, work.ID, "Trashed", "in the bin")
	f.deleteNote(t, trashed.ID)
	f.do(t, func(tx *notes.Tx) error {
		return f.core.Sort.Set(tx, notes.SortTitleAZ)
	})

	reopened, err := notes.Open(context.Background(), f.store, f.clock, notes.NewSearchIndex(0))
	require.NoError(t, err)

	assert.Equal(t, []string{kept.ID}, ids(reopened.Notes.ListActive(nil, work.ID)))
	assert.Equal(t, []string{trashed.ID}, ids(reopened.Notes.ListDeleted(nil)))
	assert.Equal(t, notes.SortTitleAZ, reopened.Sort.Get())
	assert.Equal(t, 1, reopened.Index.Len())

	got, err := reopened.Notes.Get(nil, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, "stays active", got.Content)
	assert.True(t, got.CreatedAt.Equal(kept.CreatedAt))
}

func TestOpen_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockLocalStorage(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(storage.Snapshot{}, errors.New("disk gone"))

	_, err := notes.Open(context.Background(), store, clock.NewFake(epoch), notes.NewSearchIndex(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, notes.ErrPersistence)

	var perr *notes.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "load", perr.Op)
}

func TestWithRetention(t *testing.T) {
	f := newFixture(t, notes.WithRetention(48*time.Hour))
	assert.Equal(t, 48*time.Hour, f.core.Trash.Retention())

	f = newFixture(t, notes.WithRetention(0))
	assert.Equal(t, notes.DefaultRetention, f.core.Trash.Retention())
}
