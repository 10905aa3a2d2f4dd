package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"notekeeper/internal/clock"
	"notekeeper/internal/notes"
	notes_mocks "notekeeper/internal/notes/mocks"
	"notekeeper/internal/service"
	"notekeeper/internal/storage"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var epoch = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

// newTestService returns a service over a fresh SQLite database.
func newTestService(t *testing.T) (service.NotesService, *notes.Core, *clock.Fake) {
	t.Helper()

	db, err := storage.New(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, storage.Migrate(db))

	clk := clock.NewFake(epoch)
	core, err := notes.Open(context.Background(), storage.NewStore(db), clk, notes.NewSearchIndex(time.Minute),
		notes.WithIDGenerator(sequentialIDs()))
	require.NoError(t, err)

	return service.NewNotesService(core), core, clk
}

func mustCreateSection(t *testing.T, svc service.NotesService, name string) notes.Section {
	t.Helper()
	sec, err := svc.CreateSection(context.Background(), name)
	require.NoError(t, err, "CreateSection(%q)", name)
	return sec
}

func mustNewNote(t *testing.T, svc service.NotesService, title, content string) notes.Note {
	t.Helper()
	ctx := context.Background()
	n, err := svc.NewNote(ctx)
	require.NoError(t, err)
	n, err = svc.EditNote(ctx, n.ID, title, content)
	require.NoError(t, err)
	return n
}

func TestNotesService_NewNoteCreatesDefaultSection(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	active, err := svc.GetActiveSection(ctx)
	require.NoError(t, err)
	require.Nil(t, active, "no section is active on first run")

	first, err := svc.NewNote(ctx)
	require.NoError(t, err)

	active, _ = svc.GetActiveSection(ctx)
	require.NotNil(t, active)
	require.Equal(t, notes.DefaultSectionName, active.Name)
	assert.Equal(t, active.ID, first.SectionID)

	// Clearing the active section reuses the existing General section.
	require.NoError(t, svc.SetActiveSection(ctx, ""))
	second, err := svc.NewNote(ctx)
	require.NoError(t, err)
	assert.Equal(t, active.ID, second.SectionID)

	sections, _ := svc.ListSections(ctx)
	assert.Len(t, sections, 1)
}

func TestNotesService_ActiveSectionFollowsLifecycle(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	work := mustCreateSection(t, svc, "Work")
	home := mustCreateSection(t, svc, "Home")

	active, _ := svc.GetActiveSection(ctx)
	require.NotNil(t, active)
	require.Equal(t, work.ID, active.ID, "first created section becomes active")

	require.NoError(t, svc.SetActiveSection(ctx, home.ID))
	assert.ErrorIs(t, svc.SetActiveSection(ctx, "missing"), service.ErrInvalidSection)
	active, _ = svc.GetActiveSection(ctx)
	require.NotNil(t, active)
	require.Equal(t, home.ID, active.ID, "failed SetActiveSection keeps the active section")

	_, err := svc.DeleteSection(ctx, home.ID)
	require.NoError(t, err)
	active, _ = svc.GetActiveSection(ctx)
	assert.Nil(t, active, "deleting the active section clears it")

	assert.ErrorIs(t, svc.SetActiveSection(ctx, home.ID), service.ErrInvalidSection)

	_, err = svc.RestoreSection(ctx, home.ID)
	require.NoError(t, err)
	active, _ = svc.GetActiveSection(ctx)
	require.NotNil(t, active, "restored section becomes active when none is")
	assert.Equal(t, home.ID, active.ID)
}

func TestNotesService_GetListOfNotesScopesAndSorts(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()

	a := mustCreateSection(t, svc, "A")
	older := mustNewNote(t, svc, "banana", "")
	clk.Advance(time.Minute)
	newer := mustNewNote(t, svc, "Apple", "")

	b := mustCreateSection(t, svc, "B")
	require.NoError(t, svc.SetActiveSection(ctx, b.ID))
	clk.Advance(time.Minute)
	inB := mustNewNote(t, svc, "cherry", "")

	list, _ := svc.GetListOfNotes(ctx)
	assert.Equal(t, []string{inB.ID}, noteIDs(list))

	require.NoError(t, svc.SetActiveSection(ctx, a.ID))
	list, _ = svc.GetListOfNotes(ctx)
	assert.Equal(t, []string{newer.ID, older.ID}, noteIDs(list), "last modified first")

	_, err := svc.SetSortOption(ctx, "title_az")
	require.NoError(t, err)
	require.NoError(t, svc.SetActiveSection(ctx, ""))
	list, _ = svc.GetListOfNotes(ctx)
	assert.Equal(t, []string{newer.ID, older.ID, inB.ID}, noteIDs(list), "all notes A-Z without an active section")
}

func TestNotesService_SortOption(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, notes.SortLastModified, svc.GetSortOption(ctx))

	_, err := svc.SetSortOption(ctx, "sideways")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sort", verr.Field)

	got, err := svc.SetSortOption(ctx, "CreatedDate")
	require.NoError(t, err)
	assert.Equal(t, notes.SortCreatedDate, got)
	assert.Equal(t, notes.SortCreatedDate, svc.GetSortOption(ctx))
}

func TestNotesService_TrashFlow(t *testing.T) {
	svc, _, clk := newTestService(t)
	ctx := context.Background()

	work := mustCreateSection(t, svc, "Work")
	n1 := mustNewNote(t, svc, "one", "alpha")
	n2 := mustNewNote(t, svc, "two", "beta")

	require.NoError(t, svc.DeleteNote(ctx, n1.ID))
	clk.Advance(time.Hour)
	require.NoError(t, svc.DeleteNote(ctx, n2.ID))

	trashed, err := svc.GetDeletedNotes(ctx)
	require.NoError(t, err)
	require.Len(t, trashed, 2)
	require.Equal(t, n2.ID, trashed[0].ID, "most recently deleted first")
	want := trashed[0].DeletedAt.Add(notes.DefaultRetention)
	assert.True(t, trashed[0].ExpiresAt.Equal(want), "ExpiresAt = %v, want %v", trashed[0].ExpiresAt, want)

	purged, err := svc.EmptyTrash(ctx, []string{n1.ID})
	require.NoError(t, err)
	require.Equal(t, 1, purged)
	_, err = svc.EmptyTrash(ctx, []string{""})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	purged, err = svc.EmptyTrash(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, purged, "an empty id list purges nothing")

	restored, err := svc.RestoreNoteToSection(ctx, n2.ID, work.ID)
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)

	// A trashed note expires on the next trash view after retention.
	require.NoError(t, svc.DeleteNote(ctx, n2.ID))
	clk.Advance(notes.DefaultRetention)
	trashed, err = svc.GetDeletedNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, trashed)
}

func TestNotesService_SectionTrash(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	a := mustCreateSection(t, svc, "A")
	b := mustCreateSection(t, svc, "B")
	n := mustNewNote(t, svc, "N", "")

	cascaded, err := svc.DeleteSection(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, 1, cascaded)

	_, err = svc.MoveNoteToSection(ctx, n.ID, b.ID)
	assert.ErrorIs(t, err, service.ErrNotFound, "trashed note cannot move")
	_, err = svc.RestoreNoteToSection(ctx, n.ID, a.ID)
	assert.ErrorIs(t, err, service.ErrInvalidSection, "restore into a trashed section")

	assert.ErrorIs(t, svc.PurgeSection(ctx, b.ID), service.ErrInvalidInput, "active section cannot be purged")

	sections, err := svc.ListDeletedSections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Equal(t, a.ID, sections[0].ID)

	require.NoError(t, svc.PurgeSection(ctx, a.ID))
	assert.ErrorIs(t, svc.PurgeSection(ctx, a.ID), service.ErrNotFound)

	// The orphaned note stays in the trash and can be restored elsewhere.
	moved, err := svc.RestoreNoteToSection(ctx, n.ID, b.ID)
	require.NoError(t, err)
	require.Equal(t, b.ID, moved.SectionID)

	list, err := svc.GetNotesForSection(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	_, err = svc.GetNotesForSection(ctx, a.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestNotesService_Search(t *testing.T) {
	svc, core, _ := newTestService(t)
	ctx := context.Background()

	mustCreateSection(t, svc, "A")
	hit := mustNewNote(t, svc, "Recipe", "Add salt to taste")
	mustNewNote(t, svc, "Other", "nothing here")
	b := mustCreateSection(t, svc, "B")
	require.NoError(t, svc.SetActiveSection(ctx, b.ID))
	hitInB := mustNewNote(t, svc, "Salt flats", "")

	results, err := svc.Search(ctx, "SALT")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{hit.ID, hitInB.ID}, noteIDs(results), "notes from both sections")

	// Desynchronize the index; Search must notice and rebuild it.
	core.Index.Remove(hit.ID)
	results, err = svc.Search(ctx, "salt")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestNotesService_SearchMatchesRawText(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	mustCreateSection(t, svc, "A")
	n := mustNewNote(t, svc, "Memo", "**important** thing\nline one\nline two")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "markers as typed", query: "**important** thing", want: []string{n.ID}},
		{name: "emphasis is not stripped", query: "important thing", want: []string{}},
		{name: "line break is not a space", query: "one line", want: []string{}},
		{name: "line break as typed", query: "one\nline", want: []string{n.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, noteIDs(results))
		})
	}
}

func TestNotesService_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "open blank", call: func() error { _, err := svc.OpenNote(ctx, " "); return err }},
		{name: "edit blank", call: func() error { _, err := svc.EditNote(ctx, "", "t", "c"); return err }},
		{name: "delete blank", call: func() error { return svc.DeleteNote(ctx, "") }},
		{name: "move blank section", call: func() error { _, err := svc.MoveNoteToSection(ctx, "n", ""); return err }},
		{name: "restore blank", call: func() error { _, err := svc.RestoreNoteToSection(ctx, "", "s"); return err }},
		{name: "rename blank", call: func() error { _, err := svc.RenameSection(ctx, "", "x"); return err }},
		{name: "delete section blank", call: func() error { _, err := svc.DeleteSection(ctx, ""); return err }},
		{name: "restore section blank", call: func() error { _, err := svc.RestoreSection(ctx, ""); return err }},
		{name: "purge section blank", call: func() error { return svc.PurgeSection(ctx, "") }},
		{name: "notes for blank section", call: func() error { _, err := svc.GetNotesForSection(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verr *service.ValidationError
			assert.ErrorAs(t, tt.call(), &verr)
		})
	}
}

func TestNotesService_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := notes_mocks.NewMockLocalStorage(ctrl)
	store.EXPECT().Load(gomock.Any()).Return(storage.Snapshot{
		Sections: []storage.SectionRecord{{ID: "s1", Name: "Work", CreatedAt: epoch}},
		Notes: []storage.NoteRecord{
			{ID: "n1", SectionID: "s1", Title: "kept", CreatedAt: epoch, UpdatedAt: epoch},
		},
	}, nil)
	store.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).AnyTimes()

	core, err := notes.Open(context.Background(), store, clock.NewFake(epoch), notes.NewSearchIndex(0))
	require.NoError(t, err)
	svc := service.NewNotesService(core)
	ctx := context.Background()

	_, err = svc.CreateSection(ctx, "New")
	assert.ErrorIs(t, err, service.ErrPersistence)
	active, _ := svc.GetActiveSection(ctx)
	assert.Nil(t, active, "failed CreateSection must not set the active section")

	_, err = svc.DeleteSection(ctx, "s1")
	assert.ErrorIs(t, err, service.ErrPersistence)
	list, _ := svc.GetListOfNotes(ctx)
	assert.Len(t, list, 1, "failed delete keeps notes")
	results, _ := svc.Search(ctx, "kept")
	assert.Len(t, results, 1, "failed delete keeps the search index")
}

func noteIDs(list []notes.Note) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		out = append(out, n.ID)
	}
	return out
}
