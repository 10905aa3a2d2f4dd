package notes

import (
	"time"

	"notekeeper/internal/clock"
)

// SweepResult counts what a Sweep purged.
type SweepResult struct {
	NotesPurged    int `json:"notes_purged"`
	SectionsPurged int `json:"sections_purged"`
}

// Trash applies the retention policy to trashed notes and sections.
// Retention is enforced lazily: nothing is purged until Sweep runs.
type Trash struct {
	retention time.Duration
	clock     clock.Clock
	notes     *NoteRepository
	sections  *SectionRepository
}

func newTrash(retention time.Duration, clk clock.Clock, notes *NoteRepository, sections *SectionRepository) *Trash {
	return &Trash{
		retention: retention,
		clock:     clk,
		notes:     notes,
		sections:  sections,
	}
}

// Retention returns how long trashed items are kept.
func (t *Trash) Retention() time.Duration {
	return t.retention
}

// ExpiresAt returns the instant from which an item trashed at deletedAt is purged.
func (t *Trash) ExpiresAt(deletedAt time.Time) time.Time {
	return deletedAt.Add(t.retention)
}

// Expired reports whether an item trashed at deletedAt is due for purge.
// The boundary is inclusive.
func (t *Trash) Expired(deletedAt time.Time) bool {
	return t.clock.Now().Sub(deletedAt) >= t.retention
}

// Sweep purges every trashed note and section whose retention has elapsed.
// Items still inside the window are untouched, so Sweep is safe to call at any time.
func (t *Trash) Sweep(tx *Tx) SweepResult {
	var noteIDs []string
	for _, n := range t.notes.ListDeleted(tx) {
		if t.Expired(*n.DeletedAt) {
			noteIDs = append(noteIDs, n.ID)
		}
	}

	var sectionIDs []string
	for _, sec := range t.sections.ListDeleted(tx) {
		if t.Expired(*sec.DeletedAt) {
			sectionIDs = append(sectionIDs, sec.ID)
		}
	}

	return SweepResult{
		NotesPurged:    t.notes.Purge(tx, noteIDs),
		SectionsPurged: t.sections.Purge(tx, sectionIDs),
	}
}

// EmptyTrash purges the listed notes regardless of retention. Only notes
// currently in the trash are purged; active and unknown ids are ignored.
func (t *Trash) EmptyTrash(tx *Tx, ids []string) int {
	var trashed []string
	for _, id := range ids {
		if n, ok := t.notes.lookup(tx, id); ok && n.IsDeleted() {
			trashed = append(trashed, id)
		}
	}
	return t.notes.Purge(tx, trashed)
}

// DeletedNotes returns the notes in the trash.
func (t *Trash) DeletedNotes(tx *Tx) []Note {
	return t.notes.ListDeleted(tx)
}

// DeletedSections returns the sections in the trash.
func (t *Trash) DeletedSections(tx *Tx) []Section {
	return t.sections.ListDeleted(tx)
}
