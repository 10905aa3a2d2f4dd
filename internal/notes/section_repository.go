package notes

import (
	"cmp"
	"slices"

	"notekeeper/internal/clock"
	"notekeeper/internal/storage"
)

// SectionRepository owns the in-memory section collection. Deleting a section
// cascades into its notes inside the same Tx; restoring one does not.
type SectionRepository struct {
	sections map[string]Section
	notes    *NoteRepository
	clock    clock.Clock
	newID    func() string
}

func newSectionRepository(clk clock.Clock, newID func() string) *SectionRepository {
	return &SectionRepository{
		sections: make(map[string]Section),
		clock:    clk,
		newID:    newID,
	}
}

func (r *SectionRepository) load(records []storage.SectionRecord) {
	for _, rec := range records {
		r.sections[rec.ID] = sectionFromRecord(rec)
	}
}

func (r *SectionRepository) lookup(tx *Tx, id string) (Section, bool) {
	if s := tx.sectionStage(); s != nil {
		sec, ok, gone := s.lookup(id)
		if ok {
			return sec, true
		}
		if gone {
			return Section{}, false
		}
	}
	sec, ok := r.sections[id]
	return sec, ok
}

func (r *SectionRepository) stage(tx *Tx, sec Section) {
	tx.sections.set(sec.ID, sec)
	tx.enlist(r)
}

func (r *SectionRepository) collect(tx *Tx, keep func(Section) bool) []Section {
	var out []Section
	each(r.sections, tx.sectionStage(), func(sec Section) {
		if keep(sec) {
			out = append(out, sec)
		}
	})
	slices.SortFunc(out, func(a, b Section) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Create stages a new active section. Blank names become DefaultSectionName.
func (r *SectionRepository) Create(tx *Tx, name string) Section {
	sec := Section{
		ID:        r.newID(),
		Name:      NormalizeSectionName(name),
		CreatedAt: r.clock.Now(),
	}
	r.stage(tx, sec)
	return sec
}

// Get returns a section in any state.
func (r *SectionRepository) Get(tx *Tx, id string) (Section, error) {
	sec, ok := r.lookup(tx, id)
	if !ok {
		return Section{}, sectionNotFound(id)
	}
	return sec, nil
}

// Active returns the section if it exists and is not in the trash.
func (r *SectionRepository) Active(tx *Tx, id string) (Section, bool) {
	sec, ok := r.lookup(tx, id)
	if !ok || sec.IsDeleted() {
		return Section{}, false
	}
	return sec, true
}

// ActiveByName returns the oldest active section with exactly this name.
func (r *SectionRepository) ActiveByName(tx *Tx, name string) (Section, bool) {
	for _, sec := range r.ListActive(tx) {
		if sec.Name == name {
			return sec, true
		}
	}
	return Section{}, false
}

// Rename changes the name of an active section.
func (r *SectionRepository) Rename(tx *Tx, id, name string) (Section, error) {
	sec, ok := r.Active(tx, id)
	if !ok {
		return Section{}, sectionNotFound(id)
	}

	sec.Name = NormalizeSectionName(name)
	r.stage(tx, sec)
	return sec, nil
}

// ListActive returns active sections, oldest first.
func (r *SectionRepository) ListActive(tx *Tx) []Section {
	return r.collect(tx, func(sec Section) bool {
		return !sec.IsDeleted()
	})
}

// ListDeleted returns trashed sections, oldest first.
func (r *SectionRepository) ListDeleted(tx *Tx) []Section {
	return r.collect(tx, Section.IsDeleted)
}

// SoftDelete trashes a section and all of its active notes, and returns the
// number of notes trashed. Deleting a trashed section is a no-op.
func (r *SectionRepository) SoftDelete(tx *Tx, id string) (int, error) {
	sec, ok := r.lookup(tx, id)
	if !ok {
		return 0, sectionNotFound(id)
	}
	if sec.IsDeleted() {
		return 0, nil
	}

	sec.DeletedAt = timePtr(r.clock.Now())
	r.stage(tx, sec)
	return r.notes.softDeleteInSection(tx, id), nil
}

// Restore takes a section out of the trash. Its notes stay in the trash.
func (r *SectionRepository) Restore(tx *Tx, id string) (Section, error) {
	sec, ok := r.lookup(tx, id)
	if !ok {
		return Section{}, sectionNotFound(id)
	}
	if !sec.IsDeleted() {
		return sec, nil
	}

	sec.DeletedAt = nil
	r.stage(tx, sec)
	return sec, nil
}

// Purge removes sections permanently and returns how many existed.
// Notes referencing a purged section are left alone.
func (r *SectionRepository) Purge(tx *Tx, ids []string) int {
	purged := 0
	for _, id := range ids {
		if _, ok := r.lookup(tx, id); !ok {
			continue
		}
		tx.sections.purge(id)
		purged++
	}
	if purged > 0 {
		tx.enlist(r)
	}
	return purged
}

func (r *SectionRepository) commit(tx *Tx) {
	for id, sec := range tx.sections.put {
		r.sections[id] = sec
	}
	for id := range tx.sections.purged {
		delete(r.sections, id)
	}
}
