package storage

import "time"

// NoteRecord is the persisted form of a note.
type NoteRecord struct {
	ID        string
	SectionID string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // nil while the note is active
}

// SectionRecord is the persisted form of a section.
type SectionRecord struct {
	ID        string
	Name      string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// Snapshot is the full persisted state returned by Load.
type Snapshot struct {
	Notes       []NoteRecord
	Sections    []SectionRecord
	Preferences map[string]string
}

// Changeset is a batch of writes applied in a single transaction.
type Changeset struct {
	PutNotes       []NoteRecord
	DeleteNotes    []string
	PutSections    []SectionRecord
	DeleteSections []string
	PutPreferences map[string]string
}

// Empty reports whether the changeset carries no writes.
func (c Changeset) Empty() bool {
	return len(c.PutNotes) == 0 &&
		len(c.DeleteNotes) == 0 &&
		len(c.PutSections) == 0 &&
		len(c.DeleteSections) == 0 &&
		len(c.PutPreferences) == 0
}
