package notes

import (
	"strings"
	"time"
)

// DefaultSectionName replaces blank section names.
const DefaultSectionName = "General"

// DefaultRetention is how long trashed notes and sections are kept before Sweep purges them.
const DefaultRetention = 30 * 24 * time.Hour

// Note is a single note. A non-nil DeletedAt means the note is in the trash;
// SectionID is kept while trashed so the note can be restored.
type Note struct {
	ID        string
	SectionID string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted reports whether the note is in the trash.
func (n Note) IsDeleted() bool {
	return n.DeletedAt != nil
}

// Section groups notes. Sections carry no modification timestamp.
type Section struct {
	ID        string
	Name      string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// IsDeleted reports whether the section is in the trash.
func (s Section) IsDeleted() bool {
	return s.DeletedAt != nil
}

// NormalizeSectionName trims the name and substitutes DefaultSectionName for blank input.
func NormalizeSectionName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultSectionName
	}
	return name
}

func timePtr(t time.Time) *time.Time {
	return &t
}
