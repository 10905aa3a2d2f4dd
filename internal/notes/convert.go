package notes

import (
	"time"

	"notekeeper/internal/storage"
)

func noteFromRecord(r storage.NoteRecord) Note {
	return Note{
		ID:        r.ID,
		SectionID: r.SectionID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: copyTime(r.DeletedAt),
	}
}

func noteToRecord(n Note) storage.NoteRecord {
	return storage.NoteRecord{
		ID:        n.ID,
		SectionID: n.SectionID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		DeletedAt: copyTime(n.DeletedAt),
	}
}

func sectionFromRecord(r storage.SectionRecord) Section {
	return Section{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		DeletedAt: copyTime(r.DeletedAt),
	}
}

func sectionToRecord(s Section) storage.SectionRecord {
	return storage.SectionRecord{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		DeletedAt: copyTime(s.DeletedAt),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return timePtr(*t)
}
