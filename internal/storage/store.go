package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is the on-disk timestamp format. Fixed-width nanoseconds keep
// lexical and chronological order identical.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store persists notes, sections and preferences in SQLite.
// Apply is atomic: either every write of a Changeset lands or none does.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Load reads the complete persisted state.
func (s *Store) Load(ctx context.Context) (Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to begin load transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	sections, err := loadSections(ctx, tx)
	if err != nil {
		return Snapshot{}, err
	}
	notes, err := loadNotes(ctx, tx)
	if err != nil {
		return Snapshot{}, err
	}
	prefs, err := loadPreferences(ctx, tx)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Notes: notes, Sections: sections, Preferences: prefs}, nil
}

// Apply writes the changeset in a single transaction.
func (s *Store) Apply(ctx context.Context, cs Changeset) error {
	if cs.Empty() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, sec := range cs.PutSections {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sections (id, name, created_at, deleted_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (id) DO UPDATE SET
			 name = excluded.name, created_at = excluded.created_at, deleted_at = excluded.deleted_at`,
			sec.ID, sec.Name, formatTime(sec.CreatedAt), formatNullTime(sec.DeletedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert section %s: %w", sec.ID, err)
		}
	}

	for _, id := range cs.DeleteSections {
		if _, err := tx.ExecContext(ctx, "DELETE FROM sections WHERE id = ?", id); err != nil {
			return fmt.Errorf("failed to delete section %s: %w", id, err)
		}
	}

	for _, n := range cs.PutNotes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO notes (id, section_id, title, content, created_at, updated_at, deleted_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (id) DO UPDATE SET
			 section_id = excluded.section_id, title = excluded.title, content = excluded.content,
			 created_at = excluded.created_at, updated_at = excluded.updated_at, deleted_at = excluded.deleted_at`,
			n.ID, n.SectionID, n.Title, n.Content,
			formatTime(n.CreatedAt), formatTime(n.UpdatedAt), formatNullTime(n.DeletedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert note %s: %w", n.ID, err)
		}
	}

	for _, id := range cs.DeleteNotes {
		if _, err := tx.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); err != nil {
			return fmt.Errorf("failed to delete note %s: %w", id, err)
		}
	}

	for key, value := range cs.PutPreferences {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO preferences (key, value) VALUES (?, ?)
			 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
			key, value,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert preference %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func loadSections(ctx context.Context, tx *sql.Tx) ([]SectionRecord, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, name, created_at, deleted_at FROM sections ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var sections []SectionRecord
	for rows.Next() {
		var sec SectionRecord
		var createdAt string
		var deletedAt sql.NullString
		if err := rows.Scan(&sec.ID, &sec.Name, &createdAt, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		if sec.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at for section %s: %w", sec.ID, err)
		}
		if sec.DeletedAt, err = parseNullTime(deletedAt); err != nil {
			return nil, fmt.Errorf("failed to parse deleted_at for section %s: %w", sec.ID, err)
		}
		sections = append(sections, sec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}

func loadNotes(ctx context.Context, tx *sql.Tx) ([]NoteRecord, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, section_id, title, content, created_at, updated_at, deleted_at FROM notes ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []NoteRecord
	for rows.Next() {
		var n NoteRecord
		var createdAt, updatedAt string
		var deletedAt sql.NullString
		if err := rows.Scan(&n.ID, &n.SectionID, &n.Title, &n.Content, &createdAt, &updatedAt, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at for note %s: %w", n.ID, err)
		}
		if n.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at for note %s: %w", n.ID, err)
		}
		if n.DeletedAt, err = parseNullTime(deletedAt); err != nil {
			return nil, fmt.Errorf("failed to parse deleted_at for note %s: %w", n.ID, err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

func loadPreferences(ctx context.Context, tx *sql.Tx) (map[string]string, error) {
	rows, err := tx.QueryContext(ctx, "SELECT key, value FROM preferences")
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	prefs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return prefs, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// Rows written by hand or by older builds may use plain RFC3339
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.UTC(), nil
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
