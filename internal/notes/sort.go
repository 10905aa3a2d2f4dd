package notes

import (
	"fmt"
	"slices"
	"strings"
)

// SortOption selects how note listings are ordered.
type SortOption string

const (
	SortLastModified SortOption = "last_modified"
	SortCreatedDate  SortOption = "created_date"
	SortTitleAZ      SortOption = "title_az"
)

// DefaultSortOption applies until the user picks one.
const DefaultSortOption = SortLastModified

// sortPreferenceKey is the preferences row holding the sort option.
const sortPreferenceKey = "sort_order"

// SortOptions lists every valid option.
var SortOptions = []SortOption{SortLastModified, SortCreatedDate, SortTitleAZ}

// Valid reports whether o is one of SortOptions.
func (o SortOption) Valid() bool {
	return slices.Contains(SortOptions, o)
}

// ParseSortOption accepts the canonical values and their spellings without
// separators or with different case, e.g. "TitleAZ" or "title-az".
func ParseSortOption(s string) (SortOption, error) {
	key := normalizeSortKey(s)
	for _, o := range SortOptions {
		if normalizeSortKey(string(o)) == key {
			return o, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidSortOption)
}

func normalizeSortKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// SortPreference holds the persisted sort option.
type SortPreference struct {
	option SortOption
}

func newSortPreference() *SortPreference {
	return &SortPreference{option: DefaultSortOption}
}

// load reads the option from persisted preferences. Unknown stored values
// fall back to the default.
func (p *SortPreference) load(prefs map[string]string) {
	if o, err := ParseSortOption(prefs[sortPreferenceKey]); err == nil {
		p.option = o
	}
}

// Get returns the current option.
func (p *SortPreference) Get() SortOption {
	return p.option
}

// Set stages a new option.
func (p *SortPreference) Set(tx *Tx, option SortOption) error {
	if !option.Valid() {
		return fmt.Errorf("%q: %w", option, ErrInvalidSortOption)
	}
	tx.prefs[sortPreferenceKey] = string(option)
	tx.enlist(p)
	return nil
}

func (p *SortPreference) commit(tx *Tx) {
	if v, ok := tx.prefs[sortPreferenceKey]; ok {
		p.option = SortOption(v)
	}
}

// SortNotes returns a sorted copy of notes. The sort is stable, so ties keep
// their input order. Unknown options sort like DefaultSortOption.
func SortNotes(notes []Note, option SortOption) []Note {
	sorted := slices.Clone(notes)

	switch option {
	case SortCreatedDate:
		slices.SortStableFunc(sorted, func(a, b Note) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortTitleAZ:
		slices.SortStableFunc(sorted, func(a, b Note) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	default:
		slices.SortStableFunc(sorted, func(a, b Note) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	}
	return sorted
}
