package notes

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultSearchCacheTTL bounds how long a cached query result may live.
const DefaultSearchCacheTTL = 5 * time.Minute

type document struct {
	note    Note
	title   string
	content string
}

// SearchIndex is an in-memory case-insensitive substring index over active
// notes. Titles and content are matched as typed. Query results are cached
// until the next mutation.
type SearchIndex struct {
	mu      sync.RWMutex
	docs    map[string]document
	results *cache.Cache
}

// NewSearchIndex creates an empty index. A non-positive cacheTTL uses DefaultSearchCacheTTL.
func NewSearchIndex(cacheTTL time.Duration) *SearchIndex {
	if cacheTTL <= 0 {
		cacheTTL = DefaultSearchCacheTTL
	}
	return &SearchIndex{
		docs:    make(map[string]document),
		results: cache.New(cacheTTL, 2*cacheTTL),
	}
}

// Index adds or replaces a note. Trashed notes are removed instead.
func (s *SearchIndex) Index(n Note) {
	s.apply([]Note{n}, nil)
}

// Remove drops a note from the index.
func (s *SearchIndex) Remove(id string) {
	s.apply(nil, []string{id})
}

// Rebuild replaces the whole index with the active notes among notes.
func (s *SearchIndex) Rebuild(notes []Note) {
	docs := make(map[string]document, len(notes))
	for _, n := range notes {
		if !n.IsDeleted() {
			docs[n.ID] = s.document(n)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = docs
	s.results.Flush()
}

// Len returns the number of indexed notes.
func (s *SearchIndex) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Search returns the indexed notes whose title or content contains query,
// ignoring case, ordered by id. A blank query returns every indexed note.
func (s *SearchIndex) Search(query string) []Note {
	key := strings.ToLower(query)
	if strings.TrimSpace(query) == "" {
		key = ""
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if cached, ok := s.results.Get(key); ok {
		return s.resolve(cached.([]string))
	}

	var ids []string
	for id, d := range s.docs {
		if key == "" || d.matches(key) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	s.results.Set(key, ids, cache.DefaultExpiration)
	return s.resolve(ids)
}

func (s *SearchIndex) resolve(ids []string) []Note {
	out := make([]Note, 0, len(ids))
	for _, id := range ids {
		if d, ok := s.docs[id]; ok {
			out = append(out, d.note)
		}
	}
	return out
}

// apply indexes upserts, drops removals and invalidates cached results.
func (s *SearchIndex) apply(upserts []Note, removals []string) {
	docs := make([]document, 0, len(upserts))
	for _, n := range upserts {
		if !n.IsDeleted() {
			docs = append(docs, s.document(n))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range upserts {
		if n.IsDeleted() {
			delete(s.docs, n.ID)
		}
	}
	for _, d := range docs {
		s.docs[d.note.ID] = d
	}
	for _, id := range removals {
		delete(s.docs, id)
	}
	s.results.Flush()
}

func (s *SearchIndex) document(n Note) document {
	return document{
		note:    n,
		title:   strings.ToLower(n.Title),
		content: strings.ToLower(n.Content),
	}
}

func (d document) matches(query string) bool {
	return strings.Contains(d.title, query) || strings.Contains(d.content, query)
}
