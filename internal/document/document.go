package document

import "sync"

// Store holds the current full text of every open document, keyed by URI.
// It is the only mutable state shared between request handlers, so reads
// take the shared lock and writes the exclusive one. Each write bumps a
// per-document version; diagnostics computed from an older version can be
// recognized as stale and dropped before publication.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
	vers map[string]uint64
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		docs: make(map[string]string),
		vers: make(map[string]uint64),
	}
}

// Put replaces (or creates) the text for a URI and returns the new version.
func (s *Store) Put(uri string, text string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = text
	s.vers[uri]++
	return s.vers[uri]
}

// Get returns the current text for a URI. Absence is not an error, it
// means the document is not open.
func (s *Store) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[uri]
	return text, ok
}

// Remove deletes the document. The version counter survives so that a
// diagnostic computation still in flight for the removed text can never
// be mistaken for current after the document is reopened.
func (s *Store) Remove(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
	s.vers[uri]++
}

// Current reports whether version is still the latest write for the URI.
func (s *Store) Current(uri string, version uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vers[uri] == version
}
