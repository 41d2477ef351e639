package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/docoutline/internal/outline"
	"golang.org/x/sync/singleflight"
)

// Entry is the outline of one document version.
type Entry struct {
	DocID       string          `json:"doc_id"`
	ContentHash string          `json:"content_hash"`
	Filename    string          `json:"filename"`
	Outline     []*outline.Node `json:"outline"`
	Count       int             `json:"count"`
	CreatedAt   time.Time       `json:"created_at"`

	// Key is the cache key: the content hash combined with the extractor
	// variant. Entries put without one are keyed by ContentHash.
	Key string `json:"-"`

	lastUsed time.Time
}

// Store is a thread-safe in-memory outline cache with TTL eviction,
// keyed by content hash and extractor variant.
type Store struct {
	mu      sync.Mutex
	entries map[string]*Entry
	byDocID map[string]string
	ttl     time.Duration

	group singleflight.Group
	now   func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*Entry),
		byDocID: make(map[string]string),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put stores an entry, replacing any entry with the same key.
func (s *Store) Put(e *Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.Key == "" {
		e.Key = e.ContentHash
	}
	e.lastUsed = s.now()
	s.entries[e.Key] = e
	s.byDocID[e.DocID] = e.Key
}

// Get returns the entry for a cache key, or nil.
func (s *Store) Get(key string) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[key]
	if e != nil {
		e.lastUsed = s.now()
	}
	return e
}

// GetByDocID returns the entry for a short document id, or nil.
func (s *Store) GetByDocID(docID string) *Entry {
	s.mu.Lock()
	key, ok := s.byDocID[docID]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return s.Get(key)
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup removes entries not used within the TTL.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for key, e := range s.entries {
		if now.Sub(e.lastUsed) > s.ttl {
			delete(s.entries, key)
			delete(s.byDocID, e.DocID)
			removed++
		}
	}
	return removed
}

// Do returns the cached entry for data read as variant, building it with
// build on a miss. variant names the extractor and its settings; the same
// bytes under another variant get their own entry and doc id. Concurrent
// calls for the same key share a single build.
func (s *Store) Do(data []byte, variant, filename string, build func() ([]outline.Heading, error)) (*Entry, error) {
	hash := ContentHashHex(data)
	key := Key(hash, variant)
	if e := s.Get(key); e != nil {
		return e, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if e := s.Get(key); e != nil {
			return e, nil
		}
		headings, err := build()
		if err != nil {
			return nil, err
		}
		forest := outline.Build(headings)
		e := &Entry{
			DocID:       DocID(key),
			ContentHash: hash,
			Key:         key,
			Filename:    filename,
			Outline:     forest,
			Count:       len(headings),
			CreatedAt:   s.now(),
		}
		s.Put(e)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Entry), nil
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

// Key combines a content hash with an extractor variant. An empty variant
// leaves the hash as is.
func Key(hash, variant string) string {
	if variant == "" {
		return hash
	}
	return ContentHashHex([]byte(hash + "\x00" + variant))
}

// DocID shortens a cache key to a document id.
func DocID(hash string) string {
	if len(hash) < 16 {
		return hash
	}
	return hash[:16]
}
