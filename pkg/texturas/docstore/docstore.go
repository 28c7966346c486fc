// Package docstore keeps the loaded document set in memory. Documents
// are immutable once added; analysis results are cached alongside the
// text so re-running the pipeline with unchanged parameters is free.
package docstore

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/epsidebox/texturas/pkg/texturas/analyze"
	"github.com/epsidebox/texturas/pkg/texturas/internalerr"
)

// Doc is one loaded text with its cached analysis.
type Doc struct {
	ID     string
	Title  string
	Text   string
	Result *analyze.Result
}

// Store is an in-memory document store. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entropy *ulid.MonotonicEntropy
	docs    map[string]Doc
	order   []string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		entropy: ulid.Monotonic(rand.Reader, 0),
		docs:    make(map[string]Doc),
	}
}

// Add stores a document and returns its generated ID.
func (s *Store) Add(ctx context.Context, title, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("document text is empty: %w", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := ulid.MustNew(ulid.Now(), s.entropy).String()
	s.docs[id] = Doc{ID: id, Title: title, Text: text}
	s.order = append(s.order, id)
	return id, nil
}

// Get returns a document by ID.
func (s *Store) Get(ctx context.Context, id string) (Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return Doc{}, fmt.Errorf("document %s: %w", id, internalerr.ErrNotFound)
	}
	return doc, nil
}

// SetResult attaches an analysis result to a stored document.
func (s *Store) SetResult(ctx context.Context, id string, res *analyze.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("document %s: %w", id, internalerr.ErrNotFound)
	}
	doc.Result = res
	s.docs[id] = doc
	return nil
}

// Remove deletes a document.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("document %s: %w", id, internalerr.ErrNotFound)
	}
	delete(s.docs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all documents in insertion order.
func (s *Store) List(ctx context.Context) []Doc {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Doc, 0, len(s.docs))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
