package usecase

import (
	"context"
	"fmt"
	"sync"
)

// memStore is an in-memory stand-in for the document store, implementing
// the same five operations as the Firestore client. FailOn, when set, is
// consulted before every operation to inject store failures.
type memStore struct {
	mu     sync.Mutex
	docs   map[string]map[string]any
	FailOn func(op, collection, id string) error
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]map[string]any)}
}

func (s *memStore) key(collection, id string) string {
	return collection + "/" + id
}

func (s *memStore) fail(op, collection, id string) error {
	if s.FailOn != nil {
		return s.FailOn(op, collection, id)
	}
	return nil
}

func (s *memStore) GetDocument(_ context.Context, collection, id string) (map[string]any, error) {
	if err := s.fail("get", collection, id); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[s.key(collection, id)]
	if !ok {
		return nil, nil
	}
	return copyDoc(doc), nil
}

func (s *memStore) SetDocument(_ context.Context, collection, id string, fields map[string]any) error {
	if err := s.fail("set", collection, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[s.key(collection, id)]
	if !ok {
		doc = make(map[string]any)
		s.docs[s.key(collection, id)] = doc
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (s *memStore) SetDocumentField(_ context.Context, collection, id, field, subkey string, value any) error {
	if err := s.fail("setField", collection, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[s.key(collection, id)]
	if !ok {
		doc = make(map[string]any)
		s.docs[s.key(collection, id)] = doc
	}
	entries, ok := doc[field].(map[string]any)
	if !ok {
		entries = make(map[string]any)
		doc[field] = entries
	}
	entries[subkey] = value
	return nil
}

func (s *memStore) GetDocumentField(_ context.Context, collection, id, field string) (map[string]any, error) {
	if err := s.fail("getField", collection, id); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[s.key(collection, id)]
	if !ok {
		return nil, nil
	}
	entries, ok := doc[field].(map[string]any)
	if !ok {
		return nil, nil
	}
	out := make(map[string]any, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out, nil
}

func (s *memStore) DeleteDocumentField(_ context.Context, collection, id, field, subkey string) error {
	if err := s.fail("deleteField", collection, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[s.key(collection, id)]
	if !ok {
		return nil
	}
	if entries, ok := doc[field].(map[string]any); ok {
		delete(entries, subkey)
	}
	return nil
}

func copyDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if m, ok := v.(map[string]any); ok {
			inner := make(map[string]any, len(m))
			for ik, iv := range m {
				inner[ik] = iv
			}
			out[k] = inner
			continue
		}
		out[k] = v
	}
	return out
}

var errStoreDown = fmt.Errorf("connection refused")
