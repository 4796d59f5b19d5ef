package documents

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Document // owner+projectTitle -> documents, newest first
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Document),
	}
}

func groupKey(owner, projectTitle string) string {
	return owner + "\x00" + projectTitle
}

// Create prepends the document so ties on UploadedAt keep insertion order.
func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := groupKey(doc.Owner, doc.ProjectTitle)
	r.data[key] = append([]Document{doc}, r.data[key]...)
	return nil
}

// List returns documents for an owner/project pair ordered by UploadedAt descending.
func (r *MemoryRepo) List(ctx context.Context, owner, projectTitle string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs := r.data[groupKey(owner, projectTitle)]
	out := append([]Document(nil), docs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

// Get returns the document when the full triple matches.
func (r *MemoryRepo) Get(ctx context.Context, id, owner, projectTitle string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs := r.data[groupKey(owner, projectTitle)]
	for i := range docs {
		if docs[i].ID == id {
			return docs[i], nil
		}
	}
	return Document{}, ErrNotFound
}

// Delete removes the document when the full triple matches.
func (r *MemoryRepo) Delete(ctx context.Context, id, owner, projectTitle string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := groupKey(owner, projectTitle)
	docs := r.data[key]
	for i := range docs {
		if docs[i].ID == id {
			r.data[key] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
