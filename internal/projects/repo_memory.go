package projects

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]Project // owner -> title -> project
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]map[string]Project),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, p Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byTitle, ok := r.data[p.Owner]
	if !ok {
		byTitle = make(map[string]Project)
		r.data[p.Owner] = byTitle
	}
	if _, exists := byTitle[p.Title]; exists {
		return ErrAlreadyExists
	}
	byTitle[p.Title] = p
	return nil
}

func (r *MemoryRepo) ListByOwner(ctx context.Context, owner string) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Project
	for _, p := range r.data[owner] {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].HighPriority != out[j].HighPriority {
			return out[i].HighPriority
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) GetByTitle(ctx context.Context, owner, title string) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data[owner][title]
	if !ok {
		return Project{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryRepo) Update(ctx context.Context, p Project) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[p.Owner][p.Title]
	if !ok {
		return Project{}, ErrNotFound
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.data[p.Owner][p.Title] = p
	return p, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, owner, title string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[owner][title]; !ok {
		return ErrNotFound
	}
	delete(r.data[owner], title)
	return nil
}

func (r *MemoryRepo) Exists(ctx context.Context, owner, title string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[owner][title]
	return ok, nil
}

var _ Repo = (*MemoryRepo)(nil)
