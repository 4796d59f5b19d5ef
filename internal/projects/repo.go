package projects

import "context"

// Repo defines persistence operations for project records. All lookups are
// scoped by owner; (owner, title) is unique.
type Repo interface {
	Create(ctx context.Context, p Project) error
	ListByOwner(ctx context.Context, owner string) ([]Project, error)
	GetByTitle(ctx context.Context, owner, title string) (Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	Delete(ctx context.Context, owner, title string) error
	Exists(ctx context.Context, owner, title string) (bool, error)
}
