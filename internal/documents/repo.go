package documents

import "context"

// Repo defines persistence operations for document metadata. Get and Delete
// require the exact (id, owner, projectTitle) triple; any miss or mismatch is
// ErrNotFound.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	List(ctx context.Context, owner, projectTitle string) ([]Document, error)
	Get(ctx context.Context, id, owner, projectTitle string) (Document, error)
	Delete(ctx context.Context, id, owner, projectTitle string) error
}
