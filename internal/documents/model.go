package documents

import "time"

// Document represents an uploaded PDF owned by an account within a project.
// A document is immutable once stored; the only mutation is deletion.
type Document struct {
	ID           string
	Owner        string
	ProjectTitle string
	FileName     string
	ContentType  string
	SizeBytes    int64
	StorageKey   string
	UploadedAt   time.Time
}
