package documents

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"portal-backend/internal/compress"
	"portal-backend/internal/shared/metrics"
	"portal-backend/internal/shared/storage/object"
	"portal-backend/internal/shared/telemetry"
)

// ProjectChecker reports whether a project exists for an owner.
type ProjectChecker interface {
	Exists(ctx context.Context, owner, title string) (bool, error)
}

// UploadFile is a single candidate file within an upload batch.
type UploadFile struct {
	Name        string
	ContentType string
	SizeBytes   int64
	Data        []byte
}

// Service contains business logic for the document pipeline.
type Service struct {
	Store     object.ObjectStore
	Repo      Repo
	Projects  ProjectChecker
	Validator Validator
}

// Upload runs validate, compress, persist for a batch of files. The batch is
// fail-fast: every file is validated before any is persisted, and the first
// validation failure aborts the whole batch.
func (s *Service) Upload(ctx context.Context, owner, projectTitle string, files []UploadFile) ([]Document, error) {
	owner = strings.TrimSpace(owner)
	projectTitle = strings.TrimSpace(projectTitle)
	if owner == "" || projectTitle == "" || len(files) == 0 {
		return nil, ErrInvalidInput
	}

	for _, f := range files {
		if err := s.Validator.Validate(f.Name, f.ContentType, f.SizeBytes); err != nil {
			return nil, err
		}
	}

	if s.Projects != nil {
		ok, err := s.Projects.Exists(ctx, owner, projectTitle)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrProjectNotFound
		}
	}

	created := make([]Document, 0, len(files))
	for _, f := range files {
		res := compress.Compress(f.Data)
		if res.FallbackUsed {
			metrics.IncCompressionFallback()
			telemetry.Warn("document.compress.fallback", map[string]any{
				"owner":         owner,
				"project_title": projectTitle,
				"file_name":     f.Name,
				"size_bytes":    f.SizeBytes,
			})
		} else {
			metrics.AddCompressionBytesSaved(res.BytesSaved())
		}

		storageKey, size, _, err := s.Store.Save(ctx, owner, f.Name, bytes.NewReader(res.Data))
		if err != nil {
			return nil, err
		}

		doc := Document{
			ID:           uuid.NewString(),
			Owner:        owner,
			ProjectTitle: projectTitle,
			FileName:     f.Name,
			ContentType:  f.ContentType,
			SizeBytes:    size,
			StorageKey:   storageKey,
			UploadedAt:   time.Now().UTC(),
		}
		if err := s.Repo.Create(ctx, doc); err != nil {
			// The row never existed; remove the orphaned payload best-effort.
			if delErr := s.Store.Delete(ctx, storageKey); delErr != nil {
				telemetry.Warn("document.blob.orphan", map[string]any{
					"storage_key": storageKey,
					"err":         delErr.Error(),
				})
			}
			return nil, err
		}

		metrics.IncDocumentsUploaded()
		created = append(created, doc)
	}

	return created, nil
}

// List returns document metadata for an owner/project pair, newest first.
func (s *Service) List(ctx context.Context, owner, projectTitle string) ([]Document, error) {
	if strings.TrimSpace(owner) == "" || strings.TrimSpace(projectTitle) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.List(ctx, owner, projectTitle)
}

// Open returns the document metadata and a reader over its payload. The
// caller must close the reader.
func (s *Service) Open(ctx context.Context, id, owner, projectTitle string) (Document, io.ReadCloser, error) {
	if strings.TrimSpace(owner) == "" || strings.TrimSpace(projectTitle) == "" {
		return Document{}, nil, ErrInvalidInput
	}
	doc, err := s.Repo.Get(ctx, id, owner, projectTitle)
	if err != nil {
		return Document{}, nil, err
	}
	rc, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return Document{}, nil, err
	}
	return doc, rc, nil
}

// Delete removes the document row, then its payload best-effort.
func (s *Service) Delete(ctx context.Context, id, owner, projectTitle string) error {
	if strings.TrimSpace(owner) == "" || strings.TrimSpace(projectTitle) == "" {
		return ErrInvalidInput
	}
	doc, err := s.Repo.Get(ctx, id, owner, projectTitle)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id, owner, projectTitle); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, doc.StorageKey); err != nil {
		telemetry.Warn("document.blob.orphan", map[string]any{
			"storage_key": doc.StorageKey,
			"err":         err.Error(),
		})
	}
	metrics.IncDocumentsDeleted()
	return nil
}
