package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document row. Duplicate file names within a project are
// permitted and produce distinct rows.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, owner, project_title, file_name, content_type, size_bytes, storage_key, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.Owner,
		doc.ProjectTitle,
		doc.FileName,
		doc.ContentType,
		doc.SizeBytes,
		doc.StorageKey,
		doc.UploadedAt,
	)
	return err
}

// List returns document metadata for an owner/project pair, newest first.
func (r *PGRepo) List(ctx context.Context, owner, projectTitle string) ([]Document, error) {
	const query = `
SELECT id, owner, project_title, file_name, content_type, size_bytes, storage_key, uploaded_at
FROM documents
WHERE owner = $1 AND project_title = $2
ORDER BY uploaded_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, owner, projectTitle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(
			&doc.ID,
			&doc.Owner,
			&doc.ProjectTitle,
			&doc.FileName,
			&doc.ContentType,
			&doc.SizeBytes,
			&doc.StorageKey,
			&doc.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Get fetches a document when the full triple matches.
func (r *PGRepo) Get(ctx context.Context, id, owner, projectTitle string) (Document, error) {
	const query = `
SELECT id, owner, project_title, file_name, content_type, size_bytes, storage_key, uploaded_at
FROM documents
WHERE id = $1 AND owner = $2 AND project_title = $3
LIMIT 1`
	var doc Document
	err := r.DB.QueryRowContext(ctx, query, id, owner, projectTitle).Scan(
		&doc.ID,
		&doc.Owner,
		&doc.ProjectTitle,
		&doc.FileName,
		&doc.ContentType,
		&doc.SizeBytes,
		&doc.StorageKey,
		&doc.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// Delete removes a document when the full triple matches. RowsAffected
// distinguishes "deleted" from "did not exist or wrong owner".
func (r *PGRepo) Delete(ctx context.Context, id, owner, projectTitle string) error {
	const query = `
DELETE FROM documents
WHERE id = $1 AND owner = $2 AND project_title = $3`
	res, err := r.DB.ExecContext(ctx, query, id, owner, projectTitle)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
