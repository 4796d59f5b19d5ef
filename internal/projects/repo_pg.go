package projects

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const projectColumns = `
id, owner, title, status, type, quarter, document_status, payment_status,
high_priority, start_date, estimated_end_date, phone_number, address,
budget, paid, created_at, updated_at`

// Create inserts a new project row; (owner, title) collisions map to ErrAlreadyExists.
func (r *PGRepo) Create(ctx context.Context, p Project) error {
	const query = `
INSERT INTO projects (
    id, owner, title, status, type, quarter, document_status, payment_status,
    high_priority, start_date, estimated_end_date, phone_number, address,
    budget, paid, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	var endDate sql.NullTime
	if p.EstimatedEndDate != nil {
		endDate = sql.NullTime{Time: *p.EstimatedEndDate, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.Owner,
		p.Title,
		p.Status,
		p.Type,
		p.Quarter,
		p.DocumentStatus,
		p.PaymentStatus,
		p.HighPriority,
		p.StartDate,
		endDate,
		p.PhoneNumber,
		p.Address,
		p.Budget,
		p.Paid,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// ListByOwner lists an owner's projects, high-priority first, then most
// recently updated.
func (r *PGRepo) ListByOwner(ctx context.Context, owner string) ([]Project, error) {
	const query = `
SELECT ` + projectColumns + `
FROM projects
WHERE owner = $1
ORDER BY high_priority DESC, updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByTitle fetches a single project by owner and title.
func (r *PGRepo) GetByTitle(ctx context.Context, owner, title string) (Project, error) {
	const query = `
SELECT ` + projectColumns + `
FROM projects
WHERE owner = $1 AND title = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, owner, title)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return p, nil
}

// Update replaces the mutable fields of a project identified by (owner, title).
func (r *PGRepo) Update(ctx context.Context, p Project) (Project, error) {
	const query = `
UPDATE projects SET
    status = $3,
    type = $4,
    quarter = $5,
    document_status = $6,
    payment_status = $7,
    high_priority = $8,
    start_date = $9,
    estimated_end_date = $10,
    phone_number = $11,
    address = $12,
    budget = $13,
    paid = $14,
    updated_at = now()
WHERE owner = $1 AND title = $2`

	var endDate sql.NullTime
	if p.EstimatedEndDate != nil {
		endDate = sql.NullTime{Time: *p.EstimatedEndDate, Valid: true}
	}

	res, err := r.DB.ExecContext(ctx, query,
		p.Owner,
		p.Title,
		p.Status,
		p.Type,
		p.Quarter,
		p.DocumentStatus,
		p.PaymentStatus,
		p.HighPriority,
		p.StartDate,
		endDate,
		p.PhoneNumber,
		p.Address,
		p.Budget,
		p.Paid,
	)
	if err != nil {
		return Project{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Project{}, err
	}
	if affected == 0 {
		return Project{}, ErrNotFound
	}
	return r.GetByTitle(ctx, p.Owner, p.Title)
}

// Delete removes a project by owner and title.
func (r *PGRepo) Delete(ctx context.Context, owner, title string) error {
	const query = `DELETE FROM projects WHERE owner = $1 AND title = $2`
	res, err := r.DB.ExecContext(ctx, query, owner, title)
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

// Exists reports whether a project exists for an owner.
func (r *PGRepo) Exists(ctx context.Context, owner, title string) (bool, error) {
	const query = `SELECT 1 FROM projects WHERE owner = $1 AND title = $2 LIMIT 1`
	var one int
	err := r.DB.QueryRowContext(ctx, query, owner, title).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var p Project
	var endDate sql.NullTime
	err := row.Scan(
		&p.ID,
		&p.Owner,
		&p.Title,
		&p.Status,
		&p.Type,
		&p.Quarter,
		&p.DocumentStatus,
		&p.PaymentStatus,
		&p.HighPriority,
		&p.StartDate,
		&endDate,
		&p.PhoneNumber,
		&p.Address,
		&p.Budget,
		&p.Paid,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return Project{}, err
	}
	if endDate.Valid {
		p.EstimatedEndDate = &endDate.Time
	}
	return p, nil
}

var _ Repo = (*PGRepo)(nil)
