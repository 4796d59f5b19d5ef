package projects

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for project records.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create validates and persists a new project.
func (s *Service) Create(ctx context.Context, p Project) (Project, error) {
	if err := validate(p); err != nil {
		return Project{}, err
	}
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.Repo.Create(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

// ListByOwner returns an owner's projects, high-priority first, newest first.
func (s *Service) ListByOwner(ctx context.Context, owner string) ([]Project, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByOwner(ctx, owner)
}

// GetByTitle returns a single project.
func (s *Service) GetByTitle(ctx context.Context, owner, title string) (Project, error) {
	if strings.TrimSpace(owner) == "" || strings.TrimSpace(title) == "" {
		return Project{}, ErrInvalidInput
	}
	return s.Repo.GetByTitle(ctx, owner, title)
}

// Update replaces the mutable fields of an existing project.
func (s *Service) Update(ctx context.Context, p Project) (Project, error) {
	if err := validate(p); err != nil {
		return Project{}, err
	}
	return s.Repo.Update(ctx, p)
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, owner, title string) error {
	if strings.TrimSpace(owner) == "" || strings.TrimSpace(title) == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, owner, title)
}

// Exists reports whether a project exists for an owner. It satisfies the
// document pipeline's project check.
func (s *Service) Exists(ctx context.Context, owner, title string) (bool, error) {
	if strings.TrimSpace(owner) == "" || strings.TrimSpace(title) == "" {
		return false, nil
	}
	return s.Repo.Exists(ctx, owner, title)
}

func validate(p Project) error {
	if strings.TrimSpace(p.Owner) == "" || strings.TrimSpace(p.Title) == "" {
		return ErrInvalidInput
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if _, ok := validStatuses[p.Status]; !ok {
		return fmt.Errorf("%w: unknown projectStatus %q", ErrInvalidInput, p.Status)
	}
	if _, ok := validTypes[p.Type]; !ok {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, p.Type)
	}
	if _, ok := validQuarters[p.Quarter]; !ok {
		return fmt.Errorf("%w: unknown quarter %q", ErrInvalidInput, p.Quarter)
	}
	if _, ok := validDocumentStatuses[p.DocumentStatus]; !ok {
		return fmt.Errorf("%w: unknown documentStatus %q", ErrInvalidInput, p.DocumentStatus)
	}
	if _, ok := validPaymentStatuses[p.PaymentStatus]; !ok {
		return fmt.Errorf("%w: unknown paymentStatus %q", ErrInvalidInput, p.PaymentStatus)
	}
	if p.Budget < 0 || p.Paid < 0 {
		return fmt.Errorf("%w: budget and paid must be non-negative", ErrInvalidInput)
	}
	return nil
}
