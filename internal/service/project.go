package service

import (
	"context"
	"fmt"

	"github.com/crucial707/codepad/internal/common"
	"github.com/crucial707/codepad/internal/models"
)

// ProjectStore is the project store used by ProjectService.
type ProjectStore interface {
	Create(ctx context.Context, ownerID, name string, code models.ProjectCode) (*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Project, error)
	UpdateCode(ctx context.Context, id string, code models.ProjectCode) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProjectService is the project access layer. Callers pass the owner id taken from
// verified claims.
//
// Get, Update and Delete do not compare the project's owner with the caller: any
// authenticated user who knows an id may read, change or remove the project.
type ProjectService struct {
	store ProjectStore
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// List returns the owner's projects, newest first.
func (s *ProjectService) List(ctx context.Context, ownerID string) ([]models.Project, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.store.GetByID(ctx, id)
}

// Create stores a project owned by ownerID.
func (s *ProjectService) Create(ctx context.Context, ownerID, name string, code models.ProjectCode) (*models.Project, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	p, err := s.store.Create(ctx, ownerID, name, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return p, nil
}

// Update replaces all three code fields; empty fields clear the stored code.
func (s *ProjectService) Update(ctx context.Context, id string, code models.ProjectCode) (*models.Project, error) {
	return s.store.UpdateCode(ctx, id, code)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
