package services

import (
	"context"

	"github.com/jobportal/apiserver/types"
)

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application types.Application) (types.Application, error)
	ListByUser(ctx context.Context, userID string) ([]types.Application, error)
	Delete(ctx context.Context, id string) error
}

// ApplicationService encapsulates job application use-cases.
type ApplicationService struct {
	repo ApplicationRepository
}

func NewApplicationService(repo ApplicationRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

func (s *ApplicationService) Create(ctx context.Context, application types.Application) (types.Application, error) {
	return s.repo.Create(ctx, application)
}

func (s *ApplicationService) ListByUser(ctx context.Context, userID string) ([]types.Application, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
