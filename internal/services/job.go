package services

import (
	"context"

	"github.com/jobportal/apiserver/types"
)

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job types.Job) (types.Job, error)
	Get(ctx context.Context, id string) (types.Job, error)
	List(ctx context.Context, offset, limit int) ([]types.Job, int, error)
	Update(ctx context.Context, id string, update types.JobUpdate) error
	Delete(ctx context.Context, id string) error
}

// JobService encapsulates job posting use-cases.
type JobService struct {
	repo JobRepository
}

func NewJobService(repo JobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) Create(ctx context.Context, job types.Job) (types.Job, error) {
	return s.repo.Create(ctx, job)
}

func (s *JobService) Get(ctx context.Context, id string) (types.Job, error) {
	return s.repo.Get(ctx, id)
}

func (s *JobService) List(ctx context.Context, offset, limit int) ([]types.Job, int, error) {
	if limit < 1 {
		limit = 10
	}
	return s.repo.List(ctx, offset, limit)
}

func (s *JobService) Update(ctx context.Context, id string, update types.JobUpdate) error {
	return s.repo.Update(ctx, id, update)
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
