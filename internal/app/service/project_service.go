package service

import (
	"context"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
}

func NewProjectService(projectRepository ports.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepository: projectRepository}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepository.ListProjects(ctx)
}

func (s *ProjectService) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	return s.projectRepository.GetProject(ctx, id)
}

func (s *ProjectService) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	if !domain.IsValidColor(input.Color) {
		input.Color = domain.DefaultProjectColor
	}
	return s.projectRepository.CreateProject(ctx, input)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id int64, input domain.UpdateProjectInput) (domain.Project, error) {
	return s.projectRepository.UpdateProject(ctx, id, input)
}

// DeleteProject removes the project and, through the schema's cascade rule,
// every task that references it.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	return s.projectRepository.DeleteProject(ctx, id)
}

func (s *ProjectService) GetProjectStats(ctx context.Context, id int64) (domain.ProjectStats, error) {
	if _, err := s.projectRepository.GetProject(ctx, id); err != nil {
		return domain.ProjectStats{}, err
	}
	return s.projectRepository.GetProjectStats(ctx, id)
}

var _ ports.ProjectService = (*ProjectService)(nil)
