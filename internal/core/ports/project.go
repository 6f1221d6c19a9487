package ports

import (
	"context"

	"taskflow/internal/core/domain"
)

type ProjectRepository interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id int64) (domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	UpdateProject(ctx context.Context, id int64, input domain.UpdateProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	GetProjectStats(ctx context.Context, id int64) (domain.ProjectStats, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id int64) (domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	UpdateProject(ctx context.Context, id int64, input domain.UpdateProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	GetProjectStats(ctx context.Context, id int64) (domain.ProjectStats, error)
}
