package service

import (
	"context"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type TaskService struct {
	taskRepository    ports.TaskRepository
	projectRepository ports.ProjectRepository
}

func NewTaskService(taskRepository ports.TaskRepository, projectRepository ports.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		projectRepository: projectRepository,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	// The plain by-project query is the dashboard's hot path; route it
	// through the dedicated projection.
	if filter.ProjectID != nil && filter.Status == nil && filter.Priority == nil {
		return s.taskRepository.ListTasksByProject(ctx, *filter.ProjectID)
	}
	return s.taskRepository.ListTasks(ctx, filter)
}

func (s *TaskService) ListTasksWithProject(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskWithProject, error) {
	return s.taskRepository.ListTasksWithProject(ctx, filter)
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, id)
}

// CreateTask checks the referenced project before inserting so a dangling
// projectId surfaces as ErrProjectNotFound instead of a driver error.
func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if _, err := s.projectRepository.GetProject(ctx, input.ProjectID); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.ProjectID != nil {
		if _, err := s.projectRepository.GetProject(ctx, *input.ProjectID); err != nil {
			return domain.Task{}, err
		}
	}
	return s.taskRepository.UpdateTask(ctx, id, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	return s.taskRepository.DeleteTask(ctx, id)
}

var _ ports.TaskService = (*TaskService)(nil)
