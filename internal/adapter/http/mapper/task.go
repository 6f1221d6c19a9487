package mapper

import (
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		ProjectID: task.ProjectID,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.AssignedTo != nil {
		value := *task.AssignedTo
		item.AssignedTo = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	return item
}

func ToTaskWithProjectItems(tasks []domain.TaskWithProject) []dto.TaskWithProjectItem {
	items := make([]dto.TaskWithProjectItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, dto.TaskWithProjectItem{
			TaskItem: ToTaskItem(task.Task),
			Project:  ToProjectItem(task.Project),
		})
	}
	return items
}
