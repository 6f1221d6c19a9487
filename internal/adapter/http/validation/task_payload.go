package validation

import (
	"encoding/json"
	"strings"
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

var taskFields = map[string]struct{}{
	"title":       {},
	"description": {},
	"status":      {},
	"priority":    {},
	"assignedTo":  {},
	"dueDate":     {},
	"projectId":   {},
}

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if field, ok := unknownField(raw, taskFields); ok {
		return domain.CreateTaskInput{}, &FieldError{Field: field}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, &FieldError{Field: "title"}
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.CreateTaskInput{}, &FieldError{Field: "status"}
		}
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
		if !priority.Valid() {
			return domain.CreateTaskInput{}, &FieldError{Field: "priority"}
		}
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, &FieldError{Field: "dueDate"}
		}
		dueDate = &parsed
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
		ProjectID:   req.ProjectID,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if field, ok := unknownField(raw, taskFields); ok {
		return domain.UpdateTaskInput{}, &FieldError{Field: field}
	}
	if len(raw) == 0 {
		return domain.UpdateTaskInput{}, ErrEmptyUpdate
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, &FieldError{Field: "title"}
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, &FieldError{Field: "title"}
		}
		title = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, &FieldError{Field: "description"}
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, &FieldError{Field: "status"}
		}
		value := domain.TaskStatus(*req.Status)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, &FieldError{Field: "status"}
		}
		status = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, &FieldError{Field: "priority"}
		}
		value := domain.TaskPriority(*req.Priority)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, &FieldError{Field: "priority"}
		}
		priority = &value
	}

	assignedToSet := hasJSONField(raw, "assignedTo")
	if assignedToSet && !isJSONNull(raw["assignedTo"]) && req.AssignedTo == nil {
		return domain.UpdateTaskInput{}, &FieldError{Field: "assignedTo"}
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "dueDate")
	if dueDateSet && !isJSONNull(raw["dueDate"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, &FieldError{Field: "dueDate"}
		}
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, &FieldError{Field: "dueDate"}
		}
		dueDate = &parsed
	}

	if hasJSONField(raw, "projectId") && req.ProjectID == nil {
		return domain.UpdateTaskInput{}, &FieldError{Field: "projectId"}
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Status:         status,
		Priority:       priority,
		AssignedTo:     req.AssignedTo,
		AssignedToSet:  assignedToSet,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
		ProjectID:      req.ProjectID,
	}, nil
}
