package dto

type TaskItem struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	ProjectID   int64   `json:"projectId"`
	CreatedAt   string  `json:"createdAt"`
}

type TaskWithProjectItem struct {
	TaskItem
	Project ProjectItem `json:"project"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssignedTo  *string `json:"assignedTo" binding:"omitempty,max=255"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	ProjectID   int64   `json:"projectId" binding:"required,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	AssignedTo  *string `json:"assignedTo" binding:"omitempty,max=255"`
	DueDate     *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	ProjectID   *int64  `json:"projectId" binding:"omitempty,gt=0"`
}
