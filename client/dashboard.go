package client

import (
	"context"
	"sort"
)

// Dashboard is the view model over the API client and cache. Status and
// priority filters are pushed to the server; the assignee filter is applied
// locally over whatever task set those filters returned.
type Dashboard struct {
	api   *Client
	cache *Cache

	selectedProjectID *int64
	statusFilter      *string
	priorityFilter    *string
	assigneeFilter    string
}

func NewDashboard(api *Client) *Dashboard {
	return &Dashboard{
		api:   api,
		cache: NewCache(),
	}
}

func (d *Dashboard) SelectProject(id int64) {
	d.selectedProjectID = &id
}

func (d *Dashboard) ClearSelection() {
	d.selectedProjectID = nil
}

// SetStatusFilter takes a status value or "" for all.
func (d *Dashboard) SetStatusFilter(status string) {
	d.statusFilter = optional(status)
}

func (d *Dashboard) SetPriorityFilter(priority string) {
	d.priorityFilter = optional(priority)
}

// SetAssigneeFilter takes an assignee name or "" for all. It only narrows
// the already-fetched task set; nothing is sent to the server.
func (d *Dashboard) SetAssigneeFilter(assignee string) {
	d.assigneeFilter = assignee
}

func (d *Dashboard) Projects(ctx context.Context) ([]Project, error) {
	if cached, ok := d.cache.get(projectsKey()); ok {
		return cached.([]Project), nil
	}

	projects, err := d.api.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	d.cache.set(projectsKey(), projects)
	return projects, nil
}

// CurrentProject resolves the selected project, falling back to the first
// project in list order. Nil when no projects exist.
func (d *Dashboard) CurrentProject(ctx context.Context) (*Project, error) {
	if d.selectedProjectID != nil {
		if cached, ok := d.cache.get(projectKey(*d.selectedProjectID)); ok {
			project := cached.(Project)
			return &project, nil
		}

		project, err := d.api.GetProject(ctx, *d.selectedProjectID)
		if err != nil {
			return nil, err
		}
		d.cache.set(projectKey(project.ID), project)
		return &project, nil
	}

	projects, err := d.Projects(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, nil
	}
	return &projects[0], nil
}

func (d *Dashboard) activeQuery() TaskQuery {
	return TaskQuery{
		ProjectID: d.selectedProjectID,
		Status:    d.statusFilter,
		Priority:  d.priorityFilter,
	}
}

func (d *Dashboard) loadTasks(ctx context.Context) ([]Task, error) {
	query := d.activeQuery()
	key := tasksKey(query)

	if cached, ok := d.cache.get(key); ok {
		return cached.([]Task), nil
	}

	tasks, err := d.api.ListTasks(ctx, query)
	if err != nil {
		return nil, err
	}

	d.cache.set(key, tasks)
	return tasks, nil
}

// Tasks returns the active filtered view, order preserved from the server.
func (d *Dashboard) Tasks(ctx context.Context) ([]Task, error) {
	tasks, err := d.loadTasks(ctx)
	if err != nil {
		return nil, err
	}

	if d.assigneeFilter == "" {
		return tasks, nil
	}

	filtered := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.AssignedTo != nil && *task.AssignedTo == d.assigneeFilter {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

// Assignees lists the distinct non-empty assignees of the loaded task set,
// sorted, for the filter dropdown.
func (d *Dashboard) Assignees(ctx context.Context) ([]string, error) {
	tasks, err := d.loadTasks(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var assignees []string
	for _, task := range tasks {
		if task.AssignedTo == nil || *task.AssignedTo == "" {
			continue
		}
		if _, ok := seen[*task.AssignedTo]; ok {
			continue
		}
		seen[*task.AssignedTo] = struct{}{}
		assignees = append(assignees, *task.AssignedTo)
	}

	sort.Strings(assignees)
	return assignees, nil
}

// Stats returns the current project's aggregates, zeroes when no project
// exists.
func (d *Dashboard) Stats(ctx context.Context) (ProjectStats, error) {
	project, err := d.CurrentProject(ctx)
	if err != nil {
		return ProjectStats{}, err
	}
	if project == nil {
		return ProjectStats{}, nil
	}

	key := statsKey(project.ID)
	if cached, ok := d.cache.get(key); ok {
		return cached.(ProjectStats), nil
	}

	stats, err := d.api.GetProjectStats(ctx, project.ID)
	if err != nil {
		return ProjectStats{}, err
	}

	d.cache.set(key, stats)
	return stats, nil
}

func (d *Dashboard) CreateProject(ctx context.Context, req CreateProjectRequest) (Project, error) {
	project, err := d.api.CreateProject(ctx, req)
	if err != nil {
		return Project{}, err
	}

	d.cache.InvalidateProject(project.ID)
	return project, nil
}

func (d *Dashboard) UpdateProject(ctx context.Context, id int64, req UpdateProjectRequest) (Project, error) {
	project, err := d.api.UpdateProject(ctx, id, req)
	if err != nil {
		return Project{}, err
	}

	d.cache.InvalidateProject(id)
	return project, nil
}

func (d *Dashboard) DeleteProject(ctx context.Context, id int64) error {
	if err := d.api.DeleteProject(ctx, id); err != nil {
		return err
	}

	d.cache.InvalidateProject(id)
	if d.selectedProjectID != nil && *d.selectedProjectID == id {
		d.selectedProjectID = nil
	}
	return nil
}

func (d *Dashboard) CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error) {
	task, err := d.api.CreateTask(ctx, req)
	if err != nil {
		return Task{}, err
	}

	d.cache.InvalidateTasks(task.ProjectID)
	return task, nil
}

func (d *Dashboard) UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) (Task, error) {
	task, err := d.api.UpdateTask(ctx, id, req)
	if err != nil {
		return Task{}, err
	}

	d.cache.InvalidateTasks(task.ProjectID)
	return task, nil
}

func (d *Dashboard) DeleteTask(ctx context.Context, task Task) error {
	if err := d.api.DeleteTask(ctx, task.ID); err != nil {
		return err
	}

	d.cache.InvalidateTasks(task.ProjectID)
	return nil
}

// ToggleTaskStatus flips a task between done and todo, checkbox style. The
// new status is applied to the local view immediately; a server rejection
// rolls the view back to the prior observed status.
func (d *Dashboard) ToggleTaskStatus(ctx context.Context, taskID int64, done bool) error {
	status := "todo"
	if done {
		status = "done"
	}

	key := tasksKey(d.activeQuery())
	prior, applied := d.applyLocalStatus(key, taskID, status)

	var projectID int64
	task, err := d.api.UpdateTask(ctx, taskID, UpdateTaskRequest{Status: &status})
	if err != nil {
		if applied {
			d.applyLocalStatus(key, taskID, prior)
		}
		return err
	}
	projectID = task.ProjectID

	d.cache.InvalidateTasks(projectID)
	return nil
}

// applyLocalStatus rewrites a task's status inside the cached active list,
// returning the prior value so a failed mutation can be undone.
func (d *Dashboard) applyLocalStatus(key string, taskID int64, status string) (prior string, applied bool) {
	cached, ok := d.cache.get(key)
	if !ok {
		return "", false
	}

	tasks := cached.([]Task)
	updated := make([]Task, len(tasks))
	copy(updated, tasks)

	for i := range updated {
		if updated[i].ID == taskID {
			prior = updated[i].Status
			updated[i].Status = status
			d.cache.set(key, updated)
			return prior, true
		}
	}
	return "", false
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// Static display labels for the closed enumerations.
var (
	statusLabels = map[string]string{
		"todo":        "Todo",
		"in-progress": "In Progress",
		"done":        "Done",
	}
	priorityLabels = map[string]string{
		"low":    "Low",
		"medium": "Medium",
		"high":   "High",
	}
)

// StatusLabel returns the display label for a status value, falling back to
// the raw value for anything outside the enumeration.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func PriorityLabel(priority string) string {
	if label, ok := priorityLabels[priority]; ok {
		return label
	}
	return priority
}
