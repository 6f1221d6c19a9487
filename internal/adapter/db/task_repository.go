package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

const taskColumns = `id, title, description, status, priority, assigned_to, due_date, project_id, created_at`

const getTaskQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE id = ?;
`

const listTasksWithProjectQuery = `
SELECT
  t.id, t.title, t.description, t.status, t.priority, t.assigned_to,
  t.due_date, t.project_id, t.created_at,
  p.id          AS p_id,
  p.name        AS p_name,
  p.description AS p_description,
  p.color       AS p_color,
  p.created_at  AS p_created_at
FROM tasks t
INNER JOIN projects p ON p.id = t.project_id
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	AssignedTo  sql.NullString `db:"assigned_to"`
	DueDate     sql.NullTime   `db:"due_date"`
	ProjectID   int64          `db:"project_id"`
	CreatedAt   time.Time      `db:"created_at"`
}

type taskWithProjectRow struct {
	taskRow
	PID          int64          `db:"p_id"`
	PName        string         `db:"p_name"`
	PDescription sql.NullString `db:"p_description"`
	PColor       string         `db:"p_color"`
	PCreatedAt   time.Time      `db:"p_created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// taskFilterClause renders the filter as an AND-composed WHERE clause over a
// table alias. An empty filter produces no clause at all.
func taskFilterClause(alias string, filter domain.TaskFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if filter.ProjectID != nil {
		conditions = append(conditions, alias+".project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.Status != nil {
		conditions = append(conditions, alias+".status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conditions = append(conditions, alias+".priority = ?")
		args = append(args, string(*filter.Priority))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *TaskRepository) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	clause, args := taskFilterClause("tasks", filter)
	query := "SELECT " + taskColumns + " FROM tasks " + clause + " ORDER BY created_at, id"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

// ListTasksByProject is the dedicated by-project projection; it shares the
// filter path with a single predicate.
func (r *TaskRepository) ListTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	return r.ListTasks(ctx, domain.TaskFilter{ProjectID: &projectID})
}

func (r *TaskRepository) ListTasksWithProject(ctx context.Context, filter domain.TaskFilter) ([]domain.TaskWithProject, error) {
	clause, args := taskFilterClause("t", filter)
	query := listTasksWithProjectQuery + clause + " ORDER BY t.created_at, t.id"

	var rows []taskWithProjectRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.TaskWithProject, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, domain.TaskWithProject{
			Task: mapTaskRowToDomainTask(row.taskRow),
			Project: mapProjectRowToDomainProject(projectRow{
				ID:          row.PID,
				Name:        row.PName,
				Description: row.PDescription,
				Color:       row.PColor,
				CreatedAt:   row.PCreatedAt,
			}),
		})
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id int64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, priority, assigned_to, due_date, project_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.Title, input.Description, string(input.Status), string(input.Priority),
		input.AssignedTo, input.DueDate, input.ProjectID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetTask(ctx, id)
}

func (r *TaskRepository) UpdateTask(ctx context.Context, id int64, input domain.UpdateTaskInput) (domain.Task, error) {
	if _, err := r.GetTask(ctx, id); err != nil {
		return domain.Task{}, err
	}

	var (
		assignments []string
		args        []any
	)
	if input.Title != nil {
		assignments = append(assignments, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		assignments = append(assignments, "description = ?")
		args = append(args, input.Description)
	}
	if input.Status != nil {
		assignments = append(assignments, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		assignments = append(assignments, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.AssignedToSet {
		assignments = append(assignments, "assigned_to = ?")
		args = append(args, input.AssignedTo)
	}
	if input.DueDateSet {
		assignments = append(assignments, "due_date = ?")
		args = append(args, input.DueDate)
	}
	if input.ProjectID != nil {
		assignments = append(assignments, "project_id = ?")
		args = append(args, *input.ProjectID)
	}

	if len(assignments) > 0 {
		args = append(args, id)
		query := "UPDATE tasks SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Task{}, err
		}
	}

	return r.GetTask(ctx, id)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		ProjectID: row.ProjectID,
		CreatedAt: row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.AssignedTo.Valid {
		value := row.AssignedTo.String
		task.AssignedTo = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}
