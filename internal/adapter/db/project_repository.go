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

const listProjectsQuery = `
SELECT id, name, description, color, created_at
FROM projects
ORDER BY created_at, id;
`

const getProjectQuery = `
SELECT id, name, description, color, created_at
FROM projects
WHERE id = ?;
`

const projectStatsQuery = `
SELECT
  COUNT(*)                                          AS total,
  COALESCE(SUM(status = 'todo'), 0)                 AS todo,
  COALESCE(SUM(status = 'in-progress'), 0)          AS in_progress,
  COALESCE(SUM(status = 'done'), 0)                 AS done
FROM tasks
WHERE project_id = ?;
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Color       string         `db:"color"`
	CreatedAt   time.Time      `db:"created_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, listProjectsQuery); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}

	return projects, nil
}

func (r *ProjectRepository) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, getProjectQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return mapProjectRowToDomainProject(row), nil
}

func (r *ProjectRepository) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, description, color) VALUES (?, ?, ?)`,
		input.Name, input.Description, input.Color,
	)
	if err != nil {
		return domain.Project{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Project{}, err
	}

	return r.GetProject(ctx, id)
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, id int64, input domain.UpdateProjectInput) (domain.Project, error) {
	// Existence check first: an UPDATE with unchanged values reports zero
	// affected rows on MySQL, which would be indistinguishable from absence.
	if _, err := r.GetProject(ctx, id); err != nil {
		return domain.Project{}, err
	}

	var (
		assignments []string
		args        []any
	)
	if input.Name != nil {
		assignments = append(assignments, "name = ?")
		args = append(args, *input.Name)
	}
	if input.DescriptionSet {
		assignments = append(assignments, "description = ?")
		args = append(args, input.Description)
	}
	if input.Color != nil {
		assignments = append(assignments, "color = ?")
		args = append(args, *input.Color)
	}

	if len(assignments) > 0 {
		args = append(args, id)
		query := "UPDATE projects SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return domain.Project{}, err
		}
	}

	return r.GetProject(ctx, id)
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) GetProjectStats(ctx context.Context, id int64) (domain.ProjectStats, error) {
	var row struct {
		Total      int `db:"total"`
		Todo       int `db:"todo"`
		InProgress int `db:"in_progress"`
		Done       int `db:"done"`
	}
	if err := r.db.GetContext(ctx, &row, projectStatsQuery, id); err != nil {
		return domain.ProjectStats{}, err
	}

	return domain.ProjectStats{
		Total:      row.Total,
		Todo:       row.Todo,
		InProgress: row.InProgress,
		Done:       row.Done,
	}, nil
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	project := domain.Project{
		ID:        row.ID,
		Name:      row.Name,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}

	return project
}
