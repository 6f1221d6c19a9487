// Package client is a Go consumer of the taskflow API. It mirrors server
// state in a keyed cache and derives dashboard views without redundant
// round trips.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/pkg/apierrors"
)

// Wire types are the API's response shapes.
type (
	Project         = dto.ProjectItem
	Task            = dto.TaskItem
	TaskWithProject = dto.TaskWithProjectItem
	ProjectStats    = dto.ProjectStatsItem

	CreateProjectRequest = dto.CreateProjectRequest
	UpdateProjectRequest = dto.UpdateProjectRequest
	CreateTaskRequest    = dto.CreateTaskRequest
	UpdateTaskRequest    = dto.UpdateTaskRequest
)

// TaskQuery is the server-side filter set. Nil fields impose no constraint.
type TaskQuery struct {
	ProjectID *int64
	Status    *string
	Priority  *string
}

func (q TaskQuery) values() url.Values {
	params := url.Values{}
	if q.ProjectID != nil {
		params.Set("projectId", strconv.FormatInt(*q.ProjectID, 10))
	}
	if q.Status != nil {
		params.Set("status", *q.Status)
	}
	if q.Priority != nil {
		params.Set("priority", *q.Priority)
	}
	return params
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, id int64) (Project, error) {
	var project Project
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d", id), nil, &project)
	return project, err
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (Project, error) {
	var project Project
	err := c.do(ctx, http.MethodPost, "/api/projects", req, &project)
	return project, err
}

func (c *Client) UpdateProject(ctx context.Context, id int64, req UpdateProjectRequest) (Project, error) {
	var project Project
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d", id), req, &project)
	return project, err
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, nil)
}

func (c *Client) GetProjectStats(ctx context.Context, id int64) (ProjectStats, error) {
	var stats ProjectStats
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d/stats", id), nil, &stats)
	return stats, err
}

func (c *Client) ListTasks(ctx context.Context, query TaskQuery) ([]Task, error) {
	path := "/api/tasks"
	if params := query.values(); len(params) > 0 {
		path += "?" + params.Encode()
	}

	var tasks []Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) ListTasksWithProject(ctx context.Context, query TaskQuery) ([]TaskWithProject, error) {
	params := query.values()
	params.Set("withProject", "true")

	var tasks []TaskWithProject
	if err := c.do(ctx, http.MethodGet, "/api/tasks?"+params.Encode(), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id int64) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil, &task)
	return task, err
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", req, &task)
	return task, err
}

func (c *Client) UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), req, &task)
	return task, err
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	var envelope apierrors.JsonErr
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.ErrDetails.Message != "" {
		apiErr.Message = envelope.ErrDetails.Message
	}

	return apiErr
}
