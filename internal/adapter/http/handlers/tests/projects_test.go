package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/handlers"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/domain"
	"taskflow/pkg/apierrors"
	"taskflow/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) UpdateProject(ctx context.Context, id int64, input domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *projectServiceMock) GetProjectStats(ctx context.Context, id int64) (domain.ProjectStats, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ProjectStats), args.Error(1)
}

func newProjectRouter(serviceMock *projectServiceMock) *gin.Engine {
	handler := handlers.NewProjectHandler(serviceMock)

	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware())
	group.GET("/projects", handler.ListProjects)
	group.POST("/projects", handler.CreateProject)
	group.GET("/projects/:id", handler.GetProject)
	group.PUT("/projects/:id", handler.UpdateProject)
	group.DELETE("/projects/:id", handler.DeleteProject)
	group.GET("/projects/:id/stats", handler.GetProjectStats)
	return router
}

func TestProjectHandler_ListProjects_Success(t *testing.T) {
	description := "client work"
	createdAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	serviceMock := new(projectServiceMock)
	serviceMock.On("ListProjects", mock.Anything).Return(
		[]domain.Project{
			{
				ID:          1,
				Name:        "Website Redesign",
				Description: &description,
				Color:       "#3B82F6",
				CreatedAt:   createdAt,
			},
		},
		nil,
	).Once()

	router := newProjectRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.ProjectItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, "Website Redesign", got[0].Name)
	require.Equal(t, "client work", *got[0].Description)
	require.Equal(t, "#3B82F6", got[0].Color)
	require.Equal(t, "2026-03-10T09:30:00Z", got[0].CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_ListProjects_Error(t *testing.T) {
	serviceMock := new(projectServiceMock)
	serviceMock.On("ListProjects", mock.Anything).Return(nil, errors.New("db is down")).Once()

	router := newProjectRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not list projects", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_GetProject_NotFound(t *testing.T) {
	serviceMock := new(projectServiceMock)
	serviceMock.On("GetProject", mock.Anything, int64(42)).
		Return(domain.Project{}, domain.ErrProjectNotFound).Once()

	router := newProjectRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_GetProject_InvalidID(t *testing.T) {
	serviceMock := new(projectServiceMock)
	router := newProjectRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "GetProject")
}

func TestProjectHandler_CreateProject_Success(t *testing.T) {
	serviceMock := new(projectServiceMock)
	serviceMock.On("CreateProject", mock.Anything, domain.CreateProjectInput{
		Name:  "Launch",
		Color: "#10B981",
	}).Return(domain.Project{
		ID:        7,
		Name:      "Launch",
		Color:     "#10B981",
		CreatedAt: time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC),
	}, nil).Once()

	router := newProjectRouter(serviceMock)

	body := `{"name":"Launch","color":"#10B981"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.ProjectItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, int64(7), got.ID)
	require.Equal(t, "#10B981", got.Color)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_CreateProject_SubstitutesDefaultColor(t *testing.T) {
	serviceMock := new(projectServiceMock)
	serviceMock.On("CreateProject", mock.Anything, mock.MatchedBy(func(input domain.CreateProjectInput) bool {
		return input.Name == "Launch" && input.Color == domain.DefaultProjectColor
	})).Return(domain.Project{ID: 8, Name: "Launch", Color: domain.DefaultProjectColor}, nil).Once()

	router := newProjectRouter(serviceMock)

	body := `{"name":"Launch","color":"red"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_CreateProject_EmptyName(t *testing.T) {
	serviceMock := new(projectServiceMock)
	router := newProjectRouter(serviceMock)

	body := `{"name":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Contains(t, got.ErrDetails.Message, "name")
	serviceMock.AssertNotCalled(t, "CreateProject")
}

func TestProjectHandler_CreateProject_UnknownField(t *testing.T) {
	serviceMock := new(projectServiceMock)
	router := newProjectRouter(serviceMock)

	body := `{"name":"Launch","owner":"sam"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Contains(t, got.ErrDetails.Message, "owner")
	serviceMock.AssertNotCalled(t, "CreateProject")
}

func TestProjectHandler_UpdateProject_PartialDescriptionOnly(t *testing.T) {
	description := "x"

	serviceMock := new(projectServiceMock)
	serviceMock.On("UpdateProject", mock.Anything, int64(3), mock.MatchedBy(func(input domain.UpdateProjectInput) bool {
		return input.Name == nil &&
			input.Color == nil &&
			input.DescriptionSet &&
			input.Description != nil && *input.Description == "x"
	})).Return(domain.Project{
		ID:          3,
		Name:        "Unchanged",
		Description: &description,
		Color:       "#3B82F6",
	}, nil).Once()

	router := newProjectRouter(serviceMock)

	body := `{"description":"x"}`
	req := httptest.NewRequest(http.MethodPut, "/api/projects/3", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ProjectItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Unchanged", got.Name)
	require.Equal(t, "#3B82F6", got.Color)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_UpdateProject_NotFound(t *testing.T) {
	serviceMock := new(projectServiceMock)
	serviceMock.On("UpdateProject", mock.Anything, int64(99), mock.Anything).
		Return(domain.Project{}, domain.ErrProjectNotFound).Once()

	router := newProjectRouter(serviceMock)

	body := `{"name":"whatever"}`
	req := httptest.NewRequest(http.MethodPut, "/api/projects/99", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_DeleteProject_Success(t *testing.T) {
	serviceMock := new(projectServiceMock)
	serviceMock.On("DeleteProject", mock.Anything, int64(5)).Return(nil).Once()

	router := newProjectRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_DeleteProject_NotFound(t *testing.T) {
	serviceMock := new(projectServiceMock)
	serviceMock.On("DeleteProject", mock.Anything, int64(5)).
		Return(domain.ErrProjectNotFound).Once()

	router := newProjectRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_GetProjectStats_Success(t *testing.T) {
	serviceMock := new(projectServiceMock)
	serviceMock.On("GetProjectStats", mock.Anything, int64(2)).Return(domain.ProjectStats{
		Total:      6,
		Todo:       2,
		InProgress: 1,
		Done:       3,
	}, nil).Once()

	router := newProjectRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/2/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.ProjectStatsItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 6, got.Total)
	require.Equal(t, 2, got.Todo)
	require.Equal(t, 1, got.InProgress)
	require.Equal(t, 3, got.Done)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_GetProjectStats_NotFound(t *testing.T) {
	serviceMock := new(projectServiceMock)
	serviceMock.On("GetProjectStats", mock.Anything, int64(404)).
		Return(domain.ProjectStats{}, domain.ErrProjectNotFound).Once()

	router := newProjectRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/404/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}
