//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"taskflow/internal/adapter/http/dto"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router    *gin.Engine
	projectID int64
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()
	s.router = newAPIRouter(s.DB)

	rec := s.postJSON("/api/projects", `{"name":"Fixture"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var project dto.ProjectItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &project))
	s.projectID = project.ID
}

func (s *TasksIntegrationSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) putJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) createTask(body string) dto.TaskItem {
	rec := s.postJSON("/api/tasks", body)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var task dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &task))
	return task
}

func (s *TasksIntegrationSuite) TestCreateTask_AppliesDefaults() {
	task := s.createTask(`{"title":"Write docs","projectId":` + itoa(s.projectID) + `}`)

	s.Require().NotZero(task.ID)
	s.Require().Equal("todo", task.Status)
	s.Require().Equal("medium", task.Priority)
	s.Require().Equal(s.projectID, task.ProjectID)
	s.Require().Nil(task.AssignedTo)
	s.Require().Nil(task.DueDate)
}

func (s *TasksIntegrationSuite) TestCreateTask_MissingProjectPersistsNothing() {
	rec := s.postJSON("/api/tasks", `{"title":"Orphan","projectId":9999}`)
	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM tasks WHERE project_id = 9999"))
	s.Require().Zero(count)
}

func (s *TasksIntegrationSuite) TestListTasks_FilterConjunctionPreservesOrder() {
	id := itoa(s.projectID)
	s.createTask(`{"title":"a","projectId":` + id + `,"status":"done","priority":"high"}`)
	s.createTask(`{"title":"b","projectId":` + id + `,"status":"done","priority":"low"}`)
	s.createTask(`{"title":"c","projectId":` + id + `,"status":"todo","priority":"high"}`)
	s.createTask(`{"title":"d","projectId":` + id + `,"status":"done","priority":"high"}`)

	rec := s.get("/api/tasks?status=done&priority=high")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 2)
	s.Require().Equal("a", got[0].Title)
	s.Require().Equal("d", got[1].Title)
}

func (s *TasksIntegrationSuite) TestListTasks_WithProjectJoinsProjectFields() {
	s.createTask(`{"title":"joined","projectId":` + itoa(s.projectID) + `}`)

	rec := s.get("/api/tasks?withProject=true")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskWithProjectItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Require().Equal("joined", got[0].Title)
	s.Require().Equal(s.projectID, got[0].Project.ID)
	s.Require().Equal("Fixture", got[0].Project.Name)
}

func (s *TasksIntegrationSuite) TestUpdateTask_PartialLeavesOtherFields() {
	task := s.createTask(`{"title":"Initial","projectId":` + itoa(s.projectID) + `,"priority":"high","assignedTo":"sarah"}`)

	rec := s.putJSON("/api/tasks/"+itoa(task.ID), `{"description":"now with notes"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal("Initial", updated.Title)
	s.Require().Equal("high", updated.Priority)
	s.Require().Equal("sarah", *updated.AssignedTo)
	s.Require().Equal("now with notes", *updated.Description)
}

func (s *TasksIntegrationSuite) TestUpdateTask_NullClearsOptionalField() {
	task := s.createTask(`{"title":"Assigned","projectId":` + itoa(s.projectID) + `,"assignedTo":"sarah"}`)

	rec := s.putJSON("/api/tasks/"+itoa(task.ID), `{"assignedTo":null}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Nil(updated.AssignedTo)
}

func (s *TasksIntegrationSuite) TestUpdateTask_StatusToggleMovesStats() {
	task := s.createTask(`{"title":"Toggle me","projectId":` + itoa(s.projectID) + `}`)

	rec := s.putJSON("/api/tasks/"+itoa(task.ID), `{"status":"done"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	statsRec := s.get("/api/projects/" + itoa(s.projectID) + "/stats")
	s.Require().Equal(http.StatusOK, statsRec.Code)

	var stats dto.ProjectStatsItem
	s.Require().NoError(json.Unmarshal(statsRec.Body.Bytes(), &stats))
	s.Require().Equal(1, stats.Total)
	s.Require().Zero(stats.Todo)
	s.Require().Equal(1, stats.Done)
}

func (s *TasksIntegrationSuite) TestUpdateTask_ReassignProject() {
	task := s.createTask(`{"title":"Mover","projectId":` + itoa(s.projectID) + `}`)

	rec := s.postJSON("/api/projects", `{"name":"Destination"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var destination dto.ProjectItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &destination))

	rec = s.putJSON("/api/tasks/"+itoa(task.ID), `{"projectId":`+itoa(destination.ID)+`}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal(destination.ID, updated.ProjectID)
}

func (s *TasksIntegrationSuite) TestUpdateTask_ReassignToMissingProjectRejected() {
	task := s.createTask(`{"title":"Stays","projectId":` + itoa(s.projectID) + `}`)

	rec := s.putJSON("/api/tasks/"+itoa(task.ID), `{"projectId":9999}`)
	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)

	getRec := s.get("/api/tasks/" + itoa(task.ID))
	s.Require().Equal(http.StatusOK, getRec.Code)

	var unchanged dto.TaskItem
	s.Require().NoError(json.Unmarshal(getRec.Body.Bytes(), &unchanged))
	s.Require().Equal(s.projectID, unchanged.ProjectID)
}

func (s *TasksIntegrationSuite) TestDeleteTask_ThenNotFound() {
	task := s.createTask(`{"title":"Gone soon","projectId":` + itoa(s.projectID) + `}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+itoa(task.ID), nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	s.Require().Equal(http.StatusNotFound, s.get("/api/tasks/"+itoa(task.ID)).Code)
}
