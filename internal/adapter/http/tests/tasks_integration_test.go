//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/db"
	httpadapter "github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/dto"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/handlers"
	appservice "github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/app/service"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/core/domain"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/pkg/apierrors"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	taskRepo := dbadapter.NewTaskRepository(s.DB)
	paymentRepo := dbadapter.NewPaymentRepository(s.DB)
	projectRepo := dbadapter.NewProjectRepository(s.DB)
	ratingRepo := dbadapter.NewRatingRepository(s.DB)
	meetingRepo := dbadapter.NewMeetingRepository(s.DB)
	profileRepo := dbadapter.NewProfileRepository(s.DB)

	policy := domain.ArchivePolicy{Enabled: true, Delay: 7 * 24 * time.Hour}

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(s.DB),
		Tasks:     handlers.NewTaskHandler(appservice.NewTaskService(taskRepo, policy)),
		Payments:  handlers.NewPaymentHandler(appservice.NewPaymentService(paymentRepo)),
		Projects:  handlers.NewProjectHandler(appservice.NewProjectService(projectRepo)),
		Ratings:   handlers.NewRatingHandler(appservice.NewRatingService(ratingRepo)),
		Meetings:  handlers.NewMeetingHandler(appservice.NewMeetingService(meetingRepo)),
		Profiles:  handlers.NewProfileHandler(appservice.NewProfileService(profileRepo)),
		Analytics: handlers.NewAnalyticsHandler(appservice.NewAnalyticsService(taskRepo, paymentRepo)),
		Reminders: handlers.NewReminderHandler(
			appservice.NewReminderService(paymentRepo, profileRepo, nil, "no-reply@trymax.cloud", domain.DefaultReminderLeadDays),
			domain.DefaultReminderLeadDays,
		),
	})

	s.router = router
}

func (s *TasksIntegrationSuite) TestPostTasks_CreatesOneTaskPerAssignee() {
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{
		"title":"Prepare quarterly review",
		"assignee_ids":[4,5,6],
		"created_by_id":1,
		"priority":"high",
		"category":"admin",
		"due_date":"2026-03-31"
	}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 3)
	for i, assigneeID := range []uint64{4, 5, 6} {
		s.Require().Equal(assigneeID, got[i].AssigneeID)
		s.Require().Equal("not_started", got[i].Status)
		s.Require().Equal("high", got[i].Priority)
		s.Require().Equal("2026-03-31", *got[i].DueDate)
	}

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM tasks"))
	s.Require().Equal(3, count)
}

func (s *TasksIntegrationSuite) TestPutStatus_WalksTheLifecycle() {
	s.seedTask("not_started")

	for _, status := range []string{"in_progress", "completed", "in_progress", "on_hold"} {
		req := httptest.NewRequest(http.MethodPut, "/api/tasks/1/status",
			strings.NewReader(`{"status":"`+status+`"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Require().Equal(http.StatusOK, rec.Code, "moving to %s", status)

		var got dto.TaskItem
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
		s.Require().Equal(status, got.Status)
	}

	// Reopening cleared the completion timestamp on the way through.
	var completedAtSet bool
	s.Require().NoError(s.DB.Get(&completedAtSet, "SELECT completed_at IS NOT NULL FROM tasks WHERE id = 1"))
	s.Require().False(completedAtSet)
}

func (s *TasksIntegrationSuite) TestPutStatus_DeniedTransitionReturnsConflict() {
	s.seedTask("not_started")

	req := httptest.NewRequest(http.MethodPut, "/api/tasks/1/status", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(http.StatusConflict, got.ErrDetails.Code)
	s.Require().Equal("This status change is not allowed", got.ErrDetails.Message)

	var status string
	s.Require().NoError(s.DB.Get(&status, "SELECT status FROM tasks WHERE id = 1"))
	s.Require().Equal("not_started", status)
}

func (s *TasksIntegrationSuite) TestArchiveOverride_HidesAndRestoresTask() {
	s.seedTask("in_progress")

	req := httptest.NewRequest(http.MethodPut, "/api/tasks/1/archived", strings.NewReader(`{"archived":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	// Default view no longer shows the task; archived view does.
	req = httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	var visible []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &visible))
	s.Require().Len(visible, 0)

	req = httptest.NewRequest(http.MethodGet, "/api/tasks?archived=true", nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	var archived []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &archived))
	s.Require().Len(archived, 1)

	// Null restores the automatic rule, which keeps unfinished work visible.
	req = httptest.NewRequest(http.MethodPut, "/api/tasks/1/archived", strings.NewReader(`{"archived":null}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &visible))
	s.Require().Len(visible, 1)
}

func (s *TasksIntegrationSuite) seedTask(status string) {
	_, err := s.DB.Exec(
		"INSERT INTO tasks (title, assignee_id, created_by_id, status, priority, category) VALUES (?, 4, 1, ?, 'normal', 'general')",
		"Seeded task", status,
	)
	s.Require().NoError(err)
}
