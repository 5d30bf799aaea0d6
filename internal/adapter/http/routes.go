package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/handlers"
	"github.com/Trymax-cloud/TrymaxManagementCloud-sub000/internal/adapter/http/middleware"
)

// Handlers bundles every route handler so RegisterRoutes stays readable as the
// surface grows.
type Handlers struct {
	Health    *handlers.HealthHandler
	Tasks     *handlers.TaskHandler
	Payments  *handlers.PaymentHandler
	Projects  *handlers.ProjectHandler
	Ratings   *handlers.RatingHandler
	Meetings  *handlers.MeetingHandler
	Profiles  *handlers.ProfileHandler
	Analytics *handlers.AnalyticsHandler
	Reminders *handlers.ReminderHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/tasks", h.Tasks.CreateTasks)
		api.GET("/tasks", h.Tasks.ListTasks)
		api.GET("/tasks/:id", h.Tasks.GetTask)
		api.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		api.PUT("/tasks/:id/status", h.Tasks.UpdateStatus)
		api.PUT("/tasks/:id/archived", h.Tasks.SetArchived)
		api.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		api.POST("/payments", h.Payments.CreatePayment)
		api.GET("/payments", h.Payments.ListPayments)
		api.GET("/payments/:id", h.Payments.GetPayment)
		api.PUT("/payments/:id/amount-paid", h.Payments.RecordPayment)
		api.DELETE("/payments/:id", h.Payments.DeletePayment)

		api.POST("/projects", h.Projects.CreateProject)
		api.GET("/projects", h.Projects.ListProjects)
		api.GET("/projects/:id", h.Projects.GetProject)
		api.PATCH("/projects/:id", h.Projects.UpdateProject)
		api.PUT("/projects/:id/stages", h.Projects.UpdateStages)
		api.DELETE("/projects/:id", h.Projects.DeleteProject)

		api.POST("/ratings", h.Ratings.CreateRating)
		api.GET("/ratings", h.Ratings.ListRatings)
		api.DELETE("/ratings/:id", h.Ratings.DeleteRating)

		api.POST("/meetings", h.Meetings.CreateMeeting)
		api.GET("/meetings", h.Meetings.ListMeetings)
		api.GET("/meetings/:id", h.Meetings.GetMeeting)
		api.DELETE("/meetings/:id", h.Meetings.DeleteMeeting)

		api.GET("/profiles", h.Profiles.ListProfiles)
		api.GET("/profiles/:id", h.Profiles.GetProfile)

		api.GET("/analytics/report", h.Analytics.GetReport)

		api.POST("/jobs/payment-reminders", h.Reminders.RunReminders)
	}
}
