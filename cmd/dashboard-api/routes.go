package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/handler"
	"github.com/noah-isme/matricula-dashboard-api/internal/middleware"
	"github.com/noah-isme/matricula-dashboard-api/internal/service"
	"github.com/noah-isme/matricula-dashboard-api/pkg/config"
	"github.com/noah-isme/matricula-dashboard-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/matricula-dashboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/matricula-dashboard-api/pkg/middleware/requestid"
)

type services struct {
	enrollment *service.EnrollmentService
	wizard     *service.WizardService
	users      *service.UserService
	calendar   *service.CalendarService
	attendance *service.AttendanceService
	documents  *service.DocumentService
	activity   *service.ActivityService
	metrics    *service.MetricsService
}

func newRouter(cfg *config.Config, logr *zap.Logger, svc services, ready func() bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(svc.metrics, "/metrics"))
	r.Use(middleware.WithResponseMeta())

	metricsHandler := handler.NewMetricsHandler(svc.metrics, ready)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	enrollment := handler.NewEnrollmentHandler(svc.enrollment)
	wizard := handler.NewWizardHandler(svc.wizard)
	users := handler.NewUserHandler(svc.users, svc.documents)
	attendance := handler.NewAttendanceHandler(svc.attendance)
	calendar := handler.NewCalendarHandler(svc.calendar)
	documents := handler.NewDocumentHandler(svc.documents)
	activity := handler.NewActivityHandler(svc.activity)

	record := func(action, resource string) gin.HandlerFunc {
		return middleware.Activity(svc.activity, action, resource)
	}
	rosterChanged := middleware.AfterMutation(svc.attendance.RosterChanged)

	api := r.Group(cfg.APIPrefix)

	api.GET("/catalog/grades", enrollment.Catalog)

	enroll := api.Group("/enrollment")
	enroll.GET("/kpis", enrollment.KPIs)
	enroll.POST("/tags", enrollment.Tags)
	enroll.GET("/students", enrollment.View)
	enroll.GET("/students/export", enrollment.Export)
	enroll.GET("/students/:dni", enrollment.Student)
	enroll.POST("/students/:dni/transfer", record("transfer", "student"), rosterChanged, enrollment.Transfer)
	enroll.POST("/students/:dni/withdraw", record("withdraw", "student"), rosterChanged, enrollment.Withdraw)
	enroll.POST("/students/:dni/change-section", record("change_section", "student"), enrollment.ChangeSection)
	enroll.POST("/students/:dni/assign-vacancy", record("assign_vacancy", "student"), enrollment.AssignVacancy)

	enroll.POST("/wizard", wizard.Start)
	enroll.GET("/wizard/:id", wizard.Get)
	enroll.PUT("/wizard/:id/identification", wizard.SetIdentification)
	enroll.PUT("/wizard/:id/placement", wizard.SetPlacement)
	enroll.POST("/wizard/:id/next", wizard.Next)
	enroll.POST("/wizard/:id/back", wizard.Back)
	enroll.POST("/wizard/:id/finish", record("enroll", "student"), rosterChanged, wizard.Finish)

	api.GET("/users", users.List)
	api.POST("/users/bulk-delete", record("bulk_delete", "user"), rosterChanged, users.BulkDelete)
	api.POST("/users/bulk-id-cards", record("bulk_id_cards", "document"), users.BulkIDCards)

	api.GET("/attendance/dashboard", attendance.Dashboard)
	api.GET("/attendance/report", attendance.Report)

	api.GET("/calendar/events", calendar.ListEvents)
	api.GET("/calendar/events/day", calendar.ListDay)
	api.GET("/calendar/month", calendar.Month)
	api.POST("/calendar/events", record("create", "calendar_event"), calendar.Create)
	api.DELETE("/calendar/events/:id", record("delete", "calendar_event"), calendar.Delete)

	api.GET("/documents/students/:dni/enrollment-form", documents.EnrollmentForm)
	api.GET("/documents/students/:dni/certificate", documents.Certificate)
	api.GET("/documents/jobs/:id", documents.Job)
	api.GET("/documents/download", documents.Download)

	api.GET("/activity-logs", activity.List)

	return r
}
