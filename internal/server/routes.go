package server

import (
	"eventhub/internal/database"
	"eventhub/internal/handlers"
	"eventhub/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes(db *database.DB, repos *repositorySet, gatherer prometheus.Gatherer) {
	e := s.echo
	sec := s.config.Security

	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	authHandler := handlers.NewAuthHandler(s.services.auth)
	adminHandler := handlers.NewAdminHandler(repos.staff, s.services.audit, sec.LockoutDuration)
	eventHandler := handlers.NewEventHandler(s.services.event)
	reportHandler := handlers.NewReportHandler(s.services.report)
	staffHandler := handlers.NewStaffHandler(s.services.staff)
	staffingHandler := handlers.NewStaffingHandler(s.services.staffing)
	salesHandler := handlers.NewSalesHandler(s.services.sales)
	importHandler := handlers.NewImportHandler(s.services.imports, s.config.Import.MaxUploadBytes, s.config.Import.MaxRows)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", middleware.RateLimit("api", sec.RateLimitPerSecond, sec.RateLimitBurst))

	api.POST("/auth/login", authHandler.Login, middleware.RateLimit("login", sec.LoginRatePerSecond, sec.LoginRateBurst))

	authed := api.Group("", middleware.RequireAuth(s.services.token))
	authed.GET("/auth/me", authHandler.Me)

	hub := middleware.RequirePermission(middleware.PermissionHub)
	edit := middleware.RequirePermission(middleware.PermissionEdit)

	events := authed.Group("/events")
	events.POST("", eventHandler.CreateEvent, middleware.RequirePermission(middleware.PermissionCreateEvent))
	events.GET("/hub", eventHandler.Hub, hub)
	events.GET("/archive", eventHandler.Archive, middleware.RequirePermission(middleware.PermissionArchive))
	events.GET("/history", eventHandler.History, middleware.RequirePermission(middleware.PermissionHistory))
	events.GET("/:id", eventHandler.Workspace, hub)
	events.PUT("/:id", eventHandler.UpdateEvent, edit)
	events.GET("/:id/contacts", eventHandler.ListContacts, hub)
	events.POST("/:id/contacts", eventHandler.AddContact, edit)
	events.PUT("/:id/logistics", eventHandler.SaveLogistics, edit)

	events.GET("/:id/reports/:date", reportHandler.GetReport, hub)
	events.PUT("/:id/reports/:date", reportHandler.SaveReport, hub)

	events.GET("/:id/staffing", staffingHandler.Roster, hub)
	events.POST("/:id/staffing/advisory", staffingHandler.Advise, hub)
	events.POST("/:id/staffing", staffingHandler.Assign, hub)
	events.DELETE("/:id/staffing/:staffName", staffingHandler.Remove, edit)

	events.POST("/:id/sales/evaluate", salesHandler.Evaluate, hub)
	events.POST("/:id/sales/autofill", salesHandler.Autofill, hub)
	events.POST("/:id/sales", salesHandler.SaveSales, hub)
	events.GET("/:id/sales", salesHandler.Summary, hub)

	authed.GET("/logistics", eventHandler.ListLogistics, middleware.RequirePermission(middleware.PermissionLogs))

	staff := authed.Group("/staff", middleware.RequirePermission(middleware.PermissionStaff))
	staff.GET("", staffHandler.ListStaff)
	staff.POST("", staffHandler.OnboardStaff)

	admin := authed.Group("/admin", middleware.RequireAdmin())
	admin.GET("/logins", adminHandler.ListLogins)
	admin.POST("/logins/:staffId/unlock", adminHandler.UnlockLogin)
	admin.GET("/audit", adminHandler.ListAuditLogs)
	admin.POST("/import", importHandler.ImportWorkbook)
}
