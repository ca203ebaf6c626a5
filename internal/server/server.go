package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"eventhub/internal/config"
	"eventhub/internal/database"
	"eventhub/internal/middleware"
	"eventhub/internal/models"
	"eventhub/internal/repositories"
	"eventhub/internal/services"
	"eventhub/internal/validation"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	shutdownTimeout    = 10 * time.Second
	auditPruneInterval = 24 * time.Hour
)

// Dependencies are the long-lived resources the HTTP server is built from
type Dependencies struct {
	Config *config.Config
	DB     *database.DB
	Logger *slog.Logger
	// Registry receives the service metrics; nil uses the default registry
	Registry *prometheus.Registry
}

// Server is the event hub HTTP API
type Server struct {
	echo     *echo.Echo
	config   *config.Config
	logger   *slog.Logger
	services *serviceSet
}

type serviceSet struct {
	token    services.TokenServiceInterface
	pin      services.PinServiceInterface
	auth     services.AuthServiceInterface
	audit    services.AuditServiceInterface
	event    services.EventServiceInterface
	report   services.ReportServiceInterface
	staff    services.StaffServiceInterface
	staffing services.StaffingServiceInterface
	sales    services.SalesServiceInterface
	imports  services.ImportServiceInterface
}

type repositorySet struct {
	staff       repositories.StaffRepositoryInterface
	profiles    repositories.StaffProfileRepositoryInterface
	events      repositories.EventRepositoryInterface
	reports     repositories.ReportRepositoryInterface
	assignments repositories.AssignmentRepositoryInterface
	sales       repositories.SalesRepositoryInterface
	audit       repositories.AuditLogRepositoryInterface
}

// New wires repositories, services and handlers onto a configured Echo instance
func New(deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	repos := newRepositorySet(deps.DB)
	svc := newServiceSet(deps.Config, repos, services.NewPrometheusMetricsWith(registerer), logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.GetValidator()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(logger)
	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout
	e.IPExtractor = echo.ExtractIPDirect()
	if deps.Config.Server.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(requestLogger(logger))
	e.Use(middleware.SecurityHeaders(!deps.Config.IsDevelopment()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.Config.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	s := &Server{
		echo:     e,
		config:   deps.Config,
		logger:   logger,
		services: svc,
	}
	s.registerRoutes(deps.DB, repos, gatherer)

	return s
}

func newRepositorySet(db *database.DB) *repositorySet {
	return &repositorySet{
		staff:       repositories.NewStaffRepository(db.DB),
		profiles:    repositories.NewStaffProfileRepository(db.DB),
		events:      repositories.NewEventRepository(db.DB),
		reports:     repositories.NewReportRepository(db.DB),
		assignments: repositories.NewAssignmentRepository(db.DB),
		sales:       repositories.NewSalesRepository(db.DB),
		audit:       repositories.NewAuditLogRepository(db.DB),
	}
}

func newServiceSet(cfg *config.Config, repos *repositorySet, metrics services.MetricsRecorderInterface, logger *slog.Logger) *serviceSet {
	auditLogger := services.NewAuditLogger(logger)
	auditService := services.NewAuditService(repos.audit, logger)
	tokenService := services.NewTokenService(&cfg.JWT)
	pinService := services.NewPinService(cfg.Security.BCryptCost, cfg.Security.PinLength)

	return &serviceSet{
		token: tokenService,
		pin:   pinService,
		audit: auditService,
		auth: services.NewAuthService(repos.staff, repos.audit, pinService, tokenService,
			cfg.Security, auditLogger, metrics, logger),
		event: services.NewEventService(repos.events, repos.reports, repos.sales,
			auditService, auditLogger, metrics, logger),
		report: services.NewReportService(repos.events, repos.reports, auditService, metrics, logger),
		staff:  services.NewStaffService(repos.profiles, repos.staff, pinService, auditService, logger),
		staffing: services.NewStaffingService(repos.events, repos.profiles, repos.assignments,
			auditService, auditLogger, metrics, logger),
		sales: services.NewSalesService(repos.events, repos.sales, auditService, auditLogger, metrics, logger),
		imports: services.NewImportService(
			services.ImportRepositories{
				Staff:       repos.staff,
				Profiles:    repos.profiles,
				Events:      repos.events,
				Reports:     repos.reports,
				Assignments: repos.assignments,
				Sales:       repos.sales,
			},
			services.ImportBreakerConfig(cfg.Import),
			pinService, auditService, auditLogger, metrics, logger,
		),
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.Warn("request failed", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// BootstrapAdmin creates the first Admin login from configuration when one is set
func (s *Server) BootstrapAdmin(db *database.DB) error {
	sec := s.config.Security
	if sec.AdminEmail == "" {
		return nil
	}

	pin := s.services.pin.NormalizePin(sec.AdminPin)
	if err := s.services.pin.ValidatePin(pin); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	hash, err := s.services.pin.HashPin(pin)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	admin, err := db.SeedAdmin(sec.AdminEmail, hash)
	if err != nil {
		return err
	}
	if admin.Role != models.RoleAdmin {
		s.logger.Warn("bootstrap admin email belongs to a non-admin login", "email", admin.Email, "role", admin.Role)
	}
	return nil
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)

	if s.config.Security.AuditRetention > 0 {
		go s.pruneAuditLoop(ctx, auditPruneInterval)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("event hub listening", "addr", addr, "env", s.config.Server.Environment)
		errCh <- s.echo.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) pruneAuditLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		s.pruneAudit()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) pruneAudit() {
	if _, err := s.services.audit.Prune(s.config.Security.AuditRetention); err != nil {
		s.logger.Error("audit prune failed", "error", err)
	}
}
