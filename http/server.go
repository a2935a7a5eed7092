package http

import (
	"context"
	"log/slog"
	"net"

	"github.com/harrisonbray/tackle"
	"github.com/harrisonbray/tackle/internal/validation"
	"github.com/labstack/echo/v4"
)

// Server represents the HTTP server with all its dependencies.
type Server struct {
	echo   *echo.Echo
	ln     net.Listener
	logger *slog.Logger

	// Configuration
	Addr   string
	Domain string

	// Domain services
	dueDateService             tackle.DueDateService
	schedulingService          tackle.SchedulingService
	multiInspectService        tackle.MultiInspectService
	inspectionService          tackle.InspectionService
	holdingService             tackle.HoldingService
	scheduledInspectionService tackle.ScheduledInspectionService

	// External services
	fileStorage  tackle.FileStorage
	emailService tackle.EmailService
}

// Config holds the configuration for creating a new Server.
type Config struct {
	Addr   string
	Domain string
	Logger *slog.Logger

	// Domain services
	DueDateService             tackle.DueDateService
	SchedulingService          tackle.SchedulingService
	MultiInspectService        tackle.MultiInspectService
	InspectionService          tackle.InspectionService
	HoldingService             tackle.HoldingService
	ScheduledInspectionService tackle.ScheduledInspectionService

	// External services
	FileStorage  tackle.FileStorage
	EmailService tackle.EmailService
}

// NewServer creates a new HTTP server with the given configuration.
func NewServer(cfg Config) *Server {
	s := &Server{
		Addr:                       cfg.Addr,
		Domain:                     cfg.Domain,
		logger:                     cfg.Logger,
		dueDateService:             cfg.DueDateService,
		schedulingService:          cfg.SchedulingService,
		multiInspectService:        cfg.MultiInspectService,
		inspectionService:          cfg.InspectionService,
		holdingService:             cfg.HoldingService,
		scheduledInspectionService: cfg.ScheduledInspectionService,
		fileStorage:                cfg.FileStorage,
		emailService:               cfg.EmailService,
	}

	s.echo = echo.New()
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Validator = validation.NewValidator()

	// Register middleware and routes
	s.registerMiddleware()
	s.registerRoutes()

	return s
}

// Echo returns the underlying Echo instance.
// Use sparingly - prefer registering routes through Server methods.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Open starts the HTTP server.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.echo.Server.Serve(s.ln); err != nil {
			s.logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	s.logger.Info("server started", slog.String("addr", s.Addr))
	return nil
}

// Close gracefully shuts down the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// URL returns the URL of the server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}
