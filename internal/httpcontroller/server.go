// internal/httpcontroller/server.go
package httpcontroller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api "birdcount-go/internal/api/v1"
	"birdcount-go/internal/conf"
	"birdcount-go/internal/dataset"
	"birdcount-go/internal/logging"
	"birdcount-go/internal/observability"
)

// Server encapsulates the Echo server and related configuration.
type Server struct {
	Echo     *echo.Echo
	DS       *dataset.Dataset
	Settings *conf.Settings
	API      *api.Controller

	metrics        *observability.Metrics
	webLogger      *slog.Logger
	webLoggerClose func() error
}

// New initializes a new HTTP server over the loaded dataset.
func New(settings *conf.Settings, ds *dataset.Dataset, metrics *observability.Metrics) *Server {
	s := &Server{
		Echo:     echo.New(),
		DS:       ds,
		Settings: settings,
		metrics:  metrics,
	}

	s.Echo.HideBanner = true
	s.Echo.IPExtractor = echo.ExtractIPFromXFFHeader()

	s.initLogger()
	s.initMiddleware()

	s.API = api.New(s.Echo, ds, settings, metrics)
	s.initDashboardRoutes()

	return s
}

// initLogger sets up the rotated web request log when enabled in settings.
func (s *Server) initLogger() {
	logConfig := s.Settings.WebServer.Log
	if !logConfig.Enabled {
		return
	}

	level := slog.LevelInfo
	if s.Settings.WebServer.Debug {
		level = slog.LevelDebug
	}

	logger, closeFunc, err := logging.NewFileLogger(logConfig.Path, "web", level, logging.FileLoggerOptions{
		MaxSizeMB:  logConfig.MaxSize,
		MaxBackups: logConfig.MaxBackups,
		MaxAgeDays: logConfig.MaxAge,
	})
	if err != nil {
		logging.Warn("web log file unavailable, logging requests to default logger", "error", err)
		s.webLogger = logging.ForService("web")
		return
	}

	s.webLogger = logger
	s.webLoggerClose = closeFunc
}

func (s *Server) initMiddleware() {
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.Gzip())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
	}))
	s.Echo.Use(s.requestLoggerMiddleware())
}

// Start begins listening and serving HTTP requests. It blocks until the
// server stops.
func (s *Server) Start() error {
	logging.Info("HTTP server starting", "port", s.Settings.WebServer.Port)
	err := s.Echo.Start(":" + s.Settings.WebServer.Port)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.API != nil {
		s.API.Shutdown()
	}
	err := s.Echo.Shutdown(ctx)
	if s.webLoggerClose != nil {
		if closeErr := s.webLoggerClose(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
