// internal/api/v1/api.go
package api

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"

	"birdcount-go/internal/conf"
	"birdcount-go/internal/dataset"
	"birdcount-go/internal/logging"
	"birdcount-go/internal/observability"
	"birdcount-go/internal/survey"
)

// Cache TTLs for derived views. The dataset is immutable for the process
// lifetime; the TTL only bounds memory for rarely repeated filters.
const (
	viewCacheTTL     = 5 * time.Minute
	viewCacheCleanup = 10 * time.Minute
)

// Controller manages the API routes and handlers
type Controller struct {
	Echo     *echo.Echo
	Group    *echo.Group
	DS       *dataset.Dataset
	Settings *conf.Settings

	statsOptions survey.Options
	viewCache    *cache.Cache           // cache for derived view responses
	apiLogger    *slog.Logger           // structured logger for API operations
	metrics      *observability.Metrics // shared metrics instance
	startTime    time.Time
}

// New creates a new API controller and registers all routes.
func New(e *echo.Echo, ds *dataset.Dataset, settings *conf.Settings, metrics *observability.Metrics) *Controller {
	c := &Controller{
		Echo:         e,
		DS:           ds,
		Settings:     settings,
		statsOptions: survey.Options{PopulationStd: settings.Stats.Population},
		viewCache:    cache.New(viewCacheTTL, viewCacheCleanup),
		apiLogger:    logging.ForService("api"),
		metrics:      metrics,
		startTime:    time.Now(),
	}

	c.Group = e.Group("/api/v1")
	c.initRoutes()

	if metrics != nil {
		metrics.Survey.SetDatasetSize(ds.Len(), len(ds.Species()))
	}

	return c
}

// initRoutes registers all API endpoints
func (c *Controller) initRoutes() {
	c.Group.GET("/health", c.GetHealth)
	c.Group.GET("/species", c.GetSpecies)
	c.Group.GET("/years", c.GetYears)

	statsGroup := c.Group.Group("/stats")
	statsGroup.GET("", c.GetStats)
	statsGroup.GET("/band", c.GetBand)

	c.Group.GET("/timeseries", c.GetTimeSeries)

	mapGroup := c.Group.Group("/map")
	mapGroup.GET("/frames", c.GetMapFrames)
	mapGroup.GET("/areas", c.GetMapAreas)
	mapGroup.GET("/config", c.GetMapConfig)
}

// Shutdown performs cleanup of resources used by the API controller.
func (c *Controller) Shutdown() {
	if c.viewCache != nil {
		c.viewCache.Flush()
	}
	c.Debug("API controller shutting down")
}

// ErrorResponse is the JSON error payload returned by all handlers
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	Code          int    `json:"code"`
	CorrelationID string `json:"correlation_id"` // Unique identifier for tracking this error
}

// NewErrorResponse creates a new API error response
func NewErrorResponse(err error, message string, code int) *ErrorResponse {
	correlationID := generateCorrelationID()

	var errorStr string
	if err != nil {
		errorStr = err.Error()
	} else {
		errorStr = message
	}

	return &ErrorResponse{
		Error:         errorStr,
		Message:       message,
		Code:          code,
		CorrelationID: correlationID,
	}
}

// generateCorrelationID creates a unique identifier for error tracking using
// cryptographic randomness.
func generateCorrelationID() string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 8

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "ERR-RAND"
	}

	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}

// HandleError constructs and returns an appropriate error response
func (c *Controller) HandleError(ctx echo.Context, err error, message string, code int) error {
	errorResp := NewErrorResponse(err, message, code)

	if c.apiLogger != nil {
		var errorStr string
		if err != nil {
			errorStr = err.Error()
		} else {
			errorStr = message
		}

		c.apiLogger.Error("API Error",
			"correlation_id", errorResp.CorrelationID,
			"message", message,
			"error", errorStr,
			"code", code,
			"path", ctx.Request().URL.Path,
			"method", ctx.Request().Method,
			"ip", ctx.RealIP(),
		)
	}

	if c.metrics != nil {
		c.metrics.HTTP.RecordHTTPRequestError(ctx.Request().Method, ctx.Path(), http.StatusText(code))
	}

	return ctx.JSON(code, errorResp)
}

// Debug logs debug messages when debug mode is enabled
func (c *Controller) Debug(format string, v ...any) {
	if c.Settings.WebServer.Debug && c.apiLogger != nil {
		c.apiLogger.Debug(fmt.Sprintf(format, v...))
	}
}

// GetHealth handles GET /api/v1/health
func (c *Controller) GetHealth(ctx echo.Context) error {
	minYear, maxYear := c.DS.YearRange()
	return ctx.JSON(http.StatusOK, map[string]any{
		"status":         "healthy",
		"uptime_seconds": time.Since(c.startTime).Seconds(),
		"records":        c.DS.Len(),
		"species":        len(c.DS.Species()),
		"min_year":       minYear,
		"max_year":       maxYear,
	})
}
