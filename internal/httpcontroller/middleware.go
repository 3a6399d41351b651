// internal/httpcontroller/middleware.go
package httpcontroller

import (
	"time"

	"github.com/labstack/echo/v4"
)

// requestLoggerMiddleware logs completed requests to the web logger and
// feeds the HTTP metrics collector.
func (s *Server) requestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			start := time.Now()
			if err = next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			duration := time.Since(start)

			if s.webLogger != nil {
				s.webLogger.Info("request",
					"method", req.Method,
					"path", req.URL.Path,
					"status", res.Status,
					"ip", c.RealIP(),
					"duration_ms", duration.Milliseconds(),
				)
			}

			if s.metrics != nil {
				s.metrics.HTTP.RecordHTTPRequest(req.Method, c.Path(), res.Status, duration.Seconds())
			}

			return err
		}
	}
}
