package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"eventhub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsRecoveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "panics_recovered_total",
		Help: "Handler panics turned into SYSTEM_001 responses, by route",
	},
	[]string{"route"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response and logs the stack.
// A nil logger falls back to slog.Default.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				route := c.Path()
				if route == "" {
					route = c.Request().URL.Path
				}
				panicsRecoveredTotal.WithLabelValues(route).Inc()

				actor, _ := c.Get("user_email").(string)
				logger.Error("panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"route", route,
					"method", c.Request().Method,
					"user_email", actor,
					"stack_trace", string(debug.Stack()),
				)

				// the handler may have started writing before it panicked
				if c.Response().Committed {
					err = nil
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
