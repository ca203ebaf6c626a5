package handlers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/errors"

	"github.com/labstack/echo/v4"
)

// Handlers answer failures through SendError (known client or business errors),
// SendServiceError (sentinel errors from the service layer) or SendSystemError
// (anything else). None of them return echo.NewHTTPError.

// TraceIDContextKey is where middleware.RequestID stores the trace ID
const TraceIDContextKey = "trace_id"

// SuccessResponse wraps data returned by the event endpoints
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError sends the envelope for code, stamped with the request trace ID
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err against the trace ID and answers SYSTEM_001 without it
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	actor, _ := c.Get(ctxUserEmail).(string)
	slog.Error("request failed",
		"trace_id", traceID,
		"route", c.Path(),
		"user_email", actor,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, errors.NewSystemError(traceID))
}
