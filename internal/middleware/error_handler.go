package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"eventhub/internal/errors"
	"eventhub/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Error responses by code, route and status",
	},
	[]string{"code", "endpoint", "status"},
)

// codeByStatus covers errors raised by echo itself (routing, binding, middleware)
var codeByStatus = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInsufficientPermission,
	http.StatusNotFound:              errors.EventNotFound,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ImportFileTooLarge,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

var tagMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email address",
	"iso_date":      "must be a date in YYYY-MM-DD format",
	"hhmm":          "must be a time in HH:MM format",
	"hhmm_or_tba":   "must be a time in HH:MM format or TBA",
	"currency":      "must be a non-negative amount with at most 2 decimal places",
	"pin":           "must be a 4-digit PIN",
	"au_mobile":     "must be a mobile number with at least 10 digits",
	"event_role":    oneOf(models.ValidRoles...),
	"weather":       oneOf(models.WeatherOptions...),
	"setup_type":    oneOf(models.SetupTypes...),
	"fee_structure": oneOf(models.FeeFixedRent, models.FeeCommission, models.FeeHybrid),
}

func oneOf(options ...string) string {
	return "must be one of: " + strings.Join(options, ", ")
}

// HTTPErrorHandler renders every error that reaches echo as the standard envelope.
// Handlers normally answer through SendError themselves; what lands here is
// binding and validation failures, routing errors and unexpected returns.
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		errorResponse, status := render(err, traceID)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request().Context(), level, "request error",
			"trace_id", traceID,
			"error_code", errorResponse.Error.Code,
			"status", status,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

		if sendErr := c.JSON(status, errorResponse); sendErr != nil {
			logger.Error("failed to send error response", "trace_id", traceID, "error", sendErr)
		}
	}
}

func render(err error, traceID string) (*errors.ErrorResponse, int) {
	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		code, ok := codeByStatus[echoErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(fmt.Sprintf("%v", echoErr.Message))), echoErr.Code
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		fields := make([]errors.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, errors.FieldError{Field: fe.Field(), Message: formatValidationError(fe)})
		}
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	return errors.NewSystemError(traceID), http.StatusInternalServerError
}

// formatValidationError turns a validator.FieldError into the message shown after the field name
func formatValidationError(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "min", "max":
		bound := "at least"
		if fe.Tag() == "max" {
			bound = "at most"
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be %s %s characters long", bound, fe.Param())
		}
		return fmt.Sprintf("must be %s %s", bound, fe.Param())
	case "oneof":
		return oneOf(strings.Fields(fe.Param())...)
	case "required_if":
		return "is required when " + fe.Param()
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
