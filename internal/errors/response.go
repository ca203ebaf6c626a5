package errors

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the envelope every failed request returns
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// FieldError is one rejected request field
type FieldError struct {
	Field   string
	Message string
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError reports rejected fields as "field: message" details, in the order given
func NewValidationError(fields []FieldError, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fields))
	for _, f := range fields {
		details = append(details, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// NewSystemError hides an internal failure behind SYSTEM_001; the cause is logged, never sent
func NewSystemError(traceID string) *ErrorResponse {
	return NewErrorResponse(SystemInternalError, traceID)
}

var statusByCode = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidEmail:  http.StatusBadRequest,
	ValidationInvalidPhone:  http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,
	ValidationInvalidTime:   http.StatusBadRequest,
	ValidationInvalidPin:    http.StatusBadRequest,
	SalesNegativeAmount:     http.StatusBadRequest,
	ImportUnsupportedFormat: http.StatusBadRequest,

	AuthInvalidCredentials:     http.StatusUnauthorized,
	AuthMissingToken:           http.StatusUnauthorized,
	AuthExpiredToken:           http.StatusUnauthorized,
	AuthInvalidTokenFormat:     http.StatusUnauthorized,
	AuthInsufficientPermission: http.StatusForbidden,

	EventNotFound:           http.StatusNotFound,
	StaffNotFound:           http.StatusNotFound,
	StaffAssignmentNotFound: http.StatusNotFound,

	EventAlreadyExists:   http.StatusConflict,
	StaffAlreadyExists:   http.StatusConflict,
	StaffAlreadyAssigned: http.StatusConflict,
	StaffLoginExists:     http.StatusConflict,

	ImportFileTooLarge: http.StatusRequestEntityTooLarge,

	// semantic checks on well-formed input, the balancing gate among them
	SalesValidationBlocked: http.StatusUnprocessableEntity,
	SalesNoShortfall:       http.StatusUnprocessableEntity,
	EventInvalidDateRange:  http.StatusUnprocessableEntity,
	EventNotReportingDay:   http.StatusUnprocessableEntity,
	ReportInvalid:          http.StatusUnprocessableEntity,
	ImportUnreadableFile:   http.StatusUnprocessableEntity,

	AuthAccountLocked:       http.StatusTooManyRequests,
	SystemRateLimitExceeded: http.StatusTooManyRequests,

	// the store rejected a balanced record
	SalesPersistenceFailure: http.StatusBadGateway,

	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status for code; unknown codes are 500
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the HTTP status for the response's code
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
