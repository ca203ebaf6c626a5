package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_006"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
	ValidationInvalidTime   ErrorCode = "VALIDATION_008"
	ValidationInvalidPin    ErrorCode = "VALIDATION_009"
)

// Event error codes (EVENT_*)
const (
	EventNotFound         ErrorCode = "EVENT_001"
	EventAlreadyExists    ErrorCode = "EVENT_002"
	EventInvalidDateRange ErrorCode = "EVENT_003"
	EventNotReportingDay  ErrorCode = "EVENT_004"
)

// Staff error codes (STAFF_*)
const (
	StaffNotFound           ErrorCode = "STAFF_001"
	StaffAlreadyExists      ErrorCode = "STAFF_002"
	StaffAlreadyAssigned    ErrorCode = "STAFF_003"
	StaffAssignmentNotFound ErrorCode = "STAFF_004"
	StaffLoginExists        ErrorCode = "STAFF_005"
)

// Sales error codes (SALES_*)
const (
	SalesValidationBlocked  ErrorCode = "SALES_001"
	SalesPersistenceFailure ErrorCode = "SALES_002"
	SalesNoShortfall        ErrorCode = "SALES_003"
	SalesNegativeAmount     ErrorCode = "SALES_004"
)

// Report error codes (REPORT_*)
const (
	ReportInvalid ErrorCode = "REPORT_001"
)

// Import error codes (IMPORT_*)
const (
	ImportUnsupportedFormat ErrorCode = "IMPORT_001"
	ImportUnreadableFile    ErrorCode = "IMPORT_002"
	ImportFileTooLarge      ErrorCode = "IMPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or PIN",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Session has expired, please sign in again",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Your role does not have access to this page",
	AuthAccountLocked:          "Login is temporarily locked after too many failed attempts",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidPhone:  "Invalid phone number format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidTime:   "Invalid time, expected HH:MM",
	ValidationInvalidPin:    "PIN must be exactly 4 digits",

	// Event errors
	EventNotFound:         "Event not found",
	EventAlreadyExists:    "An event with this venue and date already exists",
	EventInvalidDateRange: "End date cannot be before start date",
	EventNotReportingDay:  "Date is outside the event's days",

	// Staff errors
	StaffNotFound:           "Staff member not found",
	StaffAlreadyExists:      "A staff member with this name already exists",
	StaffAlreadyAssigned:    "Staff member is already assigned to this event",
	StaffAssignmentNotFound: "Staff member is not assigned to this event",
	StaffLoginExists:        "A login with this email already exists",

	// Sales errors
	SalesValidationBlocked:  "Sales totals do not balance",
	SalesPersistenceFailure: "Error saving sales",
	SalesNoShortfall:        "Nothing to auto-fill: categories are not short of the gross total",
	SalesNegativeAmount:     "Sales amounts cannot be negative",

	// Report errors
	ReportInvalid: "Daily report is invalid",

	// Import errors
	ImportUnsupportedFormat: "Unsupported spreadsheet format, expected .xlsx or .xls",
	ImportUnreadableFile:    "Spreadsheet could not be read",
	ImportFileTooLarge:      "Spreadsheet exceeds the upload size limit",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
