package handlers

import (
	stderrors "errors"

	"eventhub/internal/errors"
	"eventhub/internal/models"
	"eventhub/internal/reconciliation"
	"eventhub/internal/repositories"
	"eventhub/internal/services"
	"eventhub/internal/sheets"

	"github.com/labstack/echo/v4"
)

// errorMapping ties a service or repository sentinel to an API error code.
// withCause puts the error text in the response details.
type errorMapping struct {
	target    error
	code      errors.ErrorCode
	withCause bool
}

var serviceErrorMappings = []errorMapping{
	// checked first so a wrapped store error keeps the sales code
	{reconciliation.ErrPersistFailed, errors.SalesPersistenceFailure, true},

	{repositories.ErrEventNotFound, errors.EventNotFound, false},
	{repositories.ErrEventAlreadyExists, errors.EventAlreadyExists, false},
	{repositories.ErrLogisticsNotFound, errors.EventNotFound, true},
	{repositories.ErrStaffProfileNotFound, errors.StaffNotFound, false},
	{repositories.ErrStaffNotFound, errors.StaffNotFound, false},
	{repositories.ErrStaffProfileExists, errors.StaffAlreadyExists, false},
	{repositories.ErrStaffAlreadyExists, errors.StaffLoginExists, false},
	{repositories.ErrAlreadyAssigned, errors.StaffAlreadyAssigned, false},
	{repositories.ErrAssignmentNotFound, errors.StaffAssignmentNotFound, false},

	{services.ErrInvalidCredentials, errors.AuthInvalidCredentials, false},
	{services.ErrAccountLocked, errors.AuthAccountLocked, false},

	{models.ErrEndBeforeStart, errors.EventInvalidDateRange, false},
	{services.ErrNotReportingDay, errors.EventNotReportingDay, false},

	{services.ErrNoShortfall, errors.SalesNoShortfall, false},
	{reconciliation.ErrNegativeAmount, errors.SalesNegativeAmount, true},

	{services.ErrPhoneTooShort, errors.ValidationInvalidPhone, false},
	{services.ErrPinEmpty, errors.ValidationInvalidPin, false},
	{services.ErrPinInvalid, errors.ValidationInvalidPin, false},
	{services.ErrInvalidTimeFormat, errors.ValidationInvalidTime, false},

	{models.ErrInvalidWeather, errors.ReportInvalid, true},
	{models.ErrNegativeStalls, errors.ReportInvalid, true},

	{models.ErrVenueRequired, errors.ValidationRequiredField, true},
	{models.ErrContactNameRequired, errors.ValidationRequiredField, true},
	{models.ErrStaffNameRequired, errors.ValidationRequiredField, true},
	{models.ErrInvalidEventType, errors.ValidationInvalidFormat, true},
	{models.ErrInvalidFeeStructure, errors.ValidationInvalidFormat, true},
	{models.ErrInvalidRentStatus, errors.ValidationInvalidFormat, true},
	{models.ErrInvalidRole, errors.ValidationInvalidFormat, true},
	{models.ErrInvalidCommission, errors.ValidationOutOfRange, true},
	{models.ErrNegativeFinancialAmt, errors.ValidationOutOfRange, true},
	{models.ErrInvalidRating, errors.ValidationOutOfRange, true},
	{models.ErrInvalidHourlyRate, errors.ValidationOutOfRange, true},

	{services.ErrInvalidActor, errors.ValidationInvalidEmail, true},
	{services.ErrInvalidResource, errors.ValidationRequiredField, true},
	{services.ErrInvalidAction, errors.ValidationInvalidFormat, true},
	{services.ErrInvalidRange, errors.ValidationGeneral, true},

	{sheets.ErrUnsupportedFormat, errors.ImportUnsupportedFormat, true},
	{sheets.ErrNoWorksheet, errors.ImportUnreadableFile, true},
	{sheets.ErrMultipleSheets, errors.ImportUnreadableFile, true},
	{services.ErrCircuitBreakerOpen, errors.SystemServiceUnavailable, true},
}

// SendServiceError maps an error returned by a service to its API error response.
// Anything unrecognised is a system error.
func SendServiceError(c echo.Context, err error) error {
	var blocked *reconciliation.BlockedError
	if stderrors.As(err, &blocked) {
		return SendError(c, errors.SalesValidationBlocked, errors.WithDetails(blocked.Error()))
	}

	for _, m := range serviceErrorMappings {
		if !stderrors.Is(err, m.target) {
			continue
		}
		if m.withCause {
			return SendError(c, m.code, errors.WithDetails(err.Error()))
		}
		return SendError(c, m.code)
	}

	return SendSystemError(c, err)
}

func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}
