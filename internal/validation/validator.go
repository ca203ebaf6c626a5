package validation

import (
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"eventhub/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const TimeLayout = "15:04"

var (
	pinRegex  = regexp.MustCompile(`^\d{4}$`)
	hhmmRegex = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("hhmm", validateHHMM)
	_ = v.RegisterValidation("hhmm_or_tba", validateHHMMOrTBA)
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("pin", validatePin)
	_ = v.RegisterValidation("au_mobile", validateAUMobile)
	_ = v.RegisterValidation("event_role", validateEventRole)
	_ = v.RegisterValidation("weather", validateWeather)
	_ = v.RegisterValidation("setup_type", validateSetupType)
	_ = v.RegisterValidation("fee_structure", validateFeeStructure)
	_ = v.RegisterValidation("iso_date", validateISODate)

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Validate lets the shared validator serve as echo's Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// IsHHMM reports whether s is a 24-hour HH:MM clock time
func IsHHMM(s string) bool {
	if !hhmmRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// validateHHMM accepts 24-hour clock times such as 08:00 or 22:30
func validateHHMM(fl validator.FieldLevel) bool {
	return IsHHMM(fl.Field().String())
}

func validateHHMMOrTBA(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == models.TimeTBA || IsHHMM(value)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// validateCurrency accepts non-negative decimals with at most two places
func validateCurrency(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !amount.IsNegative() && amount.Equal(amount.Truncate(2))
}

func validatePin(fl validator.FieldLevel) bool {
	return pinRegex.MatchString(fl.Field().String())
}

func validateAUMobile(fl validator.FieldLevel) bool {
	return models.IsValidAUMobile(fl.Field().String())
}

func validateEventRole(fl validator.FieldLevel) bool {
	return models.IsValidRole(fl.Field().String())
}

func validateWeather(fl validator.FieldLevel) bool {
	return slices.Contains(models.WeatherOptions, fl.Field().String())
}

func validateSetupType(fl validator.FieldLevel) bool {
	return slices.Contains(models.SetupTypes, fl.Field().String())
}

func validateFeeStructure(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.FeeFixedRent, models.FeeCommission, models.FeeHybrid:
		return true
	}
	return false
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}
