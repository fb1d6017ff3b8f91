package validation

import (
	"reflect"
	"regexp"
	"strings"

	"walletwise/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("account_status", validateAccountStatus)
	_ = v.RegisterValidation("account_source", validateAccountSource)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateAccountType validates that account type is one of the allowed types
func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(strings.ToLower(fl.Field().String()))
}

// validateAccountStatus validates that account status is one of the allowed statuses
func validateAccountStatus(fl validator.FieldLevel) bool {
	return models.IsValidAccountStatus(strings.ToLower(fl.Field().String()))
}

// validateAccountSource validates that the data source is one of the known providers
func validateAccountSource(fl validator.FieldLevel) bool {
	return models.IsValidAccountSource(strings.ToLower(fl.Field().String()))
}

// validateCurrencyCode validates an ISO 4217 style currency code (three uppercase letters)
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	matched, _ := regexp.MatchString(`^[A-Z]{3}$`, code)
	return matched
}

// validateDecimalAmount validates that a string field parses as an exact decimal
func validateDecimalAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}
	_, err := decimal.NewFromString(raw)
	return err == nil
}

// validatePositiveAmount validates that a string decimal field is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return amount.GreaterThan(decimal.Zero)
}
