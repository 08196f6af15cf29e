package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"montecampo/pkg/config"
	"montecampo/pkg/logger"
	"montecampo/pkg/model"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex    = regexp.MustCompile(`^[0-9+]{10,15}$`)
	documentRegex = regexp.MustCompile(`^[0-9]{6,12}$`)
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	rules    config.BusinessRules
	logger   *logger.Logger
}

func NewBookingValidator(rules config.BusinessRules, log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("intl_phone", validatePhone); err != nil {
		log.Fatal("Failed to register 'intl_phone' validator",
			"error", err,
		)
	}
	if err := v.RegisterValidation("document_number", validateDocument); err != nil {
		log.Fatal("Failed to register 'document_number' validator",
			"error", err,
		)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		rules:    rules,
		logger:   log,
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateDocument(fl validator.FieldLevel) bool {
	return documentRegex.MatchString(fl.Field().String())
}

// ValidateCustomer expects sanitized input: normalization happens in the
// handler before this runs.
func (v *BookingValidator) ValidateCustomer(customer *model.CustomerInfo) error {
	if err := v.validate.Struct(customer); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

// ValidateStay checks the requested dates against the property rules. Dates
// are compared at day precision.
func (v *BookingValidator) ValidateStay(checkIn, checkOut time.Time) error {
	stay := model.DateRange{CheckIn: checkIn, CheckOut: checkOut}.Normalized()

	if !stay.IsValid() {
		return ValidationErrors{
			ValidationError{
				Field:   "CheckOut",
				Message: "check_out must be after check_in",
			},
		}
	}

	nights := stay.Nights()
	if nights < v.rules.MinNights {
		return ValidationErrors{
			ValidationError{
				Field:   "CheckOut",
				Message: fmt.Sprintf("stay must be at least %d night(s), got %d", v.rules.MinNights, nights),
			},
		}
	}
	if nights > v.rules.MaxNights {
		return ValidationErrors{
			ValidationError{
				Field:   "CheckOut",
				Message: fmt.Sprintf("stay must be at most %d night(s), got %d", v.rules.MaxNights, nights),
			},
		}
	}

	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		case "intl_phone":
			message = fmt.Sprintf("%s must be 10-15 digits, optionally with '+'", err.Field())
		case "document_number":
			message = fmt.Sprintf("%s must be 6-12 digits", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
