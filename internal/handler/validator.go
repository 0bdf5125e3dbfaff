package handler

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/session"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validate      *Validator
)

// GetValidator returns the shared validator with the game's custom tags
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("action", validateAction)
		_ = v.RegisterValidation("profile", validateProfile)
		_ = v.RegisterValidation("gender", validateGender)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// jsonFieldName reports fields by their JSON name so errors match the
// request body the client sent
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func validateAction(fl validator.FieldLevel) bool {
	return slices.Contains(session.ActionNames(), fl.Field().String())
}

func validateProfile(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case config.ProfileEasy, config.ProfileNormal, config.ProfileHard:
		return true
	}
	return false
}

func validateGender(fl validator.FieldLevel) bool {
	return domain.Gender(fl.Field().String()).IsValid()
}

// FormatValidationError maps failed fields to player readable messages
// without leaking Go struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgInvalidFormat
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = ValidationMsgRequired
		case "action":
			errs[field] = ValidationMsgAction
		case "profile":
			errs[field] = ValidationMsgProfile
		case "gender":
			errs[field] = ValidationMsgGender
		case "max", "lte", "lt":
			errs[field] = fmt.Sprintf(ValidationMsgMaxFormat, e.Param())
		case "min", "gte", "gt":
			errs[field] = fmt.Sprintf(ValidationMsgMinFormat, e.Param())
		case "excludesall":
			errs[field] = ValidationMsgInvalidChar
		default:
			errs[field] = ValidationMsgInvalid
		}
	}

	return errs
}
