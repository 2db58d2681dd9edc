package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/saadjs/dhyan-cli/internal/model"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func initValidator() {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("sex", func(fl validator.FieldLevel) bool {
			_, err := model.ParseSex(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("activity", func(fl validator.FieldLevel) bool {
			_, err := model.ParseActivityLevel(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("mealtype", func(fl validator.FieldLevel) bool {
			_, err := model.ParseMealType(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("workoutcat", func(fl validator.FieldLevel) bool {
			_, err := model.ParseWorkoutCategory(fl.Field().String())
			return err == nil
		})
	})
}

// validateInput checks struct tags and reports the first failing field as
// ErrInvalidInput.
func validateInput(in any) error {
	initValidator()
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fe := fieldErrs[0]
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, fieldName(fe.Field()), describeRule(fe))
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be > " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + fe.Param()
	case "sex":
		return "must be male or female"
	case "activity":
		return "must be one of sedentary, light, moderate, active, very-active"
	case "mealtype":
		return "must be one of breakfast, lunch, dinner, snack"
	case "workoutcat":
		return "must be one of cardio, strength, flexibility, sports"
	default:
		return "failed " + fe.Tag()
	}
}

// fieldName turns a Go field name such as DurationMin into duration-min.
func fieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(name[i-1])
			if prev >= 'a' && prev <= 'z' {
				b.WriteByte('-')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}
