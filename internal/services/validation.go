package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NewValidator returns a validator with the "simple_email" and "utf16min"
// tags registered. simple_email only demands local@domain.tld, which is
// looser than the built-in "email" tag. utf16min=N is like min=N but counts
// UTF-16 code units, so "😀😀" has length 4.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register simple_email: %v", err))
	}
	if err := v.RegisterValidation("utf16min", validateUTF16Min); err != nil {
		panic(fmt.Sprintf("register utf16min: %v", err))
	}
	return v
}

func validateUTF16Min(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("utf16min: bad parameter %q", fl.Param()))
	}
	return utf16Len(fl.Field().String()) >= limit
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// firstFailure runs struct validation and returns the field errors in
// declaration order, or nil when s is valid.
func firstFailure(v *validator.Validate, s any) (validator.ValidationErrors, error) {
	err := v.Struct(s)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("failed to validate input: %w", err)
	}
	return fieldErrs, nil
}

// userRuleError maps field errors of a models.NewUser to the first rule it
// breaks. Any missing required field wins over every length or format rule.
func userRuleError(fieldErrs validator.ValidationErrors) *ValidationError {
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return ErrMissingFields
		}
	}
	switch fieldErrs[0].StructField() {
	case "Username":
		return ErrUsernameTooShort
	case "Password":
		return ErrPasswordTooShort
	default:
		return ErrInvalidEmail
	}
}

// postRuleError maps field errors of a models.NewBlogPost to the first rule
// it breaks. A missing title or content counts as too short.
func postRuleError(fieldErrs validator.ValidationErrors) *ValidationError {
	switch fieldErrs[0].StructField() {
	case "Title":
		return ErrTitleTooShort
	case "Content":
		return ErrContentTooShort
	default:
		return ErrMissingAuthor
	}
}
