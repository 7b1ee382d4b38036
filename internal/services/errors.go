package services

// ValidationError reports a candidate record that failed a field rule. The
// store is never modified when one is returned.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// User validation failures, in the order they are checked.
var (
	ErrMissingFields = &ValidationError{
		Code:    "MissingFields",
		Message: "Missing required fields: username, email, and password are required.",
	}
	ErrUsernameTooShort = &ValidationError{
		Code:    "UsernameTooShort",
		Message: "Username must be at least 3 characters.",
	}
	ErrPasswordTooShort = &ValidationError{
		Code:    "PasswordTooShort",
		Message: "Password must be at least 6 characters.",
	}
	ErrInvalidEmail = &ValidationError{
		Code:    "InvalidEmail",
		Message: "A valid email is required.",
	}
)

// Blog post validation failures, in the order they are checked.
var (
	ErrTitleTooShort = &ValidationError{
		Code:    "TitleTooShort",
		Message: "Title must be at least 3 characters.",
	}
	ErrContentTooShort = &ValidationError{
		Code:    "ContentTooShort",
		Message: "Content must be at least 10 characters.",
	}
	ErrMissingAuthor = &ValidationError{
		Code:    "MissingAuthor",
		Message: "Author ID is required.",
	}
)
