package errors

import "errors"

// Codes used across the application. Structural failures carry one of
// these; soft model states are plain sentinel errors in their packages.
const (
	CodeParse         = "parse_error"
	CodeOrder         = "order_error"
	CodeSeriesIO      = "series_io_error"
	CodeProfileIO     = "profile_io_error"
	CodeInvalidConfig = "invalid_config"
)

// AppError encodes domain specific error details.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap produces a new AppError instance.
func Wrap(code, message string, err error) error {
	if err == nil {
		return &AppError{Code: code, Message: message}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// IsCode helps callers differentiate failures.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
