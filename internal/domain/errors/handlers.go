package errors

import (
	stderrors "errors"
)

// domainError pairs a domain error with the cause that triggered it. errors.As finds
// the AppError for rendering while errors.Is still matches the original cause.
type domainError struct {
	app   AppError
	cause error
}

func (e *domainError) Error() string {
	if e.cause == nil {
		return e.app.Error()
	}

	return e.app.Error() + ": " + e.cause.Error()
}

func (e *domainError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.app}
	}

	return []error{e.app, e.cause}
}

// WrapDomainError attaches domainErr to cause. cause may be nil.
func WrapDomainError(domainErr AppError, cause error) error {
	return &domainError{app: domainErr, cause: cause}
}

// WrapDomainErrorWithDetails is WrapDomainError with user-visible details on the domain error.
func WrapDomainErrorWithDetails(domainErr *BaseError, cause error, details string) error {
	return WrapDomainError(domainErr.WithDetails(details), cause)
}

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
