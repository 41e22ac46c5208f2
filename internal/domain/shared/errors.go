package shared

import "errors"

// Error codes used by the domain layer. The HTTP boundary maps them to status codes.
const (
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeDoesNotExist  = "DOES_NOT_EXIST"
	CodeValidation    = "VALIDATION_ERROR"
	CodeAccessDenied  = "ACCESS_DENIED"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code.
// Sentinel comparisons via errors.Is only look at the kind, not the message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewAlreadyExistsError reports a uniqueness conflict with existing data.
func NewAlreadyExistsError(message string) *DomainError {
	return NewDomainError(CodeAlreadyExists, message)
}

// NewDoesNotExistError reports a missing record or an invalid reference.
func NewDoesNotExistError(message string) *DomainError {
	return NewDomainError(CodeDoesNotExist, message)
}

// NewValidationError reports input that failed validation.
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewAccessDeniedError reports a denied operation.
func NewAccessDeniedError(message string) *DomainError {
	return NewDomainError(CodeAccessDenied, message)
}

// Kind sentinels, usable with errors.Is.
var (
	ErrAlreadyExists = NewAlreadyExistsError("Resource already exists")
	ErrDoesNotExist  = NewDoesNotExistError("Resource does not exist")
	ErrValidation    = NewValidationError("Invalid input provided")
	ErrAccessDenied  = NewAccessDeniedError("Access denied")
)

// AsDomainError extracts the DomainError from err's chain.
func AsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	domainErr, ok := AsDomainError(err)
	return ok && domainErr.Code == code
}

// IsAlreadyExists reports whether err is a conflict with an existing resource.
func IsAlreadyExists(err error) bool { return hasCode(err, CodeAlreadyExists) }

// IsDoesNotExist reports whether err is a missing resource or page.
func IsDoesNotExist(err error) bool { return hasCode(err, CodeDoesNotExist) }

// IsValidation reports whether err is rejected input.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsAccessDenied reports whether err is a refused operation.
func IsAccessDenied(err error) bool { return hasCode(err, CodeAccessDenied) }
