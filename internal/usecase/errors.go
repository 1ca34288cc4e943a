package usecase

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeDatabase   = "DATABASE_ERROR"
)

// DomainError is a business-rule failure that is reported to the caller
// as-is (bad input, missing record). It is never retried.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

func IsNotFound(err error) bool {
	de, ok := err.(*DomainError)
	return ok && de.Code == CodeNotFound
}

// TechnicalError is an infrastructure failure (storage unavailable). The
// caller only sees a generic server error.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
