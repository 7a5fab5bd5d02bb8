package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingItems    = "MISSING_ITEMS"
	ErrCodeMissingCustomer = "MISSING_CUSTOMER"
	ErrCodeFetchFailed     = "FETCH_FAILED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingItems    = NewDomainError(ErrCodeMissingItems, "Order must contain at least one item")
	ErrMissingCustomer = NewDomainError(ErrCodeMissingCustomer, "Customer name, email, address, city and zip are required")
	ErrFetchFailed     = NewDomainError(ErrCodeFetchFailed, "Failed to fetch collection objects")
)
