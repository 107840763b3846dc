package willyweather

import "fmt"

// NotFoundError indicates the provider matched no Australian beach for a query
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no Australian beach found matching %q", e.Query)
}

// NewNotFoundError creates a new not-found error for a search query
func NewNotFoundError(query string) *NotFoundError {
	return &NotFoundError{Query: query}
}

// RateLimitedError indicates the provider's usage quota is exhausted
type RateLimitedError struct {
	Message string
}

func (e *RateLimitedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("weather provider rate limited: %s", e.Message)
	}
	return "weather provider rate limited"
}

// ProviderError represents any other failure from the weather provider:
// a non-2xx response or a payload that does not decode
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("weather provider error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("weather provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a new provider error
func NewProviderError(message string, err error) *ProviderError {
	return &ProviderError{
		Message: message,
		Err:     err,
	}
}
