package scoring

import "fmt"

// ParseError indicates the model's reply could not be mapped to a score
type ParseError struct {
	Reply string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unparseable model reply: %v", e.Err)
	}
	return "unparseable model reply"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RateLimitedError indicates the model API's usage quota is exhausted
type RateLimitedError struct {
	Message string
}

func (e *RateLimitedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("model API rate limited: %s", e.Message)
	}
	return "model API rate limited"
}

// ProviderError represents any other model API failure
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model API error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("model API error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
