package domain

import (
	"errors"
	"fmt"
)

// ErrRateLimited marks provider failures caused by request throttling.
var ErrRateLimited = errors.New("rate limited")

// ErrNoResults marks a provider lookup that succeeded but matched nothing.
var ErrNoResults = errors.New("no results")

// ProviderError wraps a failure of an external provider (content search,
// summarization, geocoding). Provider failures are always recoverable via a
// documented fallback and never fatal to the caller.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsProviderError reports whether err is (or wraps) a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
