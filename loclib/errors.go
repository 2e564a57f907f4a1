package loclib

import (
	"errors"
)

var (
	ErrLogFileNotFound = errors.New("log file is not found")
	ErrNoProvider      = errors.New("provider is not set")
)

// ServiceError is returned by providers if geolocation service has
// responded but told that it cannot resolve an address. For example,
// it could be rate limited or address is in reserved range.
type ServiceError struct {
	Provider string
	Message  string
	err      error
}

func (s *ServiceError) Unwrap() error {
	if s == nil {
		return nil
	}

	return s.err
}

func (s *ServiceError) Error() string {
	switch {
	case s == nil:
		return ""
	case s.err != nil && s.Message != "":
		return s.Provider + " has failed: " + s.Message + ": " + s.err.Error()
	case s.err != nil:
		return s.Provider + " has failed: " + s.err.Error()
	}

	return s.Provider + " has failed: " + s.Message
}

// NewServiceError creates a new ServiceError. err is optional and
// could be nil.
func NewServiceError(provider, message string, err error) *ServiceError {
	return &ServiceError{
		Provider: provider,
		Message:  message,
		err:      err,
	}
}
