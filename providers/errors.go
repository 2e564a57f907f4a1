package providers

import "errors"

var (
	// ErrMalformedResponse is returned if service has responded with
	// something which is not an expected structure. For example, JSON
	// is broken or mandatory fields are absent.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnknownProvider is returned if there is no provider with
	// a given name.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrDatabaseRequired is returned if you are trying to initialize
	// an offline provider without a path to its database.
	ErrDatabaseRequired = errors.New("path to database is required")
)
