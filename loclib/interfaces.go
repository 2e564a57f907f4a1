package loclib

import (
	"context"
	"net"
	"net/http"
)

// Provider resolves a single IP address into a location record.
//
// Provider may return a record with empty fields if service has no
// data for them. Callers should not assume that it is normalized.
type Provider interface {
	Name() string
	Lookup(context.Context, net.IP) (LocationRecord, error)
}

// HTTPClient is a minimal interface of http client which is used by
// online providers.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Logger observes recoverable problems of the run. Nothing in this
// package prints to console, everything goes here.
type Logger interface {
	InvalidAddress(lineNo int, token string)
	LookupError(ip net.IP, name string, err error)
}
