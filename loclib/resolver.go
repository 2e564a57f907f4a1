package loclib

import (
	"context"
	"net"
)

// Resolver is a thin wrapper around Provider which never fails. If
// provider returns an error, it is reported to logger and unknown
// location is returned instead.
type Resolver struct {
	provider   Provider
	logger     Logger
	usageStats *UsageStats
}

// Resolve returns a normalized location of the given address. Second
// value tells if provider was able to resolve it.
func (r *Resolver) Resolve(ctx context.Context, ip net.IP) (LocationRecord, bool) {
	record, err := r.provider.Lookup(ctx, ip)

	r.usageStats.Used(err)

	if err != nil {
		r.logger.LookupError(ip, r.provider.Name(), err)

		return UnknownLocation(), false
	}

	return record.Normalized(), true
}

func (r *Resolver) UsageStats() *UsageStats {
	return r.usageStats
}

func NewResolver(provider Provider, logger Logger) *Resolver {
	return &Resolver{
		provider: provider,
		logger:   logger,
		usageStats: &UsageStats{
			Name: provider.Name(),
		},
	}
}
