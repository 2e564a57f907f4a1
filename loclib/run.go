package loclib

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/spf13/afero"
)

// Opts defines a single run.
type Opts struct {
	// Fs is a filesystem to read log and write output. If nil, OS
	// filesystem is used.
	Fs afero.Fs

	LogPath    string
	OutputPath string
	Provider   Provider

	// Logger is optional. If nil, diagnostics are discarded.
	Logger Logger
}

type nopLogger struct{}

func (nopLogger) InvalidAddress(int, string)        {}
func (nopLogger) LookupError(net.IP, string, error) {}

// Run scans a log, resolves each unique address and writes results
// into output table.
//
// Output file is created only after log is fully scanned so if log is
// absent, nothing is written. Lookup failures are not returned: they
// are reported to the logger and corresponding row gets Unknown values.
// An error is returned only if run cannot proceed: log or output file
// cannot be accessed, context is closed or provider cannot be closed.
// If context is closed, output contains rows written so far and the
// address which was being resolved at that moment is not written.
func Run(ctx context.Context, opts Opts) (report Report, err error) {
	if opts.Provider == nil {
		return report, ErrNoProvider
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	logger := opts.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	if closer, ok := opts.Provider.(io.Closer); ok {
		defer func() {
			if closeErr := closer.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("cannot close provider: %w", closeErr)
			}
		}()
	}

	addresses, invalid, err := ScanAddresses(fs, opts.LogPath, logger)
	if err != nil {
		return report, fmt.Errorf("cannot scan log file: %w", err)
	}

	report.Addresses = addresses.Len()
	report.Invalid = invalid

	file, err := fs.Create(opts.OutputPath)
	if err != nil {
		return report, fmt.Errorf("cannot create output file %s: %w", opts.OutputPath, err)
	}

	defer file.Close()

	resolver := NewResolver(opts.Provider, logger)
	writer := newRowWriter(file)
	report.Usage = resolver.UsageStats()

	if err := writer.WriteHeader(); err != nil {
		return report, fmt.Errorf("cannot write a header: %w", err)
	}

	err = addresses.Each(func(token string, ip net.IP) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run is interrupted: %w", err)
		}

		record, ok := resolver.Resolve(ctx, ip)

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run is interrupted: %w", err)
		}

		if ok {
			report.Resolved++
		} else {
			report.Failed++
		}

		if err := writer.WriteRow(token, record); err != nil {
			return fmt.Errorf("cannot write a row for %s: %w", token, err)
		}

		return nil
	})

	if flushErr := writer.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("cannot flush output: %w", flushErr)
	}

	if err != nil {
		return report, err
	}

	if err := file.Close(); err != nil {
		return report, fmt.Errorf("cannot close output file: %w", err)
	}

	return report, nil
}
