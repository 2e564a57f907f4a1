package main

import (
	"encoding/json"
	"net"
	"os"

	"github.com/9seconds/loglocate/loclib"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

type logger struct {
	scanLog    zerolog.Logger
	lookupLog  zerolog.Logger
	summaryLog zerolog.Logger
}

func (l *logger) InvalidAddress(lineNo int, token string) {
	l.scanLog.Warn().Int("line", lineNo).Str("token", token).Msg("Invalid IP address")
}

func (l *logger) LookupError(ip net.IP, name string, err error) {
	l.lookupLog.Error().Str("provider", name).Stringer("ip", ip).Err(err).Msg("Cannot resolve IP address")
}

func (l *logger) Config(conf *config, logPath, outputPath string) {
	l.summaryLog.Debug().
		Str("provider", conf.GetProvider()).
		Dur("http_timeout", conf.GetHTTPTimeout()).
		Str("user_agent", conf.GetUserAgent()).
		Str("log_path", logPath).
		Str("output_path", outputPath).
		Msg("Configuration")
}

func (l *logger) Summary(report loclib.Report) {
	event := l.summaryLog.Info().
		Int("addresses", report.Addresses).
		Int("invalid", report.Invalid).
		Int("resolved", report.Resolved).
		Int("failed", report.Failed)

	if report.Usage != nil {
		if usage, err := json.Marshal(report.Usage); err == nil {
			event = event.RawJSON("usage", usage)
		}
	}

	event.Msgf("%s unique addresses: %s resolved, %s failed",
		humanize.Comma(int64(report.Addresses)),
		humanize.Comma(int64(report.Resolved)),
		humanize.Comma(int64(report.Failed)))
}

func (l *logger) Fatal(err error, msg string) {
	l.summaryLog.Error().Err(err).Msg(msg)
}

func newLogger(debug bool) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return &logger{
		scanLog:    zerolog.New(os.Stderr).With().Timestamp().Str("event_name", "scan").Logger(),
		lookupLog:  zerolog.New(os.Stderr).With().Timestamp().Str("event_name", "lookup").Logger(),
		summaryLog: zerolog.New(os.Stderr).With().Timestamp().Str("event_name", "summary").Logger(),
	}
}
