package main

import (
	"os"

	"github.com/9seconds/loglocate/loclib"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var version = "dev"

var (
	app = kingpin.New(
		"loglocate",
		"Geolocate client addresses found in a web server access log")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("LOGLOCATE_DEBUG").
		Bool()
	configPath = app.Flag("config", "Path to the config (hjson, json or toml).").
			Short('c').
			Envar("LOGLOCATE_CONFIG").
			String()
	providerName = app.Flag("provider", "Geolocation provider to use.").
			Short('p').
			Envar("LOGLOCATE_PROVIDER").
			String()
	logPath = app.Arg("log-path", "Path to the access log.").
		Default("access.log").
		String()
	outputPath = app.Arg("output-path", "Path to the CSV file with results.").
			Default("ip_locations.csv").
			String()
)

func init() {
	app.Version(version)
}

func main() {
	// .env is optional, it only populates environment variables
	godotenv.Load() // nolint: errcheck

	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := newLogger(*debug)

	conf, err := parseConfig(*configPath, *providerName)
	if err != nil {
		log.Fatal(err, "Cannot parse config")
		os.Exit(1)
	}

	log.Config(conf, *logPath, *outputPath)

	fs := afero.NewOsFs()

	provider, err := makeProvider(conf, fs)
	if err != nil {
		log.Fatal(err, "Cannot initialize provider")
		os.Exit(1)
	}

	ctx, cancel := makeRootContext()

	report, err := loclib.Run(ctx, loclib.Opts{
		Fs:         fs,
		LogPath:    *logPath,
		OutputPath: *outputPath,
		Provider:   provider,
		Logger:     log,
	})

	cancel()

	if err != nil {
		log.Fatal(err, "Run has failed")
		os.Exit(1)
	}

	log.Summary(report)
}
