package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"

	"github.com/9seconds/loglocate/loclib"
	"github.com/9seconds/loglocate/providers"
	"github.com/spf13/afero"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeProvider(conf *config, fs afero.Fs) (loclib.Provider, error) {
	params := conf.GetSpecificParameters()

	switch conf.GetProvider() {
	case providers.NameIPAPI:
		return providers.NewIPAPI(makeNewHTTPClient(conf), params), nil
	case providers.NameIPInfo:
		return providers.NewIPInfo(makeNewHTTPClient(conf), params), nil
	case providers.NameMaxmind:
		prov, err := providers.NewMaxmind(fs, params)
		if err != nil {
			return nil, fmt.Errorf("cannot create maxmind provider: %w", err)
		}

		return prov, nil
	}

	return nil, fmt.Errorf("%w: %s", providers.ErrUnknownProvider, conf.GetProvider())
}

func makeNewHTTPClient(conf *config) loclib.HTTPClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	httpClient := &http.Client{
		Timeout: conf.GetHTTPTimeout(),
		Jar:     jar,
	}

	return loclib.NewHTTPClient(httpClient, conf.GetUserAgent())
}
