package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"time"

	"github.com/9seconds/loglocate/providers"
	"github.com/BurntSushi/toml"
	"github.com/hjson/hjson-go"
)

const (
	DefaultProvider    = providers.NameIPAPI
	DefaultHTTPTimeout = time.Duration(0)
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	return d.UnmarshalText([]byte(vv))
}

func (d *duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	Provider           string            `json:"provider" toml:"provider"`
	HTTPTimeout        duration          `json:"http_timeout" toml:"http_timeout"`
	UserAgent          string            `json:"user_agent" toml:"user_agent"`
	SpecificParameters map[string]string `json:"specific_parameters" toml:"specific_parameters"`
}

func (c config) GetProvider() string {
	if c.Provider != "" {
		return c.Provider
	}

	return DefaultProvider
}

func (c config) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration == 0 {
		return DefaultHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

func (c config) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}

	return "loglocate/" + version
}

func (c config) GetSpecificParameters() map[string]string {
	if c.SpecificParameters == nil {
		return map[string]string{}
	}

	return c.SpecificParameters
}

func (c config) validate() error {
	if !providers.Known(c.GetProvider()) {
		return fmt.Errorf("%w: %s", providers.ErrUnknownProvider, c.GetProvider())
	}

	if c.HTTPTimeout.Duration < 0 {
		return fmt.Errorf("incorrect http timeout %v", c.HTTPTimeout.Duration)
	}

	return nil
}

// parseConfig reads a config file. Empty path means that there is no
// config file and defaults should be used. providerOverride, if set,
// takes precedence over the provider from the file.
func parseConfig(path, providerOverride string) (*config, error) {
	conf := &config{}

	if path != "" {
		content, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read file: %w", err)
		}

		if strings.EqualFold(filepath.Ext(path), ".toml") {
			err = parseTOMLConfig(content, conf)
		} else {
			err = parseHJSONConfig(content, conf)
		}

		if err != nil {
			return nil, err
		}
	}

	if providerOverride != "" {
		conf.Provider = providerOverride
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return conf, nil
}

func parseTOMLConfig(content []byte, conf *config) error {
	if _, err := toml.Decode(string(content), conf); err != nil {
		return fmt.Errorf("cannot parse toml: %w", err)
	}

	return nil
}

func parseHJSONConfig(content []byte, conf *config) error {
	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return fmt.Errorf("cannot parse json: %w", err)
	}

	rawBytes, err := json.Marshal(rawMap)
	if err != nil {
		return fmt.Errorf("cannot normalize json: %w", err)
	}

	if err := json.Unmarshal(rawBytes, conf); err != nil {
		return fmt.Errorf("incorrect config structure: %w", err)
	}

	return nil
}
