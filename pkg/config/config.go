// Copyright 2026, The heroku-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads client settings from defaults, an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultBaseURL is the root of the public Platform API.
	DefaultBaseURL = "https://api.heroku.com"
	// DefaultTimeout bounds each API call when nothing else is configured.
	DefaultTimeout = 30 * time.Second
)

// Environment variables read by Load.
const (
	EnvAPIKey     = "HEROKU_API_KEY"
	EnvAPIURL     = "HEROKU_API_URL"
	EnvTimeout    = "HEROKU_API_TIMEOUT"
	EnvUserAgent  = "HEROKU_USER_AGENT"
	EnvDebug      = "HEROKU_DEBUG"
	EnvConfigFile = "HEROKU_CONFIG_FILE"
)

// debugVerbosity is the log level HEROKU_DEBUG=true turns on; it logs each request and response status.
const debugVerbosity = 10

// Config holds the settings a client is created with. It is not modified after Load returns.
type Config struct {
	BaseURL   string        `validate:"required,url"`
	Token     string
	Timeout   time.Duration `validate:"gt=0"`
	UserAgent string
	// Verbose is the glog verbosity; 10 logs API calls, 11 adds headers and bodies.
	Verbose int `validate:"gte=0"`
}

// fileConfig is the on-disk shape. Timeout and verbose accept numbers or strings and are coerced afterwards.
type fileConfig struct {
	BaseURL   string      `yaml:"base_url"`
	Token     string      `yaml:"token"`
	Timeout   interface{} `yaml:"timeout"`
	UserAgent string      `yaml:"user_agent"`
	Verbose   interface{} `yaml:"verbose"`
}

// Default returns the configuration used when no file or environment overrides are present.
func Default() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Load reads the configuration file, if any, then applies environment overrides and validates the result.
func Load() (*Config, error) {
	return load(os.LookupEnv)
}

func load(lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	path, explicit := lookupEnv(EnvConfigFile)
	if !explicit {
		home, err := os.UserHomeDir()
		if err == nil {
			path = DefaultPath(home)
		}
	}
	if path != "" {
		if err := cfg.mergeFile(path, explicit); err != nil {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the location of the configuration file under the given home directory.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "heroku-go", "config.yaml")
}

// mergeFile applies the settings in the YAML file at path. A missing file is an error only when it was named
// explicitly.
func (c *Config) mergeFile(path string, mustExist bool) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return nil
		}
		return errors.Wrapf(err, "reading config file %s", path)
	}

	var fc fileConfig
	if err = yaml.UnmarshalStrict(b, &fc); err != nil {
		return errors.Wrapf(err, "parsing config file %s", path)
	}

	var result error
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Token != "" {
		c.Token = fc.Token
	}
	if fc.UserAgent != "" {
		c.UserAgent = fc.UserAgent
	}
	if fc.Timeout != nil {
		d, err := ParseTimeout(fc.Timeout)
		if err != nil {
			result = multierror.Append(result, errors.Wrap(err, "timeout"))
		} else {
			c.Timeout = d
		}
	}
	if fc.Verbose != nil {
		v, err := cast.ToIntE(fc.Verbose)
		if err != nil {
			result = multierror.Append(result, errors.Wrap(err, "verbose"))
		} else {
			c.Verbose = v
		}
	}
	return errors.Wrapf(result, "invalid config file %s", path)
}

func (c *Config) mergeEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvAPIKey); ok {
		c.Token = strings.TrimSpace(v)
	}
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookupEnv(EnvUserAgent); ok && v != "" {
		c.UserAgent = v
	}

	var result error
	if v, ok := lookupEnv(EnvTimeout); ok && v != "" {
		d, err := ParseTimeout(v)
		if err != nil {
			result = multierror.Append(result, errors.Wrap(err, EnvTimeout))
		} else {
			c.Timeout = d
		}
	}
	if v, ok := lookupEnv(EnvDebug); ok && v != "" {
		level, err := parseDebug(v)
		if err != nil {
			result = multierror.Append(result, errors.Wrap(err, EnvDebug))
		} else {
			c.Verbose = level
		}
	}
	return result
}

// ParseTimeout converts a timeout setting to a duration. Bare numbers are seconds; strings may also use Go duration
// syntax such as "1m30s".
func ParseTimeout(v interface{}) (time.Duration, error) {
	if secs, err := cast.ToFloat64E(v); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	d, err := cast.ToDurationE(v)
	if err != nil {
		return 0, fmt.Errorf("unrecognized timeout %v", v)
	}
	return d, nil
}

// parseDebug accepts a verbosity level or a boolean.
func parseDebug(v string) (int, error) {
	if level, err := cast.ToIntE(v); err == nil {
		return level, nil
	}
	on, err := cast.ToBoolE(v)
	if err != nil {
		return 0, fmt.Errorf("expected a boolean or a log level, got %q", v)
	}
	if on {
		return debugVerbosity, nil
	}
	return 0, nil
}

var validate = validator.New()

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validating config")
	}

	var result *multierror.Error
	for _, fe := range fieldErrs {
		result = multierror.Append(result, fmt.Errorf("%s: failed %q check (value %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return errors.Wrap(result.ErrorOrNil(), "invalid config")
}
