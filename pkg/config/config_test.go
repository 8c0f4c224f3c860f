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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envMap returns a lookup function over env. The config file path defaults to a file that does not exist, so tests
// never read the real home directory.
func envMap(t *testing.T, env map[string]string) func(string) (string, bool) {
	t.Helper()
	if _, ok := env[EnvConfigFile]; !ok {
		env[EnvConfigFile] = ""
	}
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := load(envMap(t, map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "https://api.heroku.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Token)
	assert.Zero(t, cfg.Verbose)
}

func TestLoadEnv(t *testing.T) {
	t.Parallel()

	cfg, err := load(envMap(t, map[string]string{
		EnvAPIKey:    " 01234567-89ab-cdef-0123-456789abcdef\n",
		EnvAPIURL:    "http://localhost:5000",
		EnvTimeout:   "90",
		EnvUserAgent: "my-tool/1.0",
		EnvDebug:     "11",
	}))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		BaseURL:   "http://localhost:5000",
		Token:     "01234567-89ab-cdef-0123-456789abcdef",
		Timeout:   90 * time.Second,
		UserAgent: "my-tool/1.0",
		Verbose:   11,
	}, cfg)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
base_url: https://api.example.com
token: from-file
timeout: 1m30s
user_agent: file-agent
verbose: 10
`)

	t.Run("file only", func(t *testing.T) {
		t.Parallel()
		cfg, err := load(envMap(t, map[string]string{EnvConfigFile: path}))
		require.NoError(t, err)
		assert.Equal(t, &Config{
			BaseURL:   "https://api.example.com",
			Token:     "from-file",
			Timeout:   90 * time.Second,
			UserAgent: "file-agent",
			Verbose:   10,
		}, cfg)
	})
	t.Run("environment wins", func(t *testing.T) {
		t.Parallel()
		cfg, err := load(envMap(t, map[string]string{
			EnvConfigFile: path,
			EnvAPIKey:     "from-env",
			EnvTimeout:    "5s",
		}))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Token)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	})
	t.Run("empty env values are ignored", func(t *testing.T) {
		t.Parallel()
		cfg, err := load(envMap(t, map[string]string{
			EnvConfigFile: path,
			EnvAPIURL:     "",
			EnvTimeout:    "",
		}))
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, 90*time.Second, cfg.Timeout)
	})
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	t.Run("explicit missing file", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		_, err := load(envMap(t, map[string]string{EnvConfigFile: missing}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})
	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "api_key: abc\n")
		_, err := load(envMap(t, map[string]string{EnvConfigFile: path}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})
	t.Run("bad values are all reported", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "timeout: soon\nverbose: loud\n")
		_, err := load(envMap(t, map[string]string{EnvConfigFile: path}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
		assert.Contains(t, err.Error(), "verbose")
	})
}

func TestMergeFileMissingDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.mergeFile(DefaultPath(t.TempDir()), false))
	assert.Equal(t, Default(), cfg)
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/home/me", ".config", "heroku-go", "config.yaml"), DefaultPath("/home/me"))
}

func TestParseTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      interface{}
		want    time.Duration
		wantErr bool
	}{
		{in: 30, want: 30 * time.Second},
		{in: "45", want: 45 * time.Second},
		{in: 1.5, want: 1500 * time.Millisecond},
		{in: "2m", want: 2 * time.Minute},
		{in: "250ms", want: 250 * time.Millisecond},
		{in: "later", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.want.String(), func(t *testing.T) {
			t.Parallel()
			got, err := ParseTimeout(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDebug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "true", want: 10},
		{in: "1", want: 1},
		{in: "11", want: 11},
		{in: "false", want: 0},
		{in: "0", want: 0},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := parseDebug(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())

	cfg := &Config{BaseURL: "not a url", Timeout: 0, Verbose: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "BaseURL")
	assert.Contains(t, err.Error(), "Timeout")
	assert.Contains(t, err.Error(), "Verbose")
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	t.Parallel()

	_, err := load(envMap(t, map[string]string{EnvTimeout: "0", EnvDebug: "maybe"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDebug)

	_, err = load(envMap(t, map[string]string{EnvTimeout: "0"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Timeout")
}
