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

// Package logging wraps glog with leveled helpers and global redaction filters, so that
// secrets such as API tokens never reach the log output.
package logging

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/glog"
)

// LogToStderr, Verbose and LogFlow hold the settings most recently passed to InitLogging.
var (
	LogToStderr = false
	Verbose     = 0
	LogFlow     = false
)

var (
	rwLock    sync.RWMutex
	filters   []Filter
	secretSet = map[string]struct{}{}
)

// VerboseLogger logs only when the verbosity it was created with is enabled.
type VerboseLogger glog.Verbose

// V builds a logger that is enabled when the configured verbosity is at least level.
func V(level glog.Level) VerboseLogger {
	return VerboseLogger(glog.V(level))
}

// Infof logs a formatted info message, after filtering, when the logger is enabled.
func (v VerboseLogger) Infof(format string, args ...interface{}) {
	if v {
		glog.InfoDepth(1, FilterString(fmt.Sprintf(format, args...)))
	}
}

// Infoln logs an info message, after filtering, when the logger is enabled.
func (v VerboseLogger) Infoln(args ...interface{}) {
	if v {
		glog.InfoDepth(1, FilterString(fmt.Sprint(args...)))
	}
}

// Infof logs a formatted info message unconditionally.
func Infof(format string, args ...interface{}) {
	glog.InfoDepth(1, FilterString(fmt.Sprintf(format, args...)))
}

// Warningf logs a formatted warning message.
func Warningf(format string, args ...interface{}) {
	glog.WarningDepth(1, FilterString(fmt.Sprintf(format, args...)))
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(1, FilterString(fmt.Sprintf(format, args...)))
}

// Flush flushes all pending log I/O.
func Flush() {
	glog.Flush()
}

// InitLogging ensures glog has been initialized with the given settings. glog is configured
// exclusively through the flag package, so the settings are applied by poking its flags.
func InitLogging(logToStderr bool, verbose int, logFlow bool) {
	LogToStderr = logToStderr
	Verbose = verbose
	LogFlow = logFlow

	if !flag.Parsed() {
		// glog complains when it is used before flag parsing; parse an empty argument list
		// so that library callers do not have to.
		_ = flag.CommandLine.Parse([]string{})
	}
	setFlag("logtostderr", strconv.FormatBool(logToStderr))
	setFlag("v", strconv.Itoa(verbose))
}

func setFlag(name, value string) {
	f := flag.Lookup(name)
	if f == nil {
		return
	}
	if err := f.Value.Set(value); err != nil {
		glog.Warningf("setting glog flag %q: %v", name, err)
	}
}

// Filter rewrites a log message before it is written.
type Filter interface {
	Filter(s string) string
}

type nopFilter struct{}

func (f *nopFilter) Filter(s string) string {
	return s
}

type replacerFilter struct {
	replacer *strings.Replacer
}

func (f *replacerFilter) Filter(s string) string {
	return f.replacer.Replace(s)
}

// minSecretLength is the shortest secret that is redacted.
const minSecretLength = 3

// CreateFilter returns a Filter that replaces every non-empty secret with replacement.
func CreateFilter(secrets []string, replacement string) Filter {
	var items []string
	for _, secret := range secrets {
		// For short secrets, don't actually add them to the filter, this is a trade-off we make to prevent
		// displaying `[secret]`. Travis does a similar thing, for example.
		if len(secret) < minSecretLength {
			continue
		}
		items = append(items, secret, replacement)
	}
	if len(items) > 0 {
		return &replacerFilter{replacer: strings.NewReplacer(items...)}
	}

	return &nopFilter{}
}

// AddGlobalFilter registers a filter applied to every message logged through this package.
func AddGlobalFilter(filter Filter) {
	rwLock.Lock()
	defer rwLock.Unlock()
	filters = append(filters, filter)
}

// AddGlobalSecret redacts secret from every message logged through this package. Each distinct secret is registered
// once, however often it is added.
func AddGlobalSecret(secret, replacement string) {
	if len(secret) < minSecretLength {
		return
	}

	rwLock.Lock()
	defer rwLock.Unlock()
	if _, ok := secretSet[secret]; ok {
		return
	}
	secretSet[secret] = struct{}{}
	filters = append(filters, CreateFilter([]string{secret}, replacement))
}

// FilterCount returns the number of registered global filters.
func FilterCount() int {
	rwLock.RLock()
	defer rwLock.RUnlock()
	return len(filters)
}

// FilterString applies all global filters to msg.
func FilterString(msg string) string {
	rwLock.RLock()
	defer rwLock.RUnlock()
	for _, filter := range filters {
		msg = filter.Filter(msg)
	}
	return msg
}
