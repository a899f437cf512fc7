// Copyright 2026 The Fenn Authors
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

// Package logging builds the application's slog logger: handler format,
// level, and optional service attributes in one place, so the kernel, the
// server shell, and the access-log middleware all log consistently.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	// JSONFormat outputs structured JSON logs.
	JSONFormat Format = "json"
	// TextFormat outputs key=value text logs.
	TextFormat Format = "text"
)

type config struct {
	format      Format
	level       slog.Level
	output      io.Writer
	addSource   bool
	serviceName string
}

// Option configures the logger factory.
type Option func(*config)

// WithFormat selects the handler format; unrecognized values fall back to
// JSON.
func WithFormat(format string) Option {
	return func(c *config) {
		if Format(strings.ToLower(format)) == TextFormat {
			c.format = TextFormat
		} else {
			c.format = JSONFormat
		}
	}
}

// WithLevel sets the minimum level from its string name (debug, info, warn,
// error); unrecognized values fall back to info.
func WithLevel(level string) Option {
	return func(c *config) {
		switch strings.ToLower(level) {
		case "debug":
			c.level = slog.LevelDebug
		case "warn":
			c.level = slog.LevelWarn
		case "error":
			c.level = slog.LevelError
		default:
			c.level = slog.LevelInfo
		}
	}
}

// WithOutput redirects log output, primarily for tests.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithSource annotates records with the calling source location.
func WithSource() Option {
	return func(c *config) {
		c.addSource = true
	}
}

// WithService attaches a service attribute to every record.
func WithService(name string) Option {
	return func(c *config) {
		c.serviceName = name
	}
}

// New builds a configured *slog.Logger. Defaults: JSON handler, info level,
// stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		format: JSONFormat,
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	}

	var handler slog.Handler
	if cfg.format == TextFormat {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	log := slog.New(handler)
	if cfg.serviceName != "" {
		log = log.With("service", cfg.serviceName)
	}

	return log
}
