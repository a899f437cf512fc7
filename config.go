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

package fenn

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application shell's settings, loaded from environment
// variables with an optional .env file.
type Config struct {
	Addr            string        `env:"FENN_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"FENN_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"FENN_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"FENN_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"FENN_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	EnableH2C       bool          `env:"FENN_ENABLE_H2C" envDefault:"false"`
	LogLevel        string        `env:"FENN_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"FENN_LOG_FORMAT" envDefault:"json"`
}

var loadDotenv sync.Once

// LoadConfig parses Config from the environment. A .env file in the working
// directory is loaded once if present; its absence is not an error.
func LoadConfig() (Config, error) {
	loadDotenv.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
