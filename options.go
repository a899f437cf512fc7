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

import "log/slog"

// Option configures a Kernel at construction time.
type Option func(*Kernel)

// WithLogger sets the structured logger used by the kernel for bootstrap
// and dispatch-boundary logging. Without it the kernel stays silent.
func WithLogger(log *slog.Logger) Option {
	return func(k *Kernel) {
		if log != nil {
			k.log = log
		}
	}
}
