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

package middleware

import (
	"log/slog"
	"time"

	"github.com/fennhq/fenn/router"
)

// accessLogStartKey keys the dispatch start time in the request value bag.
// The instance is shared across requests, so the timestamp cannot live on it.
type accessLogStartKey struct{}

// accessLog emits one structured log record per completed request.
type accessLog struct {
	log *slog.Logger
}

// NewAccessLog returns a factory for the access-log middleware.
func NewAccessLog(log *slog.Logger) router.Factory {
	return func() router.Middleware {
		return &accessLog{log: log}
	}
}

// Before stamps the dispatch start time.
func (m *accessLog) Before(r *router.Request) (*router.Response, error) {
	r.Set(accessLogStartKey{}, time.Now())
	return nil, nil
}

// After logs method, path, status, response size, and duration. The request
// ID is included when the request-ID middleware ran earlier in the chain.
func (m *accessLog) After(r *router.Request, res *router.Response) (*router.Response, error) {
	args := []any{
		"method", r.Method,
		"path", r.Path,
		"status", res.StatusCode,
		"bytes", len(res.Body),
	}

	if v, ok := r.Get(accessLogStartKey{}); ok {
		if start, ok := v.(time.Time); ok {
			args = append(args, "duration", time.Since(start))
		}
	}
	if id, ok := RequestIDFrom(r); ok {
		args = append(args, "request_id", id)
	}

	m.log.Info("request completed", args...)

	return nil, nil
}
