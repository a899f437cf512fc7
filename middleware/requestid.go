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
	"github.com/google/uuid"

	"github.com/fennhq/fenn/router"
)

// RequestIDHeader is the header the request ID is read from and echoed on.
const RequestIDHeader = "X-Request-ID"

// requestIDKey keys the request ID in the per-request value bag.
type requestIDKey struct{}

// requestID assigns each request a unique ID, preserving an ID already
// supplied by an upstream proxy so traces stay correlated.
type requestID struct {
	generate func() string
}

// NewRequestID constructs the request-ID middleware with UUID generation.
func NewRequestID() router.Middleware {
	return &requestID{generate: uuid.NewString}
}

// Before picks up the inbound request ID or generates one, and stores it on
// the request for handlers and later hooks.
func (m *requestID) Before(r *router.Request) (*router.Response, error) {
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = m.generate()
		r.Header.Set(RequestIDHeader, id)
	}
	r.Set(requestIDKey{}, id)

	return nil, nil
}

// After echoes the ID on the response so clients can report it.
func (m *requestID) After(r *router.Request, res *router.Response) (*router.Response, error) {
	if id, ok := RequestIDFrom(r); ok {
		res.Header.Set(RequestIDHeader, id)
	}

	return nil, nil
}

// RequestIDFrom returns the ID assigned to the request, if any.
func RequestIDFrom(r *router.Request) (string, bool) {
	v, ok := r.Get(requestIDKey{})
	if !ok {
		return "", false
	}
	id, ok := v.(string)

	return id, ok
}
