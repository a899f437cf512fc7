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

package router

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the canonical outcome of a dispatch: a status code, a header
// mapping, and raw body bytes. Handlers normally return plain values
// (strings, maps, structs) and let NewResponse canonicalize them; middlewares
// that short-circuit may build a Response directly.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewResponse canonicalizes a handler's raw return value into a Response.
//
// The conversion is a closed union:
//   - *Response is returned unchanged, so canonicalization is idempotent
//   - string becomes the body with Content-Type text/html
//   - any other value is JSON-encoded with Content-Type application/json
//
// The status code defaults to 200 OK.
func NewResponse(v any) (*Response, error) {
	switch body := v.(type) {
	case *Response:
		return body, nil
	case string:
		return Text(http.StatusOK, body), nil
	default:
		return JSON(http.StatusOK, v)
	}
}

// Text builds a canonical text response with Content-Type text/html.
func Text(status int, body string) *Response {
	return &Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Body:       []byte(body),
	}
}

// JSON builds a canonical JSON response from any encodable value.
func JSON(status int, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode response body: %w", err)
	}

	return &Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       body,
	}, nil
}

// Write serializes the response to an http.ResponseWriter. Headers are
// copied first, then the status line, then the body bytes.
func (r *Response) Write(w http.ResponseWriter) error {
	for key, values := range r.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	status := r.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if _, err := w.Write(r.Body); err != nil {
		return fmt.Errorf("write response body: %w", err)
	}

	return nil
}
