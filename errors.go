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
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates that no registered route matched the request.
	ErrNotFound = errors.New("route not found")

	// ErrAlreadyBootstrapped indicates that Bootstrap was called more than once.
	ErrAlreadyBootstrapped = errors.New("kernel already bootstrapped")
)

// Error is a condition a handler or middleware raises to answer with a
// specific HTTP status. Anything else surfacing from the pipeline is treated
// as unhandled and mapped to a 500 at the kernel boundary.
type Error struct {
	Status  int
	Message string
}

// NewError builds an Error for the given status.
func NewError(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return http.StatusText(e.Status)
}

// HTTPStatus returns the status the kernel boundary should answer with.
func (e *Error) HTTPStatus() int {
	return e.Status
}

// statusCarrier is implemented by raisable conditions that map to a specific
// HTTP status, such as *Error and *validation.Error.
type statusCarrier interface {
	HTTPStatus() int
}

// detailCarrier is implemented by conditions that carry a structured payload
// for the response body, such as *validation.Error.
type detailCarrier interface {
	Details() any
}
