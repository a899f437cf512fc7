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

package validation

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrValidation is the sentinel for validation failures.
// Use errors.Is(err, ErrValidation) to detect them at the kernel boundary.
var ErrValidation = errors.New("validation")

// Errors maps an attribute name to its ordered list of error messages.
// Absence of a key means the attribute passed every rule.
type Errors map[string][]string

// Add appends a message to the attribute's error list.
func (e Errors) Add(attribute, message string) {
	e[attribute] = append(e[attribute], message)
}

// Has reports whether the attribute accumulated any error.
func (e Errors) Has(attribute string) bool {
	return len(e[attribute]) > 0
}

// Clear removes every error recorded for the attribute. Used by the
// nullable rule to retroactively drop errors once a value turns out to be
// absent.
func (e Errors) Clear(attribute string) {
	delete(e, attribute)
}

// Error wraps an Errors mapping as a raisable condition. The kernel maps it
// to a 422 response carrying the full mapping.
type Error struct {
	Errors Errors
}

// Error returns the messages joined per attribute, sorted by attribute name
// for stable output.
func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}

	attributes := make([]string, 0, len(e.Errors))
	for attribute := range e.Errors {
		attributes = append(attributes, attribute)
	}
	sort.Strings(attributes)

	var msgs []string
	for _, attribute := range attributes {
		msgs = append(msgs, strings.Join(e.Errors[attribute], "; "))
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrValidation for errors.Is compatibility.
func (e *Error) Unwrap() error {
	return ErrValidation
}

// HTTPStatus maps validation failures to 422 Unprocessable Entity.
func (e *Error) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// Details exposes the attribute→messages mapping for response payloads.
func (e *Error) Details() any {
	return e.Errors
}
