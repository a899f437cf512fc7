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
	"strings"

	"github.com/fennhq/fenn/router"
)

// trim strips surrounding whitespace from every input and query value
// before the handler sees them.
type trim struct{}

// NewTrim constructs the trimming middleware. It is stateless, so the
// constructor doubles as a router.Factory.
func NewTrim() router.Middleware {
	return trim{}
}

// Before rewrites every input and query value through strings.TrimSpace.
func (trim) Before(r *router.Request) (*router.Response, error) {
	r.Transform(strings.TrimSpace)
	return nil, nil
}

// After is a no-op.
func (trim) After(*router.Request, *router.Response) (*router.Response, error) {
	return nil, nil
}
