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
	"net/http"
	"strconv"
	"strings"

	"github.com/fennhq/fenn/router"
)

// cors answers preflight requests from its before hook and decorates every
// other response with the allow-origin headers from its after hook.
type cors struct {
	allowOrigin  string
	allowMethods string
	allowHeaders string
	maxAge       int
}

// CORSOption configures the CORS middleware.
type CORSOption func(*cors)

// WithAllowOrigin sets the allowed origin; the default is "*".
func WithAllowOrigin(origin string) CORSOption {
	return func(c *cors) {
		c.allowOrigin = origin
	}
}

// WithAllowMethods sets the methods advertised on preflight responses.
func WithAllowMethods(methods ...string) CORSOption {
	return func(c *cors) {
		c.allowMethods = strings.Join(methods, ", ")
	}
}

// WithAllowHeaders sets the headers advertised on preflight responses.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(c *cors) {
		c.allowHeaders = strings.Join(headers, ", ")
	}
}

// WithMaxAge sets how long, in seconds, clients may cache the preflight
// answer.
func WithMaxAge(seconds int) CORSOption {
	return func(c *cors) {
		c.maxAge = seconds
	}
}

// NewCORS returns a factory for the CORS middleware.
func NewCORS(opts ...CORSOption) router.Factory {
	c := &cors{
		allowOrigin:  "*",
		allowMethods: "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS",
		allowHeaders: "Content-Type, Authorization",
		maxAge:       86400,
	}
	for _, opt := range opts {
		opt(c)
	}

	return func() router.Middleware { return c }
}

// Before short-circuits OPTIONS preflight requests with a 204 carrying the
// full preflight header set; the handler never runs for them.
func (c *cors) Before(r *router.Request) (*router.Response, error) {
	if r.Method != http.MethodOptions {
		return nil, nil
	}

	res := &router.Response{
		StatusCode: http.StatusNoContent,
		Header:     http.Header{},
	}
	res.Header.Set("Access-Control-Allow-Origin", c.allowOrigin)
	res.Header.Set("Access-Control-Allow-Methods", c.allowMethods)
	res.Header.Set("Access-Control-Allow-Headers", c.allowHeaders)
	res.Header.Set("Access-Control-Max-Age", strconv.Itoa(c.maxAge))

	return res, nil
}

// After decorates the in-flight response without stopping the chain.
func (c *cors) After(_ *router.Request, res *router.Response) (*router.Response, error) {
	res.Header.Set("Access-Control-Allow-Origin", c.allowOrigin)
	return nil, nil
}
