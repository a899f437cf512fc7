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
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/fennhq/fenn/validation"
)

// formContentType is the media type that signals a decodable form body.
const formContentType = "application/x-www-form-urlencoded"

// Request carries the wire data of one inbound HTTP request plus the two
// derived mappings the framework works with: input parameters decoded from a
// form body and query parameters decoded from the URL.
//
// A Request is created once per inbound request and read by handlers and
// middlewares. The only sanctioned mutations are Transform, used by
// trimming-style middlewares, and the Set/Get value bag, which exists so that
// shared middleware instances can keep per-request state off themselves.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
	Proto    string

	input  map[string]string
	query  map[string]string
	params Params
	values map[any]any
}

// NewRequest builds a Request from raw wire data. The query string is decoded
// immediately; the body is decoded into input parameters only when the
// Content-Type signals a form.
func NewRequest(method, path, rawQuery string, header http.Header, body []byte) *Request {
	if header == nil {
		header = http.Header{}
	}

	r := &Request{
		Method:   method,
		Path:     path,
		RawQuery: rawQuery,
		Header:   header,
		Body:     body,
		Proto:    "HTTP/1.1",
		input:    map[string]string{},
		query:    parseValues(rawQuery),
	}

	if mediaType, _, err := mime.ParseMediaType(header.Get("Content-Type")); err == nil && mediaType == formContentType {
		r.input = parseValues(string(body))
	}

	return r
}

// FromHTTP adapts a net/http request into a framework Request. The body is
// read fully; connection concerns stay with the caller.
func FromHTTP(req *http.Request) (*Request, error) {
	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		body = b
	}

	r := NewRequest(req.Method, req.URL.Path, req.URL.RawQuery, req.Header, body)
	r.Proto = req.Proto

	return r, nil
}

// parseValues decodes urlencoded key=value pairs into a flat string map,
// keeping the first value for repeated keys. Undecodable input yields an
// empty map rather than an error; the raw bytes remain available on Body.
func parseValues(raw string) map[string]string {
	out := map[string]string{}

	parsed, err := url.ParseQuery(raw)
	if err != nil {
		return out
	}

	for key, values := range parsed {
		if len(values) > 0 {
			out[key] = values[0]
		}
	}

	return out
}

// Input returns the named input parameter. When the name is absent from the
// decoded body it falls back to the query parameters, so handlers can accept
// a value from either source with one call.
func (r *Request) Input(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// Query returns the named query parameter, or "" when absent.
func (r *Request) Query(name string) string {
	return r.query[name]
}

// Lookup reports the named value and whether it is present in either the
// input or query parameters, input first. It implements validation.Source.
func (r *Request) Lookup(name string) (string, bool) {
	if v, ok := r.input[name]; ok {
		return v, true
	}
	v, ok := r.query[name]

	return v, ok
}

// Param returns the route parameter bound during path matching, such as "42"
// for pattern /users/:id and path /users/42.
func (r *Request) Param(name string) string {
	return r.params[name]
}

// Params returns all route parameters bound during matching.
func (r *Request) Params() Params {
	return r.params
}

// setParams installs the parameters bound by route matching. Called once by
// the dispatch pipeline before any hook runs.
func (r *Request) setParams(params Params) {
	r.params = params
}

// Transform rewrites every input and query value in place through fn.
// This is the hook used by trimming-style middlewares.
func (r *Request) Transform(fn func(string) string) {
	for key, value := range r.input {
		r.input[key] = fn(value)
	}
	for key, value := range r.query {
		r.query[key] = fn(value)
	}
}

// Set stores a per-request value. Middleware instances are shared across
// concurrent requests, so any state they need between their before and after
// hooks belongs here, not on the instance.
func (r *Request) Set(key, value any) {
	if r.values == nil {
		r.values = map[any]any{}
	}
	r.values[key] = value
}

// Get returns a per-request value stored with Set.
func (r *Request) Get(key any) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Validate runs the declarative rule specification against this request's
// input and query parameters. On success it returns only the validated
// attributes that are actually present. On failure it returns a
// *validation.Error carrying the full attribute→messages mapping.
//
// Example:
//
//	params, err := req.Validate(map[string]string{
//	    "age":   "required|numeric|min:1|max:150",
//	    "terms": "accepted",
//	})
func (r *Request) Validate(rules map[string]string) (map[string]string, error) {
	v := validation.New(r, rules)

	errs, ok := v.Validate()
	if !ok {
		return nil, &validation.Error{Errors: errs}
	}

	validated := map[string]string{}
	for attribute := range rules {
		if value, present := r.Lookup(attribute); present {
			validated[attribute] = value
		}
	}

	return validated, nil
}

// FormValues returns a copy of the decoded input parameters.
func (r *Request) FormValues() map[string]string {
	out := make(map[string]string, len(r.input))
	for k, v := range r.input {
		out[k] = v
	}

	return out
}

// QueryValues returns a copy of the decoded query parameters.
func (r *Request) QueryValues() map[string]string {
	out := make(map[string]string, len(r.query))
	for k, v := range r.query {
		out[k] = v
	}

	return out
}

// String implements fmt.Stringer for log output.
func (r *Request) String() string {
	var sb strings.Builder
	sb.WriteString(r.Method)
	sb.WriteString(" ")
	sb.WriteString(r.Path)
	if r.RawQuery != "" {
		sb.WriteString("?")
		sb.WriteString(r.RawQuery)
	}

	return sb.String()
}
