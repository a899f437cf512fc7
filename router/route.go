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

// Handler produces the raw response value for a matched request. The return
// value is canonicalized by NewResponse, so a handler may return a string, a
// JSON-encodable value, or an already-built *Response. Failures are raised
// as errors and formatted at the kernel boundary.
type Handler func(r *Request) (any, error)

// Params holds the parameter bindings produced by path matching.
type Params map[string]string

// Route is one registered route: a method, a compiled path pattern, a
// handler, and the middleware list resolved at registration time.
// A Route is immutable after construction and safe for concurrent matching.
type Route struct {
	Method string
	Path   string

	segments   []segment
	paramCount int
	handler    Handler
	middleware []Middleware
}

// newRoute compiles the path pattern once and freezes the resolved
// middleware list.
func newRoute(method, path string, handler Handler, middleware []Middleware) *Route {
	segments := segmentate(path)

	paramCount := 0
	for _, s := range segments {
		if s.param {
			paramCount++
		}
	}

	return &Route{
		Method:     method,
		Path:       path,
		segments:   segments,
		paramCount: paramCount,
		handler:    handler,
		middleware: middleware,
	}
}

// Match reports whether the method and path match this route, binding any
// parameter segments positionally. Method and segment-count mismatches fail
// before any string comparison; a literal mismatch short-circuits the walk.
// The params map is allocated only for routes that declare parameters, to
// keep the request hot path allocation-light.
func (rt *Route) Match(method, path string) (Params, bool) {
	if method != rt.Method {
		return nil, false
	}

	parts := splitPath(path)
	if len(parts) != len(rt.segments) {
		return nil, false
	}

	var params Params
	if rt.paramCount > 0 {
		params = make(Params, rt.paramCount)
	}

	for i, seg := range rt.segments {
		if seg.param {
			params[seg.value] = parts[i]
			continue
		}
		if seg.value != parts[i] {
			return nil, false
		}
	}

	return params, true
}

// Middleware returns the route's resolved middleware list.
func (rt *Route) Middleware() []Middleware {
	return rt.middleware
}

// Handle runs the full dispatch pipeline for a matched request: the combined
// before chain, the handler, then the after chain.
//
// Globals run outermost, in registration order, followed by the route's own
// middlewares. The first before hook that returns a response ends dispatch;
// the handler and every remaining hook are skipped. After hooks run in the
// same order as the before hooks; the first after hook that returns a
// response replaces the in-flight one and stops the chain.
func (rt *Route) Handle(req *Request, params Params, globals []Middleware) (*Response, error) {
	req.setParams(params)

	chain := make([]Middleware, 0, len(globals)+len(rt.middleware))
	chain = append(chain, globals...)
	chain = append(chain, rt.middleware...)

	for _, mw := range chain {
		res, err := mw.Before(req)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return NewResponse(res)
		}
	}

	raw, err := rt.handler(req)
	if err != nil {
		return nil, err
	}

	res, err := NewResponse(raw)
	if err != nil {
		return nil, err
	}

	for _, mw := range chain {
		replaced, err := mw.After(req, res)
		if err != nil {
			return nil, err
		}
		if replaced != nil {
			return NewResponse(replaced)
		}
	}

	return res, nil
}
