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

import "net/http"

// Router is an ordered collection of routes. Registration order is matching
// priority: MatchRoute performs a linear scan and the first route that
// matches wins. There is no most-specific-match heuristic.
//
// A Router also carries the middleware options inherited by sub-groups and
// merged into every route registered on it. After the kernel's bootstrap
// phase the route list is read-only and safe for concurrent matching without
// locking.
//
// Example:
//
//	r.GET("/users/:id", showUser)
//	r.Group(func(g *router.Router) {
//	    g.POST("/users", createUser)
//	}, router.WithGroup("web"))
type Router struct {
	routes    []*Route
	inherited []middlewareRef
	groups    GroupResolver
}

// New creates an empty router. Router-level middleware options may be set up
// front or later with Use.
func New(opts ...RouteOption) *Router {
	r := &Router{}

	o := applyOptions(opts)
	if o.set {
		r.inherited = o.refs
	}

	return r
}

// routeOptions collects the middleware references of one registration call
// or group. set distinguishes "no middleware option given" from "explicitly
// empty", which matters for group inheritance.
type routeOptions struct {
	refs []middlewareRef
	set  bool
}

// RouteOption configures a route registration or a group.
type RouteOption func(*routeOptions)

// WithMiddleware attaches concrete middleware instances.
func WithMiddleware(mw ...Middleware) RouteOption {
	return func(o *routeOptions) {
		o.set = true
		for _, m := range mw {
			o.refs = append(o.refs, middlewareRef{instance: m})
		}
	}
}

// WithGroup attaches middleware groups by name. Names are resolved through
// the kernel's group registry at registration time; an unknown name resolves
// to an empty list rather than an error.
func WithGroup(names ...string) RouteOption {
	return func(o *routeOptions) {
		o.set = true
		for _, name := range names {
			o.refs = append(o.refs, middlewareRef{group: name})
		}
	}
}

func applyOptions(opts []RouteOption) routeOptions {
	var o routeOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// SetGroupResolver installs the named-group lookup used when resolving
// WithGroup references. The kernel calls this once before route registrars
// run.
func (r *Router) SetGroupResolver(groups GroupResolver) {
	r.groups = groups
}

// Use appends middleware to the router-level options inherited by routes and
// groups registered after this call. Routes already registered keep the
// middleware list resolved at their registration time.
func (r *Router) Use(mw ...Middleware) {
	for _, m := range mw {
		r.inherited = append(r.inherited, middlewareRef{instance: m})
	}
}

// Handle registers a route for an arbitrary HTTP method. The route's
// middleware list is resolved immediately: router-level options first, then
// the call's options, with group names expanded through the kernel registry.
func (r *Router) Handle(method, path string, handler Handler, opts ...RouteOption) *Route {
	o := applyOptions(opts)

	middleware := resolve(r.inherited, r.groups)
	middleware = append(middleware, resolve(o.refs, r.groups)...)

	route := newRoute(method, path, handler, middleware)
	r.routes = append(r.routes, route)

	return route
}

// GET registers a GET route.
func (r *Router) GET(path string, handler Handler, opts ...RouteOption) *Route {
	return r.Handle(http.MethodGet, path, handler, opts...)
}

// POST registers a POST route.
func (r *Router) POST(path string, handler Handler, opts ...RouteOption) *Route {
	return r.Handle(http.MethodPost, path, handler, opts...)
}

// PUT registers a PUT route.
func (r *Router) PUT(path string, handler Handler, opts ...RouteOption) *Route {
	return r.Handle(http.MethodPut, path, handler, opts...)
}

// PATCH registers a PATCH route.
func (r *Router) PATCH(path string, handler Handler, opts ...RouteOption) *Route {
	return r.Handle(http.MethodPatch, path, handler, opts...)
}

// DELETE registers a DELETE route.
func (r *Router) DELETE(path string, handler Handler, opts ...RouteOption) *Route {
	return r.Handle(http.MethodDelete, path, handler, opts...)
}

// HEAD registers a HEAD route.
func (r *Router) HEAD(path string, handler Handler, opts ...RouteOption) *Route {
	return r.Handle(http.MethodHead, path, handler, opts...)
}

// OPTIONS registers an OPTIONS route.
func (r *Router) OPTIONS(path string, handler Handler, opts ...RouteOption) *Route {
	return r.Handle(http.MethodOptions, path, handler, opts...)
}

// Group registers routes through a nested router whose middleware options
// are the parent's overridden by the group's: when the group supplies a
// middleware option it replaces the parent's, otherwise the parent's is
// inherited. The registrar runs synchronously and the resulting routes are
// appended to the parent with path and method untouched; grouping affects
// middleware resolution only, never path prefixing.
//
// Because resolution happens inside the registrar at registration time, the
// resolved lists do not change if the parent's options are mutated after
// Group returns.
func (r *Router) Group(register func(g *Router), opts ...RouteOption) {
	child := &Router{
		inherited: r.inherited,
		groups:    r.groups,
	}

	o := applyOptions(opts)
	if o.set {
		child.inherited = o.refs
	}

	register(child)

	r.routes = append(r.routes, child.routes...)
}

// MatchRoute scans the route list in registration order and returns the
// first route matching the request's method and path, with its bound
// parameters. ok is false when no route matches.
func (r *Router) MatchRoute(method, path string) (route *Route, params Params, ok bool) {
	for _, rt := range r.routes {
		if p, matched := rt.Match(method, path); matched {
			return rt, p, true
		}
	}

	return nil, nil, false
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []*Route {
	return r.routes
}
