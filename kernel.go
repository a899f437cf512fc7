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
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/fennhq/fenn/router"
)

// Kernel owns the router, the global middleware stack, and the named
// middleware groups, and dispatches one request end to end.
//
// A Kernel moves through two phases. During registration, route registrars
// accumulate via Routes, global middleware factories via Use, and named
// groups via MiddlewareGroup. Bootstrap then runs exactly once: group and
// global factories are instantiated, the router's group resolver is
// installed, and the registrars populate the route table. After bootstrap
// the route table and middleware instances are read-only, so Handle needs no
// locking under concurrent requests.
//
// Example:
//
//	k := fenn.New()
//	k.Use(middleware.NewTrim)
//	k.MiddlewareGroup("web", middleware.NewRequestID, middleware.NewAccessLog(log))
//	k.Routes(func(r *router.Router) {
//	    r.GET("/users/:id", showUser, router.WithGroup("web"))
//	})
//	if err := k.Bootstrap(); err != nil { ... }
type Kernel struct {
	router *router.Router
	log    logger

	registrars      []func(*router.Router)
	globalFactories []router.Factory
	groupFactories  map[string][]router.Factory

	globals []router.Middleware
	groups  map[string][]router.Middleware

	booted   atomic.Bool
	bootOnce sync.Once
}

// logger is the minimal structured-logging surface the kernel needs; it is
// satisfied by *slog.Logger.
type logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// New creates a kernel in its registration phase.
func New(opts ...Option) *Kernel {
	k := &Kernel{
		router:         router.New(),
		groupFactories: map[string][]router.Factory{},
	}

	for _, opt := range opts {
		opt(k)
	}

	if k.log == nil {
		k.log = noopLogger{}
	}

	return k
}

// Router exposes the kernel's router for introspection.
func (k *Kernel) Router() *router.Router {
	return k.router
}

// Use registers global middleware factories. Globals run outermost for every
// route, in registration order, and are instantiated once at bootstrap.
func (k *Kernel) Use(factories ...router.Factory) {
	k.mustBeRegistering("Use")
	k.globalFactories = append(k.globalFactories, factories...)
}

// MiddlewareGroup registers a named, ordered middleware group. Routes refer
// to groups with router.WithGroup; the name is resolved at route
// registration time through the registry built here.
func (k *Kernel) MiddlewareGroup(name string, factories ...router.Factory) {
	k.mustBeRegistering("MiddlewareGroup")
	k.groupFactories[name] = append(k.groupFactories[name], factories...)
}

// Routes registers a route registrar callback. Registrars run once, during
// bootstrap, against the kernel's router.
func (k *Kernel) Routes(register func(r *router.Router)) {
	k.mustBeRegistering("Routes")
	k.registrars = append(k.registrars, register)
}

// mustBeRegistering panics when a registration method is called after
// bootstrap. Registration and serving are mutually exclusive phases; this
// keeps the post-bootstrap state free of data races.
func (k *Kernel) mustBeRegistering(op string) {
	if k.booted.Load() {
		panic(fmt.Sprintf("fenn: %s called after Bootstrap", op))
	}
}

// Bootstrap transitions the kernel from registration to serving. It
// instantiates every named group and global middleware factory exactly once,
// installs the group resolver, and runs the accumulated route registrars.
// Calling Bootstrap a second time returns ErrAlreadyBootstrapped.
func (k *Kernel) Bootstrap() error {
	if !k.booted.CompareAndSwap(false, true) {
		return ErrAlreadyBootstrapped
	}

	k.groups = make(map[string][]router.Middleware, len(k.groupFactories))
	for name, factories := range k.groupFactories {
		instances := make([]router.Middleware, 0, len(factories))
		for _, factory := range factories {
			instances = append(instances, factory())
		}
		k.groups[name] = instances
	}

	k.router.SetGroupResolver(func(name string) []router.Middleware {
		return k.groups[name]
	})

	k.globals = make([]router.Middleware, 0, len(k.globalFactories))
	for _, factory := range k.globalFactories {
		k.globals = append(k.globals, factory())
	}

	for _, register := range k.registrars {
		register(k.router)
	}

	k.log.Info("kernel bootstrapped",
		"routes", len(k.router.Routes()),
		"global_middlewares", len(k.globals),
		"middleware_groups", len(k.groups),
	)

	return nil
}

// Handle dispatches one request through the route table and middleware
// pipeline and is the single boundary converting raised conditions into
// responses: no match maps to 404, conditions carrying an HTTP status (such
// as validation failures) map to that status, and anything else, including
// panics, maps to 500.
//
// Handle must not be called before Bootstrap; doing so is a programming
// error and panics.
func (k *Kernel) Handle(req *router.Request) (res *router.Response) {
	if !k.booted.Load() {
		panic("fenn: Handle called before Bootstrap")
	}

	defer func() {
		if rec := recover(); rec != nil {
			k.log.Error("panic during dispatch", "request", req.String(), "panic", rec)
			res = errorResponse(http.StatusInternalServerError, fmt.Sprint(rec), nil)
		}
	}()

	rt, params, ok := k.router.MatchRoute(req.Method, req.Path)
	if !ok {
		k.log.Debug("no route matched", "request", req.String())
		return errorResponse(http.StatusNotFound, ErrNotFound.Error(), nil)
	}

	out, err := rt.Handle(req, params, k.globals)
	if err != nil {
		return k.conditionResponse(req, err)
	}

	return out
}

// conditionResponse formats a raised condition. Conditions advertising an
// HTTP status keep it; everything else is unhandled and becomes a 500.
func (k *Kernel) conditionResponse(req *router.Request, err error) *router.Response {
	status := http.StatusInternalServerError
	if sc, ok := err.(statusCarrier); ok {
		status = sc.HTTPStatus()
	}

	var details any
	if dc, ok := err.(detailCarrier); ok {
		details = dc.Details()
	}

	if status >= http.StatusInternalServerError {
		k.log.Error("unhandled failure", "request", req.String(), "error", err)
	} else {
		k.log.Debug("request failed", "request", req.String(), "status", status, "error", err)
	}

	return errorResponse(status, err.Error(), details)
}

// errorResponse builds the canonical error payload: {"error": message} or,
// when the condition carries details, {"errors": details}.
func errorResponse(status int, message string, details any) *router.Response {
	payload := map[string]any{"error": message}
	if details != nil {
		payload = map[string]any{"errors": details}
	}

	res, err := router.JSON(status, payload)
	if err != nil {
		return router.Text(status, message)
	}

	return res
}

// ServeHTTP adapts the kernel to net/http: the inbound request is converted
// to a framework Request, dispatched, and the canonical response serialized
// back to the wire. The kernel bootstraps itself on the first request if the
// application shell has not done so explicitly.
func (k *Kernel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	k.bootOnce.Do(func() {
		if !k.booted.Load() {
			if err := k.Bootstrap(); err != nil {
				k.log.Error("bootstrap failed", "error", err)
			}
		}
	})

	req, err := router.FromHTTP(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := k.Handle(req).Write(w); err != nil {
		k.log.Error("write response", "request", req.String(), "error", err)
	}
}

// noopLogger discards everything; used when no logger is configured.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
