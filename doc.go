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

// Package fenn is a minimal web-application kernel: it turns an inbound
// HTTP request into a response by matching it against a registered route
// table, running a before/after middleware pipeline, invoking the handler,
// and converting raised conditions into error responses at a single
// boundary.
//
// A typical application shell:
//
//	cfg, err := fenn.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger := logging.New(logging.WithFormat(cfg.LogFormat), logging.WithLevel(cfg.LogLevel))
//
//	k := fenn.New(fenn.WithLogger(logger))
//	k.Use(middleware.NewTrim)
//	k.MiddlewareGroup("web", middleware.NewRequestID, middleware.NewAccessLog(logger))
//	k.Routes(func(r *router.Router) {
//	    r.GET("/hello/:name", func(req *router.Request) (any, error) {
//	        return "Hello, " + req.Param("name"), nil
//	    }, router.WithGroup("web"))
//	})
//	if err := k.Bootstrap(); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := fenn.NewServer(cfg, logger).Run(context.Background(), k); err != nil {
//	    log.Fatal(err)
//	}
//
// The dispatch core lives in the router and validation packages; fenn itself
// is the kernel lifecycle (registration, then bootstrap, then serving), the
// error boundary, and the transport shell.
package fenn
