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

// Package router implements the request-dispatch core: path-pattern
// compilation and matching, an ordered first-match-wins route table with
// middleware groups, and the before/after middleware pipeline that turns a
// Request into a canonical Response.
//
// Routes are registered against a Router, normally from inside a kernel
// route registrar:
//
//	r.GET("/users/:id", func(req *router.Request) (any, error) {
//	    return map[string]string{"id": req.Param("id")}, nil
//	})
//
// Path patterns are split on "/" into literal and :name parameter segments
// at registration time. Matching walks the segments pairwise: literals
// require exact equality, parameters bind unconditionally, and registration
// order breaks ties.
//
// Middlewares wrap dispatch with Before and After hooks; both chains run in
// the same registration order and either hook can short-circuit by returning
// a response. See Middleware for the exact semantics.
package router
