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

// Package middleware provides built-in before/after middlewares for the
// dispatch pipeline: input trimming, request IDs, CORS, structured access
// logging, and Prometheus metrics.
//
// Constructors return either a router.Middleware directly (stateless
// middlewares, usable as a factory by method value) or a router.Factory
// closed over their configuration. Instances are shared across concurrent
// requests; per-request state travels on the Request value bag.
package middleware
