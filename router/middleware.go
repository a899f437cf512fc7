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

// Middleware wraps request dispatch with a before and an after hook.
//
// Before runs ahead of the handler, in registration order across the combined
// global and route-specific list. Returning a non-nil Response short-circuits
// dispatch: the handler and every remaining hook, including this middleware's
// own After, are skipped and the returned response is sent.
//
// After runs behind the handler, in the same order as the before hooks (not
// reversed), receiving the in-flight response. Returning a non-nil Response
// replaces the in-flight response and stops the remaining after hooks.
// Header or body adjustments that should not stop the chain are made by
// mutating the passed response and returning nil.
//
// Either hook may return an error instead; errors propagate to the kernel
// boundary, which formats them into a response. Middlewares never format
// HTTP error responses themselves.
//
// Instances are created once at bootstrap and shared across concurrent
// requests, so they must not hold per-request state; use Request.Set/Get.
type Middleware interface {
	Before(r *Request) (*Response, error)
	After(r *Request, res *Response) (*Response, error)
}

// Factory constructs a middleware instance. The kernel resolves factories
// exactly once at bootstrap, so registration passes factories rather than
// live instances.
type Factory func() Middleware

// BeforeFunc adapts a plain function into a Middleware with a no-op after
// hook.
type BeforeFunc func(r *Request) (*Response, error)

// Before calls the adapted function.
func (f BeforeFunc) Before(r *Request) (*Response, error) { return f(r) }

// After is a no-op.
func (f BeforeFunc) After(*Request, *Response) (*Response, error) { return nil, nil }

// AfterFunc adapts a plain function into a Middleware with a no-op before
// hook.
type AfterFunc func(r *Request, res *Response) (*Response, error)

// Before is a no-op.
func (f AfterFunc) Before(*Request) (*Response, error) { return nil, nil }

// After calls the adapted function.
func (f AfterFunc) After(r *Request, res *Response) (*Response, error) { return f(r, res) }

// GroupResolver maps a named middleware group to its ordered instance list.
// An unknown name resolves to an empty list; that leniency is deliberate and
// is not an error path.
type GroupResolver func(name string) []Middleware

// middlewareRef is one unresolved middleware option: either a concrete
// instance or the name of a group registered on the kernel. References are
// resolved into instances once, at route registration time.
type middlewareRef struct {
	instance Middleware
	group    string
}

// resolve expands a reference list into concrete instances using the
// router's group resolver. A nil resolver makes every group name resolve
// empty, matching the unknown-name leniency.
func resolve(refs []middlewareRef, groups GroupResolver) []Middleware {
	out := make([]Middleware, 0, len(refs))
	for _, ref := range refs {
		if ref.instance != nil {
			out = append(out, ref.instance)
			continue
		}
		if groups != nil {
			out = append(out, groups(ref.group)...)
		}
	}

	return out
}
