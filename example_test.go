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

package fenn_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/fennhq/fenn"
	"github.com/fennhq/fenn/middleware"
	"github.com/fennhq/fenn/router"
)

// Example shows the full kernel lifecycle: registration, bootstrap, and
// dispatch.
func Example() {
	k := fenn.New()

	k.Use(middleware.NewTrim)
	k.MiddlewareGroup("web", middleware.NewRequestID)

	k.Routes(func(r *router.Router) {
		r.GET("/hello/:name", func(req *router.Request) (any, error) {
			return "Hello, " + req.Param("name"), nil
		}, router.WithGroup("web"))
	})

	if err := k.Bootstrap(); err != nil {
		panic(err)
	}

	req, _ := router.FromHTTP(httptest.NewRequest(http.MethodGet, "/hello/ada", nil))
	res := k.Handle(req)

	fmt.Println(res.StatusCode, string(res.Body))
	// Output: 200 Hello, ada
}

// ExampleKernel_Handle demonstrates the validation surface and the 422
// boundary.
func ExampleKernel_Handle() {
	k := fenn.New()
	k.Routes(func(r *router.Router) {
		r.GET("/signup", func(req *router.Request) (any, error) {
			params, err := req.Validate(map[string]string{
				"age": "required|numeric|min:1|max:150",
			})
			if err != nil {
				return nil, err
			}
			return params, nil
		})
	})
	if err := k.Bootstrap(); err != nil {
		panic(err)
	}

	req, _ := router.FromHTTP(httptest.NewRequest(http.MethodGet, "/signup?age=abc", nil))
	res := k.Handle(req)

	fmt.Println(res.StatusCode, string(res.Body))
	// Output: 422 {"errors":{"age":["age must be numeric"]}}
}
