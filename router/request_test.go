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
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennhq/fenn/validation"
)

func formHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/x-www-form-urlencoded")
	return h
}

func TestNewRequest(t *testing.T) {
	t.Run("decodes form body into input parameters", func(t *testing.T) {
		r := NewRequest(http.MethodPost, "/users", "", formHeader(), []byte("name=ada&age=36"))

		assert.Equal(t, "ada", r.Input("name"))
		assert.Equal(t, "36", r.Input("age"))
	})

	t.Run("ignores body without form content type", func(t *testing.T) {
		r := NewRequest(http.MethodPost, "/users", "", http.Header{}, []byte("name=ada"))

		assert.Empty(t, r.Input("name"))
		assert.Equal(t, []byte("name=ada"), r.Body)
	})

	t.Run("decodes query string", func(t *testing.T) {
		r := NewRequest(http.MethodGet, "/search", "q=go&page=2", nil, nil)

		assert.Equal(t, "go", r.Query("q"))
		assert.Equal(t, "2", r.Query("page"))
	})
}

func TestRequestInputFallsBackToQuery(t *testing.T) {
	r := NewRequest(http.MethodPost, "/users", "page=2&name=query", formHeader(), []byte("name=body"))

	// Present in input: input wins.
	assert.Equal(t, "body", r.Input("name"))
	// Absent from input: falls back to query.
	assert.Equal(t, "2", r.Input("page"))
	// Absent everywhere.
	v, ok := r.Lookup("missing")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestRequestTransform(t *testing.T) {
	r := NewRequest(http.MethodPost, "/users", "city=+Paris+", formHeader(), []byte("name=++ada++"))

	r.Transform(strings.TrimSpace)

	assert.Equal(t, "ada", r.Input("name"))
	assert.Equal(t, "Paris", r.Query("city"))
}

func TestRequestValueBag(t *testing.T) {
	type key struct{}
	r := NewRequest(http.MethodGet, "/", "", nil, nil)

	_, ok := r.Get(key{})
	assert.False(t, ok)

	r.Set(key{}, "value")
	v, ok := r.Get(key{})
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestFromHTTP(t *testing.T) {
	httpReq := httptest.NewRequest(http.MethodPost, "/users?page=3", strings.NewReader("name=ada"))
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	r, err := FromHTTP(httpReq)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, r.Method)
	assert.Equal(t, "/users", r.Path)
	assert.Equal(t, "ada", r.Input("name"))
	assert.Equal(t, "3", r.Query("page"))
	assert.Equal(t, "HTTP/1.1", r.Proto)
}

func TestRequestValidate(t *testing.T) {
	t.Run("returns only validated attributes on success", func(t *testing.T) {
		r := NewRequest(http.MethodPost, "/signup", "ref=launch", formHeader(), []byte("age=30&terms=yes"))

		validated, err := r.Validate(map[string]string{
			"age":      "required|numeric|min:1|max:150",
			"terms":    "accepted",
			"nickname": "nullable|numeric",
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"age": "30", "terms": "yes"}, validated)
	})

	t.Run("raises a validation error carrying the mapping", func(t *testing.T) {
		r := NewRequest(http.MethodPost, "/signup", "", formHeader(), []byte("terms=no"))

		_, err := r.Validate(map[string]string{
			"age":   "required|numeric",
			"terms": "accepted",
		})
		require.Error(t, err)
		require.ErrorIs(t, err, validation.ErrValidation)

		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"age is required"}, verr.Errors["age"])
		assert.Equal(t, []string{"terms must be accepted"}, verr.Errors["terms"])
		assert.Equal(t, http.StatusUnprocessableEntity, verr.HTTPStatus())
	})
}

func TestRequestString(t *testing.T) {
	r := NewRequest(http.MethodGet, "/users", "page=2", nil, nil)
	assert.Equal(t, "GET /users?page=2", r.String())
}
