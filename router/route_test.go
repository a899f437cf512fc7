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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordMW appends its hook invocations to a shared trace and can be primed
// to short-circuit or fail from either hook.
type recordMW struct {
	name      string
	trace     *[]string
	beforeRes *Response
	afterRes  *Response
	beforeErr error
	afterErr  error
}

func (m *recordMW) Before(*Request) (*Response, error) {
	*m.trace = append(*m.trace, m.name+":before")
	return m.beforeRes, m.beforeErr
}

func (m *recordMW) After(*Request, *Response) (*Response, error) {
	*m.trace = append(*m.trace, m.name+":after")
	return m.afterRes, m.afterErr
}

func okHandler(body string) Handler {
	return func(*Request) (any, error) { return body, nil }
}

func TestRouteMatch(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		method     string
		reqMethod  string
		reqPath    string
		wantOK     bool
		wantParams Params
	}{
		{
			name:      "exact literal match",
			pattern:   "/users/all",
			method:    http.MethodGet,
			reqMethod: http.MethodGet,
			reqPath:   "/users/all",
			wantOK:    true,
		},
		{
			name:      "method mismatch",
			pattern:   "/users/all",
			method:    http.MethodGet,
			reqMethod: http.MethodPost,
			reqPath:   "/users/all",
			wantOK:    false,
		},
		{
			name:      "segment count mismatch",
			pattern:   "/users/all",
			method:    http.MethodGet,
			reqMethod: http.MethodGet,
			reqPath:   "/users/all/extra",
			wantOK:    false,
		},
		{
			name:      "literal mismatch",
			pattern:   "/users/all",
			method:    http.MethodGet,
			reqMethod: http.MethodGet,
			reqPath:   "/users/one",
			wantOK:    false,
		},
		{
			name:      "literals are case-sensitive",
			pattern:   "/users",
			method:    http.MethodGet,
			reqMethod: http.MethodGet,
			reqPath:   "/Users",
			wantOK:    false,
		},
		{
			name:       "parameters bind positionally",
			pattern:    "/users/:id/:action",
			method:     http.MethodGet,
			reqMethod:  http.MethodGet,
			reqPath:    "/users/42/edit",
			wantOK:     true,
			wantParams: Params{"id": "42", "action": "edit"},
		},
		{
			name:      "root path",
			pattern:   "/",
			method:    http.MethodGet,
			reqMethod: http.MethodGet,
			reqPath:   "/",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newRoute(tt.method, tt.pattern, okHandler("ok"), nil)

			params, ok := rt.Match(tt.reqMethod, tt.reqPath)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantParams != nil {
				assert.Equal(t, tt.wantParams, params)
			}
		})
	}
}

func TestRouteMatchAllocatesParamsOnlyWhenDeclared(t *testing.T) {
	rt := newRoute(http.MethodGet, "/static/path", okHandler("ok"), nil)

	params, ok := rt.Match(http.MethodGet, "/static/path")
	require.True(t, ok)
	assert.Nil(t, params)
}

func TestRouteHandleOrdering(t *testing.T) {
	var trace []string
	a := &recordMW{name: "A", trace: &trace}
	b := &recordMW{name: "B", trace: &trace}
	c := &recordMW{name: "C", trace: &trace}

	handler := func(*Request) (any, error) {
		trace = append(trace, "handler")
		return "done", nil
	}

	rt := newRoute(http.MethodGet, "/x", handler, []Middleware{c})
	req := NewRequest(http.MethodGet, "/x", "", nil, nil)

	res, err := rt.Handle(req, nil, []Middleware{a, b})
	require.NoError(t, err)
	assert.Equal(t, []byte("done"), res.Body)

	// Globals outermost, then route middleware; after hooks in the same
	// order, not reversed.
	assert.Equal(t, []string{
		"A:before", "B:before", "C:before",
		"handler",
		"A:after", "B:after", "C:after",
	}, trace)
}

func TestRouteHandleBeforeShortCircuit(t *testing.T) {
	var trace []string
	short := Text(http.StatusForbidden, "denied")
	a := &recordMW{name: "A", trace: &trace}
	b := &recordMW{name: "B", trace: &trace, beforeRes: short}
	c := &recordMW{name: "C", trace: &trace}

	handler := func(*Request) (any, error) {
		trace = append(trace, "handler")
		return "never", nil
	}

	rt := newRoute(http.MethodGet, "/x", handler, []Middleware{c})
	req := NewRequest(http.MethodGet, "/x", "", nil, nil)

	res, err := rt.Handle(req, nil, []Middleware{a, b})
	require.NoError(t, err)

	// B's own after, C's before, the handler, and every after hook are all
	// skipped; the short-circuit response comes back canonicalized once.
	assert.Equal(t, []string{"A:before", "B:before"}, trace)
	assert.Same(t, short, res)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRouteHandleAfterShortCircuit(t *testing.T) {
	var trace []string
	replacement := Text(http.StatusAccepted, "replaced")
	a := &recordMW{name: "A", trace: &trace}
	b := &recordMW{name: "B", trace: &trace, afterRes: replacement}
	c := &recordMW{name: "C", trace: &trace}

	rt := newRoute(http.MethodGet, "/x", okHandler("original"), []Middleware{c})
	req := NewRequest(http.MethodGet, "/x", "", nil, nil)

	res, err := rt.Handle(req, nil, []Middleware{a, b})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"A:before", "B:before", "C:before",
		"A:after", "B:after",
	}, trace)
	assert.Same(t, replacement, res)
}

func TestRouteHandleErrors(t *testing.T) {
	t.Run("handler error propagates", func(t *testing.T) {
		wantErr := errors.New("boom")
		rt := newRoute(http.MethodGet, "/x", func(*Request) (any, error) {
			return nil, wantErr
		}, nil)

		_, err := rt.Handle(NewRequest(http.MethodGet, "/x", "", nil, nil), nil, nil)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("before hook error stops dispatch", func(t *testing.T) {
		var trace []string
		wantErr := errors.New("before failed")
		a := &recordMW{name: "A", trace: &trace, beforeErr: wantErr}

		handlerRan := false
		rt := newRoute(http.MethodGet, "/x", func(*Request) (any, error) {
			handlerRan = true
			return "never", nil
		}, nil)

		_, err := rt.Handle(NewRequest(http.MethodGet, "/x", "", nil, nil), nil, []Middleware{a})
		assert.ErrorIs(t, err, wantErr)
		assert.False(t, handlerRan)
	})

	t.Run("after hook error propagates", func(t *testing.T) {
		var trace []string
		wantErr := errors.New("after failed")
		a := &recordMW{name: "A", trace: &trace, afterErr: wantErr}

		rt := newRoute(http.MethodGet, "/x", okHandler("ok"), []Middleware{a})

		_, err := rt.Handle(NewRequest(http.MethodGet, "/x", "", nil, nil), nil, nil)
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestRouteHandleBindsParams(t *testing.T) {
	rt := newRoute(http.MethodGet, "/users/:id", func(r *Request) (any, error) {
		return r.Param("id"), nil
	}, nil)

	params, ok := rt.Match(http.MethodGet, "/users/42")
	require.True(t, ok)

	res, err := rt.Handle(NewRequest(http.MethodGet, "/users/42", "", nil, nil), params, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("42"), res.Body)
}
