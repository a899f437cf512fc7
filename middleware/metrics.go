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

package middleware

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fennhq/fenn/router"
)

// metricsStartKey keys the dispatch start time in the request value bag.
type metricsStartKey struct{}

// metrics records a request counter and a duration histogram per request.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics returns a factory for the metrics middleware, registering its
// collectors on reg. A nil registerer falls back to the default registry.
// Collectors are created and registered once, at factory construction, so a
// factory must not be passed to more than one kernel.
func NewMetrics(reg prometheus.Registerer) router.Factory {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fenn",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests dispatched, by method, path, and status.",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fenn",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Dispatch duration from before hook to after hook.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	reg.MustRegister(m.requests, m.duration)

	return func() router.Middleware { return m }
}

// Before stamps the dispatch start time.
func (m *metrics) Before(r *router.Request) (*router.Response, error) {
	r.Set(metricsStartKey{}, time.Now())
	return nil, nil
}

// After records the counter and histogram for the completed dispatch.
func (m *metrics) After(r *router.Request, res *router.Response) (*router.Response, error) {
	m.requests.WithLabelValues(r.Method, r.Path, strconv.Itoa(res.StatusCode)).Inc()

	if v, ok := r.Get(metricsStartKey{}); ok {
		if start, ok := v.(time.Time); ok {
			m.duration.WithLabelValues(r.Method, r.Path).Observe(time.Since(start).Seconds())
		}
	}

	return nil, nil
}
