// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus collectors for the HTTP surface, the
credential flows, and outbound email.

Collectors live on a private registry so tests can build as many instances as
they need without clashing on the global default registry.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/hirelane/internal/platform/middleware"
)

// Outcome labels shared by the auth and email counters.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder owns the registry and every Hirelane collector.
//
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authEvents      *prometheus.CounterVec
	emailDispatch   *prometheus.CounterVec
}

// New creates a recorder with Go runtime and process collectors attached.
func New() *Recorder {
	recorder := &Recorder{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hirelane_http_requests_total",
			Help: "Total number of HTTP requests handled",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hirelane_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hirelane_auth_events_total",
			Help: "Credential lifecycle events by flow and outcome",
		}, []string{"flow", "outcome"}),
		emailDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hirelane_email_dispatch_total",
			Help: "Outbound email attempts by kind and outcome",
		}, []string{"kind", "outcome"}),
	}

	recorder.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		recorder.requestsTotal,
		recorder.requestDuration,
		recorder.authEvents,
		recorder.emailDispatch,
	)

	return recorder
}

// AuthEvent counts one credential flow result, e.g. ("login", "failure").
func (recorder *Recorder) AuthEvent(flow, outcome string) {
	if recorder == nil {
		return
	}
	recorder.authEvents.WithLabelValues(flow, outcome).Inc()
}

// EmailDispatch counts one outbound email attempt.
func (recorder *Recorder) EmailDispatch(kind string, err error) {
	if recorder == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	recorder.emailDispatch.WithLabelValues(kind, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (recorder *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(recorder.registry, promhttp.HandlerOpts{Registry: recorder.registry})
}

// Middleware records request count and latency labelled by chi route pattern.
//
// The pattern is read after the handler runs, so the raw path (with ids) never
// becomes a label value.
func (recorder *Recorder) Middleware(next http.Handler) http.Handler {
	if recorder == nil {
		return next
	}
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		startTime := time.Now()
		wrapped := middleware.NewStatusRecorder(writer)

		next.ServeHTTP(wrapped, request)

		route := "unmatched"
		if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		recorder.requestsTotal.WithLabelValues(request.Method, route, strconv.Itoa(wrapped.Status)).Inc()
		recorder.requestDuration.WithLabelValues(request.Method, route).Observe(time.Since(startTime).Seconds())
	})
}
