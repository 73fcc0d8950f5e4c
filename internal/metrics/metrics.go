// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package metrics groups the Prometheus instruments for the analysis
// pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline's Prometheus instruments. All instruments live
// on an explicit registry so tests and embedders stay isolated from the
// global default.
type Metrics struct {
	registry *prometheus.Registry

	TextsAnalyzed   prometheus.Counter
	EntitiesFound   *prometheus.CounterVec
	VerifyCalls     *prometheus.CounterVec
	AnalyzeDuration prometheus.Histogram
	VerifyDuration  prometheus.Histogram
}

// New creates the instrument set on a fresh registry.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		TextsAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "texts_analyzed_total",
			Help:      "Texts run through the detection pipeline.",
		}),
		EntitiesFound: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_found_total",
			Help:      "Detected entities by type.",
		}, []string{"entity_type"}),
		VerifyCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verify_calls_total",
			Help:      "Verification backend calls by backend and outcome.",
		}, []string{"backend", "outcome"}),
		AnalyzeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analyze_duration_seconds",
			Help:      "Time to analyze one text.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		VerifyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "verify_duration_seconds",
			Help:      "Time for one verification call.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}),
	}
}

// ObserveAnalyze records one completed analysis.
func (m *Metrics) ObserveAnalyze(d time.Duration, entityTypes []string) {
	m.TextsAnalyzed.Inc()
	m.AnalyzeDuration.Observe(d.Seconds())
	for _, t := range entityTypes {
		m.EntitiesFound.WithLabelValues(t).Inc()
	}
}

// ObserveVerify records one verification call.
func (m *Metrics) ObserveVerify(backend string, d time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.VerifyCalls.WithLabelValues(backend, outcome).Inc()
	m.VerifyDuration.Observe(d.Seconds())
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the instruments over HTTP.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
