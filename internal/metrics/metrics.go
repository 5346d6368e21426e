// Package metrics defines the Prometheus collectors for the pet backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scene loading metrics
var (
	// SceneLoadsTotal tracks scene loads by status (ok/error)
	SceneLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pet_scene_loads_total",
			Help: "Total scene loads by status",
		},
		[]string{"status"},
	)

	// SceneLoadDuration tracks scene load latency in seconds
	SceneLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pet_scene_load_duration_seconds",
			Help:    "Scene load duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// Asset encoding metrics
var (
	// AssetsEncodedTotal counts images embedded as data URLs
	AssetsEncodedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pet_assets_encoded_total",
			Help: "Total images encoded into data URLs",
		},
	)

	// AssetsEncodedBytes counts raw image bytes read for encoding
	AssetsEncodedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pet_assets_encoded_bytes_total",
			Help: "Total raw image bytes read for encoding",
		},
	)

	// AssetsSkippedTotal counts referenced images missing on disk, by kind (layer/sprite)
	AssetsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pet_assets_skipped_total",
			Help: "Referenced images missing on disk, by kind",
		},
		[]string{"kind"},
	)
)

// State reading metrics
var (
	// StateReadsTotal tracks state.json reads by status (ok/error)
	StateReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pet_state_reads_total",
			Help: "Total state file reads by status",
		},
		[]string{"status"},
	)
)
