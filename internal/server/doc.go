// Package server implements the HTTP server using Echo framework.
//
// Routes: pet API (state/scene) polled by the overlay webview, plus
// observability (health, metrics, version).
// Handlers split by domain: handlers_state.go, handlers_scene.go, handlers_health.go.
package server
