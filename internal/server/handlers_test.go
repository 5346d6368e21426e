package server

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/Zhaohan-Wang/Star-Office-UI/internal/pet"
	"github.com/Zhaohan-Wang/Star-Office-UI/internal/platform/config"
)

// --- Mock implementations ---

type mockPetService struct {
	readStateFn func(ctx context.Context) (*pet.State, error)
	loadSceneFn func(ctx context.Context) (*pet.Scene, error)
}

func (m *mockPetService) ReadState(ctx context.Context) (*pet.State, error) {
	if m.readStateFn != nil {
		return m.readStateFn(ctx)
	}
	return &pet.State{State: "idle"}, nil
}

func (m *mockPetService) LoadScene(ctx context.Context) (*pet.Scene, error) {
	if m.loadSceneFn != nil {
		return m.loadSceneFn(ctx)
	}
	return &pet.Scene{Width: 200, Height: 250, Layers: []pet.Layer{}}, nil
}

// --- Test helpers ---

func newTestServer(t *testing.T, pets petService) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:      "test",
		Port:        "0",
		ProjectRoot: t.TempDir(),
	}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC))

	return NewServer(cfg, pets, clock)
}

func doRequest(srv *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func requireJSONContains(t *testing.T, rec *httptest.ResponseRecorder, fragment string) {
	t.Helper()
	require.Contains(t, rec.Body.String(), fragment, "body: %s", rec.Body.String())
}

var errBoom = fmt.Errorf("boom")
