package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/huddle/internal/db/memory"
	"github.com/kailas-cloud/huddle/internal/repository/catalog"
	"github.com/kailas-cloud/huddle/internal/repository/seed"
	healthuc "github.com/kailas-cloud/huddle/internal/usecase/health"
	"github.com/kailas-cloud/huddle/internal/usecase/mapview"
	searchuc "github.com/kailas-cloud/huddle/internal/usecase/search"
)

const testSeed = `
people:
  - id: alice
    name: Alice Johnson
    username: alicej
    location: {lat: 37.76, lon: -122.41}
  - id: bob
    name: Bob Stone
    username: bstone
posts:
  - id: p1
    author_id: bob
    content: Brunch at the ferry
    location: {lat: 37.79, lon: -122.39}
communities:
  - id: climbers
    name: Bay Area Climbers
    description: Weekly sessions
    location: {lat: 37.77, lon: -122.42}
events:
  - id: picnic
    title: Picnic
    description: Bring a blanket
    location: {lat: 37.78, lon: -122.45}
`

// newTestRouter builds the full stack over a seeded memory store.
func newTestRouter(t *testing.T, apiKeys ...string) http.Handler {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	t.Cleanup(store.Close)

	repo := catalog.New(store, "test:")
	entities, err := seed.Parse([]byte(testSeed))
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}
	if err := seed.Apply(ctx, repo, entities); err != nil {
		t.Fatalf("apply seed: %v", err)
	}

	srv := NewServer(
		repo,
		searchuc.New(repo),
		mapview.New(repo),
		healthuc.New(store, repo),
		zap.NewNop(),
	)
	return NewRouter(srv, apiKeys, zap.NewNop())
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode %T: %v", v, err)
	}
	return v
}
