package huddle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
	healthuc "github.com/kailas-cloud/huddle/internal/usecase/health"
	"github.com/kailas-cloud/huddle/internal/usecase/mapview"
	searchuc "github.com/kailas-cloud/huddle/internal/usecase/search"
)

const sdkSeed = `
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
    author_id: alice
    content: Coffee at noon
communities:
  - id: climbers
    name: Bay Area Climbers
    location: {lat: 37.78, lon: -122.43}
events:
  - id: picnic
    title: Picnic
    location: {lat: 37.77, lon: -122.42}
`

func newSeededClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c, err := New(context.Background(), append([]Option{WithSeedYAML([]byte(sdkSeed))}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestNew_MemoryDefault(t *testing.T) {
	c, err := New(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
	h := c.Health(context.Background())
	if h.Status != "ok" || h.Checks["catalog"] != "empty" {
		t.Errorf("unexpected health %+v", h)
	}
}

func TestNew_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(sdkSeed), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := New(context.Background(), WithSeedFile(path), WithKeyPrefix("t:"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	people, err := c.List(context.Background(), People)
	if err != nil {
		t.Fatal(err)
	}
	if len(people) != 2 || people[0].ID != "alice" || people[1].ID != "bob" {
		t.Errorf("unexpected people %+v", people)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"missing seed file", []Option{WithSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))}},
		{"invalid seed", []Option{WithSeedYAML([]byte("people:\n  - id: x\n"))}},
		{"valkey without addr", []Option{WithValkey("", "")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(context.Background(), tc.opts...)
			if err == nil {
				c.Close()
				t.Fatal("expected error")
			}
		})
	}
}

func TestNew_InvalidSeedIsEntityError(t *testing.T) {
	_, err := New(context.Background(), WithSeedYAML([]byte("people:\n  - id: x\n")))
	if !errors.Is(err, ErrInvalidEntity) {
		t.Errorf("want ErrInvalidEntity, got %v", err)
	}
}

func TestClient_Search(t *testing.T) {
	c := newSeededClient(t)

	groups, err := c.Search(context.Background(), "al")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("want 3 groups, got %d", len(groups))
	}
	got := map[Kind][]string{}
	for _, g := range groups {
		for _, e := range g.Entities {
			got[g.Kind] = append(got[g.Kind], e.ID)
		}
	}
	if len(got[People]) != 1 || got[People][0] != "alice" {
		t.Errorf("people = %v", got[People])
	}
	if len(got[Communities]) != 1 {
		t.Errorf("communities = %v", got[Communities])
	}
	if len(got[Posts]) != 0 {
		t.Errorf("posts = %v", got[Posts])
	}

	if _, err := c.Search(context.Background(), "x", Events); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("want ErrInvalidKind, got %v", err)
	}
}

func TestClient_Pins(t *testing.T) {
	c := newSeededClient(t)

	view, err := c.Pins(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Fallback || len(view.Pins) != 4 || len(view.Visible()) != 3 {
		t.Fatalf("unexpected view: fallback=%v pins=%d visible=%d",
			view.Fallback, len(view.Pins), len(view.Visible()))
	}
	if !view.Bounds.contains(view.CenterLat, view.CenterLon) {
		t.Errorf("center outside bounds: %+v", view)
	}
	for _, p := range view.Pins {
		if p.Entity.ID == "bob" && (p.Visible || p.Top != "-100%" || p.TopPercent != -100) {
			t.Errorf("bob should be offscreen: %+v", p)
		}
	}

	if _, err := c.Pins(context.Background(), Posts); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("want ErrInvalidKind, got %v", err)
	}
}

func TestClient_Get(t *testing.T) {
	c := newSeededClient(t)

	e, err := c.Get(context.Background(), Communities, "climbers")
	if err != nil {
		t.Fatal(err)
	}
	if e.Label != "Bay Area Climbers" || e.Lat == nil || *e.Lat != 37.78 {
		t.Errorf("unexpected entity %+v", e)
	}

	if _, err := c.Get(context.Background(), People, "zed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestClient_Health(t *testing.T) {
	h := newSeededClient(t).Health(context.Background())
	if h.Status != "ok" || h.Checks["catalog"] != "ok" {
		t.Errorf("unexpected health %+v", h)
	}
	if h.Entities[People] != 2 || h.Entities[Events] != 1 {
		t.Errorf("unexpected counts %v", h.Entities)
	}
}

func TestClient_WithMocks(t *testing.T) {
	p, _ := social.NewPerson("zoe", "Zoe", "zoe", "", geo.At(1, 2))
	var gotKinds []kind.Kind

	c := &Client{
		searchSvc: &mockSearchUC{searchFn: func(_ context.Context, q string, kinds []kind.Kind) ([]searchuc.Group, error) {
			gotKinds = kinds
			return []searchuc.Group{{Kind: kind.People, Items: []social.Entity{p}}}, nil
		}},
		mapSvc: &mockMapUC{pinsFn: func(context.Context, []kind.Kind) (mapview.View, error) {
			return mapview.View{}, errors.New("boom")
		}},
		healthSvc: &mockHealthUC{report: healthuc.Report{Status: healthuc.Degraded}},
	}

	groups, err := c.Search(context.Background(), "z", People, Posts)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotKinds) != 2 || gotKinds[0] != kind.People || gotKinds[1] != kind.Posts {
		t.Errorf("kinds not forwarded: %v", gotKinds)
	}
	if groups[0].Entities[0].ID != "zoe" || *groups[0].Entities[0].Lon != 2 {
		t.Errorf("unexpected group %+v", groups[0])
	}

	if _, err := c.Pins(context.Background()); err == nil {
		t.Error("expected error")
	}
	if h := c.Health(context.Background()); h.Status != "degraded" {
		t.Errorf("status = %s", h.Status)
	}
}

func TestClient_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := newSeededClient(t, WithPrometheus(reg), WithReadinessTimeout(time.Second))

	_, _ = c.Search(context.Background(), "a")
	_, _ = c.Search(context.Background(), "a", Events)

	// A second client on the same registry reuses the collectors.
	c2 := newSeededClient(t, WithPrometheus(reg))
	_, _ = c2.Search(context.Background(), "b")

	m := c.obs.metrics
	if got := testutil.ToFloat64(m.operations.WithLabelValues("search", "ok")); got != 3 {
		t.Errorf("search ok = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("search", "error")); got != 1 {
		t.Errorf("search error = %v, want 1", got)
	}
}

func TestMatches(t *testing.T) {
	if !Matches("a j", "Alice Johnson") || Matches("ja", "Alice Johnson") {
		t.Error("unexpected match result")
	}
}

func (b Bounds) contains(lat, lon float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax && lon >= b.LonMin && lon <= b.LonMax
}
