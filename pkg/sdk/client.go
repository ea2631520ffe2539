package huddle

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/huddle/internal/db"
	"github.com/kailas-cloud/huddle/internal/db/memory"
	dbValkey "github.com/kailas-cloud/huddle/internal/db/valkey"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
	"github.com/kailas-cloud/huddle/internal/repository/catalog"
	"github.com/kailas-cloud/huddle/internal/repository/seed"
	healthuc "github.com/kailas-cloud/huddle/internal/usecase/health"
	"github.com/kailas-cloud/huddle/internal/usecase/mapview"
	searchuc "github.com/kailas-cloud/huddle/internal/usecase/search"
)

const (
	driverMemory = "memory"
	driverValkey = "valkey"

	defaultKeyPrefix        = "huddle:"
	defaultReadinessTimeout = 10 * time.Second
)

// Internal interfaces, swapped out in tests.
type catalogReader interface {
	List(ctx context.Context, k kind.Kind) ([]social.Entity, error)
	Get(ctx context.Context, k kind.Kind, id string) (social.Entity, error)
}

type searchUseCase interface {
	Search(ctx context.Context, query string, kinds []kind.Kind) ([]searchuc.Group, error)
}

type mapUseCase interface {
	Pins(ctx context.Context, kinds []kind.Kind) (mapview.View, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the huddle SDK entry point. It is safe for concurrent use.
type Client struct {
	store     db.Store
	catalog   catalogReader
	searchSvc searchUseCase
	mapSvc    mapUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client, waits for the store and loads the seed if one is
// configured. The provided context bounds the startup work.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:           driverMemory,
		keyPrefix:        defaultKeyPrefix,
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("huddle: database not ready: %w", err)
	}

	repo := catalog.New(store, cfg.keyPrefix)
	if err := applySeed(ctx, repo, cfg); err != nil {
		store.Close()
		return nil, err
	}

	return &Client{
		store:     store,
		catalog:   repo,
		searchSvc: searchuc.New(repo),
		mapSvc:    mapview.New(repo),
		healthSvc: healthuc.New(store, repo),
		obs:       obs,
	}, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case driverMemory:
		return memory.NewStore(), nil
	case driverValkey:
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("huddle: create valkey store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("huddle: unknown driver %q", cfg.driver)
	}
}

func applySeed(ctx context.Context, w seed.Writer, cfg *clientConfig) error {
	var (
		entities []social.Entity
		err      error
	)
	switch {
	case cfg.seedPath != "":
		entities, err = seed.Load(cfg.seedPath)
	case cfg.seedData != nil:
		entities, err = seed.Parse(cfg.seedData)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("huddle: %w", err)
	}
	if err := seed.Apply(ctx, w, entities); err != nil {
		return fmt.Errorf("huddle: %w", err)
	}
	return nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search filters the requested collections; no kinds means people, posts and
// communities. An empty query returns whole collections.
func (c *Client) Search(ctx context.Context, query string, kinds ...Kind) (_ []SearchGroup, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	groups, err := c.searchSvc.Search(ctx, query, toKinds(kinds))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	out := make([]SearchGroup, len(groups))
	for i, g := range groups {
		out[i] = SearchGroup{Kind: Kind(g.Kind), Entities: entitiesFromDomain(g.Items)}
	}
	return out, nil
}

// Pins projects the requested collections onto the map; no kinds means
// people, communities and events.
func (c *Client) Pins(ctx context.Context, kinds ...Kind) (_ MapView, err error) {
	start := time.Now()
	defer func() { c.obs.observe("pins", start, err) }()

	view, err := c.mapSvc.Pins(ctx, toKinds(kinds))
	if err != nil {
		return MapView{}, fmt.Errorf("pins: %w", err)
	}

	out := MapView{
		Bounds: Bounds{
			LatMin: view.Bounds.LatMin,
			LatMax: view.Bounds.LatMax,
			LonMin: view.Bounds.LonMin,
			LonMax: view.Bounds.LonMax,
		},
		RadiusMeters: view.Radius,
		Fallback:     view.Fallback,
		Pins:         make([]Pin, len(view.Pins)),
	}
	out.CenterLat, out.CenterLon, _ = view.Center.Coordinates()
	for i, p := range view.Pins {
		out.Pins[i] = pinFromDomain(p.Entity, p.Position)
	}
	return out, nil
}

// List returns a whole collection in insertion order.
func (c *Client) List(ctx context.Context, k Kind) (_ []Entity, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list", start, err) }()

	items, err := c.catalog.List(ctx, kind.Kind(k))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", k, err)
	}
	return entitiesFromDomain(items), nil
}

// Get returns one entity.
func (c *Client) Get(ctx context.Context, k Kind, id string) (_ Entity, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get", start, err) }()

	e, err := c.catalog.Get(ctx, kind.Kind(k), id)
	if err != nil {
		return Entity{}, fmt.Errorf("get %s %q: %w", k, id, err)
	}
	return entityFromDomain(e), nil
}

// Health checks the store and counts the catalog.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	entities := make(map[Kind]int, len(report.Entities))
	for k, n := range report.Entities {
		entities[Kind(k)] = n
	}
	return HealthStatus{
		Status:   string(report.Status),
		Checks:   checks,
		Entities: entities,
	}
}
