package health

import (
	"context"

	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogCounter reports how many entities of a kind are loaded.
type CatalogCounter interface {
	Count(ctx context.Context, k kind.Kind) (int, error)
}
