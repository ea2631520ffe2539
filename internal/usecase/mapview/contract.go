package mapview

import (
	"context"

	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// Catalog lists entities of one kind in collection order.
type Catalog interface {
	List(ctx context.Context, k kind.Kind) ([]social.Entity, error)
}
