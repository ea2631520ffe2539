package search

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/kailas-cloud/huddle/internal/domain"
	"github.com/kailas-cloud/huddle/internal/domain/search/match"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
	logpkg "github.com/kailas-cloud/huddle/internal/logger"
	"github.com/kailas-cloud/huddle/internal/metrics"
)

// Group holds the matches of one kind, in collection order.
type Group struct {
	Kind  kind.Kind
	Items []social.Entity
}

// Service filters catalog collections with the subsequence matcher.
// Matches are not ranked.
type Service struct {
	catalog Catalog
}

// New creates a search service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Search returns one group per requested kind. No kinds means every searchable
// kind. An empty query returns whole collections.
func (s *Service) Search(ctx context.Context, query string, kinds []kind.Kind) ([]Group, error) {
	kinds, err := resolveKinds(kinds)
	if err != nil {
		return nil, err
	}

	metrics.SearchQueriesTotal.WithLabelValues(strconv.FormatBool(query == "")).Inc()

	groups := make([]Group, 0, len(kinds))
	total := 0
	for _, k := range kinds {
		items, err := s.catalog.List(ctx, k)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", k, err)
		}
		matched := match.Filter(query, items, social.Entity.SearchFields)
		metrics.SearchMatchesTotal.WithLabelValues(string(k)).Add(float64(len(matched)))
		total += len(matched)
		groups = append(groups, Group{Kind: k, Items: matched})
	}

	logpkg.FromContext(ctx).Debug("search",
		zap.String("query", query),
		zap.Int("kinds", len(kinds)),
		zap.Int("matches", total),
	)
	return groups, nil
}

// resolveKinds validates kinds and drops duplicates, keeping first occurrence.
func resolveKinds(kinds []kind.Kind) ([]kind.Kind, error) {
	if len(kinds) == 0 {
		return kind.Searchable(), nil
	}
	seen := make(map[kind.Kind]bool, len(kinds))
	out := make([]kind.Kind, 0, len(kinds))
	for _, k := range kinds {
		if !k.IsSearchable() {
			return nil, fmt.Errorf("%w: %q is not searchable", domain.ErrInvalidKind, k)
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out, nil
}
