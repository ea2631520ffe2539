// Package catalog stores the social catalog in a hash store, one hash per entity.
package catalog

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kailas-cloud/huddle/internal/domain"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// store is the consumer interface for the catalog (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the catalog reader/writer contracts of the use cases.
//
// Each hash carries a "seq" field assigned on first insert; List orders by it so
// collections come back in insertion order regardless of key order in the store.
type Repo struct {
	store  store
	prefix string
	seq    atomic.Int64
}

// New creates a catalog repository. Keys are "<prefix><kind>:<id>".
func New(s store, prefix string) *Repo {
	r := &Repo{store: s, prefix: prefix}
	// Start from the clock so entities added after a restart sort after the
	// ones a shared store already holds.
	r.seq.Store(time.Now().UnixNano())
	return r
}

// Put creates or replaces an entity. A replaced entity keeps its position.
func (r *Repo) Put(ctx context.Context, e social.Entity) error {
	fields, err := encode(e)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", e.Kind(), e.ID(), err)
	}

	key := r.key(e.Kind(), e.ID())
	existing, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return fmt.Errorf("hgetall %s: %w", key, err)
	}
	if seq, ok := existing[fieldSeq]; ok {
		fields[fieldSeq] = seq
	} else {
		fields[fieldSeq] = strconv.FormatInt(r.seq.Add(1), 10)
	}

	// HSET merges, so clear fields (e.g. a dropped coordinate) that the new
	// version no longer carries.
	if len(existing) > 0 {
		if err := r.store.Del(ctx, key); err != nil {
			return fmt.Errorf("del %s: %w", key, err)
		}
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Get returns a single entity.
func (r *Repo) Get(ctx context.Context, k kind.Kind, id string) (social.Entity, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, k)
	}
	key := r.key(k, id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("%s %q: %w", k, id, domain.ErrNotFound)
	}
	e, err := decode(k, id, m)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return e, nil
}

// List returns every entity of a kind in insertion order.
func (r *Repo) List(ctx context.Context, k kind.Kind) ([]social.Entity, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, k)
	}

	pattern := r.key(k, "*")
	keys, err := r.store.Scan(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return []social.Entity{}, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", pattern, err)
	}

	type row struct {
		seq    int64
		entity social.Entity
	}
	rows := make([]row, 0, len(keys))
	for i, m := range hashes {
		if len(m) == 0 {
			// Deleted between SCAN and HGETALL.
			continue
		}
		id := strings.TrimPrefix(keys[i], r.key(k, ""))
		e, err := decode(k, id, m)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		seq, _ := strconv.ParseInt(m[fieldSeq], 10, 64)
		rows = append(rows, row{seq: seq, entity: e})
	}

	slices.SortStableFunc(rows, func(a, b row) int {
		return cmp.Or(cmp.Compare(a.seq, b.seq), strings.Compare(a.entity.ID(), b.entity.ID()))
	})

	out := make([]social.Entity, len(rows))
	for i, rw := range rows {
		out[i] = rw.entity
	}
	return out, nil
}

// Delete removes an entity.
func (r *Repo) Delete(ctx context.Context, k kind.Kind, id string) error {
	if !k.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidKind, k)
	}
	key := r.key(k, id)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("%s %q: %w", k, id, domain.ErrNotFound)
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// Count returns how many entities of a kind are stored.
func (r *Repo) Count(ctx context.Context, k kind.Kind) (int, error) {
	if !k.IsValid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidKind, k)
	}
	keys, err := r.store.Scan(ctx, r.key(k, "*"))
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", k, err)
	}
	return len(keys), nil
}

func (r *Repo) key(k kind.Kind, id string) string {
	return r.prefix + string(k) + ":" + id
}
