package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/huddle/internal/db/memory"
	"github.com/kailas-cloud/huddle/internal/domain"
	"github.com/kailas-cloud/huddle/internal/domain/geo"
	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

func TestPutAndList_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), "huddle:")

	// IDs deliberately out of lexical order.
	for _, id := range []string{"zoe", "bob", "alice"} {
		if err := r.Put(ctx, mustPerson(t, id, id, id, geo.Point{})); err != nil {
			t.Fatalf("Put(%s): %v", id, err)
		}
	}

	got, err := r.List(ctx, kind.People)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"zoe", "bob", "alice"}
	if len(got) != len(want) {
		t.Fatalf("want %d people, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID() != want[i] {
			t.Errorf("people[%d] = %s, want %s", i, got[i].ID(), want[i])
		}
	}
}

func TestPut_ReplaceKeepsPosition(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), "huddle:")

	_ = r.Put(ctx, mustPerson(t, "a", "A", "a", geo.At(1, 2)))
	_ = r.Put(ctx, mustPerson(t, "b", "B", "b", geo.Point{}))
	_ = r.Put(ctx, mustPerson(t, "a", "Alice", "alice", geo.Point{}))

	got, err := r.List(ctx, kind.People)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID() != "a" || got[1].ID() != "b" {
		t.Fatalf("unexpected order: %v", got)
	}
	if got[0].Label() != "Alice" {
		t.Errorf("label = %q, want Alice", got[0].Label())
	}
	if !got[0].Location().IsEmpty() {
		t.Error("dropped coordinates should not survive a replace")
	}
}

func TestGet_RoundTripsAllKinds(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), "")

	lat := 37.5
	person := mustPerson(t, "alice", "Alice", "alicej", geo.Point{Lat: &lat})
	post, _ := social.NewPost("p1", "alice", "hello", geo.At(1.25, -3.5))
	community, _ := social.NewCommunity("c1", "Chess", "Weekly games", geo.Point{})
	event, _ := social.NewEvent("e1", "Picnic", "Park", geo.At(37.76, -122.43))

	for _, e := range []social.Entity{person, post, community, event} {
		if err := r.Put(ctx, e); err != nil {
			t.Fatalf("Put(%s): %v", e.ID(), err)
		}
		got, err := r.Get(ctx, e.Kind(), e.ID())
		if err != nil {
			t.Fatalf("Get(%s): %v", e.ID(), err)
		}
		if got.ID() != e.ID() || got.Label() != e.Label() || got.Kind() != e.Kind() {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, e)
		}
	}

	got, _ := r.Get(ctx, kind.People, "alice")
	loc := got.Location()
	if loc.Lat == nil || *loc.Lat != 37.5 || loc.Lon != nil {
		t.Errorf("partial location not preserved: %+v", loc)
	}

	gotPost, _ := r.Get(ctx, kind.Posts, "p1")
	lat2, lon2, ok := gotPost.Location().Coordinates()
	if !ok || lat2 != 1.25 || lon2 != -3.5 {
		t.Errorf("post location = (%v,%v,%v)", lat2, lon2, ok)
	}
}

func TestGet_NotFound(t *testing.T) {
	r := New(memory.NewStore(), "")
	_, err := r.Get(context.Background(), kind.Events, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestInvalidKind(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), "")
	if _, err := r.List(ctx, "messages"); !errors.Is(err, domain.ErrInvalidKind) {
		t.Errorf("List: want ErrInvalidKind, got %v", err)
	}
	if _, err := r.Get(ctx, "messages", "x"); !errors.Is(err, domain.ErrInvalidKind) {
		t.Errorf("Get: want ErrInvalidKind, got %v", err)
	}
	if err := r.Delete(ctx, "messages", "x"); !errors.Is(err, domain.ErrInvalidKind) {
		t.Errorf("Delete: want ErrInvalidKind, got %v", err)
	}
	if _, err := r.Count(ctx, "messages"); !errors.Is(err, domain.ErrInvalidKind) {
		t.Errorf("Count: want ErrInvalidKind, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), "")
	_ = r.Put(ctx, mustPerson(t, "a", "A", "a", geo.Point{}))

	if err := r.Delete(ctx, kind.People, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := r.Delete(ctx, kind.People, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete: want ErrNotFound, got %v", err)
	}
	n, _ := r.Count(ctx, kind.People)
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}

func TestList_KindsAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), "huddle:")
	_ = r.Put(ctx, mustPerson(t, "a", "A", "a", geo.Point{}))
	c, _ := social.NewCommunity("a", "Chess", "", geo.Point{})
	_ = r.Put(ctx, c)

	people, _ := r.List(ctx, kind.People)
	communities, _ := r.List(ctx, kind.Communities)
	posts, _ := r.List(ctx, kind.Posts)
	if len(people) != 1 || len(communities) != 1 || len(posts) != 0 {
		t.Errorf("people=%d communities=%d posts=%d", len(people), len(communities), len(posts))
	}
	if posts == nil {
		t.Error("empty list should be non-nil")
	}
}

func TestList_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	r := New(&mockStore{scanFn: func(context.Context, string) ([]string, error) { return nil, boom }}, "")
	if _, err := r.List(ctx, kind.People); !errors.Is(err, boom) {
		t.Errorf("scan failure: want boom, got %v", err)
	}

	r = New(&mockStore{
		scanFn: func(context.Context, string) ([]string, error) { return []string{"people:a"}, nil },
		hgetAllMultiFn: func(context.Context, []string) ([]map[string]string, error) {
			return nil, boom
		},
	}, "")
	if _, err := r.List(ctx, kind.People); !errors.Is(err, boom) {
		t.Errorf("hgetall failure: want boom, got %v", err)
	}
}

func TestList_SkipsVanishedKeys(t *testing.T) {
	r := New(&mockStore{
		scanFn: func(context.Context, string) ([]string, error) {
			return []string{"people:a", "people:gone"}, nil
		},
		hgetAllMultiFn: func(context.Context, []string) ([]map[string]string, error) {
			return []map[string]string{
				{"name": "A", "username": "a", "seq": "1"},
				{},
			}, nil
		},
	}, "")
	got, err := r.List(context.Background(), kind.People)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "a" {
		t.Errorf("unexpected result %v", got)
	}
}

func TestList_CorruptHash(t *testing.T) {
	r := New(&mockStore{
		scanFn: func(context.Context, string) ([]string, error) { return []string{"events:e"}, nil },
		hgetAllMultiFn: func(context.Context, []string) ([]map[string]string, error) {
			return []map[string]string{{"title": "T", "lat": "north"}}, nil
		},
	}, "")
	if _, err := r.List(context.Background(), kind.Events); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestPut_StoreError(t *testing.T) {
	boom := errors.New("boom")
	r := New(&mockStore{hsetFn: func(context.Context, string, map[string]string) error { return boom }}, "")
	err := r.Put(context.Background(), mustPerson(t, "a", "A", "a", geo.Point{}))
	if !errors.Is(err, boom) {
		t.Errorf("want boom, got %v", err)
	}
}
