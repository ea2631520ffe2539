package huddle

import (
	"context"

	"github.com/kailas-cloud/huddle/internal/domain/social"
	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
	healthuc "github.com/kailas-cloud/huddle/internal/usecase/health"
	"github.com/kailas-cloud/huddle/internal/usecase/mapview"
	searchuc "github.com/kailas-cloud/huddle/internal/usecase/search"
)

// --- catalogReader mock ---

type mockCatalog struct {
	listFn func(ctx context.Context, k kind.Kind) ([]social.Entity, error)
	getFn  func(ctx context.Context, k kind.Kind, id string) (social.Entity, error)
}

func (m *mockCatalog) List(ctx context.Context, k kind.Kind) ([]social.Entity, error) {
	return m.listFn(ctx, k)
}

func (m *mockCatalog) Get(ctx context.Context, k kind.Kind, id string) (social.Entity, error) {
	return m.getFn(ctx, k, id)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, query string, kinds []kind.Kind) ([]searchuc.Group, error)
}

func (m *mockSearchUC) Search(ctx context.Context, query string, kinds []kind.Kind) ([]searchuc.Group, error) {
	return m.searchFn(ctx, query, kinds)
}

// --- mapUseCase mock ---

type mockMapUC struct {
	pinsFn func(ctx context.Context, kinds []kind.Kind) (mapview.View, error)
}

func (m *mockMapUC) Pins(ctx context.Context, kinds []kind.Kind) (mapview.View, error) {
	return m.pinsFn(ctx, kinds)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }
