package health

import (
	"context"

	"github.com/kailas-cloud/huddle/internal/domain/social/kind"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	CheckOK    CheckResult = "ok"
	CheckEmpty CheckResult = "empty"
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
	// Entities holds per-kind counts; nil when the catalog check is disabled.
	Entities map[kind.Kind]int
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	catalog CatalogCounter
}

// New creates a Service. catalog can be nil.
func New(db DBPinger, catalog CatalogCounter) *Service {
	return &Service{db: db, catalog: catalog}
}

// Check pings the database and, when a catalog is attached, counts its
// collections. An empty catalog is reported but does not degrade the status.
func (s *Service) Check(ctx context.Context) Report {
	r := Report{Status: Healthy, Checks: make(map[string]CheckResult)}

	if err := s.db.Ping(ctx); err != nil {
		r.Checks["database"] = CheckError
		r.Status = Degraded
		// A catalog behind a dead store cannot answer either.
		return r
	}
	r.Checks["database"] = CheckOK

	if s.catalog == nil {
		return r
	}

	r.Entities = make(map[kind.Kind]int, len(kind.All()))
	total := 0
	for _, k := range kind.All() {
		n, err := s.catalog.Count(ctx, k)
		if err != nil {
			r.Checks["catalog"] = CheckError
			r.Status = Degraded
			return r
		}
		r.Entities[k] = n
		total += n
	}
	if total == 0 {
		r.Checks["catalog"] = CheckEmpty
	} else {
		r.Checks["catalog"] = CheckOK
	}
	return r
}
