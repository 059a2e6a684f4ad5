package health

import (
	"context"
	"sync"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names reported in Report.Checks.
const (
	ComponentEngine   = "engine"
	ComponentDatabase = "database"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	engine Pinger
	db     Pinger
}

// New creates a Service.
func New(engine, db Pinger) *Service {
	return &Service{engine: engine, db: db}
}

// Check pings the engine and the record store concurrently.
func (s *Service) Check(ctx context.Context) Report {
	components := map[string]Pinger{
		ComponentEngine:   s.engine,
		ComponentDatabase: s.db,
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		checks = make(map[string]CheckResult, len(components))
	)
	for name, p := range components {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := CheckOK
			if err := p.Ping(ctx); err != nil {
				res = CheckError
			}
			mu.Lock()
			checks[name] = res
			mu.Unlock()
		}()
	}
	wg.Wait()

	failed := 0
	for _, v := range checks {
		if v == CheckError {
			failed++
		}
	}

	status := Healthy
	switch {
	case failed == len(checks):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}
	return Report{Status: status, Checks: checks}
}
