package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck(t *testing.T) {
	down := errors.New("conn refused")
	tests := []struct {
		name       string
		engineErr  error
		dbErr      error
		wantStatus Status
		wantEngine CheckResult
		wantDB     CheckResult
	}{
		{"all healthy", nil, nil, Healthy, CheckOK, CheckOK},
		{"engine down", down, nil, Degraded, CheckError, CheckOK},
		{"database down", nil, down, Degraded, CheckOK, CheckError},
		{"all down", down, down, Unhealthy, CheckError, CheckError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(&mockPinger{err: tt.engineErr}, &mockPinger{err: tt.dbErr})
			r := svc.Check(context.Background())

			if r.Status != tt.wantStatus {
				t.Errorf("expected %q, got %q", tt.wantStatus, r.Status)
			}
			if r.Checks[ComponentEngine] != tt.wantEngine {
				t.Errorf("expected engine %q, got %q", tt.wantEngine, r.Checks[ComponentEngine])
			}
			if r.Checks[ComponentDatabase] != tt.wantDB {
				t.Errorf("expected database %q, got %q", tt.wantDB, r.Checks[ComponentDatabase])
			}
		})
	}
}
