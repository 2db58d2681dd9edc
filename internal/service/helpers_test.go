package service_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/saadjs/dhyan-cli/internal/store"
)

var fixedNow = time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "dhyan.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestTracker(t *testing.T, now time.Time) *service.Tracker {
	t.Helper()
	n := 0
	return service.NewTracker(newTestStore(t),
		service.WithClock(func() time.Time { return now }),
		service.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%03d", n)
		}),
	)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }
