package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-notes/internal/config"
	"github.com/MKhiriev/go-secret-notes/internal/logger"
	"github.com/MKhiriev/go-secret-notes/internal/store"
)

// fakeClock advances only when told to. After fires immediately and moves
// the clock forward by d.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.Advance(d)
	ch := make(chan time.Time, 1)
	ch <- c.Now()
	return ch
}

func memoryPrefs(t *testing.T) store.PreferenceStore {
	t.Helper()
	prefs, err := store.NewFilePreferenceStore("")
	require.NoError(t, err)
	return prefs
}

// passwordServiceWith returns a master password service whose password is
// already set to password.
func passwordServiceWith(t *testing.T, prefs store.PreferenceStore, cfg config.App, password string) MasterPasswordService {
	t.Helper()
	svc := NewMasterPasswordService(prefs, cfg, logger.Nop())
	if password != "" {
		require.NoError(t, svc.Set(context.Background(), password))
	}
	return svc
}
