package scheduler

import (
	"testing"
	"time"

	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/middleware"
	"github.com/Rosvend/REST-Api-NoSQL/tests/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRegistersJobs(t *testing.T) {
	store := helpers.SetupTestStore(t)

	tests := []struct {
		name     string
		interval time.Duration
		limiter  *middleware.RateLimiter
		want     int
	}{
		{"sweep and cleanup", time.Hour, middleware.NewRateLimiter(1, 1), 2},
		{"sweep disabled", 0, middleware.NewRateLimiter(1, 1), 1},
		{"nothing to do", 0, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(store.Asociaciones, tt.limiter, tt.interval, logging.NewNop())
			require.NoError(t, s.Start())
			defer s.Stop()
			assert.Equal(t, tt.want, s.Jobs())
		})
	}
}

func TestSweepRemovesOrphans(t *testing.T) {
	store := helpers.SetupTestStore(t)
	seed := helpers.SeedParacetamol(t, store)
	// an association whose medicamento no longer exists
	helpers.CreateTestAsociacion(t, store, "6a0f3f0e-9a55-4a9e-8c53-000000000000", seed.Compuesto.ID, 1, "g")

	s := New(store.Asociaciones, nil, 20*time.Millisecond, logging.NewNop())
	require.NoError(t, s.Start())
	defer s.Stop()

	require.Eventually(t, func() bool {
		all, err := store.Asociaciones.List(t.Context())
		return err == nil && len(all) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCleanupLimiter(t *testing.T) {
	limiter := middleware.NewRateLimiter(1000, 1)
	s := New(nil, limiter, 0, logging.NewNop())

	// no clients yet; cleanup is a no-op
	s.cleanupLimiter()
	assert.Equal(t, 0, limiter.Clients())
}
