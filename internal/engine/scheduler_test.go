package engine

import (
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/property-market-engine/internal/metrics"
	storeMocks "github.com/donaldgifford/property-market-engine/internal/store/mocks"
)

func TestNewScheduler_RegistersSweepEntry(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t))

	sched, err := NewScheduler(eng, 15*time.Minute, 5*time.Minute, quietLogger())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 1)
	assert.NotZero(t, sched.sweepEntryID)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t))

	sched, err := NewScheduler(eng, time.Hour, 0, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_SyncNextRunTimestamp(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t))

	sched, err := NewScheduler(eng, 15*time.Minute, 0, quietLogger())
	require.NoError(t, err)

	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamp()
	assert.Greater(t, ptestutil.ToFloat64(metrics.SweepNextRunTimestamp), float64(0))
}
