package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/property-market-engine/internal/engine"
)

// mockSweeper implements Sweeper for testing.
type mockSweeper struct {
	summary engine.SweepSummary
	err     error
	called  bool
}

func (m *mockSweeper) RunPendingAnalyses(_ context.Context) (engine.SweepSummary, error) {
	m.called = true
	return m.summary, m.err
}

func TestSweepHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sweeper    *mockSweeper
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "nothing pending",
			sweeper:    &mockSweeper{},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"sweep completed"`, `"pending":0`},
		},
		{
			name: "all analyzed",
			sweeper: &mockSweeper{
				summary: engine.SweepSummary{Pending: 3, Analyzed: 3},
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"pending":3`, `"analyzed":3`, `"failed":0`},
		},
		{
			name: "partial failure reported in body",
			sweeper: &mockSweeper{
				summary: engine.SweepSummary{Pending: 2, Analyzed: 1, Failed: 1},
				err:     errors.New("analyzing p-2: connection reset"),
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{"sweep completed with failures", "connection reset", `"failed":1`},
		},
		{
			name:       "listing pending fails",
			sweeper:    &mockSweeper{err: errors.New("db connection lost")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"sweep failed", "db connection lost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			RegisterTriggerRoutes(api, NewSweepHandler(tt.sweeper))

			resp := api.Post("/api/v1/analyses/sweep")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.True(t, tt.sweeper.called)
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
