package engine

import (
	"context"
	"errors"
	"testing"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/property-market-engine/internal/metrics"
	storeMocks "github.com/donaldgifford/property-market-engine/internal/store/mocks"
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

func pending(id string) domain.PropertyRecord {
	p := property(id, "Tirana", 100000, 100, 0)
	p.Status = domain.StatusAnalyzing
	return p
}

func TestRunPendingAnalyses(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")

	tests := []struct {
		name        string
		setupMock   func(*storeMocks.MockStore)
		wantSummary SweepSummary
		wantErr     bool
	}{
		{
			name: "nothing pending",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListPendingProperties(mock.Anything, 50).Return(nil, nil).Once()
			},
			wantSummary: SweepSummary{},
		},
		{
			name: "all analyzed",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListPendingProperties(mock.Anything, 50).
					Return([]domain.PropertyRecord{pending("p-1"), pending("p-2")}, nil).
					Once()
				m.EXPECT().
					FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
					Return(tiranaPool(), nil).
					Twice()
				expectLocationLookups(m)
				m.EXPECT().SaveAnalysis(mock.Anything, "p-1", mock.Anything).Return(nil).Once()
				m.EXPECT().SaveAnalysis(mock.Anything, "p-2", mock.Anything).Return(nil).Once()
			},
			wantSummary: SweepSummary{Pending: 2, Analyzed: 2},
		},
		{
			name: "failure marks property and continues",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListPendingProperties(mock.Anything, 50).
					Return([]domain.PropertyRecord{pending("p-1"), pending("p-2")}, nil).
					Once()
				m.EXPECT().
					FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
					Return(nil, boom).
					Once()
				m.EXPECT().MarkAnalysisFailed(mock.Anything, "p-1").Return(nil).Once()
				m.EXPECT().
					FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
					Return(tiranaPool(), nil).
					Once()
				expectLocationLookups(m)
				m.EXPECT().SaveAnalysis(mock.Anything, "p-2", mock.Anything).Return(nil).Once()
			},
			wantSummary: SweepSummary{Pending: 2, Analyzed: 1, Failed: 1},
			wantErr:     true,
		},
		{
			name: "listing pending fails",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListPendingProperties(mock.Anything, 50).Return(nil, boom).Once()
			},
			wantSummary: SweepSummary{},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			summary, err := newTestEngine(ms).RunPendingAnalyses(context.Background())
			if tt.wantErr {
				require.ErrorIs(t, err, boom)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantSummary, summary)
		})
	}
}

func TestRunPendingAnalyses_MarkFailureIsJoined(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	markErr := errors.New("mark failed")

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListPendingProperties(mock.Anything, 10).
		Return([]domain.PropertyRecord{pending("p-1")}, nil).
		Once()
	ms.EXPECT().
		FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
		Return(nil, boom).
		Once()
	ms.EXPECT().MarkAnalysisFailed(mock.Anything, "p-1").Return(markErr).Once()

	before := ptestutil.ToFloat64(metrics.SweepPropertiesTotal.WithLabelValues("failed"))

	_, err := newTestEngine(ms, WithSweepBatchSize(10)).RunPendingAnalyses(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, markErr)
	assert.GreaterOrEqual(t,
		ptestutil.ToFloat64(metrics.SweepPropertiesTotal.WithLabelValues("failed")), before+1)
}

func TestRunPendingAnalyses_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		ListPendingProperties(mock.Anything, 50).
		Return([]domain.PropertyRecord{pending("p-1"), pending("p-2")}, nil).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := newTestEngine(ms).RunPendingAnalyses(ctx)
	require.Error(t, err)
	assert.Equal(t, SweepSummary{Pending: 2}, summary)
}
