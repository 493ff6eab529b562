package streamwatch

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	streamwatchdomain "github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch/domain"
	"github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch/statsclient"
	"github.com/ghosteone/manager-api/internal/config"
)

type fakeClient struct {
	counts *streamwatchdomain.StreamCounts
	err    error
}

func (f *fakeClient) GetStreamCounts(params statsclient.StreamCountParams) (*streamwatchdomain.StreamCounts, error) {
	return f.counts, f.err
}

func window() (time.Time, time.Time) {
	end := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return end.Add(-168 * time.Hour), end
}

func TestFetchLift(t *testing.T) {
	tests := []struct {
		name     string
		counts   *streamwatchdomain.StreamCounts
		expected float64
	}{
		{
			name:     "Crescimento na janela",
			counts:   &streamwatchdomain.StreamCounts{BaselineCount: 1000, WindowCount: 1350},
			expected: 0.35,
		},
		{
			name:     "Queda na janela",
			counts:   &streamwatchdomain.StreamCounts{BaselineCount: 1000, WindowCount: 800},
			expected: -0.2,
		},
		{
			name:     "Janela igual à baseline",
			counts:   &streamwatchdomain.StreamCounts{BaselineCount: 500, WindowCount: 500},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := New(&config.Config{}, &fakeClient{counts: tt.counts})

			start, end := window()
			lift, err := integrator.FetchLift("owner-1", "cmp-1", start, end)

			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, lift, 0.0001)
		})
	}
}

func TestFetchLift_FonteIndisponivel(t *testing.T) {
	integrator := New(&config.Config{}, &fakeClient{err: errors.New("timeout")})

	start, end := window()
	lift, err := integrator.FetchLift("owner-1", "cmp-1", start, end)

	assert.Zero(t, lift)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetchLift_SemBaseline(t *testing.T) {
	// Sem baseline não há como medir lift: mesma degradação de quando a
	// fonte está fora do ar.
	integrator := New(&config.Config{}, &fakeClient{
		counts: &streamwatchdomain.StreamCounts{BaselineCount: 0, WindowCount: 900},
	})

	start, end := window()
	lift, err := integrator.FetchLift("owner-1", "cmp-1", start, end)

	assert.Zero(t, lift)
	assert.ErrorIs(t, err, ErrUnavailable)
}
