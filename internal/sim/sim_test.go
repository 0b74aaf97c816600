package sim

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/loop"
)

func TestRunRejectsZeroTicks(t *testing.T) {
	_, err := Run(context.Background(), config.DefaultJumperConfig(), Options{})
	assert.Error(t, err)
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Ticks: 2000, Seed: 42}

	a, err := Run(context.Background(), config.DefaultJumperConfig(), opts)
	require.NoError(t, err)
	b, err := Run(context.Background(), config.DefaultJumperConfig(), opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), a.Seed)
	require.Len(t, a.Runs, 1)

	run := a.Runs[0]
	assert.LessOrEqual(t, run.Ticks, 2000)
	assert.Equal(t, run.Score, run.Landings, "every landing tick scores once")
	assert.Equal(t, run.Score, a.BestScore)
	if !run.GameOver {
		assert.Equal(t, 2000, run.Ticks)
	}
}

func TestRunStopsAtTickCap(t *testing.T) {
	r, err := Run(context.Background(), config.DefaultJumperConfig(), Options{Ticks: 10, Seed: 1})
	require.NoError(t, err)
	require.Len(t, r.Runs, 1)
	assert.Equal(t, 10, r.Runs[0].Ticks)
	assert.False(t, r.Runs[0].GameOver)
}

func TestRunSeveralRuns(t *testing.T) {
	r, err := Run(context.Background(), config.DefaultJumperConfig(), Options{Ticks: 300, Runs: 3, Seed: 9})
	require.NoError(t, err)
	require.Len(t, r.Runs, 3)

	best := 0
	for _, run := range r.Runs {
		assert.Positive(t, run.Ticks)
		assert.LessOrEqual(t, run.Ticks, 300)
		best = max(best, run.Score)
	}
	assert.Equal(t, best, r.BestScore)

	// A multi-run simulation replays exactly.
	again, err := Run(context.Background(), config.DefaultJumperConfig(), Options{Ticks: 300, Runs: 3, Seed: 9})
	require.NoError(t, err)
	assert.Equal(t, r, again)
}

type manualTicker struct {
	c       chan time.Time
	stopped bool
}

func (m *manualTicker) C() <-chan time.Time { return m.c }
func (m *manualTicker) Stop()               { m.stopped = true }

func TestRunRealtimeUsesTicker(t *testing.T) {
	mt := &manualTicker{c: make(chan time.Time, 5)}
	for i := 0; i < 5; i++ {
		mt.c <- time.Now()
	}

	r, err := Run(context.Background(), config.DefaultJumperConfig(), Options{
		Ticks:    5,
		Realtime: true,
		Rate:     60,
		Seed:     7,
		Ticker:   func(time.Duration) loop.Ticker { return mt },
	})
	require.NoError(t, err)
	require.Len(t, r.Runs, 1)
	assert.Equal(t, 5, r.Runs[0].Ticks)
	assert.True(t, mt.stopped)
}

func TestRunRealtimeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mt := &manualTicker{c: make(chan time.Time)}
	r, err := Run(ctx, config.DefaultJumperConfig(), Options{
		Ticks:    100,
		Runs:     4,
		Realtime: true,
		Ticker:   func(time.Duration) loop.Ticker { return mt },
	})
	require.NoError(t, err)
	require.Len(t, r.Runs, 1, "cancellation stops the remaining runs")
	assert.Equal(t, 0, r.Runs[0].Ticks)
	assert.True(t, mt.stopped)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, Report{
		Seed:      3,
		BestScore: 4,
		Runs:      []RunReport{{Ticks: 120, Score: 4, Landings: 4, MaxClimb: 180}},
	}))

	out := buf.String()
	assert.Contains(t, out, "seed: 3")
	assert.Contains(t, out, "best_score: 4")
	assert.Contains(t, out, "max_climb: 180")
	assert.Contains(t, out, "game_over: false")

	var back Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back.Runs, 1)
	assert.Equal(t, 120, back.Runs[0].Ticks)
}
