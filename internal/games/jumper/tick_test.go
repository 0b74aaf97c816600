package jumper

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stateAt builds a playing state with the given player motion and platforms.
func stateAt(x, y, vx, vy float64, platforms ...Platform) State {
	return State{
		Pos:       Vec{X: x, Y: y},
		Vel:       Vec{X: vx, Y: vy},
		Platforms: platforms,
	}
}

func TestTickGravity(t *testing.T) {
	p := defaultParams()
	s := stateAt(100, 400, 0, 1, Platform{X: 300, Y: 100})

	next, out := Tick(s, p, fixedSpawner(0))

	assert.False(t, out.Landed)
	assert.InDelta(t, 1.2, next.Vel.Y, 1e-9, "vy should gain gravity")
	assert.InDelta(t, 401, next.Pos.Y, 1e-9, "move uses the velocity the tick started with")
	assert.Equal(t, 1, next.Ticks)
}

func TestTickHorizontalWrap(t *testing.T) {
	p := defaultParams()
	tests := []struct {
		name     string
		x, vx    float64
		expected float64
	}{
		{"left edge wraps to field width", 0, -1, 400},
		{"right edge wraps to zero", 400, 1, 0},
		{"inside field unchanged", 200, 5, 205},
		{"exactly at width is not wrapped", 395, 5, 400},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, _ := Tick(stateAt(tc.x, 400, tc.vx, 0), p, fixedSpawner(0))
			assert.InDelta(t, tc.expected, next.Pos.X, 1e-9)
			assert.Equal(t, tc.vx, next.Vel.X, "wrap must not change velocity")
		})
	}
}

func TestTickLandingBand(t *testing.T) {
	p := defaultParams()
	pl := Platform{X: 100, Y: 500}

	tests := []struct {
		name   string
		y, vy  float64
		landed bool
	}{
		{"feet exactly on platform top", 449, 1, true},
		{"feet at bottom of band", 459, 1, true},
		{"feet just below band", 460, 1, false},
		{"feet just above platform", 448, 1, false},
		{"resting without falling", 450, 0, false},
		{"moving up through platform", 452, -2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := stateAt(100, tc.y, 0, tc.vy, pl)
			next, out := Tick(s, p, fixedSpawner(0))

			assert.Equal(t, tc.landed, out.Landed)
			if tc.landed {
				assert.Equal(t, 1, next.Score)
				assert.Equal(t, -10.0, next.Vel.Y)
				assert.Equal(t, 450.0, next.Pos.Y, "player should snap onto the platform")
			} else {
				assert.Equal(t, 0, next.Score)
				assert.InDelta(t, tc.vy+0.2, next.Vel.Y, 1e-9)
			}
		})
	}
}

func TestTickLandingHorizontalRange(t *testing.T) {
	p := defaultParams()
	pl := Platform{X: 100, Y: 500}

	tests := []struct {
		x      float64
		landed bool
	}{
		{69, false},
		{70, true},  // platform.x - leeway
		{130, true}, // centered
		{160, true}, // platform.x + width
		{161, false},
	}

	for _, tc := range tests {
		next, out := Tick(stateAt(tc.x, 449, 0, 1, pl), p, fixedSpawner(0))
		assert.Equal(t, tc.landed, out.Landed, "x=%v", tc.x)
		if tc.landed {
			assert.Equal(t, 1, next.Score, "x=%v", tc.x)
		}
	}
}

func TestTickLaterPlatformWins(t *testing.T) {
	p := defaultParams()
	// Both platforms catch the feet; the second one is evaluated last and its
	// snap position is kept. Score still increases by one.
	s := stateAt(100, 449, 0, 1, Platform{X: 100, Y: 500}, Platform{X: 100, Y: 495})

	next, out := Tick(s, p, fixedSpawner(0))

	require.True(t, out.Landed)
	assert.Equal(t, 445.0, next.Pos.Y)
	assert.Equal(t, 1, next.Score)
}

func TestTickLandingThenScroll(t *testing.T) {
	p := defaultParams()
	platforms := []Platform{
		{X: 10, Y: 0}, {X: 20, Y: 100}, {X: 30, Y: 200}, {X: 100, Y: 300}, {X: 50, Y: 560},
	}

	// Bottom at 291 is still above the platform at y=300.
	miss, out := Tick(stateAt(100, 240, 0, 1, platforms...), p, fixedSpawner(7))
	assert.False(t, out.Landed)
	assert.InDelta(t, 1.2, miss.Vel.Y, 1e-9)

	// Bottom at 301 is inside [300, 310].
	next, out := Tick(stateAt(100, 249, 0, 2, platforms...), p, fixedSpawner(7))
	require.True(t, out.Landed)
	assert.Equal(t, 1, next.Score)
	assert.Equal(t, -10.0, next.Vel.Y)

	// Snapped to y=250, then the camera scrolls by 50 and pins the player.
	assert.InDelta(t, 50, out.Scrolled, 1e-9)
	assert.Equal(t, 300.0, next.Pos.Y)
	require.Len(t, next.Platforms, 5)
	assert.Equal(t, Platform{X: 100, Y: 350}, next.Platforms[4])
	assert.Equal(t, Platform{X: 10, Y: 50}, next.Platforms[1])
	assert.Equal(t, Platform{X: 7, Y: -50}, next.Platforms[0], "the platform pushed off the bottom is replaced on top")
	assert.InDelta(t, 50, next.Climbed, 1e-9)
}

func TestTickDoesNotMutateInput(t *testing.T) {
	p := defaultParams()
	s := stateAt(100, 249, 0, 2, Platform{X: 100, Y: 300}, Platform{X: 0, Y: 590})
	before := s.Clone()

	_, _ = Tick(s, p, fixedSpawner(0))

	assert.Equal(t, before, s)
}

func TestScrollKeepsPlatformCount(t *testing.T) {
	p := defaultParams()
	// Start with every platform under the player so the first bounce is certain.
	s := NewRun(p, fixedSpawner(185))
	spawner := NewRandSpawner(99)
	pilot := NewAutopilot(p)

	scrolls := 0
	for i := 0; i < 5000 && !s.GameOver; i++ {
		s = ApplyInput(s, pilot.Decide(s), p)
		var out Outcome
		s, out = Tick(s, p, spawner)
		if out.Scrolled > 0 {
			scrolls++
			require.Len(t, s.Platforms, 5, "tick %d", i)
			assert.Equal(t, p.ScrollLine, s.Pos.Y)
		}
		assert.True(t, sort.SliceIsSorted(s.Platforms, func(a, b int) bool {
			return s.Platforms[a].Y < s.Platforms[b].Y
		}), "platforms must stay ordered top first")
		for _, pl := range s.Platforms {
			assert.GreaterOrEqual(t, pl.X, 0.0)
			assert.LessOrEqual(t, pl.X, 340.0)
			assert.Less(t, pl.Y, p.FieldH)
		}
	}
	assert.Positive(t, scrolls)
}

func TestRefill(t *testing.T) {
	p := defaultParams()

	empty := refill(nil, p, fixedSpawner(10))
	require.Len(t, empty, 5)
	for i, y := range []float64{-400, -300, -200, -100, 0} {
		assert.Equal(t, Platform{X: 10, Y: y}, empty[i])
	}

	partial := refill([]Platform{{X: 1, Y: 250}, {X: 2, Y: 350}}, p, fixedSpawner(10))
	require.Len(t, partial, 5)
	assert.Equal(t, []float64{-50, 50, 150, 250, 350}, []float64{
		partial[0].Y, partial[1].Y, partial[2].Y, partial[3].Y, partial[4].Y,
	})
}

func TestTickFallEndsRun(t *testing.T) {
	p := defaultParams()
	s := stateAt(100, 599, 0, 5)

	over, out := Tick(s, p, fixedSpawner(0))
	require.True(t, out.Fell)
	assert.True(t, over.GameOver)

	// Once over, ticks are no-ops.
	again, out := Tick(over, p, fixedSpawner(0))
	assert.Equal(t, over, again)
	assert.Equal(t, Outcome{}, out)
}

func TestTickExactlyAtBottomStillPlaying(t *testing.T) {
	next, out := Tick(stateAt(100, 595, 0, 5), defaultParams(), fixedSpawner(0))
	assert.False(t, out.Fell)
	assert.False(t, next.GameOver)
	assert.Equal(t, 600.0, next.Pos.Y)
}
