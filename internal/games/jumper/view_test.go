package jumper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	p := defaultParams()
	s := State{
		Pos:       Vec{X: 10, Y: 20},
		Platforms: []Platform{{X: 1, Y: 2}, {X: 3, Y: 4}},
		Score:     4,
		Climbed:   123.7,
		GameOver:  true,
	}

	v := Project(s, p)
	assert.Equal(t, Box{X: 10, Y: 20, W: 30, H: 50}, v.Player)
	require.Len(t, v.Platforms, 2)
	assert.Equal(t, Box{X: 3, Y: 4, W: 60, H: 10}, v.Platforms[1])
	assert.Equal(t, 4, v.Score)
	assert.Equal(t, 123, v.Climbed)
	assert.True(t, v.GameOver)
	assert.Equal(t, 400.0, v.FieldW)
	assert.Equal(t, 600.0, v.FieldH)

	// The projection owns its platform slice.
	v.Platforms[0].X = 99
	assert.Equal(t, 1.0, s.Platforms[0].X)
}
