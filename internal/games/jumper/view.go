package jumper

// Box is an axis-aligned rectangle in field units.
type Box struct {
	X, Y, W, H float64
}

// View is everything a renderer needs to draw one frame.
// It is a pure projection of State; renderers hold no game logic.
type View struct {
	FieldW, FieldH float64
	Player         Box
	Platforms      []Box
	Score          int
	Climbed        int
	GameOver       bool
}

// Project builds the View for s.
func Project(s State, p Params) View {
	v := View{
		FieldW:    p.FieldW,
		FieldH:    p.FieldH,
		Player:    Box{X: s.Pos.X, Y: s.Pos.Y, W: p.PlayerW, H: p.PlayerH},
		Platforms: make([]Box, len(s.Platforms)),
		Score:     s.Score,
		Climbed:   int(s.Climbed),
		GameOver:  s.GameOver,
	}
	for i, pl := range s.Platforms {
		v.Platforms[i] = Box{X: pl.X, Y: pl.Y, W: p.PlatformW, H: p.PlatformH}
	}
	return v
}
