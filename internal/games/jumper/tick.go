package jumper

// Outcome describes what happened during a single tick.
type Outcome struct {
	Landed   bool    // The player bounced off at least one platform
	Scrolled float64 // Distance the world scrolled down (0 if it did not)
	Fell     bool    // This tick ended the run
}

// Tick advances s by one fixed step and returns the next state.
// s is not modified. Nothing happens once the run is over.
//
// The pipeline runs in a fixed order: horizontal move with wrap, gravity,
// vertical move, landing checks, camera scroll, then the fall check.
func Tick(s State, p Params, spawn Spawner) (State, Outcome) {
	if s.GameOver {
		return s, Outcome{}
	}

	next := s.Clone()
	next.Ticks++

	newX := wrapX(s.Pos.X+s.Vel.X, p.FieldW)

	// Gravity is applied before the landing check; the move itself uses the
	// velocity the tick started with.
	vy := s.Vel.Y + p.Gravity
	newY := s.Pos.Y + s.Vel.Y

	var out Outcome
	if s.Vel.Y > 0 {
		// Every platform is checked and later ones overwrite earlier landings.
		// With the default spacing two platforms can never share the band.
		for _, pl := range next.Platforms {
			if catches(pl, newX, newY, p) {
				newY = pl.Y - p.PlayerH
				vy = p.Bounce
				out.Landed = true
			}
		}
	}
	if out.Landed {
		next.Score++
	}

	if newY < p.ScrollLine {
		offset := p.ScrollLine - newY
		newY = p.ScrollLine
		next.Platforms = scroll(next.Platforms, offset, p, spawn)
		next.Climbed += offset
		out.Scrolled = offset
	}

	if newY > p.FieldH {
		next.GameOver = true
		out.Fell = true
	}

	next.Pos = Vec{X: newX, Y: newY}
	next.Vel = Vec{X: s.Vel.X, Y: vy}
	return next, out
}

// wrapX moves a player that left one side of the field to the other side.
func wrapX(x, width float64) float64 {
	switch {
	case x < 0:
		return width
	case x > width:
		return 0
	default:
		return x
	}
}

// catches reports whether the player's feet at (x, y) fall inside the
// platform's landing band and the player overlaps it horizontally.
func catches(pl Platform, x, y float64, p Params) bool {
	feet := y + p.PlayerH
	if feet < pl.Y || feet > pl.Y+p.PlatformH {
		return false
	}
	return x >= pl.X-p.Leeway && x <= pl.X+p.PlatformW
}

// scroll shifts platforms down by offset, drops the ones that left the field
// and tops the stack back up to PlatformCount. The input slice is reused.
func scroll(platforms []Platform, offset float64, p Params, spawn Spawner) []Platform {
	kept := platforms[:0]
	for _, pl := range platforms {
		pl.Y += offset
		if pl.Y < p.FieldH {
			kept = append(kept, pl)
		}
	}
	return refill(kept, p, spawn)
}

// refill prepends new platforms above the current top until the stack holds
// exactly PlatformCount entries. An empty stack restarts at y=0.
func refill(platforms []Platform, p Params, spawn Spawner) []Platform {
	missing := p.PlatformCount - len(platforms)
	if missing <= 0 {
		return platforms
	}

	out := make([]Platform, missing, p.PlatformCount)
	top := 0.0
	if len(platforms) > 0 {
		top = platforms[0].Y - p.Spacing
	}
	// Fill from the bottom of the new block upwards so each platform sits
	// one spacing above the previous top.
	for i := missing - 1; i >= 0; i-- {
		out[i] = Platform{X: spawn.SpawnX(p.maxPlatformX()), Y: top}
		top -= p.Spacing
	}
	return append(out, platforms...)
}
