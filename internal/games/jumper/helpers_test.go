package jumper

import "github.com/vovakirdan/tui-jumper/internal/config"

// defaultParams returns the classic 400x600 tuning.
func defaultParams() Params {
	return ParamsFrom(config.DefaultJumperConfig())
}

// fixedSpawner places every new platform at the same x.
type fixedSpawner float64

func (f fixedSpawner) SpawnX(maxX float64) float64 {
	return max(0, min(float64(f), maxX))
}
