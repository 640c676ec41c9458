package runtime

import (
	"context"

	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"
	"emberwild/internal/domain/world"
)

type Config struct {
	Regions  []world.Region
	Fallback world.Biome
}

// Provider answers environment lookups from a static region map; the first
// region containing a point wins, everything else is the fallback biome.
type Provider struct {
	cfg Config
}

func DefaultConfig() Config {
	return Config{
		Regions: []world.Region{
			{MinX: -40, MinY: -40, MaxX: -1, MaxY: 40, Biome: world.BiomeForest},
			{MinX: 0, MinY: 20, MaxX: 40, MaxY: 40, Biome: world.BiomeHighland},
			{MinX: 0, MinY: -40, MaxX: 40, MaxY: -20, Biome: world.BiomeRiverbank},
		},
		Fallback: world.BiomePlain,
	}
}

func NewProvider(cfg Config) Provider {
	if cfg.Fallback == "" {
		cfg.Fallback = world.BiomePlain
	}
	return Provider{cfg: cfg}
}

var _ ports.WorldProvider = Provider{}

func (p Provider) EnvironmentAt(_ context.Context, pos discovery.Position) (discovery.EnvironmentTag, error) {
	biome := world.BiomeAt(p.cfg.Regions, world.Point{X: pos.X, Y: pos.Y}, p.cfg.Fallback)
	return discovery.EnvironmentTag(biome), nil
}
