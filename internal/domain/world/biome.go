package world

type Biome string

const (
	BiomePlain     Biome = "plain"
	BiomeForest    Biome = "forest"
	BiomeRiverbank Biome = "riverbank"
	BiomeHighland  Biome = "highland"
	BiomeWasteland Biome = "wasteland"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region is an inclusive axis-aligned rectangle tagged with a biome.
type Region struct {
	MinX  int   `json:"min_x"`
	MinY  int   `json:"min_y"`
	MaxX  int   `json:"max_x"`
	MaxY  int   `json:"max_y"`
	Biome Biome `json:"biome"`
}

func (r Region) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// BiomeAt resolves the first region containing the point; regions earlier in
// the slice win overlaps.
func BiomeAt(regions []Region, p Point, fallback Biome) Biome {
	for _, r := range regions {
		if r.Contains(p) {
			return r.Biome
		}
	}
	return fallback
}
