package world

import "testing"

func TestCalendarDayAt(t *testing.T) {
	c := NewCalendar(CalendarConfig{DaySeconds: 100})

	cases := []struct {
		elapsed float64
		want    int
	}{
		{0, 1},
		{99.9, 1},
		{100, 2},
		{250, 3},
		{-5, 1},
	}
	for _, tc := range cases {
		if got := c.DayAt(tc.elapsed); got != tc.want {
			t.Fatalf("DayAt(%v) = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestCalendarDefaults(t *testing.T) {
	c := NewCalendar(CalendarConfig{})
	if c.DaySeconds() != 600 {
		t.Fatalf("default day length = %v", c.DaySeconds())
	}
}

func TestBiomeAt(t *testing.T) {
	regions := []Region{
		{MinX: 0, MinY: 0, MaxX: 9, MaxY: 9, Biome: BiomeForest},
		{MinX: 5, MinY: 5, MaxX: 20, MaxY: 20, Biome: BiomeHighland},
	}

	if got := BiomeAt(regions, Point{X: 3, Y: 3}, BiomePlain); got != BiomeForest {
		t.Fatalf("got %s", got)
	}
	// Overlap: earlier region wins.
	if got := BiomeAt(regions, Point{X: 7, Y: 7}, BiomePlain); got != BiomeForest {
		t.Fatalf("got %s", got)
	}
	if got := BiomeAt(regions, Point{X: 15, Y: 15}, BiomePlain); got != BiomeHighland {
		t.Fatalf("got %s", got)
	}
	if got := BiomeAt(regions, Point{X: 100, Y: 100}, BiomePlain); got != BiomePlain {
		t.Fatalf("fallback expected, got %s", got)
	}
}
