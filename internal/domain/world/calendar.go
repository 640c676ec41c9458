package world

// Calendar maps accumulated simulation seconds to a day number. The engine
// is tick-driven, so the calendar advances on delivered deltas rather than
// wall time.
type CalendarConfig struct {
	DaySeconds float64
}

type Calendar struct {
	cfg CalendarConfig
}

func NewCalendar(cfg CalendarConfig) Calendar {
	if cfg.DaySeconds <= 0 {
		cfg.DaySeconds = 600
	}
	return Calendar{cfg: cfg}
}

func DefaultCalendar() Calendar {
	return NewCalendar(CalendarConfig{})
}

func (c Calendar) DaySeconds() float64 {
	return c.cfg.DaySeconds
}

// DayAt returns the 1-based day for the given elapsed simulation time.
func (c Calendar) DayAt(elapsedSeconds float64) int {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	return 1 + int(elapsedSeconds/c.cfg.DaySeconds)
}
