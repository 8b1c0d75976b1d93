package journey

const (
	// EventCooldownDays is the minimum number of days that must elapse after
	// an event ends before the same type may trigger again.
	EventCooldownDays = 7

	// CooldownNever is the stored sentinel for "this event has never run".
	// Counters cap here; only the >= EventCooldownDays comparison matters.
	CooldownNever = 99
)

// Cooldown tracks days since an event type last ran. It is reset when the
// event starts, held while the event is active, and advanced once per
// inactive day, so the first inactive day after an event reads as 1.
type Cooldown struct {
	DaysSince int
}

func NeverRun() Cooldown {
	return Cooldown{DaysSince: CooldownNever}
}

func (c Cooldown) Ready() bool {
	return c.DaysSince >= EventCooldownDays
}

func (c Cooldown) Start() Cooldown {
	return Cooldown{DaysSince: 0}
}

func (c Cooldown) Advance() Cooldown {
	if c.DaysSince >= CooldownNever {
		return Cooldown{DaysSince: CooldownNever}
	}
	return Cooldown{DaysSince: c.DaysSince + 1}
}
