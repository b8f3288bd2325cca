package availability

import (
	"sync"
	"time"

	"meetingassist-service/internal/app/models"
)

// PlanWindowInput carries everything the planner needs for one time window.
// BusyIntervals are expressed in the user's timezone; working-hour
// preferences are host-local wall clock values.
type PlanWindowInput struct {
	WindowStart         time.Time
	WindowEnd           time.Time
	SlotDurationMinutes int
	HostPreferences     models.HostPreferences
	HostTimezone        string
	UserTimezone        string
	BusyIntervals       []models.BusyInterval
}

// PlanWindowResult groups the generated candidate slots both as a flat
// ordered list and keyed by host-local calendar date (YYYY-MM-DD).
type PlanWindowResult struct {
	Slots       []models.TimeSlot
	SlotsByDate map[string][]models.TimeSlot
}

// dayContext describes one enumerated calendar day within the window.
type dayContext struct {
	// anchor keeps the window start's time-of-day, advanced day by day, so
	// the first day knows where the literal window begins.
	anchor  time.Time
	isFirst bool
	isLast  bool
}

// boundaries is the resolved generation range for one day, in the user's
// timezone. ok is false when the day yields no slots at all.
type boundaries struct {
	start time.Time
	end   time.Time
	ok    bool
}

// Timezones resolves and caches IANA locations. One instance is constructed
// at startup and passed to every component that converts between host and
// user local time; the core never touches process-global timezone state.
type Timezones struct {
	mu    sync.RWMutex
	cache map[string]*time.Location
}

func NewTimezones() *Timezones {
	return &Timezones{cache: make(map[string]*time.Location)}
}

// Resolve returns the location for an IANA timezone name.
func (t *Timezones) Resolve(name string) (*time.Location, error) {
	t.mu.RLock()
	loc, ok := t.cache[name]
	t.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.cache[name] = loc
	t.mu.Unlock()
	return loc, nil
}
