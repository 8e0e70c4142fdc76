package schedule

// SlotInterval is the spacing of candidate start times within a day.
const SlotInterval = 10

// Slot is a projection, never persisted: one candidate start time and whether
// it can currently be booked.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// GridSpec describes one day's bookable window for a single meeting type,
// with the blackout and buffer policy already resolved for its category.
type GridSpec struct {
	DailyStartMinutes int
	DailyEndMinutes   int
	DurationMinutes   int
	// BufferMinutes extends the busy-interval conflict check past the slot
	// end; it does not widen the blackout check.
	BufferMinutes int
	Blackouts     []Interval
}

// BuildGrid produces the day's candidate slots in ascending time order.
// A slot is available unless its end falls more than one full duration past
// the nominal close, it overlaps a blackout window, or its buffered span
// intersects a busy interval.
func BuildGrid(spec GridSpec, busy []Interval) []Slot {
	// An inverted daily window is a configuration error; treat it as empty
	// rather than risking a non-terminating loop.
	if spec.DailyStartMinutes > spec.DailyEndMinutes || spec.DurationMinutes <= 0 {
		return []Slot{}
	}

	slots := make([]Slot, 0, (spec.DailyEndMinutes-spec.DailyStartMinutes)/SlotInterval+1)
	for start := spec.DailyStartMinutes; start <= spec.DailyEndMinutes; start += SlotInterval {
		end := start + spec.DurationMinutes

		// The tolerance of one full duration past the nominal close is
		// load-bearing: last-call bookings may finish after the window.
		available := end <= spec.DailyEndMinutes+spec.DurationMinutes &&
			!ConflictsAny(start, end, spec.Blackouts) &&
			!ConflictsAny(start, end+spec.BufferMinutes, busy)

		slots = append(slots, Slot{Time: FormatClock(start), Available: available})
	}
	return slots
}
