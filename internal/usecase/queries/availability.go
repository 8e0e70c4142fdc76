package queries

import (
	"context"

	"meet-scheduler/internal/domain/catalog"
	"meet-scheduler/internal/domain/schedule"
)

// BusyReader is the read half of the calendar adapter contract: it degrades
// to an empty busy set on any failure and never returns an error past this
// boundary. The conflict re-check at booking time is the safety net.
type BusyReader interface {
	BusyIntervals(ctx context.Context, date string) []schedule.Interval
}

// MeetingTypeSummary is the discovery projection of a catalog entry.
type MeetingTypeSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
}

type AvailabilityQueries interface {
	// Slots returns the day's candidate grid in ascending order. Unknown
	// meeting types and out-of-range dates yield an empty grid, not an
	// error: there is simply nothing bookable there.
	Slots(ctx context.Context, date, meetingTypeID string) []schedule.Slot
	MeetingTypes(ctx context.Context) []MeetingTypeSummary
}

type availabilityQueriesImpl struct {
	catalog *catalog.Catalog
	busy    BusyReader
}

func NewAvailabilityQueries(cat *catalog.Catalog, busy BusyReader) AvailabilityQueries {
	return &availabilityQueriesImpl{
		catalog: cat,
		busy:    busy,
	}
}

func (q *availabilityQueriesImpl) Slots(ctx context.Context, date, meetingTypeID string) []schedule.Slot {
	mt, ok := q.catalog.Get(meetingTypeID)
	if !ok {
		return []schedule.Slot{}
	}
	if _, err := schedule.ParseDate(date); err != nil {
		return []schedule.Slot{}
	}
	if !schedule.DateInRange(date, mt.DateStart, mt.DateEnd) {
		return []schedule.Slot{}
	}

	// Recomputed fresh on every call; busy intervals change under us, so the
	// grid is never cached.
	busy := q.busy.BusyIntervals(ctx, date)
	policy := q.catalog.Policy()

	return schedule.BuildGrid(schedule.GridSpec{
		DailyStartMinutes: mt.DailyStartMinutes(),
		DailyEndMinutes:   mt.DailyEndMinutes(),
		DurationMinutes:   mt.DurationMinutes,
		BufferMinutes:     policy.BufferFor(mt.Category),
		Blackouts:         policy.BlackoutsFor(mt.Category),
	}, busy)
}

func (q *availabilityQueriesImpl) MeetingTypes(_ context.Context) []MeetingTypeSummary {
	types := q.catalog.List()
	out := make([]MeetingTypeSummary, len(types))
	for i, mt := range types {
		out[i] = MeetingTypeSummary{
			ID:              mt.ID,
			Title:           mt.Title,
			DurationMinutes: mt.DurationMinutes,
		}
	}
	return out
}
