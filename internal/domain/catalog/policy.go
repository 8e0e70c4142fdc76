package catalog

import (
	"slices"

	"meet-scheduler/internal/domain/schedule"
)

// Blackout is a policy-defined window no meeting may overlap unless its
// category is exempt.
type Blackout struct {
	Window schedule.Interval
	Exempt []Category
}

// Policy is catalog-level scheduling configuration. The exact windows and
// buffer length are data, not code; they have churned historically and must
// stay editable in one place.
type Policy struct {
	Blackouts []Blackout
	// MealBufferMinutes is appended after meal-category meetings when
	// checking busy intervals, so back-to-back calendar entries keep a gap.
	MealBufferMinutes int
}

// BlackoutsFor resolves the windows that apply to the given category.
func (p Policy) BlackoutsFor(cat Category) []schedule.Interval {
	windows := make([]schedule.Interval, 0, len(p.Blackouts))
	for _, b := range p.Blackouts {
		if slices.Contains(b.Exempt, cat) {
			continue
		}
		windows = append(windows, b.Window)
	}
	return windows
}

// BufferFor returns the post-meeting buffer for the category.
func (p Policy) BufferFor(cat Category) int {
	if cat == CategoryMeal {
		return p.MealBufferMinutes
	}
	return 0
}

// DefaultPolicy: a midday blackout protecting the lunch period and a morning
// blackout protecting the coffee/breakfast window. Meal-category meetings are
// the ones those windows exist for, so they are exempt.
func DefaultPolicy() Policy {
	return Policy{
		Blackouts: []Blackout{
			{
				Window: schedule.Interval{StartMinutes: 7*60 + 45, EndMinutes: 8*60 + 30}, // 07:45-08:30
				Exempt: []Category{CategoryMeal},
			},
			{
				Window: schedule.Interval{StartMinutes: 11*60 + 45, EndMinutes: 13*60 + 15}, // 11:45-13:15
				Exempt: []Category{CategoryMeal},
			},
		},
		MealBufferMinutes: 15,
	}
}

// Default is the event-week catalog the service ships with.
func Default() *Catalog {
	types := []MeetingType{
		{
			ID:              "gdc-pleasant-talk",
			Title:           "Pleasant Talk",
			DurationMinutes: 40,
			DateStart:       "2026-03-09",
			DateEnd:         "2026-03-13",
			DailyStart:      8.5,
			DailyEnd:        17.5,
			Category:        CategoryOrdinary,
		},
		{
			ID:              "gdc-quick-chat",
			Title:           "Quick Chat",
			DurationMinutes: 20,
			DateStart:       "2026-03-09",
			DateEnd:         "2026-03-13",
			DailyStart:      8.5,
			DailyEnd:        17.5,
			Category:        CategoryOrdinary,
		},
		{
			ID:              "gdc-lunch",
			Title:           "Lunch",
			DurationMinutes: 60,
			DateStart:       "2026-03-09",
			DateEnd:         "2026-03-13",
			DailyStart:      12,
			DailyEnd:        13.5,
			Category:        CategoryMeal,
		},
		{
			ID:              "gdc-dinner",
			Title:           "Dinner",
			DurationMinutes: 90,
			DateStart:       "2026-03-09",
			DateEnd:         "2026-03-13",
			DailyStart:      12,
			DailyEnd:        12.5,
			Category:        CategoryMeal,
		},
		{
			ID:              "gdc-coffee",
			Title:           "Coffee or Breakfast",
			DurationMinutes: 30,
			DateStart:       "2026-03-09",
			DateEnd:         "2026-03-14",
			DailyStart:      8,
			DailyEnd:        8.5,
			Category:        CategoryMeal,
		},
	}

	c, err := New(types, DefaultPolicy())
	if err != nil {
		// The built-in catalog is static; a validation failure here is a
		// programming error.
		panic(err)
	}
	return c
}
