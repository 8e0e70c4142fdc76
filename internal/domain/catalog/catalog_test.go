//go:build unit

package catalog_test

import (
	"testing"

	"meet-scheduler/internal/domain/catalog"
	"meet-scheduler/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNew(t *testing.T) {
	t.Run("rejects empty id", func(t *testing.T) {
		_, err := catalog.New([]catalog.MeetingType{{Title: "x", DurationMinutes: 30}}, catalog.Policy{})
		assert.Error(t, err)
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, err := catalog.New([]catalog.MeetingType{{ID: "x", DurationMinutes: 0}}, catalog.Policy{})
		assert.Error(t, err)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		_, err := catalog.New([]catalog.MeetingType{
			{ID: "x", DurationMinutes: 30},
			{ID: "x", DurationMinutes: 60},
		}, catalog.Policy{})
		assert.Error(t, err)
	})

	t.Run("defaults category to ordinary", func(t *testing.T) {
		c, err := catalog.New([]catalog.MeetingType{{ID: "x", DurationMinutes: 30}}, catalog.Policy{})
		require.NoError(t, err)
		mt, ok := c.Get("x")
		require.True(t, ok)
		assert.Equal(t, catalog.CategoryOrdinary, mt.Category)
	})
}

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()

	t.Run("registers the event-week types in order", func(t *testing.T) {
		ids := make([]string, 0)
		for _, mt := range c.List() {
			ids = append(ids, mt.ID)
		}
		assert.Equal(t, []string{"gdc-pleasant-talk", "gdc-quick-chat", "gdc-lunch", "gdc-dinner", "gdc-coffee"}, ids)
	})

	t.Run("unknown id misses", func(t *testing.T) {
		_, ok := c.Get("gdc-karaoke")
		assert.False(t, ok)
	})

	t.Run("fractional daily hours resolve to minutes", func(t *testing.T) {
		talk, ok := c.Get("gdc-pleasant-talk")
		require.True(t, ok)
		assert.Equal(t, 8*60+30, talk.DailyStartMinutes())
		assert.Equal(t, 17*60+30, talk.DailyEndMinutes())

		lunch, ok := c.Get("gdc-lunch")
		require.True(t, ok)
		assert.Equal(t, 12*60, lunch.DailyStartMinutes())
		assert.Equal(t, 13*60+30, lunch.DailyEndMinutes())
		assert.Equal(t, catalog.CategoryMeal, lunch.Category)
	})

	t.Run("coffee runs one day longer than the rest", func(t *testing.T) {
		coffee, ok := c.Get("gdc-coffee")
		require.True(t, ok)
		assert.Equal(t, "2026-03-14", coffee.DateEnd)
	})

	t.Run("mutating a returned copy never reaches the registry", func(t *testing.T) {
		mt, ok := c.Get("gdc-quick-chat")
		require.True(t, ok)
		mt.DurationMinutes = 999
		mt.Title = "tampered"

		fresh, ok := c.Get("gdc-quick-chat")
		require.True(t, ok)
		assert.Equal(t, 20, fresh.DurationMinutes)
		assert.Equal(t, "Quick Chat", fresh.Title)
	})

	t.Run("mutating a returned policy never reaches the registry", func(t *testing.T) {
		p := c.Policy()
		require.NotEmpty(t, p.Blackouts)
		p.Blackouts[0].Window = schedule.Interval{StartMinutes: 0, EndMinutes: schedule.MinutesPerDay}
		p.MealBufferMinutes = 999

		fresh := c.Policy()
		assert.Equal(t, 15, fresh.MealBufferMinutes)
		assert.Equal(t, schedule.Interval{StartMinutes: 7*60 + 45, EndMinutes: 8*60 + 30}, fresh.Blackouts[0].Window)
	})
}

func TestPolicy(t *testing.T) {
	p := catalog.DefaultPolicy()

	t.Run("ordinary meetings see every blackout", func(t *testing.T) {
		windows := p.BlackoutsFor(catalog.CategoryOrdinary)
		require.Len(t, windows, 2)
		assert.Equal(t, schedule.Interval{StartMinutes: 11*60 + 45, EndMinutes: 13*60 + 15}, windows[1])
	})

	t.Run("meal meetings are exempt from both windows", func(t *testing.T) {
		assert.Empty(t, p.BlackoutsFor(catalog.CategoryMeal))
	})

	t.Run("buffer applies to meals only", func(t *testing.T) {
		assert.Equal(t, 15, p.BufferFor(catalog.CategoryMeal))
		assert.Equal(t, 0, p.BufferFor(catalog.CategoryOrdinary))
	})
}
