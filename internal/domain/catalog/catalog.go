// Package catalog is the immutable registry of meeting-type definitions and
// the scheduling policy (blackout windows, meal buffer) that applies to them.
// It is loaded once at process start and only ever read after that.
package catalog

import (
	"math"

	"meet-scheduler/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type Category string

const (
	CategoryOrdinary Category = "ordinary"
	CategoryMeal     Category = "meal"
)

type MeetingType struct {
	ID              string
	Title           string
	DurationMinutes int
	// Inclusive civil date range, no time component.
	DateStart string
	DateEnd   string
	// Daily booking window as fractional hours, e.g. 8.5 = 08:30.
	DailyStart float64
	DailyEnd   float64
	Category   Category
}

func (mt MeetingType) DailyStartMinutes() int {
	return int(math.Round(mt.DailyStart * 60))
}

func (mt MeetingType) DailyEndMinutes() int {
	return int(math.Round(mt.DailyEnd * 60))
}

type Catalog struct {
	types  map[string]MeetingType
	order  []string
	policy Policy
}

func New(types []MeetingType, policy Policy) (*Catalog, error) {
	c := &Catalog{
		types:  make(map[string]MeetingType, len(types)),
		order:  make([]string, 0, len(types)),
		policy: policy,
	}
	for _, mt := range types {
		if mt.ID == "" {
			return nil, errs.New("meeting type id must not be empty")
		}
		if mt.DurationMinutes <= 0 {
			return nil, errs.New("meeting type duration must be positive: " + mt.ID)
		}
		if _, dup := c.types[mt.ID]; dup {
			return nil, errs.New("duplicate meeting type id: " + mt.ID)
		}
		if mt.Category == "" {
			mt.Category = CategoryOrdinary
		}
		c.types[mt.ID] = mt
		c.order = append(c.order, mt.ID)
	}
	return c, nil
}

// Get returns a defensive copy; mutation by the caller never reaches the
// registry.
func (c *Catalog) Get(id string) (MeetingType, bool) {
	mt, ok := c.types[id]
	if !ok {
		return MeetingType{}, false
	}
	var out MeetingType
	_ = copier.Copy(&out, &mt)
	return out, true
}

// List returns the meeting types in registration order.
func (c *Catalog) List() []MeetingType {
	out := make([]MeetingType, 0, len(c.order))
	for _, id := range c.order {
		mt, _ := c.Get(id)
		out = append(out, mt)
	}
	return out
}

// Policy returns a deep copy of the scheduling policy.
func (c *Catalog) Policy() Policy {
	var out Policy
	_ = copier.CopyWithOption(&out, &c.policy, copier.Option{DeepCopy: true})
	return out
}
