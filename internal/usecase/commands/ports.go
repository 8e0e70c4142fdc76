package commands

import (
	"context"
	"time"

	"meet-scheduler/internal/domain/booking"
	"meet-scheduler/internal/domain/request"
	"meet-scheduler/internal/domain/schedule"
	"meet-scheduler/internal/usecase/notify"
)

// Storage is the source of truth for request/booking existence and status;
// every operation re-reads and re-writes it, which is what replaces locks in
// this design.
type RequestRepository interface {
	Save(ctx context.Context, r *request.Request, ttl time.Duration) error
	FindByToken(ctx context.Context, token string) (*request.Request, error)
}

type BookingRepository interface {
	Save(ctx context.Context, b *booking.Booking, ttl time.Duration) error
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	FindByCancellationToken(ctx context.Context, token string) (*booking.Booking, error)
	// ListApprovedOn returns the non-cancelled bookings for a civil date.
	ListApprovedOn(ctx context.Context, date string) ([]*booking.Booking, error)
}

type CalendarEvent struct {
	ID   string
	Link string
}

// EventSpec carries everything the adapter needs to render a remote calendar
// event; topics arrive already label-mapped.
type EventSpec struct {
	Name            string
	Email           string
	Company         *string
	Role            *string
	MeetingTitle    string
	Date            string
	Time            string
	DurationMinutes int
	Timezone        string
	Location        string
	Topics          []string
	Details         string
	CancellationURL string
}

// CalendarGateway is the write+read calendar port. BusyIntervals degrades to
// an empty set on failure and never errors past this boundary; CreateEvent
// and DeleteEvent are best-effort enrichments whose failures are logged, not
// propagated into the booking state.
type CalendarGateway interface {
	BusyIntervals(ctx context.Context, date string) []schedule.Interval
	CreateEvent(ctx context.Context, spec EventSpec) (*CalendarEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// Notifier is the fire-and-forget email side-channel.
type Notifier interface {
	Dispatch(ctx context.Context, n notify.Notification) error
}
