// Package booking models the confirmed, calendar-backed outcome of an
// approved request. Its sub-lifecycle is approved -> cancelled, terminal.
package booking

import (
	"time"

	"meet-scheduler/internal/domain/request"
	"meet-scheduler/internal/pkg/errs"
)

type Status string

const (
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
)

// ErrAlreadyCancelled guards the terminal state: cancelling twice must not
// re-trigger calendar deletion or notifications.
var ErrAlreadyCancelled = errs.New("booking already cancelled")

type Booking struct {
	// Keyed by the originating request id: exactly one non-cancelled booking
	// per request.
	id string
	// cancellationToken is a separate capability from the request's admin
	// token, so an admin review link can never cancel and vice versa.
	cancellationToken string

	name    string
	email   string
	company *string
	role    *string

	meetingTypeID    string
	meetingTypeTitle string
	durationMinutes  int

	date              string
	clock             string
	timezone          string
	location          string
	discussionTopics  []string
	discussionDetails string

	status      Status
	approvedAt  time.Time
	cancelledAt *time.Time

	// Present iff the remote calendar write succeeded; its absence never
	// invalidates the booking.
	calendarEventID   *string
	calendarEventLink *string
}

// NewFromRequest snapshots an approved request into a booking.
func NewFromRequest(r *request.Request, cancellationToken string, now time.Time) *Booking {
	return &Booking{
		id:                r.ID(),
		cancellationToken: cancellationToken,
		name:              r.Name(),
		email:             r.Email(),
		company:           r.Company(),
		role:              r.Role(),
		meetingTypeID:     r.MeetingTypeID(),
		meetingTypeTitle:  r.MeetingTypeTitle(),
		durationMinutes:   r.DurationMinutes(),
		date:              r.RequestedDate(),
		clock:             r.RequestedTime(),
		timezone:          r.Timezone(),
		location:          r.Location(),
		discussionTopics:  r.DiscussionTopics(),
		discussionDetails: r.DiscussionDetails(),
		status:            StatusApproved,
		approvedAt:        now,
	}
}

type ReconstructParams struct {
	ID                string
	CancellationToken string
	Name              string
	Email             string
	Company           *string
	Role              *string
	MeetingTypeID     string
	MeetingTypeTitle  string
	DurationMinutes   int
	Date              string
	Time              string
	Timezone          string
	Location          string
	DiscussionTopics  []string
	DiscussionDetails string
	Status            Status
	ApprovedAt        time.Time
	CancelledAt       *time.Time
	CalendarEventID   *string
	CalendarEventLink *string
}

func Reconstruct(p ReconstructParams) *Booking {
	return &Booking{
		id:                p.ID,
		cancellationToken: p.CancellationToken,
		name:              p.Name,
		email:             p.Email,
		company:           p.Company,
		role:              p.Role,
		meetingTypeID:     p.MeetingTypeID,
		meetingTypeTitle:  p.MeetingTypeTitle,
		durationMinutes:   p.DurationMinutes,
		date:              p.Date,
		clock:             p.Time,
		timezone:          p.Timezone,
		location:          p.Location,
		discussionTopics:  p.DiscussionTopics,
		discussionDetails: p.DiscussionDetails,
		status:            p.Status,
		approvedAt:        p.ApprovedAt,
		cancelledAt:       p.CancelledAt,
		calendarEventID:   p.CalendarEventID,
		calendarEventLink: p.CalendarEventLink,
	}
}

// Cancel moves approved -> cancelled.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

// AttachCalendarEvent records a successful remote calendar write.
func (b *Booking) AttachCalendarEvent(eventID, link string) {
	b.calendarEventID = &eventID
	b.calendarEventLink = &link
}

func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

func (b *Booking) ID() string                 { return b.id }
func (b *Booking) CancellationToken() string  { return b.cancellationToken }
func (b *Booking) Name() string               { return b.name }
func (b *Booking) Email() string              { return b.email }
func (b *Booking) Company() *string           { return b.company }
func (b *Booking) Role() *string              { return b.role }
func (b *Booking) MeetingTypeID() string      { return b.meetingTypeID }
func (b *Booking) MeetingTypeTitle() string   { return b.meetingTypeTitle }
func (b *Booking) DurationMinutes() int       { return b.durationMinutes }
func (b *Booking) Date() string               { return b.date }
func (b *Booking) Time() string               { return b.clock }
func (b *Booking) Timezone() string           { return b.timezone }
func (b *Booking) Location() string           { return b.location }
func (b *Booking) DiscussionTopics() []string { return b.discussionTopics }
func (b *Booking) DiscussionDetails() string  { return b.discussionDetails }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) ApprovedAt() time.Time      { return b.approvedAt }
func (b *Booking) CancelledAt() *time.Time    { return b.cancelledAt }
func (b *Booking) CalendarEventID() *string   { return b.calendarEventID }
func (b *Booking) CalendarEventLink() *string { return b.calendarEventLink }
