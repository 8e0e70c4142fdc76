package queries

import (
	"time"

	"meet-scheduler/internal/domain/booking"
	"meet-scheduler/internal/domain/request"
)

// RequestView is the full request record as the admin review UI consumes it.
// Field names follow the persisted wire shape.
type RequestView struct {
	ID                string     `json:"id"`
	Token             string     `json:"token"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Company           *string    `json:"company,omitempty"`
	Role              *string    `json:"role,omitempty"`
	MeetingTypeID     string     `json:"meetingTypeId"`
	MeetingTypeTitle  string     `json:"meetingTypeTitle"`
	DurationMinutes   int        `json:"durationMinutes"`
	RequestedDate     string     `json:"requestedDate"`
	RequestedTime     string     `json:"requestedTime"`
	Timezone          string     `json:"timezone"`
	Location          string     `json:"location"`
	DiscussionTopics  []string   `json:"discussionTopics"`
	DiscussionDetails string     `json:"discussionDetails"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	ApprovedAt        *time.Time `json:"approvedAt,omitempty"`
	DeniedAt          *time.Time `json:"deniedAt,omitempty"`
	DenialReason      *string    `json:"denialReason,omitempty"`
}

type BookingView struct {
	ID                string     `json:"id"`
	CancellationToken string     `json:"cancellationToken"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Company           *string    `json:"company,omitempty"`
	Role              *string    `json:"role,omitempty"`
	MeetingTypeID     string     `json:"meetingTypeId"`
	MeetingTypeTitle  string     `json:"meetingTypeTitle"`
	DurationMinutes   int        `json:"durationMinutes"`
	Date              string     `json:"date"`
	Time              string     `json:"time"`
	Timezone          string     `json:"timezone"`
	Location          string     `json:"location"`
	DiscussionTopics  []string   `json:"discussionTopics"`
	DiscussionDetails string     `json:"discussionDetails"`
	Status            string     `json:"status"`
	ApprovedAt        time.Time  `json:"approvedAt"`
	CancelledAt       *time.Time `json:"cancelledAt,omitempty"`
	CalendarEventID   *string    `json:"calendarEventId,omitempty"`
	CalendarEventLink *string    `json:"calendarEventLink,omitempty"`
}

func FromRequestEntity(r *request.Request) *RequestView {
	return &RequestView{
		ID:                r.ID(),
		Token:             r.Token(),
		Name:              r.Name(),
		Email:             r.Email(),
		Company:           r.Company(),
		Role:              r.Role(),
		MeetingTypeID:     r.MeetingTypeID(),
		MeetingTypeTitle:  r.MeetingTypeTitle(),
		DurationMinutes:   r.DurationMinutes(),
		RequestedDate:     r.RequestedDate(),
		RequestedTime:     r.RequestedTime(),
		Timezone:          r.Timezone(),
		Location:          r.Location(),
		DiscussionTopics:  r.DiscussionTopics(),
		DiscussionDetails: r.DiscussionDetails(),
		Status:            string(r.Status()),
		CreatedAt:         r.CreatedAt(),
		ApprovedAt:        r.ApprovedAt(),
		DeniedAt:          r.DeniedAt(),
		DenialReason:      r.DenialReason(),
	}
}

func FromBookingEntity(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:                b.ID(),
		CancellationToken: b.CancellationToken(),
		Name:              b.Name(),
		Email:             b.Email(),
		Company:           b.Company(),
		Role:              b.Role(),
		MeetingTypeID:     b.MeetingTypeID(),
		MeetingTypeTitle:  b.MeetingTypeTitle(),
		DurationMinutes:   b.DurationMinutes(),
		Date:              b.Date(),
		Time:              b.Time(),
		Timezone:          b.Timezone(),
		Location:          b.Location(),
		DiscussionTopics:  b.DiscussionTopics(),
		DiscussionDetails: b.DiscussionDetails(),
		Status:            string(b.Status()),
		ApprovedAt:        b.ApprovedAt(),
		CancelledAt:       b.CancelledAt(),
		CalendarEventID:   b.CalendarEventID(),
		CalendarEventLink: b.CalendarEventLink(),
	}
}
