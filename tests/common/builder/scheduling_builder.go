//go:build unit || e2e

package builder

import (
	"time"

	"meet-scheduler/internal/domain/booking"
	"meet-scheduler/internal/domain/request"
	reqdto "meet-scheduler/internal/handler/dto/request"
)

// RequestBuilder assembles request fixtures. Defaults describe a valid
// Pleasant Talk ask on the first event day.
type RequestBuilder struct {
	Token             string
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
	CreatedAt         time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		Token:             "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90",
		Name:              "Ada Lovelace",
		Email:             "ada@example.com",
		MeetingTypeID:     "gdc-pleasant-talk",
		MeetingTypeTitle:  "Pleasant Talk",
		DurationMinutes:   40,
		Date:              "2026-03-09",
		Time:              "09:00",
		Timezone:          "America/Los_Angeles",
		Location:          "Moscone West Lobby",
		DiscussionTopics:  []string{"collaboration"},
		DiscussionDetails: "Engine licensing questions",
		CreatedAt:         time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) WithMeetingType(id, title string, duration int) *RequestBuilder {
	b.MeetingTypeID = id
	b.MeetingTypeTitle = title
	b.DurationMinutes = duration
	return b
}

func (b *RequestBuilder) WithSlot(date, clock string) *RequestBuilder {
	b.Date = date
	b.Time = clock
	return b
}

func (b *RequestBuilder) WithToken(token string) *RequestBuilder {
	b.Token = token
	return b
}

func (b *RequestBuilder) BuildDomain() *request.Request {
	return request.New(request.NewRequestParams{
		Token:             b.Token,
		Name:              b.Name,
		Email:             b.Email,
		Company:           b.Company,
		Role:              b.Role,
		MeetingTypeID:     b.MeetingTypeID,
		MeetingTypeTitle:  b.MeetingTypeTitle,
		DurationMinutes:   b.DurationMinutes,
		RequestedDate:     b.Date,
		RequestedTime:     b.Time,
		Timezone:          b.Timezone,
		Location:          b.Location,
		DiscussionTopics:  b.DiscussionTopics,
		DiscussionDetails: b.DiscussionDetails,
	}, b.CreatedAt)
}

func (b *RequestBuilder) BuildBookRequestDTO() reqdto.BookRequest {
	tz := b.Timezone
	return reqdto.BookRequest{
		Name:              b.Name,
		Email:             b.Email,
		Company:           b.Company,
		Role:              b.Role,
		Date:              b.Date,
		Time:              b.Time,
		Timezone:          &tz,
		MeetingTypeID:     b.MeetingTypeID,
		DiscussionTopics:  b.DiscussionTopics,
		DiscussionDetails: b.DiscussionDetails,
		Location:          b.Location,
	}
}

// BuildBooking approves the built request and snapshots it into a booking.
func (b *RequestBuilder) BuildBooking(cancellationToken string, approvedAt time.Time) *booking.Booking {
	r := b.BuildDomain()
	_ = r.Approve(approvedAt)
	return booking.NewFromRequest(r, cancellationToken, approvedAt)
}
