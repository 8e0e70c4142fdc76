// Package repository persists requests and bookings as versioned JSON records
// over the kv capability. Older records may predate newer fields, so every
// optional field is pointer-typed and decoding never assumes presence.
package repository

import "time"

const (
	requestKeyPrefix = "request:"
	bookingKeyPrefix = "booking:"

	recordSchemaVersion = 1
)

type requestRecord struct {
	SchemaVersion     int        `json:"schema_version"`
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
	Location          *string    `json:"location,omitempty"`
	DiscussionTopics  []string   `json:"discussionTopics"`
	DiscussionDetails string     `json:"discussionDetails"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	ApprovedAt        *time.Time `json:"approvedAt,omitempty"`
	DeniedAt          *time.Time `json:"deniedAt,omitempty"`
	DenialReason      *string    `json:"denialReason,omitempty"`
}

type bookingRecord struct {
	SchemaVersion     int        `json:"schema_version"`
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
	Location          *string    `json:"location,omitempty"`
	DiscussionTopics  []string   `json:"discussionTopics"`
	DiscussionDetails string     `json:"discussionDetails"`
	Status            string     `json:"status"`
	ApprovedAt        time.Time  `json:"approvedAt"`
	CancelledAt       *time.Time `json:"cancelledAt,omitempty"`
	CalendarEventID   *string    `json:"calendarEventId,omitempty"`
	CalendarEventLink *string    `json:"calendarEventLink,omitempty"`
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func strPtr(s string) *string {
	return &s
}
