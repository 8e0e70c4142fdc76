// Package request models a visitor's ask for a meeting slot and its one-way
// status machine: pending -> approved | denied. An approved request may be
// re-approved in place (reschedule); nothing ever returns to pending.
package request

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// TerminalStateError reports an attempted transition on a request that has
// already reached a terminal status; callers render an idempotent message
// from the embedded status.
type TerminalStateError struct {
	Status Status
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("request already %s", e.Status)
}

type Request struct {
	id    string
	token string

	name    string
	email   string
	company *string
	role    *string

	meetingTypeID string
	// Snapshot at creation so later catalog edits never rewrite history.
	meetingTypeTitle string
	durationMinutes  int

	requestedDate     string
	requestedTime     string
	timezone          string
	location          string
	discussionTopics  []string
	discussionDetails string

	status       Status
	createdAt    time.Time
	approvedAt   *time.Time
	deniedAt     *time.Time
	denialReason *string
}

type NewRequestParams struct {
	Token             string
	Name              string
	Email             string
	Company           *string
	Role              *string
	MeetingTypeID     string
	MeetingTypeTitle  string
	DurationMinutes   int
	RequestedDate     string
	RequestedTime     string
	Timezone          string
	Location          string
	DiscussionTopics  []string
	DiscussionDetails string
}

func New(p NewRequestParams, now time.Time) *Request {
	topics := p.DiscussionTopics
	if topics == nil {
		topics = []string{}
	}
	return &Request{
		id:                uuid.NewString(),
		token:             p.Token,
		name:              p.Name,
		email:             p.Email,
		company:           p.Company,
		role:              p.Role,
		meetingTypeID:     p.MeetingTypeID,
		meetingTypeTitle:  p.MeetingTypeTitle,
		durationMinutes:   p.DurationMinutes,
		requestedDate:     p.RequestedDate,
		requestedTime:     p.RequestedTime,
		timezone:          p.Timezone,
		location:          p.Location,
		discussionTopics:  topics,
		discussionDetails: p.DiscussionDetails,
		status:            StatusPending,
		createdAt:         now,
	}
}

type ReconstructParams struct {
	ID                string
	Token             string
	Name              string
	Email             string
	Company           *string
	Role              *string
	MeetingTypeID     string
	MeetingTypeTitle  string
	DurationMinutes   int
	RequestedDate     string
	RequestedTime     string
	Timezone          string
	Location          string
	DiscussionTopics  []string
	DiscussionDetails string
	Status            Status
	CreatedAt         time.Time
	ApprovedAt        *time.Time
	DeniedAt          *time.Time
	DenialReason      *string
}

// Reconstruct rebuilds an entity from a persisted record without replaying
// lifecycle rules.
func Reconstruct(p ReconstructParams) *Request {
	return &Request{
		id:                p.ID,
		token:             p.Token,
		name:              p.Name,
		email:             p.Email,
		company:           p.Company,
		role:              p.Role,
		meetingTypeID:     p.MeetingTypeID,
		meetingTypeTitle:  p.MeetingTypeTitle,
		durationMinutes:   p.DurationMinutes,
		requestedDate:     p.RequestedDate,
		requestedTime:     p.RequestedTime,
		timezone:          p.Timezone,
		location:          p.Location,
		discussionTopics:  p.DiscussionTopics,
		discussionDetails: p.DiscussionDetails,
		status:            p.Status,
		createdAt:         p.CreatedAt,
		approvedAt:        p.ApprovedAt,
		deniedAt:          p.DeniedAt,
		denialReason:      p.DenialReason,
	}
}

// Approve moves pending -> approved. Re-approving an approved request is the
// reschedule path and is allowed; a denied request is terminal.
func (r *Request) Approve(now time.Time) error {
	if r.status == StatusDenied {
		return &TerminalStateError{Status: r.status}
	}
	r.status = StatusApproved
	r.approvedAt = &now
	return nil
}

// Deny moves pending -> denied. Both terminal states reject a second decision.
func (r *Request) Deny(reason *string, now time.Time) error {
	if r.status != StatusPending {
		return &TerminalStateError{Status: r.status}
	}
	r.status = StatusDenied
	r.deniedAt = &now
	r.denialReason = reason
	return nil
}

// Reschedule replaces the requested slot in place (admin override on approve).
func (r *Request) Reschedule(date, clock string) {
	r.requestedDate = date
	r.requestedTime = clock
}

func (r *Request) RelocateTo(location string) {
	r.location = location
}

func (r *Request) IsPending() bool { return r.status == StatusPending }

func (r *Request) ID() string                 { return r.id }
func (r *Request) Token() string              { return r.token }
func (r *Request) Name() string               { return r.name }
func (r *Request) Email() string              { return r.email }
func (r *Request) Company() *string           { return r.company }
func (r *Request) Role() *string              { return r.role }
func (r *Request) MeetingTypeID() string      { return r.meetingTypeID }
func (r *Request) MeetingTypeTitle() string   { return r.meetingTypeTitle }
func (r *Request) DurationMinutes() int       { return r.durationMinutes }
func (r *Request) RequestedDate() string      { return r.requestedDate }
func (r *Request) RequestedTime() string      { return r.requestedTime }
func (r *Request) Timezone() string           { return r.timezone }
func (r *Request) Location() string           { return r.location }
func (r *Request) DiscussionTopics() []string { return r.discussionTopics }
func (r *Request) DiscussionDetails() string  { return r.discussionDetails }
func (r *Request) Status() Status             { return r.status }
func (r *Request) CreatedAt() time.Time       { return r.createdAt }
func (r *Request) ApprovedAt() *time.Time     { return r.approvedAt }
func (r *Request) DeniedAt() *time.Time       { return r.deniedAt }
func (r *Request) DenialReason() *string      { return r.denialReason }
