package request

import "strings"

type BookRequest struct {
	Name              string   `json:"name" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	Company           *string  `json:"company,omitempty"`
	Role              *string  `json:"role,omitempty"`
	Date              string   `json:"date" binding:"required"`
	Time              string   `json:"time" binding:"required"`
	Timezone          *string  `json:"timezone,omitempty"`
	MeetingTypeID     string   `json:"meeting_type_id" binding:"required"`
	DiscussionTopics  []string `json:"discussion_topics,omitempty"`
	DiscussionDetails string   `json:"discussion_details" binding:"required"`
	Location          string   `json:"location" binding:"required"`
}

// GetTimezone falls back to the admin zone when the visitor sent nothing.
func (r BookRequest) GetTimezone(fallback string) string {
	if r.Timezone == nil || strings.TrimSpace(*r.Timezone) == "" {
		return fallback
	}
	return strings.TrimSpace(*r.Timezone)
}

type ApproveRequest struct {
	Token    string  `json:"token" binding:"required"`
	Location *string `json:"location,omitempty"`
	NewDate  *string `json:"newDate,omitempty"`
	NewTime  *string `json:"newTime,omitempty"`
	// ForceApprove skips the commit-time conflict re-check.
	ForceApprove bool `json:"forceApprove,omitempty"`
}

// HasReschedule reports whether the admin supplied a replacement slot; both
// halves are required for a reschedule to take effect.
func (r ApproveRequest) HasReschedule() bool {
	return r.NewDate != nil && *r.NewDate != "" && r.NewTime != nil && *r.NewTime != ""
}

type DenyRequest struct {
	Token  string  `json:"token" binding:"required"`
	Reason *string `json:"reason,omitempty"`
}

type CancelRequest struct {
	Token string `json:"token" binding:"required"`
}
