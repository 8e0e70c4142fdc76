// Package notify defines the shape of the events the core emits to the email
// side-channel. Payloads are flat and fully resolved; the receiver never needs
// a follow-up lookup. Delivery is fire-and-forget: a failure is logged and
// never rolls back the state transition that produced the event.
package notify

type Kind string

const (
	KindAdminNotification Kind = "admin_notification"
	KindApproval          Kind = "approval"
	KindAdminConfirmed    Kind = "admin_confirmed"
	KindDenial            Kind = "denial"
	KindCancellation      Kind = "cancellation"
	KindCancellationAdmin Kind = "cancellation_admin"
)

// Notification is the wire payload for every kind; unused fields are omitted.
type Notification struct {
	Type Kind   `json:"type"`
	To   string `json:"to,omitempty"`

	AppointmentID string  `json:"appointmentId,omitempty"`
	Name          string  `json:"name,omitempty"`
	Email         string  `json:"email,omitempty"`
	Company       *string `json:"company,omitempty"`
	Role          *string `json:"role,omitempty"`

	MeetingType string `json:"meetingType,omitempty"`
	Duration    int    `json:"duration,omitempty"`

	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	// Timezone-correct absolute instants, RFC 3339 UTC.
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`

	Location string   `json:"location,omitempty"`
	Topics   []string `json:"topics,omitempty"`
	Details  string   `json:"details,omitempty"`

	Reason *string `json:"reason,omitempty"`

	ReviewURL         string  `json:"reviewURL,omitempty"`
	CancellationURL   string  `json:"cancellationURL,omitempty"`
	CalendarEventLink *string `json:"calendarEventLink,omitempty"`
}
