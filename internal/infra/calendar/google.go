// Package calendar talks to the Google Calendar API with a service account.
// Every method degrades gracefully: a missing credential or upstream failure
// is logged and reported as "no data" so booking flows never stall on the
// calendar side.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"meet-scheduler/internal/domain/schedule"
	"meet-scheduler/internal/pkg/config"
	"meet-scheduler/internal/pkg/errs"
	"meet-scheduler/internal/usecase/commands"
)

const (
	defaultTokenEndpoint = "https://oauth2.googleapis.com/token"
	defaultAPIBase       = "https://www.googleapis.com/calendar/v3"
)

type GoogleCalendar struct {
	calendarID string
	account    *serviceAccount
	zone       *time.Location
	client     *http.Client

	// Overridable for white-box tests.
	tokenEndpoint string
	apiBase       string
}

// NewGoogleCalendar builds the gateway. An empty calendar ID yields a
// degraded gateway that reports no busy time and skips event writes; an
// unparsable credential is a startup error.
func NewGoogleCalendar(cfg config.Config) (*GoogleCalendar, error) {
	zone, err := time.LoadLocation(cfg.Scheduler.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "unknown scheduler time zone %q", cfg.Scheduler.TimeZone)
	}

	g := &GoogleCalendar{
		calendarID:    cfg.Calendar.CalendarID,
		zone:          zone,
		client:        &http.Client{Timeout: cfg.Calendar.Timeout},
		tokenEndpoint: defaultTokenEndpoint,
		apiBase:       defaultAPIBase,
	}
	if cfg.Calendar.CalendarID == "" {
		slog.Warn("calendar id not configured; calendar integration disabled")
		return g, nil
	}
	account, err := parseServiceAccount(cfg.Calendar.ServiceAccountJSON)
	if err != nil {
		return nil, err
	}
	g.account = account
	return g, nil
}

func (g *GoogleCalendar) enabled() bool {
	return g.calendarID != "" && g.account != nil
}

// BusyIntervals returns the calendar's busy blocks on the given date as
// minutes-of-day intervals in the scheduler zone. Blocks spanning midnight
// are clamped to the requested date. Any failure logs and returns an empty
// set so availability stays permissive rather than blocking.
func (g *GoogleCalendar) BusyIntervals(ctx context.Context, date string) []schedule.Interval {
	if !g.enabled() {
		return nil
	}
	intervals, err := g.fetchBusy(ctx, date)
	if err != nil {
		slog.Warn("busy lookup degraded to empty", "date", date, "error", err)
		return nil
	}
	return intervals
}

func (g *GoogleCalendar) fetchBusy(ctx context.Context, date string) ([]schedule.Interval, error) {
	dayStart, err := schedule.UTCInstant(date, "00:00", g.zone)
	if err != nil {
		return nil, err
	}
	dayEnd, err := schedule.UTCInstant(date, "23:59", g.zone)
	if err != nil {
		return nil, err
	}
	dayEnd = dayEnd.Add(59 * time.Second)

	body := map[string]any{
		"timeMin": dayStart.Format(time.RFC3339),
		"timeMax": dayEnd.Format(time.RFC3339),
		"items":   []map[string]string{{"id": g.calendarID}},
	}

	var payload struct {
		Calendars map[string]struct {
			Busy []struct {
				Start string `json:"start"`
				End   string `json:"end"`
			} `json:"busy"`
		} `json:"calendars"`
	}
	if err := g.call(ctx, http.MethodPost, g.apiBase+"/freeBusy", body, &payload); err != nil {
		return nil, err
	}

	blocks := payload.Calendars[g.calendarID].Busy
	intervals := make([]schedule.Interval, 0, len(blocks))
	for _, block := range blocks {
		start, err := time.Parse(time.RFC3339, block.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, block.End)
		if err != nil {
			continue
		}
		startDate, startMinutes := schedule.LocalParts(start, g.zone)
		endDate, endMinutes := schedule.LocalParts(end, g.zone)
		if startDate > date || endDate < date {
			continue
		}
		if startDate < date {
			startMinutes = 0
		}
		if endDate > date {
			endMinutes = schedule.MinutesPerDay
		}
		intervals = append(intervals, schedule.Interval{StartMinutes: startMinutes, EndMinutes: endMinutes})
	}
	return intervals, nil
}

// CreateEvent inserts the booking on the admin calendar and invites the
// attendee. Reminders: email a day ahead, popup 30 minutes ahead.
func (g *GoogleCalendar) CreateEvent(ctx context.Context, spec commands.EventSpec) (*commands.CalendarEvent, error) {
	if !g.enabled() {
		return nil, errs.New("calendar integration disabled")
	}

	startMinutes, err := schedule.ParseClock(spec.Time)
	if err != nil {
		return nil, err
	}
	endMinutes := startMinutes + spec.DurationMinutes

	event := map[string]any{
		"summary":     fmt.Sprintf("%s - %s", spec.MeetingTitle, spec.Name),
		"description": buildDescription(spec),
		"start": map[string]string{
			"dateTime": fmt.Sprintf("%sT%s:00", spec.Date, spec.Time),
			"timeZone": spec.Timezone,
		},
		"end": map[string]string{
			"dateTime": fmt.Sprintf("%sT%02d:%02d:00", spec.Date, endMinutes/60, endMinutes%60),
			"timeZone": spec.Timezone,
		},
		"attendees": []map[string]string{{"email": spec.Email}},
		"reminders": map[string]any{
			"useDefault": false,
			"overrides": []map[string]any{
				{"method": "email", "minutes": 24 * 60},
				{"method": "popup", "minutes": 30},
			},
		},
	}

	var created struct {
		ID       string `json:"id"`
		HTMLLink string `json:"htmlLink"`
	}
	url := fmt.Sprintf("%s/calendars/%s/events", g.apiBase, g.calendarID)
	if err := g.call(ctx, http.MethodPost, url, event, &created); err != nil {
		return nil, err
	}
	return &commands.CalendarEvent{ID: created.ID, Link: created.HTMLLink}, nil
}

// DeleteEvent removes a previously created event. An already-deleted event
// is treated as success.
func (g *GoogleCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	if !g.enabled() || eventID == "" {
		return nil
	}
	url := fmt.Sprintf("%s/calendars/%s/events/%s", g.apiBase, g.calendarID, eventID)
	err := g.call(ctx, http.MethodDelete, url, nil, nil)
	var apiErr *apiStatusError
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return nil
	}
	return err
}

type apiStatusError struct {
	Code   int
	Detail string
}

func (e *apiStatusError) Error() string {
	return fmt.Sprintf("calendar API returned %d: %s", e.Code, e.Detail)
}

func (g *GoogleCalendar) call(ctx context.Context, method, url string, body, out any) error {
	token, err := g.accessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode calendar request")
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return errs.Wrap(err, "failed to build calendar request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "calendar request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &apiStatusError{Code: resp.StatusCode, Detail: string(detail)}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Wrap(err, "failed to decode calendar response")
		}
	}
	return nil
}

func buildDescription(spec commands.EventSpec) string {
	var b strings.Builder
	b.WriteString("ATTENDEE INFORMATION\n")
	b.WriteString("Name: " + spec.Name + "\n")
	b.WriteString("Email: " + spec.Email + "\n")
	if spec.Company != nil && *spec.Company != "" {
		b.WriteString("Company: " + *spec.Company + "\n")
	}
	if spec.Role != nil && *spec.Role != "" {
		b.WriteString("Role: " + *spec.Role + "\n")
	}
	if spec.Location != "" {
		b.WriteString("\nLOCATION\n" + spec.Location + "\n")
	}
	if len(spec.Topics) > 0 {
		b.WriteString("\nDISCUSSION TOPICS\n")
		for _, topic := range spec.Topics {
			b.WriteString("- " + topic + "\n")
		}
	}
	if spec.Details != "" {
		b.WriteString("\nDETAILS & NOTES\n" + spec.Details + "\n")
	}
	if spec.CancellationURL != "" {
		b.WriteString("\nNEED TO CANCEL?\n" + spec.CancellationURL + "\n")
	}
	return b.String()
}
