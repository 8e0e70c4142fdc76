//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"meet-scheduler/internal/domain/booking"
	"meet-scheduler/internal/domain/catalog"
	"meet-scheduler/internal/domain/request"
	"meet-scheduler/internal/domain/schedule"
	reqdto "meet-scheduler/internal/handler/dto/request"
	"meet-scheduler/internal/infra"
	"meet-scheduler/internal/pkg/clock"
	"meet-scheduler/internal/pkg/config"
	"meet-scheduler/internal/pkg/errs"
	"meet-scheduler/internal/usecase/commands"
	"meet-scheduler/internal/usecase/notify"
	"meet-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ================================================================================
// In-memory fakes
// ================================================================================

type savedRequest struct {
	request *request.Request
	ttl     time.Duration
}

type fakeRequestRepo struct {
	byToken map[string]*request.Request
	saves   []savedRequest
	saveErr error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{byToken: map[string]*request.Request{}}
}

func (f *fakeRequestRepo) Save(_ context.Context, r *request.Request, ttl time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.byToken[r.Token()] = r
	f.saves = append(f.saves, savedRequest{request: r, ttl: ttl})
	return nil
}

func (f *fakeRequestRepo) FindByToken(_ context.Context, token string) (*request.Request, error) {
	r, ok := f.byToken[token]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "request not found", nil)
	}
	return r, nil
}

type savedBooking struct {
	booking *booking.Booking
	ttl     time.Duration
}

type fakeBookingRepo struct {
	byID    map[string]*booking.Booking
	saves   []savedBooking
	saveErr error
	listErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: map[string]*booking.Booking{}}
}

func (f *fakeBookingRepo) Save(_ context.Context, b *booking.Booking, ttl time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.byID[b.ID()] = b
	f.saves = append(f.saves, savedBooking{booking: b, ttl: ttl})
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id string) (*booking.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return b, nil
}

func (f *fakeBookingRepo) FindByCancellationToken(_ context.Context, token string) (*booking.Booking, error) {
	for _, b := range f.byID {
		if b.CancellationToken() == token {
			return b, nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
}

func (f *fakeBookingRepo) ListApprovedOn(_ context.Context, date string) ([]*booking.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*booking.Booking{}
	for _, b := range f.byID {
		if b.Date() == date && !b.IsCancelled() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCalendar struct {
	busy      []schedule.Interval
	created   []commands.EventSpec
	createErr error
	event     commands.CalendarEvent
	deleted   []string
	deleteErr error
}

func (f *fakeCalendar) BusyIntervals(_ context.Context, _ string) []schedule.Interval {
	return f.busy
}

func (f *fakeCalendar) CreateEvent(_ context.Context, spec commands.EventSpec) (*commands.CalendarEvent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, spec)
	ev := f.event
	if ev.ID == "" {
		ev = commands.CalendarEvent{ID: "evt-1", Link: "https://calendar.example/evt-1"}
	}
	return &ev, nil
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	f.deleted = append(f.deleted, eventID)
	return f.deleteErr
}

type fakeNotifier struct {
	sent []notify.Notification
	err  error
}

func (f *fakeNotifier) Dispatch(_ context.Context, n notify.Notification) error {
	f.sent = append(f.sent, n)
	return f.err
}

func (f *fakeNotifier) kinds() []notify.Kind {
	out := make([]notify.Kind, len(f.sent))
	for i, n := range f.sent {
		out[i] = n.Type
	}
	return out
}

// ================================================================================
// Harness
// ================================================================================

type harness struct {
	commands commands.SchedulingCommands
	requests *fakeRequestRepo
	bookings *fakeBookingRepo
	calendar *fakeCalendar
	notifier *fakeNotifier
	clock    *clock.MockClock
}

func newHarness() *harness {
	h := &harness{
		requests: newFakeRequestRepo(),
		bookings: newFakeBookingRepo(),
		calendar: &fakeCalendar{},
		notifier: &fakeNotifier{},
		clock:    clock.NewMockClock(time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)),
	}
	cfg := config.NewTestConfig()
	cfg.Calendar.CalendarID = "admin@example.com"
	h.commands = commands.NewSchedulingCommands(
		catalog.Default(), h.requests, h.bookings, h.calendar, h.notifier, h.clock, cfg,
	)
	return h
}

func (h *harness) submitted(t *testing.T, b *builder.RequestBuilder) *request.Request {
	t.Helper()
	id, err := h.commands.Submit(context.Background(), b.BuildBookRequestDTO())
	require.NoError(t, err)
	require.Len(t, h.requests.saves, 1)
	r := h.requests.saves[len(h.requests.saves)-1].request
	require.Equal(t, id, r.ID())
	h.notifier.sent = nil
	return r
}

// ================================================================================
// Submit
// ================================================================================

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("valid request persists as pending and notifies the admin", func(t *testing.T) {
		h := newHarness()
		req := builder.NewRequestBuilder().BuildBookRequestDTO()

		id, err := h.commands.Submit(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		require.Len(t, h.requests.saves, 1)
		saved := h.requests.saves[0]
		assert.Equal(t, commands.RequestRetention, saved.ttl)
		assert.Equal(t, request.StatusPending, saved.request.Status())
		assert.Len(t, saved.request.Token(), 64, "admin token is 256-bit hex")
		assert.Equal(t, "Pleasant Talk", saved.request.MeetingTypeTitle(), "title snapshotted from the catalog")

		require.Len(t, h.notifier.sent, 1)
		n := h.notifier.sent[0]
		assert.Equal(t, notify.KindAdminNotification, n.Type)
		assert.Equal(t, "admin@example.com", n.To)
		assert.Contains(t, n.ReviewURL, "/admin/review?token="+saved.request.Token())
		assert.Equal(t, []string{"Collaboration Opportunity"}, n.Topics)
	})

	t.Run("missing timezone falls back to the admin zone", func(t *testing.T) {
		h := newHarness()
		req := builder.NewRequestBuilder().BuildBookRequestDTO()
		req.Timezone = nil

		_, err := h.commands.Submit(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "America/Los_Angeles", h.requests.saves[0].request.Timezone())
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*reqdto.BookRequest)
			errIs  error
		}{
			{
				name:   "blank name",
				mutate: func(r *reqdto.BookRequest) { r.Name = "   " },
				errIs:  commands.ErrMissingFields,
			},
			{
				name:   "missing details",
				mutate: func(r *reqdto.BookRequest) { r.DiscussionDetails = "" },
				errIs:  commands.ErrMissingFields,
			},
			{
				name:   "unknown meeting type",
				mutate: func(r *reqdto.BookRequest) { r.MeetingTypeID = "gdc-karaoke" },
				errIs:  commands.ErrUnknownMeetingType,
			},
			{
				name:   "malformed date",
				mutate: func(r *reqdto.BookRequest) { r.Date = "03/09/2026" },
				errIs:  commands.ErrInvalidDate,
			},
			{
				name:   "malformed time",
				mutate: func(r *reqdto.BookRequest) { r.Time = "9am" },
				errIs:  commands.ErrInvalidTime,
			},
			{
				name:   "date before the window",
				mutate: func(r *reqdto.BookRequest) { r.Date = "2026-03-08" },
				errIs:  commands.ErrDateOutOfRange,
			},
			{
				name:   "date after the window",
				mutate: func(r *reqdto.BookRequest) { r.Date = "2026-03-14" },
				errIs:  commands.ErrDateOutOfRange,
			},
			{
				name:   "start before the daily window",
				mutate: func(r *reqdto.BookRequest) { r.Time = "08:00" },
				errIs:  commands.ErrOutsideDailyWindow,
			},
			{
				name:   "start after the daily window",
				mutate: func(r *reqdto.BookRequest) { r.Time = "17:40" },
				errIs:  commands.ErrOutsideDailyWindow,
			},
			{
				name:   "slot overlapping the midday blackout",
				mutate: func(r *reqdto.BookRequest) { r.Time = "11:30" },
				errIs:  commands.ErrBlackoutOverlap,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				h := newHarness()
				req := builder.NewRequestBuilder().BuildBookRequestDTO()
				tc.mutate(&req)

				_, err := h.commands.Submit(ctx, req)
				require.ErrorIs(t, err, tc.errIs)
				assert.Empty(t, h.requests.saves, "nothing persisted on validation failure")
				assert.Empty(t, h.notifier.sent)
			})
		}
	})

	t.Run("last-call start within one duration past close is accepted", func(t *testing.T) {
		h := newHarness()
		req := builder.NewRequestBuilder().WithSlot("2026-03-09", "17:30").BuildBookRequestDTO()

		_, err := h.commands.Submit(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("busy calendar slot conflicts", func(t *testing.T) {
		h := newHarness()
		h.calendar.busy = []schedule.Interval{{StartMinutes: 9 * 60, EndMinutes: 10 * 60}}
		req := builder.NewRequestBuilder().WithSlot("2026-03-09", "09:30").BuildBookRequestDTO()

		_, err := h.commands.Submit(ctx, req)
		assert.ErrorIs(t, err, commands.ErrSlotConflict)
	})

	t.Run("meal buffer conflicts without a direct overlap", func(t *testing.T) {
		h := newHarness()
		// Lunch 12:00-13:00 touches but does not overlap busy 13:00-14:00;
		// the 15 minute buffer makes it a conflict.
		h.calendar.busy = []schedule.Interval{{StartMinutes: 13 * 60, EndMinutes: 14 * 60}}
		req := builder.NewRequestBuilder().
			WithMeetingType("gdc-lunch", "Lunch", 60).
			WithSlot("2026-03-09", "12:00").
			BuildBookRequestDTO()

		_, err := h.commands.Submit(ctx, req)
		assert.ErrorIs(t, err, commands.ErrBufferConflict)
	})

	t.Run("second meal on the same day is rejected", func(t *testing.T) {
		h := newHarness()
		existing := builder.NewRequestBuilder().
			WithMeetingType("gdc-lunch", "Lunch", 60).
			WithSlot("2026-03-09", "12:00").
			BuildBooking("other-cancel-token", h.clock.Now())
		require.NoError(t, h.bookings.Save(ctx, existing, commands.BookingRetention))

		req := builder.NewRequestBuilder().
			WithMeetingType("gdc-coffee", "Coffee or Breakfast", 30).
			WithSlot("2026-03-09", "08:00").
			BuildBookRequestDTO()

		_, err := h.commands.Submit(ctx, req)
		assert.ErrorIs(t, err, commands.ErrMealAlreadyBooked)
	})

	t.Run("meal on a different day is fine", func(t *testing.T) {
		h := newHarness()
		existing := builder.NewRequestBuilder().
			WithMeetingType("gdc-lunch", "Lunch", 60).
			WithSlot("2026-03-09", "12:00").
			BuildBooking("other-cancel-token", h.clock.Now())
		require.NoError(t, h.bookings.Save(ctx, existing, commands.BookingRetention))

		req := builder.NewRequestBuilder().
			WithMeetingType("gdc-lunch", "Lunch", 60).
			WithSlot("2026-03-10", "12:00").
			BuildBookRequestDTO()

		_, err := h.commands.Submit(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("storage failure surfaces as a marked error", func(t *testing.T) {
		h := newHarness()
		h.requests.saveErr = infra.WrapRepoErr(infra.KindDBFailure, "connection reset", nil)

		_, err := h.commands.Submit(ctx, builder.NewRequestBuilder().BuildBookRequestDTO())
		assert.True(t, errs.Is(err, commands.ErrStorageOperationFailed))
	})

	t.Run("notifier failure does not fail the submit", func(t *testing.T) {
		h := newHarness()
		h.notifier.err = errors.New("smtp down")

		_, err := h.commands.Submit(ctx, builder.NewRequestBuilder().BuildBookRequestDTO())
		assert.NoError(t, err)
	})
}

// ================================================================================
// Approve
// ================================================================================

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request becomes an approved booking", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())

		view, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token()})
		require.NoError(t, err)

		assert.Equal(t, r.ID(), view.ID)
		assert.Equal(t, "approved", view.Status)
		assert.NotEmpty(t, view.CancellationToken)
		assert.NotEqual(t, r.Token(), view.CancellationToken)

		require.Len(t, h.bookings.saves, 1)
		assert.Equal(t, commands.BookingRetention, h.bookings.saves[0].ttl)
		assert.Equal(t, request.StatusApproved, r.Status())

		require.Len(t, h.calendar.created, 1)
		spec := h.calendar.created[0]
		assert.Equal(t, "Pleasant Talk", spec.MeetingTitle)
		assert.Contains(t, spec.CancellationURL, "/cancel?token="+view.CancellationToken)
		require.NotNil(t, view.CalendarEventID)
		assert.Equal(t, "evt-1", *view.CalendarEventID)

		assert.Equal(t, []notify.Kind{notify.KindApproval, notify.KindAdminConfirmed}, h.notifier.kinds())
		attendee := h.notifier.sent[0]
		assert.Equal(t, r.Email(), attendee.To)
		// 09:00 on 2026-03-09 in Los Angeles is PDT, UTC-7.
		assert.Equal(t, "2026-03-09T16:00:00Z", attendee.StartTime)
		assert.Equal(t, "2026-03-09T16:40:00Z", attendee.EndTime)
	})

	t.Run("unknown token", func(t *testing.T) {
		h := newHarness()
		_, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: "nope"})
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("denied request is terminal", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		require.NoError(t, h.commands.Deny(ctx, reqdto.DenyRequest{Token: r.Token()}))

		_, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token()})
		var terminal *request.TerminalStateError
		require.ErrorAs(t, err, &terminal)
		assert.Equal(t, request.StatusDenied, terminal.Status)
	})

	t.Run("calendar conflict at approval time blocks the transition", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		h.calendar.busy = []schedule.Interval{{StartMinutes: 9 * 60, EndMinutes: 10 * 60}}

		_, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token()})
		assert.ErrorIs(t, err, commands.ErrSlotConflict)
		assert.True(t, r.IsPending(), "request left untouched on conflict")
		assert.Empty(t, h.bookings.saves)
	})

	t.Run("force approve overrides the conflict check", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		h.calendar.busy = []schedule.Interval{{StartMinutes: 9 * 60, EndMinutes: 10 * 60}}

		_, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token(), ForceApprove: true})
		assert.NoError(t, err)
	})

	t.Run("location override lands in the booking", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		loc := "Press Lounge"

		view, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token(), Location: &loc})
		require.NoError(t, err)
		assert.Equal(t, loc, view.Location)
	})

	t.Run("reschedule of an approved booking keeps the cancellation token and replaces the event", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())

		first, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token()})
		require.NoError(t, err)
		h.notifier.sent = nil

		newDate, newTime := "2026-03-11", "14:00"
		second, err := h.commands.Approve(ctx, reqdto.ApproveRequest{
			Token:   r.Token(),
			NewDate: &newDate,
			NewTime: &newTime,
		})
		require.NoError(t, err)

		assert.Equal(t, first.CancellationToken, second.CancellationToken, "attendee's cancel link survives the move")
		assert.Equal(t, newDate, second.Date)
		assert.Equal(t, newTime, second.Time)
		assert.Equal(t, []string{"evt-1"}, h.calendar.deleted, "superseded event removed")
		assert.Equal(t, []notify.Kind{notify.KindApproval, notify.KindAdminConfirmed}, h.notifier.kinds())
	})

	t.Run("reschedule with a malformed slot is rejected before any transition", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		badDate, okTime := "tomorrow", "14:00"

		_, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token(), NewDate: &badDate, NewTime: &okTime})
		assert.ErrorIs(t, err, commands.ErrInvalidDate)
		assert.True(t, r.IsPending())
	})

	t.Run("calendar create failure still persists the booking", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		h.calendar.createErr = errors.New("calendar 500")

		view, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token()})
		require.NoError(t, err)
		assert.Nil(t, view.CalendarEventID)
		require.Len(t, h.bookings.saves, 1)
		assert.Equal(t, []notify.Kind{notify.KindApproval, notify.KindAdminConfirmed}, h.notifier.kinds())
	})

	t.Run("booking save failure aborts", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		h.bookings.saveErr = infra.WrapRepoErr(infra.KindDBFailure, "connection reset", nil)

		_, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token()})
		assert.True(t, errs.Is(err, commands.ErrStorageOperationFailed))
		assert.Empty(t, h.notifier.sent)
	})
}

// ================================================================================
// Deny
// ================================================================================

func TestDeny(t *testing.T) {
	ctx := context.Background()

	t.Run("pending request denies and notifies the visitor", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		reason := "fully booked that week"

		require.NoError(t, h.commands.Deny(ctx, reqdto.DenyRequest{Token: r.Token(), Reason: &reason}))

		assert.Equal(t, request.StatusDenied, r.Status())
		require.Len(t, h.notifier.sent, 1)
		n := h.notifier.sent[0]
		assert.Equal(t, notify.KindDenial, n.Type)
		assert.Equal(t, r.Email(), n.To)
		require.NotNil(t, n.Reason)
		assert.Equal(t, reason, *n.Reason)
	})

	t.Run("unknown token", func(t *testing.T) {
		h := newHarness()
		err := h.commands.Deny(ctx, reqdto.DenyRequest{Token: "nope"})
		assert.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("second decision is rejected", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		require.NoError(t, h.commands.Deny(ctx, reqdto.DenyRequest{Token: r.Token()}))
		h.notifier.sent = nil

		err := h.commands.Deny(ctx, reqdto.DenyRequest{Token: r.Token()})
		var terminal *request.TerminalStateError
		require.ErrorAs(t, err, &terminal)
		assert.Empty(t, h.notifier.sent, "no duplicate denial email")
	})

	t.Run("approved request cannot be denied", func(t *testing.T) {
		h := newHarness()
		r := h.submitted(t, builder.NewRequestBuilder())
		_, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token()})
		require.NoError(t, err)

		var terminal *request.TerminalStateError
		require.ErrorAs(t, h.commands.Deny(ctx, reqdto.DenyRequest{Token: r.Token()}), &terminal)
		assert.Equal(t, request.StatusApproved, terminal.Status)
	})
}

// ================================================================================
// Cancel
// ================================================================================

func TestCancel(t *testing.T) {
	ctx := context.Background()

	approve := func(t *testing.T, h *harness) string {
		t.Helper()
		r := h.submitted(t, builder.NewRequestBuilder())
		view, err := h.commands.Approve(ctx, reqdto.ApproveRequest{Token: r.Token()})
		require.NoError(t, err)
		h.notifier.sent = nil
		h.calendar.deleted = nil
		return view.CancellationToken
	}

	t.Run("approved booking cancels, deletes the event, notifies both sides", func(t *testing.T) {
		h := newHarness()
		cancelToken := approve(t, h)
		h.clock.Add(48 * time.Hour)

		require.NoError(t, h.commands.Cancel(ctx, cancelToken))

		last := h.bookings.saves[len(h.bookings.saves)-1]
		assert.True(t, last.booking.IsCancelled())
		assert.Equal(t, commands.CancelledRetention, last.ttl, "cancelled records collapse to the short retention")
		assert.Equal(t, []string{"evt-1"}, h.calendar.deleted)
		assert.Equal(t, []notify.Kind{notify.KindCancellation, notify.KindCancellationAdmin}, h.notifier.kinds())
	})

	t.Run("unknown token", func(t *testing.T) {
		h := newHarness()
		assert.ErrorIs(t, h.commands.Cancel(ctx, "nope"), commands.ErrBookingNotFound)
	})

	t.Run("double cancel is rejected without side effects", func(t *testing.T) {
		h := newHarness()
		cancelToken := approve(t, h)
		require.NoError(t, h.commands.Cancel(ctx, cancelToken))
		h.notifier.sent = nil
		h.calendar.deleted = nil

		err := h.commands.Cancel(ctx, cancelToken)
		assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
		assert.Empty(t, h.calendar.deleted)
		assert.Empty(t, h.notifier.sent)
	})

	t.Run("calendar delete failure does not block the cancellation", func(t *testing.T) {
		h := newHarness()
		cancelToken := approve(t, h)
		h.calendar.deleteErr = errors.New("calendar 500")

		require.NoError(t, h.commands.Cancel(ctx, cancelToken))
		assert.True(t, h.bookings.saves[len(h.bookings.saves)-1].booking.IsCancelled())
	})
}

// ================================================================================
// Capability URLs
// ================================================================================

func TestCapabilityURLs(t *testing.T) {
	h := newHarness()
	req := builder.NewRequestBuilder().BuildBookRequestDTO()

	_, err := h.commands.Submit(context.Background(), req)
	require.NoError(t, err)

	n := h.notifier.sent[0]
	assert.True(t, strings.HasPrefix(n.ReviewURL, "https://scheduler.test/"), n.ReviewURL)
}
