package commands

import (
	"context"
	"log/slog"
	"strings"
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
	"meet-scheduler/internal/pkg/token"
	"meet-scheduler/internal/usecase/notify"
	"meet-scheduler/internal/usecase/queries"
)

var (
	ErrMissingFields      = errs.New("missing required fields")
	ErrUnknownMeetingType = errs.New("invalid meeting type")
	ErrInvalidDate        = errs.New("invalid date format")
	ErrInvalidTime        = errs.New("invalid time format")
	ErrDateOutOfRange     = errs.New("selected date is not available for this meeting type")
	ErrOutsideDailyWindow = errs.New("selected time is outside of available hours")
	ErrBlackoutOverlap    = errs.New("selected time overlaps a blocked period")
	ErrSlotConflict       = errs.New("selected time conflicts with an existing booking")
	ErrBufferConflict     = errs.New("not enough buffer time around the requested slot")
	ErrMealAlreadyBooked  = errs.New("only one meal appointment is allowed per day")
	ErrRequestNotFound    = errs.New("request not found")
	ErrBookingNotFound    = errs.New("booking not found")

	ErrStorageOperationFailed = errs.New("storage operation failed")
)

// Retention TTLs per record class.
const (
	RequestRetention   = 7 * 24 * time.Hour
	BookingRetention   = 90 * 24 * time.Hour
	CancelledRetention = 30 * 24 * time.Hour
)

type SchedulingCommands interface {
	// Submit validates a visitor's ask against the catalog, policy and the
	// live calendar, persists it as pending, and notifies the admin.
	Submit(ctx context.Context, req reqdto.BookRequest) (string, error)
	// Approve confirms (or reschedules) a request identified by its admin
	// capability token and materializes the booking.
	Approve(ctx context.Context, req reqdto.ApproveRequest) (*queries.BookingView, error)
	Deny(ctx context.Context, req reqdto.DenyRequest) error
	Cancel(ctx context.Context, cancellationToken string) error
}

type schedulingCommandsImpl struct {
	catalog  *catalog.Catalog
	requests RequestRepository
	bookings BookingRepository
	calendar CalendarGateway
	notifier Notifier
	clock    clock.Clock

	baseURL    string
	adminZone  string
	adminEmail string
}

func NewSchedulingCommands(
	cat *catalog.Catalog,
	requests RequestRepository,
	bookings BookingRepository,
	cal CalendarGateway,
	notifier Notifier,
	clk clock.Clock,
	cfg config.Config,
) SchedulingCommands {
	return &schedulingCommandsImpl{
		catalog:    cat,
		requests:   requests,
		bookings:   bookings,
		calendar:   cal,
		notifier:   notifier,
		clock:      clk,
		baseURL:    strings.TrimRight(cfg.Scheduler.BaseURL, "/"),
		adminZone:  cfg.Scheduler.TimeZone,
		adminEmail: cfg.Calendar.CalendarID,
	}
}

func (s *schedulingCommandsImpl) Submit(ctx context.Context, req reqdto.BookRequest) (string, error) {
	if hasMissingFields(req) {
		return "", ErrMissingFields
	}

	mt, ok := s.catalog.Get(req.MeetingTypeID)
	if !ok {
		return "", ErrUnknownMeetingType
	}

	if _, err := schedule.ParseDate(req.Date); err != nil {
		return "", ErrInvalidDate
	}
	start, err := schedule.ParseClock(req.Time)
	if err != nil {
		return "", ErrInvalidTime
	}
	if !schedule.DateInRange(req.Date, mt.DateStart, mt.DateEnd) {
		return "", ErrDateOutOfRange
	}

	end := start + mt.DurationMinutes
	if err := s.checkWindowAndBlackouts(mt, start, end); err != nil {
		return "", err
	}

	// Re-fetched at the point of commit: a conflict that appeared after the
	// visitor loaded the grid is caught here.
	busy := s.calendar.BusyIntervals(ctx, req.Date)
	if schedule.ConflictsAny(start, end, busy) {
		return "", ErrSlotConflict
	}

	if mt.Category == catalog.CategoryMeal {
		if err := s.checkMealPolicy(ctx, mt, req.Date, start, end, busy); err != nil {
			return "", err
		}
	}

	tok, err := token.New()
	if err != nil {
		return "", errs.Wrap(err, "failed to generate request token")
	}

	r := request.New(request.NewRequestParams{
		Token:             tok,
		Name:              req.Name,
		Email:             req.Email,
		Company:           req.Company,
		Role:              req.Role,
		MeetingTypeID:     mt.ID,
		MeetingTypeTitle:  mt.Title,
		DurationMinutes:   mt.DurationMinutes,
		RequestedDate:     req.Date,
		RequestedTime:     req.Time,
		Timezone:          req.GetTimezone(s.adminZone),
		Location:          req.Location,
		DiscussionTopics:  req.DiscussionTopics,
		DiscussionDetails: req.DiscussionDetails,
	}, s.clock.Now())

	if err := s.requests.Save(ctx, r, RequestRetention); err != nil {
		return "", errs.Mark(err, ErrStorageOperationFailed)
	}

	s.dispatch(ctx, notify.Notification{
		Type:        notify.KindAdminNotification,
		To:          s.adminEmail,
		Name:        r.Name(),
		Email:       r.Email(),
		Company:     r.Company(),
		Role:        r.Role(),
		MeetingType: r.MeetingTypeTitle(),
		Duration:    r.DurationMinutes(),
		Date:        r.RequestedDate(),
		Time:        r.RequestedTime(),
		Timezone:    r.Timezone(),
		Location:    r.Location(),
		Topics:      catalog.TopicLabels(r.DiscussionTopics()),
		Details:     r.DiscussionDetails(),
		ReviewURL:   s.baseURL + "/admin/review?token=" + r.Token(),
	})

	return r.ID(), nil
}

func (s *schedulingCommandsImpl) Approve(ctx context.Context, req reqdto.ApproveRequest) (*queries.BookingView, error) {
	r, err := s.requests.FindByToken(ctx, req.Token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	// Denied is terminal. Approved falls through as the reschedule path.
	if r.Status() == request.StatusDenied {
		return nil, &request.TerminalStateError{Status: r.Status()}
	}

	if req.Location != nil {
		r.RelocateTo(*req.Location)
	}
	if req.HasReschedule() {
		if _, err := schedule.ParseDate(*req.NewDate); err != nil {
			return nil, ErrInvalidDate
		}
		if _, err := schedule.ParseClock(*req.NewTime); err != nil {
			return nil, ErrInvalidTime
		}
		r.Reschedule(*req.NewDate, *req.NewTime)
	}

	// Guard against the race between admin review latency and a third-party
	// calendar change; nothing has been persisted yet, so a conflict leaves
	// the request exactly as it was.
	if !req.ForceApprove {
		start, err := schedule.ParseClock(r.RequestedTime())
		if err != nil {
			return nil, ErrInvalidTime
		}
		busy := s.calendar.BusyIntervals(ctx, r.RequestedDate())
		if schedule.ConflictsAny(start, start+r.DurationMinutes(), busy) {
			return nil, ErrSlotConflict
		}
	}

	prior, err := s.bookings.FindByID(ctx, r.ID())
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStorageOperationFailed)
		}
		prior = nil
	}

	// A reschedule keeps the attendee's cancellation link working.
	cancelToken := ""
	if prior != nil {
		cancelToken = prior.CancellationToken()
	} else {
		cancelToken, err = token.New()
		if err != nil {
			return nil, errs.Wrap(err, "failed to generate cancellation token")
		}
	}

	now := s.clock.Now()
	if err := r.Approve(now); err != nil {
		return nil, err
	}
	b := booking.NewFromRequest(r, cancelToken, now)
	cancellationURL := s.baseURL + "/cancel?token=" + cancelToken

	if prior != nil && prior.CalendarEventID() != nil {
		if err := s.calendar.DeleteEvent(ctx, *prior.CalendarEventID()); err != nil {
			slog.Warn("failed to delete superseded calendar event",
				"booking_id", b.ID(), "event_id", *prior.CalendarEventID(), "error", err)
		}
	}

	// The calendar write is an enrichment: the booking is valid in storage
	// with or without a remote event.
	if ev, evErr := s.calendar.CreateEvent(ctx, EventSpec{
		Name:            b.Name(),
		Email:           b.Email(),
		Company:         b.Company(),
		Role:            b.Role(),
		MeetingTitle:    b.MeetingTypeTitle(),
		Date:            b.Date(),
		Time:            b.Time(),
		DurationMinutes: b.DurationMinutes(),
		Timezone:        b.Timezone(),
		Location:        b.Location(),
		Topics:          catalog.TopicLabels(b.DiscussionTopics()),
		Details:         b.DiscussionDetails(),
		CancellationURL: cancellationURL,
	}); evErr != nil {
		slog.Warn("failed to create calendar event", "booking_id", b.ID(), "error", evErr)
	} else if ev != nil {
		b.AttachCalendarEvent(ev.ID, ev.Link)
	}

	if err := s.bookings.Save(ctx, b, BookingRetention); err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}
	if err := s.requests.Save(ctx, r, RequestRetention); err != nil {
		return nil, errs.Mark(err, ErrStorageOperationFailed)
	}

	startAt, endAt := s.absoluteSpan(b)
	confirmation := notify.Notification{
		AppointmentID:     b.ID(),
		Name:              b.Name(),
		Email:             b.Email(),
		Company:           b.Company(),
		Role:              b.Role(),
		MeetingType:       b.MeetingTypeTitle(),
		Duration:          b.DurationMinutes(),
		StartTime:         startAt,
		EndTime:           endAt,
		Timezone:          b.Timezone(),
		Location:          b.Location(),
		Topics:            catalog.TopicLabels(b.DiscussionTopics()),
		Details:           b.DiscussionDetails(),
		CancellationURL:   cancellationURL,
		CalendarEventLink: b.CalendarEventLink(),
	}

	attendee := confirmation
	attendee.Type = notify.KindApproval
	attendee.To = b.Email()
	s.dispatch(ctx, attendee)

	admin := confirmation
	admin.Type = notify.KindAdminConfirmed
	admin.To = s.adminEmail
	s.dispatch(ctx, admin)

	return queries.FromBookingEntity(b), nil
}

func (s *schedulingCommandsImpl) Deny(ctx context.Context, req reqdto.DenyRequest) error {
	r, err := s.requests.FindByToken(ctx, req.Token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRequestNotFound
		}
		return errs.Mark(err, ErrStorageOperationFailed)
	}

	if err := r.Deny(req.Reason, s.clock.Now()); err != nil {
		return err
	}
	if err := s.requests.Save(ctx, r, RequestRetention); err != nil {
		return errs.Mark(err, ErrStorageOperationFailed)
	}

	s.dispatch(ctx, notify.Notification{
		Type:        notify.KindDenial,
		To:          r.Email(),
		Name:        r.Name(),
		MeetingType: r.MeetingTypeTitle(),
		Date:        r.RequestedDate(),
		Time:        r.RequestedTime(),
		Timezone:    r.Timezone(),
		Reason:      r.DenialReason(),
	})
	return nil
}

func (s *schedulingCommandsImpl) Cancel(ctx context.Context, cancellationToken string) error {
	b, err := s.bookings.FindByCancellationToken(ctx, cancellationToken)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrStorageOperationFailed)
	}

	if err := b.Cancel(s.clock.Now()); err != nil {
		return err
	}

	if b.CalendarEventID() != nil {
		if delErr := s.calendar.DeleteEvent(ctx, *b.CalendarEventID()); delErr != nil {
			slog.Warn("failed to delete calendar event on cancellation",
				"booking_id", b.ID(), "event_id", *b.CalendarEventID(), "error", delErr)
		}
	}

	// Cancelled bookings collapse to the short retention window.
	if err := s.bookings.Save(ctx, b, CancelledRetention); err != nil {
		return errs.Mark(err, ErrStorageOperationFailed)
	}

	base := notify.Notification{
		Name:        b.Name(),
		Email:       b.Email(),
		MeetingType: b.MeetingTypeTitle(),
		Date:        b.Date(),
		Time:        b.Time(),
		Timezone:    b.Timezone(),
	}

	attendee := base
	attendee.Type = notify.KindCancellation
	attendee.To = b.Email()
	s.dispatch(ctx, attendee)

	admin := base
	admin.Type = notify.KindCancellationAdmin
	admin.To = s.adminEmail
	s.dispatch(ctx, admin)

	return nil
}

func (s *schedulingCommandsImpl) checkWindowAndBlackouts(mt catalog.MeetingType, start, end int) error {
	dayStart := mt.DailyStartMinutes()
	dayEnd := mt.DailyEndMinutes()
	// The end bound tolerates one full duration past the nominal close;
	// last-call bookings may finish after the window.
	if start < dayStart || start > dayEnd || end > dayEnd+mt.DurationMinutes {
		return ErrOutsideDailyWindow
	}
	if schedule.ConflictsAny(start, end, s.catalog.Policy().BlackoutsFor(mt.Category)) {
		return ErrBlackoutOverlap
	}
	return nil
}

func (s *schedulingCommandsImpl) checkMealPolicy(
	ctx context.Context,
	mt catalog.MeetingType,
	date string,
	start, end int,
	busy []schedule.Interval,
) error {
	if schedule.ConflictsAny(start, end+s.catalog.Policy().BufferFor(mt.Category), busy) {
		return ErrBufferConflict
	}

	existing, err := s.bookings.ListApprovedOn(ctx, date)
	if err != nil {
		return errs.Mark(err, ErrStorageOperationFailed)
	}
	for _, eb := range existing {
		other, ok := s.catalog.Get(eb.MeetingTypeID())
		if ok && other.Category == catalog.CategoryMeal {
			return ErrMealAlreadyBooked
		}
	}
	return nil
}

// absoluteSpan resolves the booking's civil slot into RFC 3339 UTC instants
// using the booking's own timezone, falling back to the admin zone when the
// stored name does not resolve.
func (s *schedulingCommandsImpl) absoluteSpan(b *booking.Booking) (string, string) {
	loc, err := time.LoadLocation(b.Timezone())
	if err != nil {
		loc, err = time.LoadLocation(s.adminZone)
		if err != nil {
			loc = time.UTC
		}
	}
	startAt, err := schedule.UTCInstant(b.Date(), b.Time(), loc)
	if err != nil {
		return "", ""
	}
	endAt := startAt.Add(time.Duration(b.DurationMinutes()) * time.Minute)
	return startAt.UTC().Format(time.RFC3339), endAt.UTC().Format(time.RFC3339)
}

func (s *schedulingCommandsImpl) dispatch(ctx context.Context, n notify.Notification) {
	if err := s.notifier.Dispatch(ctx, n); err != nil {
		slog.Warn("failed to dispatch notification", "type", string(n.Type), "error", err)
	}
}

func hasMissingFields(req reqdto.BookRequest) bool {
	for _, field := range []string{
		req.Name, req.Email, req.Date, req.Time,
		req.MeetingTypeID, req.DiscussionDetails, req.Location,
	} {
		if strings.TrimSpace(field) == "" {
			return true
		}
	}
	return false
}
