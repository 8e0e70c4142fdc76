package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"meet-scheduler/internal/domain/booking"
	"meet-scheduler/internal/infra"
	"meet-scheduler/internal/infra/kv"
)

type BookingRepository struct {
	store kv.Store
}

func NewBookingRepository(store kv.Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking, ttl time.Duration) error {
	data, err := json.Marshal(bookingToRecord(b))
	if err != nil {
		return infra.WrapRepoErr(infra.KindCorrupt, "failed to encode booking record", err)
	}
	if err := r.store.Put(ctx, bookingKeyPrefix+b.ID(), data, ttl); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to store booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	data, err := r.store.Get(ctx, bookingKeyPrefix+id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get booking", err)
	}
	var rec bookingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, infra.WrapRepoErr(infra.KindCorrupt, "failed to decode booking record", err)
	}
	return recordToBooking(rec), nil
}

// FindByCancellationToken scans the live booking set for the attendee's
// cancellation capability.
func (r *BookingRepository) FindByCancellationToken(ctx context.Context, token string) (*booking.Booking, error) {
	entries, err := r.store.ListByPrefix(ctx, bookingKeyPrefix)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	for _, e := range entries {
		var rec bookingRecord
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			return nil, infra.WrapRepoErr(infra.KindCorrupt, "failed to decode booking record "+e.Key, err)
		}
		if rec.CancellationToken == token {
			return recordToBooking(rec), nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "no booking matches cancellation token", nil)
}

func (r *BookingRepository) ListApprovedOn(ctx context.Context, date string) ([]*booking.Booking, error) {
	entries, err := r.store.ListByPrefix(ctx, bookingKeyPrefix)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	var out []*booking.Booking
	for _, e := range entries {
		var rec bookingRecord
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			return nil, infra.WrapRepoErr(infra.KindCorrupt, "failed to decode booking record "+e.Key, err)
		}
		if rec.Date == date && rec.Status == string(booking.StatusApproved) {
			out = append(out, recordToBooking(rec))
		}
	}
	return out, nil
}

func bookingToRecord(b *booking.Booking) bookingRecord {
	var location *string
	if b.Location() != "" {
		location = strPtr(b.Location())
	}
	return bookingRecord{
		SchemaVersion:     recordSchemaVersion,
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
		Location:          location,
		DiscussionTopics:  b.DiscussionTopics(),
		DiscussionDetails: b.DiscussionDetails(),
		Status:            string(b.Status()),
		ApprovedAt:        b.ApprovedAt(),
		CancelledAt:       b.CancelledAt(),
		CalendarEventID:   b.CalendarEventID(),
		CalendarEventLink: b.CalendarEventLink(),
	}
}

func recordToBooking(rec bookingRecord) *booking.Booking {
	topics := rec.DiscussionTopics
	if topics == nil {
		topics = []string{}
	}
	return booking.Reconstruct(booking.ReconstructParams{
		ID:                rec.ID,
		CancellationToken: rec.CancellationToken,
		Name:              rec.Name,
		Email:             rec.Email,
		Company:           rec.Company,
		Role:              rec.Role,
		MeetingTypeID:     rec.MeetingTypeID,
		MeetingTypeTitle:  rec.MeetingTypeTitle,
		DurationMinutes:   rec.DurationMinutes,
		Date:              rec.Date,
		Time:              rec.Time,
		Timezone:          rec.Timezone,
		Location:          derefOr(rec.Location, ""),
		DiscussionTopics:  topics,
		DiscussionDetails: rec.DiscussionDetails,
		Status:            booking.Status(rec.Status),
		ApprovedAt:        rec.ApprovedAt,
		CancelledAt:       rec.CancelledAt,
		CalendarEventID:   rec.CalendarEventID,
		CalendarEventLink: rec.CalendarEventLink,
	})
}
