package queries

import (
	"context"

	"meet-scheduler/internal/domain/booking"
	"meet-scheduler/internal/domain/request"
	"meet-scheduler/internal/infra"
	"meet-scheduler/internal/pkg/errs"
)

var (
	ErrRequestNotFound = errs.New("request not found")
	ErrBookingNotFound = errs.New("booking not found")
	// Cancelled bookings are hidden from the self-service surface.
	ErrBookingCancelled = errs.New("booking already cancelled")
)

// Read-side lookups for the capability-URL surfaces. Token matching is a
// linear scan over the bounded stored set; at this volume no secondary index
// is warranted.
type RequestReader interface {
	FindByToken(ctx context.Context, token string) (*request.Request, error)
}

type BookingReader interface {
	FindByCancellationToken(ctx context.Context, token string) (*booking.Booking, error)
}

type SchedulingQueries interface {
	RequestByToken(ctx context.Context, token string) (*RequestView, error)
	BookingByCancellationToken(ctx context.Context, token string) (*BookingView, error)
}

type schedulingQueriesImpl struct {
	requests RequestReader
	bookings BookingReader
}

func NewSchedulingQueries(requests RequestReader, bookings BookingReader) SchedulingQueries {
	return &schedulingQueriesImpl{
		requests: requests,
		bookings: bookings,
	}
}

func (q *schedulingQueriesImpl) RequestByToken(ctx context.Context, token string) (*RequestView, error) {
	r, err := q.requests.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Wrap(err, "failed to find request by token")
	}
	return FromRequestEntity(r), nil
}

func (q *schedulingQueriesImpl) BookingByCancellationToken(ctx context.Context, token string) (*BookingView, error) {
	b, err := q.bookings.FindByCancellationToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking by cancellation token")
	}
	if b.IsCancelled() {
		return nil, ErrBookingCancelled
	}
	return FromBookingEntity(b), nil
}
