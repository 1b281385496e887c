package repository

import (
	"context"

	"github.com/bookline/bookline/internal/domain/model"
)

// BookingRepository describes persistence operations for bookings.
//
// Create performs the admission check and the insert as one atomic unit:
// implementations must serialize concurrent calls for the same book so that
// the overlap invariant holds under concurrency.
type BookingRepository interface {
	Create(ctx context.Context, bookID, userID int64, interval model.Interval) (*model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Booking, error)
	ListByBook(ctx context.Context, bookID int64) ([]model.Booking, error)
	SelectBatchForCompletion(ctx context.Context, limit int) ([]model.Booking, error)
	Complete(ctx context.Context, bookingID int64) error
}
