package usecase

import (
	"context"

	domainErrors "github.com/bookline/bookline/internal/domain/errors"
	"github.com/bookline/bookline/internal/domain/model"
	"github.com/bookline/bookline/internal/domain/repository"
)

// BookingUseCase implements reservation admission and projections.
type BookingUseCase struct {
	bookings repository.BookingRepository
	books    repository.BookRepository
	users    repository.UserRepository
}

// NewBookingUseCase constructs BookingUseCase.
func NewBookingUseCase(bookings repository.BookingRepository, books repository.BookRepository, users repository.UserRepository) *BookingUseCase {
	return &BookingUseCase{bookings: bookings, books: books, users: users}
}

// Admit checks a reservation request against the overlap invariant and
// commits it. The interval must have positive length: zero-length requests
// are rejected, they could never overlap anything and would only clutter
// the store. The overlap check and the insert run atomically per book
// inside the repository.
func (u *BookingUseCase) Admit(ctx context.Context, isbn, email string, interval model.Interval) (*model.Booking, error) {
	if !interval.Valid() {
		return nil, domainErrors.ErrInvalidInterval
	}

	book, err := u.books.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u.bookings.Create(ctx, book.ID, usr.ID, interval)
}

// List returns all bookings in stable storage order.
func (u *BookingUseCase) List(ctx context.Context) ([]model.Booking, error) {
	return u.bookings.List(ctx)
}

// ListByUser returns bookings owned by the user identified by email.
func (u *BookingUseCase) ListByUser(ctx context.Context, email string) ([]model.Booking, error) {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return u.bookings.ListByUser(ctx, usr.ID)
}

// ListByBook returns bookings held against the book identified by ISBN.
func (u *BookingUseCase) ListByBook(ctx context.Context, isbn string) ([]model.Booking, error) {
	book, err := u.books.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	return u.bookings.ListByBook(ctx, book.ID)
}

// SelectBatchForCompletion returns elapsed active bookings for the sweeper.
func (u *BookingUseCase) SelectBatchForCompletion(ctx context.Context, limit int) ([]model.Booking, error) {
	return u.bookings.SelectBatchForCompletion(ctx, limit)
}

// Complete marks an elapsed booking as completed.
func (u *BookingUseCase) Complete(ctx context.Context, bookingID int64) error {
	return u.bookings.Complete(ctx, bookingID)
}
