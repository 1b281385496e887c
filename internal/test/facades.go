package test

import (
	"context"

	"github.com/bookline/bookline/internal/domain/model"
	"github.com/bookline/bookline/internal/usecase"
)

// UserFacadeStub simulates account management interactions.
type UserFacadeStub struct {
	UsersFn          func(context.Context) ([]model.User, error)
	UserByEmailFn    func(context.Context, string) (*model.User, error)
	ChangeEmailFn    func(context.Context, string, string) (*model.User, error)
	ChangePasswordFn func(context.Context, string, string, string) error
	DeleteUserFn     func(context.Context, string, string) error
}

func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return nil, nil
}

func (s UserFacadeStub) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.UserByEmailFn != nil {
		return s.UserByEmailFn(ctx, email)
	}
	return &model.User{ID: 1, Email: email}, nil
}

func (s UserFacadeStub) ChangeEmail(ctx context.Context, currentEmail, newEmail string) (*model.User, error) {
	if s.ChangeEmailFn != nil {
		return s.ChangeEmailFn(ctx, currentEmail, newEmail)
	}
	return &model.User{ID: 1, Email: newEmail}, nil
}

func (s UserFacadeStub) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if s.ChangePasswordFn != nil {
		return s.ChangePasswordFn(ctx, email, oldPassword, newPassword)
	}
	return nil
}

func (s UserFacadeStub) DeleteUser(ctx context.Context, email, password string) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, email, password)
	}
	return nil
}

// CatalogFacadeStub simulates catalog interactions.
type CatalogFacadeStub struct {
	AddBookFn       func(context.Context, usecase.BookInput) (*model.Book, error)
	AddBooksFn      func(context.Context, []usecase.BookInput) ([]model.Book, error)
	BookFn          func(context.Context, string) (*model.Book, error)
	BooksFn         func(context.Context) ([]model.Book, error)
	BooksByAuthorFn func(context.Context, string) ([]model.Book, error)
	RenameBookFn    func(context.Context, string, string) (*model.Book, error)
	RemoveBookFn    func(context.Context, string) error
}

func (s CatalogFacadeStub) AddBook(ctx context.Context, input usecase.BookInput) (*model.Book, error) {
	if s.AddBookFn != nil {
		return s.AddBookFn(ctx, input)
	}
	return &model.Book{ID: 1, ISBN: input.ISBN, Title: input.Title, Author: input.Author}, nil
}

func (s CatalogFacadeStub) AddBooks(ctx context.Context, inputs []usecase.BookInput) ([]model.Book, error) {
	if s.AddBooksFn != nil {
		return s.AddBooksFn(ctx, inputs)
	}
	books := make([]model.Book, 0, len(inputs))
	for i, input := range inputs {
		books = append(books, model.Book{ID: int64(i + 1), ISBN: input.ISBN, Title: input.Title, Author: input.Author})
	}
	return books, nil
}

func (s CatalogFacadeStub) Book(ctx context.Context, isbn string) (*model.Book, error) {
	if s.BookFn != nil {
		return s.BookFn(ctx, isbn)
	}
	return &model.Book{ID: 1, ISBN: isbn}, nil
}

func (s CatalogFacadeStub) Books(ctx context.Context) ([]model.Book, error) {
	if s.BooksFn != nil {
		return s.BooksFn(ctx)
	}
	return nil, nil
}

func (s CatalogFacadeStub) BooksByAuthor(ctx context.Context, author string) ([]model.Book, error) {
	if s.BooksByAuthorFn != nil {
		return s.BooksByAuthorFn(ctx, author)
	}
	return nil, nil
}

func (s CatalogFacadeStub) RenameBook(ctx context.Context, isbn, title string) (*model.Book, error) {
	if s.RenameBookFn != nil {
		return s.RenameBookFn(ctx, isbn, title)
	}
	return &model.Book{ID: 1, ISBN: isbn, Title: title}, nil
}

func (s CatalogFacadeStub) RemoveBook(ctx context.Context, isbn string) error {
	if s.RemoveBookFn != nil {
		return s.RemoveBookFn(ctx, isbn)
	}
	return nil
}

// BookingFacadeStub simulates reservation interactions.
type BookingFacadeStub struct {
	AdmitFn        func(context.Context, string, string, model.Interval) (*model.Booking, error)
	BookingsFn     func(context.Context) ([]model.Booking, error)
	UserBookingsFn func(context.Context, string) ([]model.Booking, error)
	BookBookingsFn func(context.Context, string) ([]model.Booking, error)
}

func (s BookingFacadeStub) AdmitBooking(ctx context.Context, isbn, email string, interval model.Interval) (*model.Booking, error) {
	if s.AdmitFn != nil {
		return s.AdmitFn(ctx, isbn, email, interval)
	}
	return &model.Booking{ID: 1, BookID: 1, UserID: 1, Interval: interval, Status: model.BookingStatusActive}, nil
}

func (s BookingFacadeStub) Bookings(ctx context.Context) ([]model.Booking, error) {
	if s.BookingsFn != nil {
		return s.BookingsFn(ctx)
	}
	return nil, nil
}

func (s BookingFacadeStub) UserBookings(ctx context.Context, email string) ([]model.Booking, error) {
	if s.UserBookingsFn != nil {
		return s.UserBookingsFn(ctx, email)
	}
	return nil, nil
}

func (s BookingFacadeStub) BookBookings(ctx context.Context, isbn string) ([]model.Booking, error) {
	if s.BookBookingsFn != nil {
		return s.BookBookingsFn(ctx, isbn)
	}
	return nil, nil
}

// LibraryFacadeStub aggregates facade dependencies for HTTP layer tests.
type LibraryFacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
	CatalogFacadeStub
	BookingFacadeStub
}

// SweeperFacadeStub simulates the application surface used by the sweeper.
type SweeperFacadeStub struct {
	BookingsForCompletionFn func(context.Context, int) ([]model.Booking, error)
	CompleteBookingFn       func(context.Context, int64) error
}

func (s SweeperFacadeStub) BookingsForCompletion(ctx context.Context, limit int) ([]model.Booking, error) {
	if s.BookingsForCompletionFn != nil {
		return s.BookingsForCompletionFn(ctx, limit)
	}
	return nil, nil
}

func (s SweeperFacadeStub) CompleteBooking(ctx context.Context, bookingID int64) error {
	if s.CompleteBookingFn != nil {
		return s.CompleteBookingFn(ctx, bookingID)
	}
	return nil
}
