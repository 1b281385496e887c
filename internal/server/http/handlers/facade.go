package handlers

import (
	"context"

	"github.com/bookline/bookline/internal/domain/model"
	"github.com/bookline/bookline/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string, isEmployee bool) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (string, error)
}

// UserFacade covers account management beyond login.
type UserFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	ChangeEmail(ctx context.Context, currentEmail, newEmail string) (*model.User, error)
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
	DeleteUser(ctx context.Context, email, password string) error
}

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	AddBook(ctx context.Context, input usecase.BookInput) (*model.Book, error)
	AddBooks(ctx context.Context, inputs []usecase.BookInput) ([]model.Book, error)
	Book(ctx context.Context, isbn string) (*model.Book, error)
	Books(ctx context.Context) ([]model.Book, error)
	BooksByAuthor(ctx context.Context, author string) ([]model.Book, error)
	RenameBook(ctx context.Context, isbn, title string) (*model.Book, error)
	RemoveBook(ctx context.Context, isbn string) error
}

// BookingFacade provides reservation operations.
type BookingFacade interface {
	AdmitBooking(ctx context.Context, isbn, email string, interval model.Interval) (*model.Booking, error)
	Bookings(ctx context.Context) ([]model.Booking, error)
	UserBookings(ctx context.Context, email string) ([]model.Booking, error)
	BookBookings(ctx context.Context, isbn string) ([]model.Booking, error)
}

// LibraryFacade aggregates the full set of operations used across handlers.
type LibraryFacade interface {
	AuthFacade
	UserFacade
	CatalogFacade
	BookingFacade
}
