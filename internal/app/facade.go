package app

import (
	"context"

	"github.com/bookline/bookline/internal/domain/model"
	"github.com/bookline/bookline/internal/usecase"
)

// LibraryFacade aggregates the use cases behind a single application surface
// consumed by the HTTP layer and the sweeper.
type LibraryFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	bookings *usecase.BookingUseCase
}

// NewLibraryFacade constructs LibraryFacade.
func NewLibraryFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, bookings *usecase.BookingUseCase) *LibraryFacade {
	return &LibraryFacade{auth: auth, catalog: catalog, bookings: bookings}
}

func (f *LibraryFacade) Register(ctx context.Context, email, password string, isEmployee bool) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password, isEmployee)
	return token, err
}

func (f *LibraryFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *LibraryFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *LibraryFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.auth.ListUsers(ctx)
}

func (f *LibraryFacade) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.auth.GetByEmail(ctx, email)
}

func (f *LibraryFacade) ChangeEmail(ctx context.Context, currentEmail, newEmail string) (*model.User, error) {
	return f.auth.ChangeEmail(ctx, currentEmail, newEmail)
}

func (f *LibraryFacade) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	return f.auth.ChangePassword(ctx, email, oldPassword, newPassword)
}

func (f *LibraryFacade) DeleteUser(ctx context.Context, email, password string) error {
	return f.auth.Delete(ctx, email, password)
}

func (f *LibraryFacade) AddBook(ctx context.Context, input usecase.BookInput) (*model.Book, error) {
	return f.catalog.Add(ctx, input)
}

func (f *LibraryFacade) AddBooks(ctx context.Context, inputs []usecase.BookInput) ([]model.Book, error) {
	return f.catalog.AddBatch(ctx, inputs)
}

func (f *LibraryFacade) Book(ctx context.Context, isbn string) (*model.Book, error) {
	return f.catalog.GetByISBN(ctx, isbn)
}

func (f *LibraryFacade) Books(ctx context.Context) ([]model.Book, error) {
	return f.catalog.List(ctx)
}

func (f *LibraryFacade) BooksByAuthor(ctx context.Context, author string) ([]model.Book, error) {
	return f.catalog.ListByAuthor(ctx, author)
}

func (f *LibraryFacade) RenameBook(ctx context.Context, isbn, title string) (*model.Book, error) {
	return f.catalog.UpdateTitle(ctx, isbn, title)
}

func (f *LibraryFacade) RemoveBook(ctx context.Context, isbn string) error {
	return f.catalog.DeleteByISBN(ctx, isbn)
}

func (f *LibraryFacade) AdmitBooking(ctx context.Context, isbn, email string, interval model.Interval) (*model.Booking, error) {
	return f.bookings.Admit(ctx, isbn, email, interval)
}

func (f *LibraryFacade) Bookings(ctx context.Context) ([]model.Booking, error) {
	return f.bookings.List(ctx)
}

func (f *LibraryFacade) UserBookings(ctx context.Context, email string) ([]model.Booking, error) {
	return f.bookings.ListByUser(ctx, email)
}

func (f *LibraryFacade) BookBookings(ctx context.Context, isbn string) ([]model.Booking, error) {
	return f.bookings.ListByBook(ctx, isbn)
}

func (f *LibraryFacade) BookingsForCompletion(ctx context.Context, limit int) ([]model.Booking, error) {
	return f.bookings.SelectBatchForCompletion(ctx, limit)
}

func (f *LibraryFacade) CompleteBooking(ctx context.Context, bookingID int64) error {
	return f.bookings.Complete(ctx, bookingID)
}
