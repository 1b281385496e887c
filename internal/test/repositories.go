package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/bookline/bookline/internal/domain/errors"
	"github.com/bookline/bookline/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless one with the email already exists.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string, isEmployee bool) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, IsEmployee: isEmployee, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrUserNotFound
}

// List returns all stored users.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.User, 0, len(s.ByID))
	for id := int64(1); id < s.Next; id++ {
		if user, ok := s.ByID[id]; ok {
			result = append(result, *user)
		}
	}
	return result, nil
}

// UpdateEmail rebinds the user to a new unique email.
func (s *UserRepositoryStub) UpdateEmail(ctx context.Context, id int64, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrUserNotFound
	}
	if existing, taken := s.Users[email]; taken && existing.ID != id {
		return nil, domainErrors.ErrAlreadyExists
	}
	delete(s.Users, user.Email)
	user.Email = email
	s.Users[email] = user
	return user, nil
}

// UpdatePasswordHash replaces the stored hash.
func (s *UserRepositoryStub) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// Delete removes the user.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrUserNotFound
	}
	delete(s.Users, user.Email)
	delete(s.ByID, id)
	return nil
}

// BookRepositoryStub stores catalog entries in-memory for tests.
type BookRepositoryStub struct {
	Books map[string]*model.Book
	ByID  map[int64]*model.Book
	Next  int64
	Err   error
}

// NewBookRepositoryStub constructs stub repository with initialized maps.
func NewBookRepositoryStub() *BookRepositoryStub {
	return &BookRepositoryStub{
		Books: make(map[string]*model.Book),
		ByID:  make(map[int64]*model.Book),
		Next:  1,
	}
}

// Create adds a catalog entry unless the ISBN is taken.
func (s *BookRepositoryStub) Create(ctx context.Context, isbn, title, author string) (*model.Book, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Books[isbn]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	book := &model.Book{ID: s.Next, ISBN: isbn, Title: title, Author: author, CreatedAt: time.Now()}
	s.Next++
	s.Books[isbn] = book
	s.ByID[book.ID] = book
	return book, nil
}

// GetByISBN fetches a catalog entry or returns not found.
func (s *BookRepositoryStub) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if book, ok := s.Books[isbn]; ok {
		return book, nil
	}
	return nil, domainErrors.ErrBookNotFound
}

// List returns all stored catalog entries.
func (s *BookRepositoryStub) List(ctx context.Context) ([]model.Book, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Book, 0, len(s.ByID))
	for id := int64(1); id < s.Next; id++ {
		if book, ok := s.ByID[id]; ok {
			result = append(result, *book)
		}
	}
	return result, nil
}

// ListByAuthor filters entries by exact author match.
func (s *BookRepositoryStub) ListByAuthor(ctx context.Context, author string) ([]model.Book, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Book
	for id := int64(1); id < s.Next; id++ {
		if book, ok := s.ByID[id]; ok && book.Author == author {
			result = append(result, *book)
		}
	}
	return result, nil
}

// UpdateTitle replaces a title or returns not found.
func (s *BookRepositoryStub) UpdateTitle(ctx context.Context, isbn, title string) (*model.Book, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	book, ok := s.Books[isbn]
	if !ok {
		return nil, domainErrors.ErrBookNotFound
	}
	book.Title = title
	return book, nil
}

// DeleteByISBN removes an entry or returns not found.
func (s *BookRepositoryStub) DeleteByISBN(ctx context.Context, isbn string) error {
	if s.Err != nil {
		return s.Err
	}
	book, ok := s.Books[isbn]
	if !ok {
		return domainErrors.ErrBookNotFound
	}
	delete(s.Books, isbn)
	delete(s.ByID, book.ID)
	return nil
}

// BookingRepositoryStub stores bookings in-memory for tests. Create applies
// the same per-book serialization contract as the real repository, so
// concurrent admission tests work against it.
type BookingRepositoryStub struct {
	mu    sync.Mutex
	Items []model.Booking
	Next  int64
	Err   error
}

// NewBookingRepositoryStub constructs the stub.
func NewBookingRepositoryStub() *BookingRepositoryStub {
	return &BookingRepositoryStub{Next: 1}
}

// Create admits a booking unless it overlaps an existing one for the book.
func (s *BookingRepositoryStub) Create(ctx context.Context, bookID, userID int64, interval model.Interval) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Items {
		if existing.BookID == bookID && existing.Interval.Overlaps(interval) {
			return nil, domainErrors.ErrBookingOverlap
		}
	}
	booking := model.Booking{
		ID:        s.Next,
		BookID:    bookID,
		UserID:    userID,
		Interval:  interval,
		Status:    model.BookingStatusActive,
		CreatedAt: time.Now(),
	}
	s.Next++
	s.Items = append(s.Items, booking)
	return &booking, nil
}

// List returns all stored bookings.
func (s *BookingRepositoryStub) List(ctx context.Context) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Booking(nil), s.Items...), nil
}

// ListByUser filters bookings by owner.
func (s *BookingRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Booking
	for _, b := range s.Items {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

// ListByBook filters bookings by catalog entry.
func (s *BookingRepositoryStub) ListByBook(ctx context.Context, bookID int64) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Booking
	for _, b := range s.Items {
		if b.BookID == bookID {
			result = append(result, b)
		}
	}
	return result, nil
}

// SelectBatchForCompletion returns elapsed active bookings.
func (s *BookingRepositoryStub) SelectBatchForCompletion(ctx context.Context, limit int) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	now := time.Now()
	var result []model.Booking
	for _, b := range s.Items {
		if len(result) == limit {
			break
		}
		if b.Status == model.BookingStatusActive && !b.Interval.To.After(now) {
			result = append(result, b)
		}
	}
	return result, nil
}

// Complete marks an active booking as completed.
func (s *BookingRepositoryStub) Complete(ctx context.Context, bookingID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == bookingID && s.Items[i].Status == model.BookingStatusActive {
			s.Items[i].Status = model.BookingStatusCompleted
			return nil
		}
	}
	return domainErrors.ErrBookingNotFound
}
