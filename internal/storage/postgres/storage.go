package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/bookline/bookline/internal/domain/errors"
	"github.com/bookline/bookline/internal/domain/model"
	"github.com/bookline/bookline/internal/domain/repository"
)

const uniqueViolationCode = "23505"

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests swap it
// for a mock implementation.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type bookRepository struct {
	storage *Storage
}

type bookingRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Books() repository.BookRepository {
	return &bookRepository{storage: s}
}

func (s *Storage) Bookings() repository.BookingRepository {
	return &bookingRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            is_employee BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS books (
            id SERIAL PRIMARY KEY,
            isbn TEXT UNIQUE NOT NULL,
            title TEXT NOT NULL DEFAULT '',
            author TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS bookings (
            id SERIAL PRIMARY KEY,
            book_id BIGINT NOT NULL REFERENCES books(id) ON DELETE CASCADE,
            user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            from_ts TIMESTAMPTZ NOT NULL,
            to_ts TIMESTAMPTZ NOT NULL,
            status TEXT NOT NULL DEFAULT 'ACTIVE',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            CHECK (from_ts < to_ts)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_book ON bookings(book_id, from_ts)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(user_id, from_ts)`,
		`CREATE INDEX IF NOT EXISTS idx_books_author ON books(author)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string, isEmployee bool) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, is_employee) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, isEmployee).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.IsEmployee = isEmployee
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, is_employee, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsEmployee, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, is_employee, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsEmployee, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, email, password_hash, is_employee, created_at FROM users ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsEmployee, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) UpdateEmail(ctx context.Context, id int64, email string) (*model.User, error) {
	const query = `UPDATE users SET email=$1 WHERE id=$2 RETURNING id, email, password_hash, is_employee, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsEmployee, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

// --- BookRepository implementation ---

func (r *bookRepository) Create(ctx context.Context, isbn, title, author string) (*model.Book, error) {
	const query = `INSERT INTO books (isbn, title, author) VALUES ($1, $2, $3) RETURNING id, created_at`
	var b model.Book
	err := r.storage.pool.QueryRow(ctx, query, isbn, title, author).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	b.ISBN = isbn
	b.Title = title
	b.Author = author
	return &b, nil
}

func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	const query = `SELECT id, isbn, title, author, created_at FROM books WHERE isbn=$1`
	var b model.Book
	err := r.storage.pool.QueryRow(ctx, query, isbn).Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]model.Book, error) {
	const query = `SELECT id, isbn, title, author, created_at FROM books ORDER BY id`
	return r.queryBooks(ctx, query)
}

func (r *bookRepository) ListByAuthor(ctx context.Context, author string) ([]model.Book, error) {
	const query = `SELECT id, isbn, title, author, created_at FROM books WHERE author=$1 ORDER BY id`
	return r.queryBooks(ctx, query, author)
}

func (r *bookRepository) queryBooks(ctx context.Context, query string, args ...any) ([]model.Book, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *bookRepository) UpdateTitle(ctx context.Context, isbn, title string) (*model.Book, error) {
	const query = `UPDATE books SET title=$1 WHERE isbn=$2 RETURNING id, isbn, title, author, created_at`
	var b model.Book
	err := r.storage.pool.QueryRow(ctx, query, title, isbn).Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) DeleteByISBN(ctx context.Context, isbn string) error {
	const query = `DELETE FROM books WHERE isbn=$1`
	tag, err := r.storage.pool.Exec(ctx, query, isbn)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrBookNotFound
	}
	return nil
}

// --- BookingRepository implementation ---

// Create admits a booking. The book row is locked for the duration of the
// transaction, which serializes the overlap check and the insert against
// concurrent admissions for the same book, including ones from other
// service instances sharing the database.
func (r *bookingRepository) Create(ctx context.Context, bookID, userID int64, interval model.Interval) (*model.Booking, error) {
	booking := model.Booking{
		BookID:   bookID,
		UserID:   userID,
		Interval: interval,
		Status:   model.BookingStatusActive,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT id FROM books WHERE id=$1 FOR UPDATE`
		var lockedID int64
		if err := tx.QueryRow(ctx, lockQuery, bookID).Scan(&lockedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrBookNotFound
			}
			return err
		}

		// Half-open interval overlap: [f1,t1) and [f2,t2) collide iff
		// f1 < t2 AND f2 < t1.
		const overlapQuery = `SELECT EXISTS (
            SELECT 1 FROM bookings WHERE book_id=$1 AND from_ts < $3 AND to_ts > $2
        )`
		var overlaps bool
		if err := tx.QueryRow(ctx, overlapQuery, bookID, interval.From, interval.To).Scan(&overlaps); err != nil {
			return err
		}
		if overlaps {
			return domainErrors.ErrBookingOverlap
		}

		const insertQuery = `INSERT INTO bookings (book_id, user_id, from_ts, to_ts, status)
                             VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
		return tx.QueryRow(ctx, insertQuery, bookID, userID, interval.From, interval.To, booking.Status).
			Scan(&booking.ID, &booking.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	const query = `SELECT id, book_id, user_id, from_ts, to_ts, status, created_at FROM bookings ORDER BY id`
	return r.queryBookings(ctx, query)
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	const query = `SELECT id, book_id, user_id, from_ts, to_ts, status, created_at
                   FROM bookings WHERE user_id=$1 ORDER BY id`
	return r.queryBookings(ctx, query, userID)
}

func (r *bookingRepository) ListByBook(ctx context.Context, bookID int64) ([]model.Booking, error) {
	const query = `SELECT id, book_id, user_id, from_ts, to_ts, status, created_at
                   FROM bookings WHERE book_id=$1 ORDER BY id`
	return r.queryBookings(ctx, query, bookID)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]model.Booking, error) {
	var result []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.BookID, &b.UserID, &b.Interval.From, &b.Interval.To, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *bookingRepository) SelectBatchForCompletion(ctx context.Context, limit int) ([]model.Booking, error) {
	const query = `SELECT id, book_id, user_id, from_ts, to_ts, status, created_at
                   FROM bookings
                   WHERE status=$1 AND to_ts <= NOW()
                   ORDER BY to_ts
                   LIMIT $2
                   FOR UPDATE SKIP LOCKED`

	var bookings []model.Booking
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, model.BookingStatusActive, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		bookings, err = scanBookings(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Complete(ctx context.Context, bookingID int64) error {
	const query = `UPDATE bookings SET status=$1 WHERE id=$2 AND status=$3`
	tag, err := r.storage.pool.Exec(ctx, query, model.BookingStatusCompleted, bookingID, model.BookingStatusActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrBookingNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
