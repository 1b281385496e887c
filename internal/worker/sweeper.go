package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bookline/bookline/internal/domain/model"
)

// LibraryFacade exposes the subset of application functionality required by the sweeper.
type LibraryFacade interface {
	BookingsForCompletion(ctx context.Context, limit int) ([]model.Booking, error)
	CompleteBooking(ctx context.Context, bookingID int64) error
}

// Sweeper periodically marks elapsed active bookings as completed using a
// pool of workers.
type Sweeper struct {
	facade       LibraryFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Booking
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSweeper constructs booking completion worker pool.
func NewSweeper(facade LibraryFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *Sweeper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Sweeper{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Booking, batchSize*workers),
	}
}

// Start launches background processing.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Sweeper) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx)
		}
	}
}

func (s *Sweeper) fetchAndDispatch(ctx context.Context) {
	bookings, err := s.facade.BookingsForCompletion(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("fetch bookings for completion failed", slog.String("error", err.Error()))
		return
	}
	for _, booking := range bookings {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- booking:
		}
	}
}

func (s *Sweeper) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case booking, ok := <-s.jobs:
			if !ok {
				return
			}
			s.handleBooking(ctx, booking)
		}
	}
}

func (s *Sweeper) handleBooking(ctx context.Context, booking model.Booking) {
	if err := s.facade.CompleteBooking(ctx, booking.ID); err != nil {
		s.logger.Error("complete booking failed",
			slog.Int64("booking_id", booking.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.Info("booking completed",
		slog.Int64("booking_id", booking.ID),
		slog.Int64("book_id", booking.BookID),
	)
}
