package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/bookline/bookline/internal/adapter/metadata"
	"github.com/bookline/bookline/internal/app"
	"github.com/bookline/bookline/internal/config"
	"github.com/bookline/bookline/internal/domain/repository"
	"github.com/bookline/bookline/internal/storage/postgres"
	"github.com/bookline/bookline/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		AuthSecret:      "secret",
		TokenTTL:        time.Minute,
		SweepInterval:   time.Millisecond,
		WorkerPoolSize:  1,
		SweepBatchSize:  1,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	bookRepo := test.NewBookRepositoryStub()
	bookingRepo := test.NewBookingRepositoryStub()

	var facade *app.LibraryFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.BookRepository(bookRepo)),
			fx.Replace(repository.BookingRepository(bookingRepo)),
			fx.Replace(metadata.Client(metadata.NopClient{})),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected library facade instance")
	}
}
