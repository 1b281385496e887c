package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bookline/bookline/internal/domain/model"
	"github.com/bookline/bookline/internal/domain/repository"
)

// MetadataProvider looks up catalog metadata for an ISBN.
type MetadataProvider interface {
	Lookup(ctx context.Context, isbn string) (*model.BookInfo, error)
}

// BookInput carries the fields needed to create a catalog entry.
type BookInput struct {
	ISBN   string
	Title  string
	Author string
}

// CatalogUseCase manages the book catalog.
type CatalogUseCase struct {
	books    repository.BookRepository
	metadata MetadataProvider
	logger   *slog.Logger
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(books repository.BookRepository, metadata MetadataProvider, logger *slog.Logger) *CatalogUseCase {
	return &CatalogUseCase{books: books, metadata: metadata, logger: logger}
}

// Add creates a catalog entry. When the title is missing the metadata
// provider is consulted best effort; a failed lookup never fails the add.
func (u *CatalogUseCase) Add(ctx context.Context, input BookInput) (*model.Book, error) {
	input.ISBN = strings.TrimSpace(input.ISBN)

	if input.Title == "" && u.metadata != nil {
		if info, err := u.metadata.Lookup(ctx, input.ISBN); err == nil {
			input.Title = info.Title
			if input.Author == "" {
				input.Author = info.Author
			}
		} else {
			u.logger.Info("metadata lookup failed",
				slog.String("isbn", input.ISBN),
				slog.String("error", err.Error()),
			)
		}
	}

	return u.books.Create(ctx, input.ISBN, input.Title, input.Author)
}

// AddBatch creates several catalog entries, stopping at the first failure.
func (u *CatalogUseCase) AddBatch(ctx context.Context, inputs []BookInput) ([]model.Book, error) {
	created := make([]model.Book, 0, len(inputs))
	for _, input := range inputs {
		book, err := u.Add(ctx, input)
		if err != nil {
			return created, err
		}
		created = append(created, *book)
	}
	return created, nil
}

// GetByISBN fetches a catalog entry by its ISBN.
func (u *CatalogUseCase) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	return u.books.GetByISBN(ctx, isbn)
}

// List returns the whole catalog.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Book, error) {
	return u.books.List(ctx)
}

// ListByAuthor returns catalog entries matching the author exactly.
func (u *CatalogUseCase) ListByAuthor(ctx context.Context, author string) ([]model.Book, error) {
	return u.books.ListByAuthor(ctx, author)
}

// UpdateTitle replaces the title of the entry identified by ISBN.
func (u *CatalogUseCase) UpdateTitle(ctx context.Context, isbn, title string) (*model.Book, error) {
	return u.books.UpdateTitle(ctx, isbn, title)
}

// DeleteByISBN removes the entry identified by ISBN.
func (u *CatalogUseCase) DeleteByISBN(ctx context.Context, isbn string) error {
	return u.books.DeleteByISBN(ctx, isbn)
}
