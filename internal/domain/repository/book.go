package repository

import (
	"context"

	"github.com/bookline/bookline/internal/domain/model"
)

// BookRepository describes persistence operations for catalog entries.
type BookRepository interface {
	Create(ctx context.Context, isbn, title, author string) (*model.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	ListByAuthor(ctx context.Context, author string) ([]model.Book, error)
	UpdateTitle(ctx context.Context, isbn, title string) (*model.Book, error)
	DeleteByISBN(ctx context.Context, isbn string) error
}
