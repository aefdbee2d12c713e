package repository

import (
	"context"
	"errors"

	"tunitest/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// Catalog list filters. Empty fields are ignored.
type BookListQuery struct {
	Category model.Category
	Level    model.Level
	Language model.Language
	Q        string
}

// Persistence contract for catalog entries.
type BookRepository interface {
	List(ctx context.Context, q BookListQuery) ([]model.Book, error)
	FindByID(ctx context.Context, id string) (model.Book, error)

	Create(ctx context.Context, b model.Book) (model.Book, error)
	Update(ctx context.Context, b model.Book) error
	Delete(ctx context.Context, id string) error
}
