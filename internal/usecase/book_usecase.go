package usecase

import (
	"context"
	"net/http"
	"strings"

	"tunitest/internal/domain/model"
	repo "tunitest/internal/repository"

	"github.com/google/uuid"
)

// BookUsecase covers the public catalog and the admin book management.
type BookUsecase struct {
	bookRepo repo.BookRepository
}

// DI
func NewBookUsecase(bookRepo repo.BookRepository) *BookUsecase {
	return &BookUsecase{bookRepo: bookRepo}
}

// GET /books filters. Empty values mean "no filter".
type ListBooksInput struct {
	Category string
	Level    string
	Language string
	Q        string
}

func (u *BookUsecase) ListBooks(ctx context.Context, in ListBooksInput) ([]model.Book, error) {
	if !validCategory(in.Category, true) {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if !validLevel(in.Level, true) {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid level")
	}
	if !validLanguage(in.Language, true) {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid language")
	}
	if len(in.Q) > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	books, err := u.bookRepo.List(ctx, repo.BookListQuery{
		Category: model.Category(in.Category),
		Level:    model.Level(in.Level),
		Language: model.Language(in.Language),
		Q:        strings.TrimSpace(in.Q),
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return books, nil
}

func (u *BookUsecase) GetBook(ctx context.Context, id string) (model.Book, error) {
	if id == "" {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	b, err := u.bookRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "Livre non trouvé")
	}
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

type BookInput struct {
	Title             string            `json:"title"`
	Author            string            `json:"author"`
	Category          string            `json:"category"`
	Level             string            `json:"level"`
	Language          string            `json:"language"`
	Price             float64           `json:"price"`
	Image             string            `json:"image"`
	Images            []string          `json:"images"`
	Description       string            `json:"description"`
	Rating            float64           `json:"rating"`
	Reviews           int64             `json:"reviews"`
	Status            string            `json:"status"`
	Specifications    map[string]string `json:"specifications"`
	DescriptionImages []string          `json:"descriptionImages"`
}

func (u *BookUsecase) CreateBook(ctx context.Context, in BookInput) (model.Book, error) {
	if err := validateBookInput(in); err != nil {
		return model.Book{}, err
	}

	b := bookFromInput(in)
	b.ID = uuid.NewString()

	created, err := u.bookRepo.Create(ctx, b)
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *BookUsecase) UpdateBook(ctx context.Context, id string, in BookInput) (model.Book, error) {
	if id == "" {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateBookInput(in); err != nil {
		return model.Book{}, err
	}

	b := bookFromInput(in)
	b.ID = id

	err := u.bookRepo.Update(ctx, b)
	if err == repo.ErrNotFound {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "Livre non trouvé")
	}
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.GetBook(ctx, id)
}

func (u *BookUsecase) DeleteBook(ctx context.Context, id string) error {
	if id == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.bookRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Livre non trouvé")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateBookInput(in BookInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if strings.TrimSpace(in.Author) == "" {
		return NewHTTPError(http.StatusBadRequest, "author is required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be > 0")
	}
	if strings.TrimSpace(in.Description) == "" {
		return NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if len(in.Images) == 0 {
		return NewHTTPError(http.StatusBadRequest, "at least one image is required")
	}
	if !validCategory(in.Category, false) {
		return NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if !validLevel(in.Level, false) {
		return NewHTTPError(http.StatusBadRequest, "invalid level")
	}
	if !validLanguage(in.Language, false) {
		return NewHTTPError(http.StatusBadRequest, "invalid language")
	}
	switch model.BookStatus(in.Status) {
	case "", model.BookStatusInStock, model.BookStatusOutOfStock:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	return nil
}

func bookFromInput(in BookInput) model.Book {
	image := in.Image
	if image == "" {
		// primary image defaults to the first gallery image
		image = in.Images[0]
	}

	status := model.BookStatus(in.Status)
	if status == "" {
		status = model.BookStatusInStock
	}

	return model.Book{
		Title:             strings.TrimSpace(in.Title),
		Author:            strings.TrimSpace(in.Author),
		Category:          model.Category(in.Category),
		Level:             model.Level(in.Level),
		Language:          model.Language(in.Language),
		Price:             in.Price,
		Image:             image,
		Images:            in.Images,
		Description:       in.Description,
		Rating:            in.Rating,
		Reviews:           in.Reviews,
		Status:            status,
		Specifications:    in.Specifications,
		DescriptionImages: in.DescriptionImages,
	}
}

func validCategory(v string, allowEmpty bool) bool {
	if v == "" {
		return allowEmpty
	}
	switch model.Category(v) {
	case model.CategoryWriting, model.CategoryCours, model.CategoryDevoirs, model.CategoryHistoire:
		return true
	}
	return false
}

func validLevel(v string, allowEmpty bool) bool {
	if v == "" {
		return allowEmpty
	}
	switch model.Level(v) {
	case model.LevelCollege, model.LevelLycee, model.LevelPreparatoire:
		return true
	}
	return false
}

func validLanguage(v string, allowEmpty bool) bool {
	if v == "" {
		return allowEmpty
	}
	switch model.Language(v) {
	case model.LanguageArabic, model.LanguageFrench, model.LanguageEnglish:
		return true
	}
	return false
}
