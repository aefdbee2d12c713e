package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"tunitest/internal/domain/model"
	repo "tunitest/internal/repository"
	"tunitest/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type BookRepoMock struct{ mock.Mock }

func (m *BookRepoMock) List(ctx context.Context, q repo.BookListQuery) ([]model.Book, error) {
	args := m.Called(ctx, q)
	books, _ := args.Get(0).([]model.Book)
	return books, args.Error(1)
}

func (m *BookRepoMock) FindByID(ctx context.Context, id string) (model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Book)
	return b, args.Error(1)
}

func (m *BookRepoMock) Create(ctx context.Context, b model.Book) (model.Book, error) {
	args := m.Called(ctx, b)
	created, _ := args.Get(0).(model.Book)
	return created, args.Error(1)
}

func (m *BookRepoMock) Update(ctx context.Context, b model.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BookRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validBookInput() usecase.BookInput {
	return usecase.BookInput{
		Title:       "Grammaire",
		Author:      "Ben Salah",
		Category:    string(model.CategoryCours),
		Level:       string(model.LevelLycee),
		Language:    string(model.LanguageFrench),
		Price:       25,
		Images:      []string{"/img/1.jpg", "/img/2.jpg"},
		Description: "Manuel de grammaire",
	}
}

func TestBookUsecase_ListBooks_InvalidCategory(t *testing.T) {
	uc := usecase.NewBookUsecase(new(BookRepoMock))

	_, err := uc.ListBooks(context.Background(), usecase.ListBooksInput{Category: "poetry"})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestBookUsecase_ListBooks_EmptyFiltersAllowed(t *testing.T) {
	bRepo := new(BookRepoMock)
	uc := usecase.NewBookUsecase(bRepo)

	bRepo.On("List", mock.Anything, repo.BookListQuery{}).Return([]model.Book{{ID: "b1"}}, nil)

	books, err := uc.ListBooks(context.Background(), usecase.ListBooksInput{})
	assert.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestBookUsecase_GetBook_NotFound(t *testing.T) {
	bRepo := new(BookRepoMock)
	uc := usecase.NewBookUsecase(bRepo)

	bRepo.On("FindByID", mock.Anything, "nope").Return(model.Book{}, repo.ErrNotFound)

	_, err := uc.GetBook(context.Background(), "nope")
	assertStatus(t, err, http.StatusNotFound)
	he, _ := usecase.AsHTTPError(err)
	assert.Equal(t, "Livre non trouvé", he.Message)
}

func TestBookUsecase_CreateBook_Validation(t *testing.T) {
	uc := usecase.NewBookUsecase(new(BookRepoMock))

	cases := map[string]func(*usecase.BookInput){
		"no title":     func(in *usecase.BookInput) { in.Title = " " },
		"no author":    func(in *usecase.BookInput) { in.Author = "" },
		"zero price":   func(in *usecase.BookInput) { in.Price = 0 },
		"no images":    func(in *usecase.BookInput) { in.Images = nil },
		"bad category": func(in *usecase.BookInput) { in.Category = "poetry" },
		"bad level":    func(in *usecase.BookInput) { in.Level = "primaire" },
		"bad language": func(in *usecase.BookInput) { in.Language = "de" },
		"bad status":   func(in *usecase.BookInput) { in.Status = "Sold out" },
		"no desc":      func(in *usecase.BookInput) { in.Description = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validBookInput()
			mutate(&in)

			_, err := uc.CreateBook(context.Background(), in)
			assertStatus(t, err, http.StatusBadRequest)
		})
	}
}

func TestBookUsecase_CreateBook_Defaults(t *testing.T) {
	bRepo := new(BookRepoMock)
	uc := usecase.NewBookUsecase(bRepo)

	bRepo.On("Create", mock.Anything, mock.MatchedBy(func(b model.Book) bool {
		return b.Image == "/img/1.jpg" && b.Status == model.BookStatusInStock && b.ID != ""
	})).Return(model.Book{ID: "b1"}, nil)

	out, err := uc.CreateBook(context.Background(), validBookInput())
	assert.NoError(t, err)
	assert.Equal(t, "b1", out.ID)
	bRepo.AssertExpectations(t)
}

func TestBookUsecase_DeleteBook_NotFound(t *testing.T) {
	bRepo := new(BookRepoMock)
	uc := usecase.NewBookUsecase(bRepo)

	bRepo.On("Delete", mock.Anything, "nope").Return(repo.ErrNotFound)

	err := uc.DeleteBook(context.Background(), "nope")
	assertStatus(t, err, http.StatusNotFound)
}
