package repository

import (
	"context"
	"errors"

	"tunitest/internal/domain/model"
	repo "tunitest/internal/repository"

	"gorm.io/gorm"
)

type BookGormRepository struct {
	db *gorm.DB
}

// DI
func NewBookGormRepository(db *gorm.DB) *BookGormRepository {
	return &BookGormRepository{db: db}
}

// List applies the optional filters, newest first.
func (r *BookGormRepository) List(ctx context.Context, q repo.BookListQuery) ([]model.Book, error) {
	tx := r.db.WithContext(ctx).Model(&model.Book{})

	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Level != "" {
		tx = tx.Where("level = ?", q.Level)
	}
	if q.Language != "" {
		tx = tx.Where("language = ?", q.Language)
	}
	if q.Q != "" {
		like := "%" + q.Q + "%"
		tx = tx.Where("title ILIKE ? OR author ILIKE ?", like, like)
	}

	var books []model.Book
	if err := tx.Order("created_at desc").Find(&books).Error; err != nil {
		return []model.Book{}, err
	}
	return books, nil
}

func (r *BookGormRepository) FindByID(ctx context.Context, id string) (model.Book, error) {
	var b model.Book

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Book{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Book{}, err
	}
	return b, nil
}

func (r *BookGormRepository) Create(ctx context.Context, b model.Book) (model.Book, error) {
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		return model.Book{}, err
	}
	return b, nil
}

func (r *BookGormRepository) Update(ctx context.Context, b model.Book) error {
	res := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", b.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(b)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BookGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Book{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
