package repository

import (
	"context"
	"errors"

	"tunitest/internal/domain/model"
	repo "tunitest/internal/repository"

	"gorm.io/gorm"
)

type SliderGormRepository struct {
	db *gorm.DB
}

// DI
func NewSliderGormRepository(db *gorm.DB) *SliderGormRepository {
	return &SliderGormRepository{db: db}
}

func (r *SliderGormRepository) List(ctx context.Context) ([]model.Slider, error) {
	var sliders []model.Slider

	if err := r.db.WithContext(ctx).
		Order("sort_order asc, created_at desc").
		Find(&sliders).Error; err != nil {
		return []model.Slider{}, err
	}
	return sliders, nil
}

func (r *SliderGormRepository) FindByID(ctx context.Context, id string) (model.Slider, error) {
	var s model.Slider

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Slider{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Slider{}, err
	}
	return s, nil
}

func (r *SliderGormRepository) Create(ctx context.Context, s model.Slider) (model.Slider, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Slider{}, err
	}
	return s, nil
}

func (r *SliderGormRepository) Update(ctx context.Context, s model.Slider) error {
	res := r.db.WithContext(ctx).
		Model(&model.Slider{}).
		Where("id = ?", s.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(s)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SliderGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Slider{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
