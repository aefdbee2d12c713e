package repository

import (
	"context"

	"tunitest/internal/domain/model"
	repo "tunitest/internal/repository"

	"gorm.io/gorm"
)

type PartnerGormRepository struct {
	db *gorm.DB
}

// DI
func NewPartnerGormRepository(db *gorm.DB) *PartnerGormRepository {
	return &PartnerGormRepository{db: db}
}

func (r *PartnerGormRepository) List(ctx context.Context) ([]model.Partner, error) {
	var partners []model.Partner

	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&partners).Error; err != nil {
		return []model.Partner{}, err
	}
	return partners, nil
}

func (r *PartnerGormRepository) Create(ctx context.Context, p model.Partner) (model.Partner, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Partner{}, err
	}
	return p, nil
}

func (r *PartnerGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Partner{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
