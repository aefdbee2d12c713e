package repository

import (
	"context"

	"tunitest/internal/domain/model"
)

type SliderRepository interface {
	//ordered by sort order, then newest first
	List(ctx context.Context) ([]model.Slider, error)
	FindByID(ctx context.Context, id string) (model.Slider, error)
	Create(ctx context.Context, s model.Slider) (model.Slider, error)
	Update(ctx context.Context, s model.Slider) error
	Delete(ctx context.Context, id string) error
}
