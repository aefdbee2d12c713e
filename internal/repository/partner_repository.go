package repository

import (
	"context"

	"tunitest/internal/domain/model"
)

type PartnerRepository interface {
	List(ctx context.Context) ([]model.Partner, error)
	Create(ctx context.Context, p model.Partner) (model.Partner, error)
	Delete(ctx context.Context, id string) error
}
