package repository

import (
	"context"

	"tunitest/internal/domain/model"
)

type OrderRepository interface {
	//newest first
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (model.Order, error)
	Create(ctx context.Context, o model.Order) (model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	Delete(ctx context.Context, id string) error
}
