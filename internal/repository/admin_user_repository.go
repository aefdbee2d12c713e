package repository

import (
	"context"
	"time"

	"tunitest/internal/domain/model"
)

type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (model.AdminUser, error)
	Create(ctx context.Context, u model.AdminUser) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
