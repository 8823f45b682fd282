package catalog

import (
	"context"

	"p2pshare/internal/domain"
	"p2pshare/internal/repository"
)

type ItemRepositoryInterface interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Search(ctx context.Context, f repository.SearchFilter, skip, limit int) ([]domain.Item, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
