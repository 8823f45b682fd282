package booking

import (
	"context"

	"p2pshare/internal/domain"
)

type BookingRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByRenter(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type ItemReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
