package messaging

import (
	"context"

	"p2pshare/internal/domain"
)

type MessageRepositoryInterface interface {
	Create(ctx context.Context, m *domain.Message) error
	GetByParticipant(ctx context.Context, userID int64) ([]domain.Message, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
