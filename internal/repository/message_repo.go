package repository

import (
	"context"

	"p2pshare/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByParticipant returns every message the user sent or received,
// newest first.
func (r *MessageRepository) GetByParticipant(ctx context.Context, userID int64) ([]domain.Message, error) {
	var messages []domain.Message
	tx := r.db.WithContext(ctx).
		Where("expediteur_id = ? OR destinataire_id = ?", userID, userID).
		Order("date_envoi DESC").
		Order("id DESC").
		Find(&messages)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return messages, nil
}
