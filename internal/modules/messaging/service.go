package messaging

import (
	"context"

	"p2pshare/internal/domain"
	"p2pshare/internal/pkg/enrich"
)

type Service struct {
	messages MessageRepositoryInterface
	users    UserReader
}

func NewService(messages MessageRepositoryInterface, users UserReader) *Service {
	return &Service{messages: messages, users: users}
}

// SendMessage stores a directed message. Sending to oneself is allowed;
// only a missing recipient is rejected.
func (s *Service) SendMessage(ctx context.Context, senderID int64, req SendMessageRequest) (*domain.Message, error) {
	recipient, err := s.users.GetByID(ctx, req.DestinataireID)
	if err != nil || recipient == nil {
		return nil, ErrRecipientNotFound
	}

	m := &domain.Message{
		ExpediteurID:   senderID,
		DestinataireID: req.DestinataireID,
		Contenu:        req.Contenu,
		BookingID:      req.BookingID,
	}

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetConversations returns every message the user sent or received as one
// flat list, newest first. Messages are not grouped by counterpart.
func (s *Service) GetConversations(ctx context.Context, userID int64) ([]MessageResponse, error) {
	messages, err := s.messages.GetByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, MessageResponse{
			ID:             m.ID,
			ExpediteurID:   m.ExpediteurID,
			ExpediteurNom:  enrich.DisplayName(ctx, s.users, m.ExpediteurID),
			DestinataireID: m.DestinataireID,
			Contenu:        m.Contenu,
			BookingID:      m.BookingID,
			DateEnvoi:      m.DateEnvoi,
			Lu:             m.Lu,
		})
	}
	return out, nil
}
