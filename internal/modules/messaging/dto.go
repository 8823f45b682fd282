package messaging

import "time"

type SendMessageRequest struct {
	DestinataireID int64  `json:"destinataire_id" binding:"required"`
	Contenu        string `json:"contenu" binding:"required"`
	BookingID      *int64 `json:"booking_id"`
}

type MessageResponse struct {
	ID             int64     `json:"id"`
	ExpediteurID   int64     `json:"expediteur_id"`
	ExpediteurNom  string    `json:"expediteur_nom"`
	DestinataireID int64     `json:"destinataire_id"`
	Contenu        string    `json:"contenu"`
	BookingID      *int64    `json:"booking_id,omitempty"`
	DateEnvoi      time.Time `json:"date_envoi"`
	Lu             bool      `json:"lu"`
}
