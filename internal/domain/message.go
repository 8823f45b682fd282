package domain

import "time"

type Message struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	ExpediteurID   int64     `json:"expediteur_id" gorm:"index:idx_messages_participants"`
	DestinataireID int64     `json:"destinataire_id" gorm:"index:idx_messages_participants"`
	Contenu        string    `json:"contenu" gorm:"type:text"`
	BookingID      *int64    `json:"booking_id,omitempty"`
	DateEnvoi      time.Time `json:"date_envoi" gorm:"autoCreateTime"`
	Lu             bool      `json:"lu" gorm:"default:false"`
}
