package domain

import "time"

type BookingStatus string

// Only BookingPending is produced today. The remaining statuses are the
// reserved transition targets (pending→confirmed, pending→refused,
// confirmed→completed) and must stay in the wire domain.
const (
	BookingPending   BookingStatus = "en_attente"
	BookingConfirmed BookingStatus = "confirmee"
	BookingRefused   BookingStatus = "refusee"
	BookingCompleted BookingStatus = "terminee"
)

type Booking struct {
	ID             int64         `json:"id" gorm:"primaryKey"`
	ItemID         int64         `json:"item_id" gorm:"index"`
	LocataireID    int64         `json:"locataire_id"`
	ProprietaireID int64         `json:"proprietaire_id"`
	DateDebut      time.Time     `json:"date_debut"`
	DateFin        time.Time     `json:"date_fin"`
	PrixTotal      float64       `json:"prix_total"`
	Statut         BookingStatus `json:"statut"`
	Message        string        `json:"message,omitempty" gorm:"type:text"`
	DateCreation   time.Time     `json:"date_creation" gorm:"autoCreateTime"`
}
