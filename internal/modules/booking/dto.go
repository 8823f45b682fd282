package booking

import "time"

type CreateBookingRequest struct {
	ItemID    int64     `json:"item_id" binding:"required"`
	DateDebut time.Time `json:"date_debut" binding:"required"`
	DateFin   time.Time `json:"date_fin" binding:"required"`
	Message   string    `json:"message"`
}

type BookingResponse struct {
	ID             int64     `json:"id"`
	ItemID         int64     `json:"item_id"`
	ItemTitre      string    `json:"item_titre"`
	LocataireID    int64     `json:"locataire_id"`
	LocataireNom   string    `json:"locataire_nom"`
	ProprietaireID int64     `json:"proprietaire_id"`
	DateDebut      time.Time `json:"date_debut"`
	DateFin        time.Time `json:"date_fin"`
	PrixTotal      float64   `json:"prix_total"`
	Statut         string    `json:"statut"`
	Message        string    `json:"message,omitempty"`
	DateCreation   time.Time `json:"date_creation"`
}
