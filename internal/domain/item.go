package domain

import "time"

// ListingFee is the fixed CHF surcharge added once per booking. The value
// is forced on every created item regardless of caller input.
const ListingFee = 5.0

type Item struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Titre            string    `json:"titre" gorm:"not null"`
	Description      string    `json:"description"`
	Categorie        string    `json:"categorie"`
	PrixParJour      float64   `json:"prix_par_jour"`
	FraisInscription float64   `json:"frais_inscription"`
	Canton           string    `json:"canton" gorm:"index:idx_items_canton_ville"`
	Ville            string    `json:"ville" gorm:"index:idx_items_canton_ville"`
	Disponible       bool      `json:"disponible" gorm:"default:true"`
	ProprietaireID   int64     `json:"proprietaire_id" gorm:"index"`
	Images           []string  `json:"images" gorm:"serializer:json"`
	NoteMoyenne      float64   `json:"note_moyenne" gorm:"default:0"`
	DateCreation     time.Time `json:"date_creation" gorm:"autoCreateTime"`
}
