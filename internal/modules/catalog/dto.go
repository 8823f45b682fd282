package catalog

import "time"

// CreateItemInput carries the multipart form fields plus the already
// stored image references. frais_inscription is accepted on the wire but
// ignored: the service always applies the fixed listing fee.
type CreateItemInput struct {
	Titre       string
	Description string
	Categorie   string
	PrixParJour float64
	Canton      string
	Ville       string
	Images      []string
}

type ItemResponse struct {
	ID               int64     `json:"id"`
	Titre            string    `json:"titre"`
	Description      string    `json:"description"`
	Categorie        string    `json:"categorie"`
	PrixParJour      float64   `json:"prix_par_jour"`
	FraisInscription float64   `json:"frais_inscription"`
	Canton           string    `json:"canton"`
	Ville            string    `json:"ville"`
	Disponible       bool      `json:"disponible"`
	ProprietaireID   int64     `json:"proprietaire_id"`
	ProprietaireNom  string    `json:"proprietaire_nom"`
	DateCreation     time.Time `json:"date_creation"`
	Images           []string  `json:"images"`
	NoteMoyenne      float64   `json:"note_moyenne"`
}
