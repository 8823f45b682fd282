package domain

import "time"

// SwissCantons is the closed set of cantons accepted on user and item
// creation. Order is stable because /api/cantons exposes it as-is.
var SwissCantons = []string{
	"Aargau", "Appenzell Innerrhoden", "Appenzell Ausserrhoden", "Bern",
	"Basel-Landschaft", "Basel-Stadt", "Fribourg", "Genève", "Glarus",
	"Graubünden", "Jura", "Luzern", "Neuchâtel", "Nidwalden", "Obwalden",
	"Schaffhausen", "Schwyz", "Solothurn", "St. Gallen", "Thurgau",
	"Ticino", "Uri", "Vaud", "Valais", "Zug", "Zürich",
}

func IsValidCanton(canton string) bool {
	for _, c := range SwissCantons {
		if c == canton {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Nom          string    `json:"nom"`
	Prenom       string    `json:"prenom"`
	Telephone    string    `json:"telephone,omitempty"`
	Canton       string    `json:"canton"`
	NoteMoyenne  float64   `json:"note_moyenne" gorm:"default:0"`
	NombreAvis   int       `json:"nombre_avis" gorm:"default:0"`
	DateCreation time.Time `json:"date_creation" gorm:"autoCreateTime"`
}

// DisplayName is the "prenom nom" form attached to items, bookings and
// messages during read-time enrichment.
func (u *User) DisplayName() string {
	return u.Prenom + " " + u.Nom
}
