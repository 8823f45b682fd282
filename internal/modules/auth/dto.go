package auth

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Nom       string `json:"nom" binding:"required"`
	Prenom    string `json:"prenom" binding:"required"`
	Telephone string `json:"telephone"`
	Canton    string `json:"canton" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserSummary struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
}

type ProfileResponse struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Nom          string  `json:"nom"`
	Prenom       string  `json:"prenom"`
	Telephone    string  `json:"telephone,omitempty"`
	Canton       string  `json:"canton"`
	DateCreation string  `json:"date_creation"`
	NoteMoyenne  float64 `json:"note_moyenne"`
	NombreAvis   int     `json:"nombre_avis"`
}
