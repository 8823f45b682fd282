package auth

import (
	"errors"
	"net/http"
	"time"

	"p2pshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.GetMe)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Données d'inscription invalides")
		return
	}

	_, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusBadRequest, "EMAIL_EXISTS", "Un utilisateur avec cet email existe déjà")
		case errors.Is(err, ErrInvalidCanton):
			response.Error(c, http.StatusBadRequest, "CANTON_INVALID", "Canton invalide")
		default:
			response.Error(c, http.StatusBadRequest, "REGISTRATION_FAILED", "Erreur lors de la création du compte")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"message":      "Utilisateur créé avec succès",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Données de connexion invalides")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email ou mot de passe incorrect")
			return
		}
		response.Error(c, http.StatusBadRequest, "LOGIN_FAILED", "Erreur lors de la connexion")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user": UserSummary{
			ID:     user.ID,
			Email:  user.Email,
			Nom:    user.Nom,
			Prenom: user.Prenom,
		},
	})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetInt64("user_id")

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Jeton invalide ou expiré")
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		Nom:          user.Nom,
		Prenom:       user.Prenom,
		Telephone:    user.Telephone,
		Canton:       user.Canton,
		DateCreation: user.DateCreation.UTC().Format(time.RFC3339),
		NoteMoyenne:  user.NoteMoyenne,
		NombreAvis:   user.NombreAvis,
	})
}
