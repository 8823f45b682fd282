package booking

import (
	"errors"
	"net/http"

	"p2pshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	bookingsGroup := protected.Group("/bookings")
	{
		bookingsGroup.POST("", h.CreateBooking)
		bookingsGroup.GET("/mes-reservations", h.GetMyBookings)
	}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Données de réservation invalides")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrItemNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Objet non trouvé")
		case errors.Is(err, ErrOwnItem):
			response.Error(c, http.StatusBadRequest, "OWN_ITEM", "Vous ne pouvez pas réserver votre propre objet")
		case errors.Is(err, ErrInvalidDates):
			response.Error(c, http.StatusBadRequest, "INVALID_DATES", "Dates invalides")
		default:
			response.Error(c, http.StatusBadRequest, "BOOKING_FAILED", "Erreur lors de la création de la réservation")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         b.ID,
		"prix_total": b.PrixTotal,
		"message":    "Demande de réservation envoyée",
	})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookings, err := h.service.GetMyBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BOOKINGS_FETCH_FAILED", "Erreur lors de la récupération des réservations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": bookings})
}
