package booking

import (
	"context"
	"errors"
	"math"
	"time"

	"p2pshare/internal/domain"
	"p2pshare/internal/pkg/enrich"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepositoryInterface
	items    ItemReader
	users    UserReader
}

func NewService(bookings BookingRepositoryInterface, items ItemReader, users UserReader) *Service {
	return &Service{bookings: bookings, items: items, users: users}
}

// CreateBooking computes the total price and freezes it on the booking:
// prix_par_jour × whole days + the item's listing fee. The owner id is
// copied from the item at creation time and never re-read.
func (s *Service) CreateBooking(ctx context.Context, renterID int64, req CreateBookingRequest) (*domain.Booking, error) {
	item, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.ProprietaireID == renterID {
		return nil, ErrOwnItem
	}

	days := wholeDays(req.DateDebut, req.DateFin)
	if days <= 0 {
		return nil, ErrInvalidDates
	}

	total := item.PrixParJour*float64(days) + item.FraisInscription

	b := &domain.Booking{
		ItemID:         item.ID,
		LocataireID:    renterID,
		ProprietaireID: item.ProprietaireID,
		DateDebut:      req.DateDebut,
		DateFin:        req.DateFin,
		PrixTotal:      total,
		Statut:         domain.BookingPending,
		Message:        req.Message,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetMyBookings lists the caller's renter-side bookings, enriched with the
// item title and the caller's own display name. A removed item degrades to
// a placeholder title instead of failing the listing.
func (s *Service) GetMyBookings(ctx context.Context, userID int64) ([]BookingResponse, error) {
	bookings, err := s.bookings.GetByRenter(ctx, userID)
	if err != nil {
		return nil, err
	}

	renterName := enrich.DisplayName(ctx, s.users, userID)

	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		titre := "Objet supprimé"
		if item, err := s.items.GetByID(ctx, b.ItemID); err == nil && item != nil {
			titre = item.Titre
		}

		out = append(out, BookingResponse{
			ID:             b.ID,
			ItemID:         b.ItemID,
			ItemTitre:      titre,
			LocataireID:    b.LocataireID,
			LocataireNom:   renterName,
			ProprietaireID: b.ProprietaireID,
			DateDebut:      b.DateDebut,
			DateFin:        b.DateFin,
			PrixTotal:      b.PrixTotal,
			Statut:         string(b.Statut),
			Message:        b.Message,
			DateCreation:   b.DateCreation,
		})
	}
	return out, nil
}

func wholeDays(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Hours() / 24))
}
