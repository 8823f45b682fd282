package repository

import (
	"context"

	"p2pshare/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByRenter returns the bookings where the user is the locataire.
// Owner-side bookings are intentionally not part of this listing.
func (r *BookingRepository) GetByRenter(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("locataire_id = ?", userID).
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}
