package repository

import (
	"context"
	"strings"

	"p2pshare/internal/domain"

	"gorm.io/gorm"
)

// SearchFilter carries the optional item search criteria. Zero values mean
// "no constraint".
type SearchFilter struct {
	Query     string
	Canton    string
	Categorie string
	PrixMax   float64
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Search returns available items matching the filter. Result order is
// store-defined; callers must not rely on insertion order. The text filter
// is a case-insensitive substring match over titre and description.
func (r *ItemRepository) Search(ctx context.Context, f SearchFilter, skip, limit int) ([]domain.Item, error) {
	q := r.db.WithContext(ctx).Model(&domain.Item{}).Where("disponible = ?", true)

	if s := strings.TrimSpace(f.Query); s != "" {
		needle := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(titre) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}
	if f.Canton != "" {
		q = q.Where("canton = ?", f.Canton)
	}
	if f.Categorie != "" {
		q = q.Where("categorie = ?", f.Categorie)
	}
	if f.PrixMax > 0 {
		q = q.Where("prix_par_jour <= ?", f.PrixMax)
	}

	var items []domain.Item
	if err := q.Offset(skip).Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
