package catalog

import (
	"context"
	"errors"

	"p2pshare/internal/domain"
	"p2pshare/internal/pkg/enrich"
	"p2pshare/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	items ItemRepositoryInterface
	users UserReader
}

func NewService(items ItemRepositoryInterface, users UserReader) *Service {
	return &Service{items: items, users: users}
}

func (s *Service) CreateItem(ctx context.Context, ownerID int64, in CreateItemInput) (*domain.Item, error) {
	if !domain.IsValidCanton(in.Canton) {
		return nil, ErrInvalidCanton
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	item := &domain.Item{
		Titre:            in.Titre,
		Description:      in.Description,
		Categorie:        in.Categorie,
		PrixParJour:      in.PrixParJour,
		FraisInscription: domain.ListingFee,
		Canton:           in.Canton,
		Ville:            in.Ville,
		Disponible:       true,
		ProprietaireID:   ownerID,
		Images:           images,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) SearchItems(ctx context.Context, f repository.SearchFilter, skip, limit int) ([]ItemResponse, error) {
	items, err := s.items.Search(ctx, f, skip, limit)
	if err != nil {
		return nil, err
	}

	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, s.toResponse(ctx, &items[i]))
	}
	return out, nil
}

func (s *Service) GetItem(ctx context.Context, id int64) (*ItemResponse, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	resp := s.toResponse(ctx, item)
	return &resp, nil
}

func (s *Service) toResponse(ctx context.Context, item *domain.Item) ItemResponse {
	images := item.Images
	if images == nil {
		images = []string{}
	}

	return ItemResponse{
		ID:               item.ID,
		Titre:            item.Titre,
		Description:      item.Description,
		Categorie:        item.Categorie,
		PrixParJour:      item.PrixParJour,
		FraisInscription: item.FraisInscription,
		Canton:           item.Canton,
		Ville:            item.Ville,
		Disponible:       item.Disponible,
		ProprietaireID:   item.ProprietaireID,
		ProprietaireNom:  enrich.DisplayName(ctx, s.users, item.ProprietaireID),
		DateCreation:     item.DateCreation,
		Images:           images,
		NoteMoyenne:      item.NoteMoyenne,
	}
}
