package services

import (
	"context"
	"errors"
	"fmt"

	"frushh/models"
	"frushh/repositories"
)

type CartService struct {
	catalog repositories.CatalogRepository
}

func NewCartService(catalog repositories.CatalogRepository) *CartService {
	return &CartService{catalog: catalog}
}

// BuildCart freezes catalog prices into cart lines. Client supplied prices
// are never trusted.
func (s *CartService) BuildCart(ctx context.Context, items []models.CartItemRequest) (models.Cart, error) {
	var cart models.Cart

	for i, item := range items {
		product, err := s.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return models.Cart{}, fmt.Errorf("%w: item %d: product %d not available", ErrInvalidCartItem, i, item.ProductID)
			}
			return models.Cart{}, fmt.Errorf("load product %d: %w", item.ProductID, err)
		}
		if !product.IsActive {
			return models.Cart{}, fmt.Errorf("%w: item %d: product %d not available", ErrInvalidCartItem, i, item.ProductID)
		}

		price, protein, ok := product.Variant(item.Size)
		if !ok {
			return models.Cart{}, fmt.Errorf("%w: item %d: %v", ErrInvalidCartItem, i, models.ErrInvalidSize)
		}

		addons, err := s.resolveAddons(ctx, item.AddonIDs)
		if err != nil {
			return models.Cart{}, fmt.Errorf("%w: item %d", err, i)
		}

		line := models.CartLine{
			ID:          item.LineID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Size:        item.Size,
			UnitPrice:   price,
			Protein:     protein,
			Addons:      addons,
			Quantity:    item.Quantity,
		}
		if err := cart.AddLine(line); err != nil {
			return models.Cart{}, fmt.Errorf("%w: item %d: %v", ErrInvalidCartItem, i, err)
		}
	}

	return cart, nil
}

func (s *CartService) resolveAddons(ctx context.Context, ids []int) ([]models.Addon, error) {
	if len(ids) == 0 {
		return []models.Addon{}, nil
	}

	found, err := s.catalog.GetAddons(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load addons: %w", err)
	}

	byID := make(map[int]models.CatalogAddon, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	addons := make([]models.Addon, 0, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok || !a.IsActive {
			return nil, fmt.Errorf("%w: addon %d not available", ErrInvalidCartItem, id)
		}
		addons = append(addons, models.Addon{ID: a.ID, Name: a.Name, Price: a.Price})
	}
	return addons, nil
}
