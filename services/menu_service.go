package services

import (
	"context"

	"github.com/MilindByte/food-delivery-app-test/cache"
	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/MilindByte/food-delivery-app-test/repository"
	"github.com/shopspring/decimal"
)

// MenuService is the owner side of the catalog: a restaurant managing
// its own items. Writes invalidate the cached public menu.
type MenuService struct {
	Repo  *repository.MenuRepository
	Cache *cache.Client
}

func NewMenuService(repo *repository.MenuRepository, c *cache.Client) *MenuService {
	return &MenuService{Repo: repo, Cache: c}
}

func (s *MenuService) ListOwn(restaurantID uint) ([]entity.MenuItem, error) {
	return s.Repo.ListForRestaurant(restaurantID, true)
}

type MenuItemInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"imageUrl"`
	IsVeg       bool            `json:"isVeg"`
}

func (s *MenuService) Create(ctx context.Context, restaurantID uint, in *MenuItemInput) (*entity.MenuItem, error) {
	item := entity.MenuItem{
		RestaurantID: restaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		ImageURL:     in.ImageURL,
		IsVeg:        in.IsVeg,
		IsAvailable:  true,
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}
	s.Cache.Delete(ctx, menuCacheKey(restaurantID))
	return &item, nil
}

type MenuItemUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	IsVeg       *bool            `json:"isVeg"`
	IsAvailable *bool            `json:"isAvailable"`
}

func (s *MenuService) Update(ctx context.Context, restaurantID, menuItemID uint, in *MenuItemUpdate) error {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.IsVeg != nil {
		updates["is_veg"] = *in.IsVeg
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if len(updates) == 0 {
		return nil
	}

	affected, err := s.Repo.UpdateOwned(restaurantID, menuItemID, updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	s.Cache.Delete(ctx, menuCacheKey(restaurantID))
	return nil
}
