package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MilindByte/food-delivery-app-test/cache"
	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/MilindByte/food-delivery-app-test/repository"
	"gorm.io/gorm"
)

const catalogCacheTTL = 5 * time.Minute

// CatalogService serves the public read side: restaurant listings and
// menus. Unfiltered listings go through the redis cache when one is
// configured; a nil cache just always misses.
type CatalogService struct {
	RestRepo *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository
	Cache    *cache.Client
}

func NewCatalogService(restRepo *repository.RestaurantRepository, menuRepo *repository.MenuRepository, c *cache.Client) *CatalogService {
	return &CatalogService{RestRepo: restRepo, MenuRepo: menuRepo, Cache: c}
}

func menuCacheKey(restaurantID uint) string {
	return fmt.Sprintf("catalog:menu:%d", restaurantID)
}

const restaurantsCacheKey = "catalog:restaurants"

func (s *CatalogService) ListRestaurants(ctx context.Context, cuisine, search string) ([]entity.Restaurant, error) {
	cacheable := cuisine == "" && search == ""

	var out []entity.Restaurant
	if cacheable && s.Cache.GetJSON(ctx, restaurantsCacheKey, &out) {
		return out, nil
	}

	out, err := s.RestRepo.List(cuisine, search)
	if err != nil {
		return nil, err
	}
	if cacheable {
		s.Cache.SetJSON(ctx, restaurantsCacheKey, out, catalogCacheTTL)
	}
	return out, nil
}

func (s *CatalogService) GetRestaurant(id uint) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return rest, nil
}

func (s *CatalogService) MenuForRestaurant(ctx context.Context, restaurantID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	if s.Cache.GetJSON(ctx, menuCacheKey(restaurantID), &out) {
		return out, nil
	}

	if _, err := s.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}
	out, err := s.MenuRepo.ListForRestaurant(restaurantID, false)
	if err != nil {
		return nil, err
	}
	s.Cache.SetJSON(ctx, menuCacheKey(restaurantID), out, catalogCacheTTL)
	return out, nil
}
