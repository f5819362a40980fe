package configs

import (
	"log"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/shopspring/decimal"
)

// SeedCatalog loads a couple of demo restaurants with menus so the
// front-ends have something to browse on a fresh database.
func SeedCatalog() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []struct {
		r     entity.Restaurant
		items []entity.MenuItem
	}{
		{
			r: entity.Restaurant{
				Name: "Spice Garden", Email: "owner@spicegarden.example",
				Password: "-", Phone: "9000000001",
				Address: "12 Curry Lane", CuisineType: "Indian", Rating: 4.3,
			},
			items: []entity.MenuItem{
				{Name: "Paneer Tikka", Price: decimal.NewFromInt(220), IsVeg: true},
				{Name: "Butter Chicken", Price: decimal.NewFromInt(310)},
				{Name: "Garlic Naan", Price: decimal.NewFromInt(60), IsVeg: true},
			},
		},
		{
			r: entity.Restaurant{
				Name: "Wok This Way", Email: "owner@wokthisway.example",
				Password: "-", Phone: "9000000002",
				Address: "7 Noodle Street", CuisineType: "Chinese", Rating: 4.1,
			},
			items: []entity.MenuItem{
				{Name: "Veg Hakka Noodles", Price: decimal.NewFromInt(180), IsVeg: true},
				{Name: "Chilli Chicken", Price: decimal.NewFromInt(260)},
			},
		},
	}

	for _, seed := range restaurants {
		if err := db.Create(&seed.r).Error; err != nil {
			return err
		}
		for i := range seed.items {
			seed.items[i].RestaurantID = seed.r.ID
			seed.items[i].IsAvailable = true
		}
		if err := db.Create(&seed.items).Error; err != nil {
			return err
		}
	}

	log.Println("seeded demo catalog")
	return nil
}
