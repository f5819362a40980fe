package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory database per test so tests never
// share state. cache=shared keeps the schema alive across the pool's
// connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.Rider{},
		&entity.MenuItem{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// ---- fixtures ----

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Name: "Test User", Email: email, Password: "-", Phone: "555"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, email string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: "Test Kitchen", Email: email, Password: "-", Address: "1 Test St"}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func seedRider(t *testing.T, db *gorm.DB, email string) *entity.Rider {
	t.Helper()
	rd := &entity.Rider{Name: "Test Rider", Email: email, Password: "-"}
	if err := db.Create(rd).Error; err != nil {
		t.Fatalf("seed rider: %v", err)
	}
	return rd
}

func seedMenuItem(t *testing.T, db *gorm.DB, restaurantID uint, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{
		RestaurantID: restaurantID, Name: name,
		Price: decimal.NewFromInt(price), IsAvailable: true,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return m
}

func seedCartLine(t *testing.T, db *gorm.DB, userID, menuItemID uint, qty int) {
	t.Helper()
	c := &entity.CartItem{UserID: userID, MenuItemID: menuItemID, Quantity: qty}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed cart line: %v", err)
	}
}

// seedOrder inserts an order directly in the given state.
func seedOrder(t *testing.T, db *gorm.DB, userID, restaurantID uint, status entity.OrderStatus) *entity.Order {
	t.Helper()
	o := &entity.Order{
		UserID: userID, RestaurantID: restaurantID,
		TotalAmount: decimal.NewFromInt(100), DeliveryFee: decimal.NewFromInt(40),
		DeliveryAddress: "1 Test St", PaymentMethod: "cash", Status: status,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func decEq(t *testing.T, got decimal.Decimal, want string, label string) {
	t.Helper()
	w, err := decimal.NewFromString(want)
	if err != nil {
		t.Fatalf("bad expected decimal %q: %v", want, err)
	}
	if !got.Equal(w) {
		t.Fatalf("%s = %s, want %s", label, got, want)
	}
}
