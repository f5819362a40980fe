package services

import (
	"errors"
	"testing"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/MilindByte/food-delivery-app-test/repository"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func TestCartAddMergesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	burger := seedMenuItem(t, db, rest.ID, "Burger", 100)

	created, err := svc.Add(user.ID, burger.ID, 2)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if !created {
		t.Errorf("first add reported merge, want new line")
	}

	created, err = svc.Add(user.ID, burger.ID, 3)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if created {
		t.Errorf("second add reported new line, want merge")
	}

	view, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("got %d cart lines, want 1", len(view.Items))
	}
	if view.Items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", view.Items[0].Quantity)
	}
}

func TestCartSummaryMath(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	burger := seedMenuItem(t, db, rest.ID, "Burger", 100)
	fries := seedMenuItem(t, db, rest.ID, "Fries", 50)

	if _, err := svc.Add(user.ID, burger.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(user.ID, fries.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	decEq(t, view.Summary.Subtotal, "250", "Subtotal")
	decEq(t, view.Summary.Tax, "12.5", "Tax")
	decEq(t, view.Summary.DeliveryFee, "40", "DeliveryFee")
	decEq(t, view.Summary.Total, "302.5", "Total")
	if view.Summary.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", view.Summary.ItemCount)
	}
}

func TestCartEmptySummaryWaivesFee(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "buyer@test.dev")

	view, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	decEq(t, view.Summary.DeliveryFee, "0", "DeliveryFee")
	decEq(t, view.Summary.Total, "0", "Total")
	if len(view.Items) != 0 {
		t.Errorf("items = %d, want 0", len(view.Items))
	}
}

func TestCartAddValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")

	if _, err := svc.Add(user.ID, 9999, 1); !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("missing item err = %v, want ErrMenuItemNotFound", err)
	}

	off := seedMenuItem(t, db, rest.ID, "Yesterday's Special", 80)
	if err := db.Model(&entity.MenuItem{}).Where("id = ?", off.ID).
		Update("is_available", false).Error; err != nil {
		t.Fatalf("disable item: %v", err)
	}
	if _, err := svc.Add(user.ID, off.ID, 1); !errors.Is(err, ErrMenuItemUnavailable) {
		t.Errorf("unavailable item err = %v, want ErrMenuItemUnavailable", err)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	burger := seedMenuItem(t, db, rest.ID, "Burger", 100)
	if _, err := svc.Add(user.ID, burger.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, _ := svc.Get(user.ID)
	lineID := view.Items[0].CartItemID

	if err := svc.UpdateQuantity(user.ID, lineID, 7); err != nil {
		t.Fatalf("update: %v", err)
	}
	view, _ = svc.Get(user.ID)
	if view.Items[0].Quantity != 7 {
		t.Errorf("quantity = %d, want 7", view.Items[0].Quantity)
	}

	// zero or negative quantity removes the line
	if err := svc.UpdateQuantity(user.ID, lineID, 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	view, _ = svc.Get(user.ID)
	if len(view.Items) != 0 {
		t.Errorf("items = %d after zero update, want 0", len(view.Items))
	}

	if err := svc.UpdateQuantity(user.ID, lineID, 3); !errors.Is(err, ErrCartItemNotFound) {
		t.Errorf("update removed line err = %v, want ErrCartItemNotFound", err)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	user := seedUser(t, db, "buyer@test.dev")
	other := seedUser(t, db, "other@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	burger := seedMenuItem(t, db, rest.ID, "Burger", 100)
	fries := seedMenuItem(t, db, rest.ID, "Fries", 50)

	if _, err := svc.Add(user.ID, burger.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(user.ID, fries.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	view, _ := svc.Get(user.ID)
	lineID := view.Items[0].CartItemID

	// a stranger cannot remove someone else's line
	if err := svc.Remove(other.ID, lineID); !errors.Is(err, ErrCartItemNotFound) {
		t.Errorf("foreign remove err = %v, want ErrCartItemNotFound", err)
	}

	if err := svc.Remove(user.ID, lineID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	view, _ = svc.Get(user.ID)
	if len(view.Items) != 1 {
		t.Fatalf("items = %d after remove, want 1", len(view.Items))
	}

	if err := svc.Clear(user.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}
	view, _ = svc.Get(user.ID)
	if len(view.Items) != 0 {
		t.Errorf("items = %d after clear, want 0", len(view.Items))
	}
}
