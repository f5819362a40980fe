package services

import (
	"errors"
	"testing"
	"time"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/MilindByte/food-delivery-app-test/repository"
	"gorm.io/gorm"
)

func newRiderService(db *gorm.DB) *RiderOrderService {
	return NewRiderOrderService(db, repository.NewOrderRepository(db), repository.NewRiderRepository(db))
}

func TestAcceptOrderReadyStaysReady(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	rider := seedRider(t, db, "rider@test.dev")
	o := seedOrder(t, db, user.ID, rest.ID, entity.StatusReady)

	if err := svc.AcceptOrder(rider.ID, o.ID); err != nil {
		t.Fatalf("AcceptOrder: %v", err)
	}

	var got entity.Order
	db.First(&got, o.ID)
	if got.Status != entity.StatusReady {
		t.Errorf("status = %s, want ready", got.Status)
	}
	if got.RiderID == nil || *got.RiderID != rider.ID {
		t.Errorf("rider = %v, want %d", got.RiderID, rider.ID)
	}
}

func TestAcceptOrderConfirmedMovesToPreparing(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	rider := seedRider(t, db, "rider@test.dev")
	o := seedOrder(t, db, user.ID, rest.ID, entity.StatusConfirmed)

	if err := svc.AcceptOrder(rider.ID, o.ID); err != nil {
		t.Fatalf("AcceptOrder: %v", err)
	}

	var got entity.Order
	db.First(&got, o.ID)
	if got.Status != entity.StatusPreparing {
		t.Errorf("status = %s, want preparing", got.Status)
	}
}

func TestAcceptOrderExclusive(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	first := seedRider(t, db, "first@test.dev")
	second := seedRider(t, db, "second@test.dev")
	o := seedOrder(t, db, user.ID, rest.ID, entity.StatusReady)

	if err := svc.AcceptOrder(first.ID, o.ID); err != nil {
		t.Fatalf("first accept: %v", err)
	}
	if err := svc.AcceptOrder(second.ID, o.ID); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("second accept err = %v, want ErrAlreadyAssigned", err)
	}

	// the winner keeps the order
	var got entity.Order
	db.First(&got, o.ID)
	if got.RiderID == nil || *got.RiderID != first.ID {
		t.Errorf("rider = %v, want %d", got.RiderID, first.ID)
	}
}

func TestAcceptOrderNotAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	rider := seedRider(t, db, "rider@test.dev")

	for _, status := range []entity.OrderStatus{
		entity.StatusPending, entity.StatusPreparing,
		entity.StatusOnTheWay, entity.StatusDelivered, entity.StatusCancelled,
	} {
		o := seedOrder(t, db, user.ID, rest.ID, status)
		if err := svc.AcceptOrder(rider.ID, o.ID); !errors.Is(err, ErrNotAvailable) {
			t.Errorf("accept %s order err = %v, want ErrNotAvailable", status, err)
		}
	}

	if err := svc.AcceptOrder(rider.ID, 9999); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("accept missing order err = %v, want ErrOrderNotFound", err)
	}
}

func TestRiderSetStatusOwnershipGate(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	owner := seedRider(t, db, "owner@test.dev")
	stranger := seedRider(t, db, "stranger@test.dev")

	o := seedOrder(t, db, user.ID, rest.ID, entity.StatusReady)
	if err := svc.AcceptOrder(owner.ID, o.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if err := svc.SetStatus(stranger.ID, o.ID, entity.StatusOnTheWay); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign rider err = %v, want ErrOrderNotFound", err)
	}
	if err := svc.SetStatus(owner.ID, o.ID, entity.StatusOnTheWay); err != nil {
		t.Fatalf("owner set status: %v", err)
	}

	var got entity.Order
	db.First(&got, o.ID)
	if got.Status != entity.StatusOnTheWay {
		t.Errorf("status = %s, want on_the_way", got.Status)
	}
}

func TestRiderSetStatusRejectsNonRiderTargets(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	rider := seedRider(t, db, "rider@test.dev")
	for _, to := range []entity.OrderStatus{
		entity.StatusPending, entity.StatusConfirmed, entity.StatusCancelled, "bogus",
	} {
		if err := svc.SetStatus(rider.ID, 1, to); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("to %s: err = %v, want ErrInvalidStatus", to, err)
		}
	}
}

func TestRiderSetStatusJumpAllowed(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	rider := seedRider(t, db, "rider@test.dev")

	o := seedOrder(t, db, user.ID, rest.ID, entity.StatusConfirmed)
	if err := svc.AcceptOrder(rider.ID, o.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// preparing straight to delivered: rider progression has no
	// adjacency table, ownership is the only gate
	if err := svc.SetStatus(rider.ID, o.ID, entity.StatusDelivered); err != nil {
		t.Fatalf("jump to delivered: %v", err)
	}
	var got entity.Order
	db.First(&got, o.ID)
	if got.Status != entity.StatusDelivered {
		t.Errorf("status = %s, want delivered", got.Status)
	}
}

func TestDeliveredBumpsCounterPerCall(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	rider := seedRider(t, db, "rider@test.dev")

	o := seedOrder(t, db, user.ID, rest.ID, entity.StatusReady)
	if err := svc.AcceptOrder(rider.ID, o.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if err := svc.SetStatus(rider.ID, o.ID, entity.StatusDelivered); err != nil {
		t.Fatalf("delivered: %v", err)
	}
	var after entity.Rider
	db.First(&after, rider.ID)
	if after.TotalDeliveries != 1 {
		t.Fatalf("TotalDeliveries = %d, want 1", after.TotalDeliveries)
	}

	// the write is not idempotent: a repeat delivered call bumps again
	if err := svc.SetStatus(rider.ID, o.ID, entity.StatusDelivered); err != nil {
		t.Fatalf("repeat delivered: %v", err)
	}
	db.First(&after, rider.ID)
	if after.TotalDeliveries != 2 {
		t.Fatalf("TotalDeliveries = %d after repeat, want 2", after.TotalDeliveries)
	}
}

func TestListAvailableForRiders(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	rider := seedRider(t, db, "rider@test.dev")

	seedOrder(t, db, user.ID, rest.ID, entity.StatusPending)
	seedOrder(t, db, user.ID, rest.ID, entity.StatusConfirmed)
	ready := seedOrder(t, db, user.ID, rest.ID, entity.StatusReady)
	taken := seedOrder(t, db, user.ID, rest.ID, entity.StatusReady)
	if err := svc.AcceptOrder(rider.ID, taken.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	rows, err := svc.ListAvailable()
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	// confirmed + the unassigned ready order; never pending or taken
	if len(rows) != 2 {
		t.Fatalf("got %d available orders, want 2", len(rows))
	}
	sawReady := false
	for _, row := range rows {
		if row.ID == taken.ID {
			t.Errorf("assigned order %d still listed as available", taken.ID)
		}
		if row.ID == ready.ID {
			sawReady = true
		}
	}
	if !sawReady {
		t.Errorf("unassigned ready order %d missing from available list", ready.ID)
	}
}

func TestEarnings(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	rider := seedRider(t, db, "rider@test.dev")
	other := seedRider(t, db, "other@test.dev")

	deliver := func(r *entity.Rider) *entity.Order {
		o := seedOrder(t, db, user.ID, rest.ID, entity.StatusReady)
		if err := svc.AcceptOrder(r.ID, o.ID); err != nil {
			t.Fatalf("accept: %v", err)
		}
		if err := svc.SetStatus(r.ID, o.ID, entity.StatusDelivered); err != nil {
			t.Fatalf("deliver: %v", err)
		}
		return o
	}

	deliver(rider) // delivered just now: counts in every window
	old := deliver(rider)
	deliver(other) // someone else's delivery never counts

	// push one delivery far into the past so only the all-time sum sees it
	longAgo := time.Now().AddDate(-1, -1, 0)
	if err := db.Model(&entity.Order{}).Where("id = ?", old.ID).
		UpdateColumn("updated_at", longAgo).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	got, err := svc.Earnings(rider.ID)
	if err != nil {
		t.Fatalf("Earnings: %v", err)
	}
	decEq(t, got.Today, "40", "Today")
	decEq(t, got.Week, "40", "Week")
	decEq(t, got.Month, "40", "Month")
	decEq(t, got.Total, "80", "Total")
}

func TestEarningsZeroFilled(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)
	rider := seedRider(t, db, "rider@test.dev")

	got, err := svc.Earnings(rider.ID)
	if err != nil {
		t.Fatalf("Earnings: %v", err)
	}
	decEq(t, got.Today, "0", "Today")
	decEq(t, got.Week, "0", "Week")
	decEq(t, got.Month, "0", "Month")
	decEq(t, got.Total, "0", "Total")
}

func TestEarningsWindows(t *testing.T) {
	loc := time.UTC
	cases := []struct {
		name            string
		now             time.Time
		day, week, month string
	}{
		{
			name: "midweek",
			now:  time.Date(2025, 3, 12, 15, 30, 0, 0, loc), // Wednesday
			day:  "2025-03-12", week: "2025-03-10", month: "2025-03-01",
		},
		{
			name: "monday is its own week start",
			now:  time.Date(2025, 3, 10, 0, 0, 1, 0, loc),
			day:  "2025-03-10", week: "2025-03-10", month: "2025-03-01",
		},
		{
			name: "sunday belongs to the previous monday",
			now:  time.Date(2025, 3, 16, 23, 59, 59, 0, loc),
			day:  "2025-03-16", week: "2025-03-10", month: "2025-03-01",
		},
		{
			name: "week start may precede the month start",
			now:  time.Date(2025, 4, 2, 12, 0, 0, 0, loc), // Wednesday, month started Tuesday
			day:  "2025-04-02", week: "2025-03-31", month: "2025-04-01",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			day, week, month := earningsWindows(c.now)
			check := func(got time.Time, want string, label string) {
				w, _ := time.ParseInLocation("2006-01-02", want, loc)
				if !got.Equal(w) {
					t.Errorf("%s = %s, want %s", label, got.Format(time.RFC3339), want)
				}
			}
			check(day, c.day, "day")
			check(week, c.week, "week")
			check(month, c.month, "month")
		})
	}
}

func TestRiderHistoryAndAssigned(t *testing.T) {
	db := newTestDB(t)
	svc := newRiderService(db)

	user := seedUser(t, db, "buyer@test.dev")
	rest := seedRestaurant(t, db, "kitchen@test.dev")
	rider := seedRider(t, db, "rider@test.dev")

	active := seedOrder(t, db, user.ID, rest.ID, entity.StatusReady)
	done := seedOrder(t, db, user.ID, rest.ID, entity.StatusReady)
	for _, o := range []*entity.Order{active, done} {
		if err := svc.AcceptOrder(rider.ID, o.ID); err != nil {
			t.Fatalf("accept: %v", err)
		}
	}
	if err := svc.SetStatus(rider.ID, done.ID, entity.StatusDelivered); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	assigned, err := svc.ListAssigned(rider.ID)
	if err != nil {
		t.Fatalf("ListAssigned: %v", err)
	}
	if len(assigned) != 1 || assigned[0].ID != active.ID {
		t.Errorf("assigned = %+v, want only order %d", assigned, active.ID)
	}

	history, err := svc.History(rider.ID, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].ID != done.ID {
		t.Errorf("history = %+v, want only order %d", history, done.ID)
	}
}
