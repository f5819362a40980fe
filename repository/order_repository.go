package repository

import (
	"time"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- writes (always inside a caller transaction) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	return tx.Create(&items).Error
}

// UpdateStatusGuard flips status only when the row still holds the
// expected current status. RowsAffected 0 means the order moved under us.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, restaurantID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND restaurant_id = ? AND status = ?", orderID, restaurantID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// AssignRider is the compare-and-set behind rider exclusivity: the
// WHERE rider_id IS NULL clause makes sure at most one rider ever wins
// the row, no matter how many accept concurrently.
func (r *OrderRepository) AssignRider(tx *gorm.DB, orderID, riderID uint, newStatus entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND rider_id IS NULL", orderID).
		Updates(map[string]any{"rider_id": riderID, "status": newStatus})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) UpdateStatusForRider(tx *gorm.DB, orderID, riderID uint, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND rider_id = ?", orderID, riderID).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- single-order reads ----------------

func (r *OrderRepository) GetOrder(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	if tx == nil {
		tx = r.DB
	}
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRestaurant(restaurantID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restaurantID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForRider(riderID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND rider_id = ?", orderID, riderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderItemDetail joins the frozen line with the menu item's display fields.
type OrderItemDetail struct {
	ID         uint            `json:"id"`
	MenuItemID uint            `json:"menuItemId"`
	Name       string          `json:"name"`
	IsVeg      bool            `json:"isVeg"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]OrderItemDetail, error) {
	var items []OrderItemDetail
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.menu_item_id, m.name, m.is_veg, oi.quantity, oi.price").
		Joins("JOIN menu_items m ON m.id = oi.menu_item_id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Order("oi.id ASC").
		Scan(&items).Error
	return items, err
}

// ---------------- listings ----------------

type OrderSummary struct {
	ID             uint            `json:"id"`
	RestaurantID   uint            `json:"restaurantId"`
	RestaurantName string          `json:"restaurantName"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         string          `json:"status"`
	ItemCount      int64           `json:"itemCount"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Table("orders AS o").
		Select(`o.id, o.restaurant_id, r.name AS restaurant_name, o.total_amount, o.status, o.created_at,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id AND oi.deleted_at IS NULL) AS item_count`).
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Where("o.user_id = ? AND o.deleted_at IS NULL", userID).
		Order("o.created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type RestaurantOrderSummary struct {
	ID            uint            `json:"id"`
	UserID        uint            `json:"userId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	ItemCount     int64           `json:"itemCount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restaurantID uint, status *entity.OrderStatus) ([]RestaurantOrderSummary, error) {
	q := r.DB.Table("orders AS o").
		Select(`o.id, o.user_id, u.name AS customer_name, u.phone AS customer_phone,
			o.total_amount, o.status, o.created_at,
			(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id AND oi.deleted_at IS NULL) AS item_count`).
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restaurantID)
	if status != nil {
		q = q.Where("o.status = ?", *status)
	}

	var out []RestaurantOrderSummary
	err := q.Order("o.created_at DESC").Scan(&out).Error
	return out, err
}

// RiderOrderRow carries everything the rider app shows on a job card.
type RiderOrderRow struct {
	ID                uint            `json:"id"`
	RestaurantID      uint            `json:"restaurantId"`
	RestaurantName    string          `json:"restaurantName"`
	RestaurantAddress string          `json:"restaurantAddress"`
	CustomerName      string          `json:"customerName"`
	CustomerPhone     string          `json:"customerPhone"`
	DeliveryAddress   string          `json:"deliveryAddress"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	DeliveryFee       decimal.Decimal `json:"deliveryFee"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func (r *OrderRepository) riderRows() *gorm.DB {
	return r.DB.Table("orders AS o").
		Select(`o.id, o.restaurant_id, r.name AS restaurant_name, r.address AS restaurant_address,
			u.name AS customer_name, u.phone AS customer_phone,
			o.delivery_address, o.total_amount, o.delivery_fee, o.status, o.created_at`).
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.deleted_at IS NULL")
}

// ListAvailableForRiders lists unassigned orders a rider may pick up,
// oldest first. Matches the accept rule: confirmed or ready, no rider.
func (r *OrderRepository) ListAvailableForRiders() ([]RiderOrderRow, error) {
	var out []RiderOrderRow
	err := r.riderRows().
		Where("o.status IN ? AND o.rider_id IS NULL",
			[]entity.OrderStatus{entity.StatusConfirmed, entity.StatusReady}).
		Order("o.created_at ASC").
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListAssignedToRider(riderID uint) ([]RiderOrderRow, error) {
	var out []RiderOrderRow
	err := r.riderRows().
		Where("o.rider_id = ? AND o.status NOT IN ?", riderID,
			[]entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}).
		Order("o.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListDeliveredByRider(riderID uint, limit int) ([]RiderOrderRow, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []RiderOrderRow
	err := r.riderRows().
		Where("o.rider_id = ? AND o.status = ?", riderID, entity.StatusDelivered).
		Order("o.updated_at DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ---------------- earnings ----------------

// EarningsSince sums delivery fees of delivered orders. A nil since
// means all-time. Missing rows sum to zero, not null.
func (r *OrderRepository) EarningsSince(riderID uint, since *time.Time) (decimal.Decimal, error) {
	q := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(delivery_fee), 0)").
		Where("rider_id = ? AND status = ?", riderID, entity.StatusDelivered)
	if since != nil {
		q = q.Where("updated_at >= ?", *since)
	}

	var total decimal.Decimal
	if err := q.Row().Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
