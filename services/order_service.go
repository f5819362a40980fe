package services

import (
	"database/sql"
	"errors"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/MilindByte/food-delivery-app-test/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pricing constants captured from the marketplace rules: 5% tax on the
// subtotal plus a flat delivery fee, both applied at order time.
var (
	taxRate         = decimal.NewFromFloat(0.05)
	flatDeliveryFee = decimal.NewFromInt(40)
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}
}

type PlaceOrderResult struct {
	OrderID     uint            `json:"orderId"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// PlaceOrder snapshots the user's cart into an immutable order. The
// cart read, the order + item inserts and the cart clear run in one
// serializable transaction: an observer never sees an order without
// its items, or with a half-cleared cart. Prices are frozen from the
// menu as of this read.
func (s *OrderService) PlaceOrder(userID uint, deliveryAddress, paymentMethod string) (*PlaceOrderResult, error) {
	var out PlaceOrderResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.LinesWithPrices(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		// single-restaurant constraint: every line against the first
		restaurantID := lines[0].RestaurantID
		for _, l := range lines {
			if l.RestaurantID != restaurantID {
				return ErrMixedRestaurant
			}
		}

		subtotal := decimal.Zero
		for _, l := range lines {
			subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		total := subtotal.Add(subtotal.Mul(taxRate)).Add(flatDeliveryFee)

		order := entity.Order{
			UserID:          userID,
			RestaurantID:    restaurantID,
			TotalAmount:     total,
			DeliveryFee:     flatDeliveryFee,
			DeliveryAddress: deliveryAddress,
			PaymentMethod:   paymentMethod,
			Status:          entity.StatusPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				Price:      l.Price,
			})
		}
		if err := s.Repo.CreateOrderItems(tx, items); err != nil {
			return err
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		// rounding is presentation only; the stored amount keeps full precision
		out = PlaceOrderResult{OrderID: order.ID, TotalAmount: total.Round(2)}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------- customer reads ----------------

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order *entity.Order                `json:"order"`
	Items []repository.OrderItemDetail `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.withItems(o)
}

// ---------------- restaurant side ----------------

func (s *OrderService) ListForRestaurant(restaurantID uint, status *entity.OrderStatus) ([]repository.RestaurantOrderSummary, error) {
	return s.Repo.ListOrdersForRestaurant(restaurantID, status)
}

func (s *OrderService) DetailForRestaurant(restaurantID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForRestaurant(restaurantID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.withItems(o)
}

// RestaurantSetStatus applies a restaurant-driven transition. The
// write is guarded on the status the decision was made against, so a
// concurrent move (say, a rider accepting) invalidates it instead of
// being overwritten.
func (s *OrderService) RestaurantSetStatus(restaurantID, orderID uint, to entity.OrderStatus) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderForRestaurant(restaurantID, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := RestaurantTransition(o.Status, to); err != nil {
			return err
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, restaurantID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			// lost the race; report against the status that is there now
			fresh, err := s.Repo.GetOrderForRestaurant(restaurantID, orderID)
			if err != nil {
				return ErrOrderNotFound
			}
			return &TransitionError{From: fresh.Status, To: to}
		}
		return nil
	})
}

func (s *OrderService) withItems(o *entity.Order) (*OrderDetail, error) {
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: o, Items: items}, nil
}
