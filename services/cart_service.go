package services

import (
	"errors"

	"github.com/MilindByte/food-delivery-app-test/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	Repo     *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, menuRepo *repository.MenuRepository) *CartService {
	return &CartService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

// CartSummary mirrors what checkout will charge: live prices, 5% tax,
// flat delivery fee (waived while the cart is empty).
type CartSummary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"itemCount"`
}

type CartView struct {
	Items   []repository.CartLine `json:"items"`
	Summary CartSummary           `json:"summary"`
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	lines, err := s.Repo.LinesWithPrices(nil, userID)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	tax := subtotal.Mul(taxRate)
	fee := decimal.Zero
	if subtotal.IsPositive() {
		fee = flatDeliveryFee
	}

	return &CartView{
		Items: lines,
		Summary: CartSummary{
			Subtotal:    subtotal.Round(2),
			Tax:         tax.Round(2),
			DeliveryFee: fee,
			Total:       subtotal.Add(tax).Add(fee).Round(2),
			ItemCount:   len(lines),
		},
	}, nil
}

// Add puts a menu item in the cart, merging quantity when the line
// already exists. Reports whether a new line was created.
func (s *CartService) Add(userID, menuItemID uint, qty int) (created bool, err error) {
	m, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrMenuItemNotFound
		}
		return false, err
	}
	if !m.IsAvailable {
		return false, ErrMenuItemUnavailable
	}

	return s.Repo.AddItem(userID, menuItemID, qty)
}

func (s *CartService) UpdateQuantity(userID, cartItemID uint, qty int) error {
	if qty <= 0 {
		return s.Remove(userID, cartItemID)
	}
	affected, err := s.Repo.UpdateQuantity(userID, cartItemID, qty)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) Remove(userID, cartItemID uint) error {
	affected, err := s.Repo.RemoveItem(userID, cartItemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartService) Clear(userID uint) error {
	return s.Repo.ClearCart(nil, userID)
}
