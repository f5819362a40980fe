package services

import (
	"errors"
	"time"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/MilindByte/food-delivery-app-test/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RiderOrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	RiderRepo *repository.RiderRepository
}

func NewRiderOrderService(db *gorm.DB, repo *repository.OrderRepository, riderRepo *repository.RiderRepository) *RiderOrderService {
	return &RiderOrderService{DB: db, Repo: repo, RiderRepo: riderRepo}
}

// AcceptOrder claims an unassigned order for the rider. The decision
// is validated on a read, but exclusivity rests entirely on the
// conditional update: two riders racing on the same order both pass
// the read, and exactly one survives the WHERE rider_id IS NULL write.
func (s *RiderOrderService) AcceptOrder(riderID, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if o.RiderID != nil {
			return ErrAlreadyAssigned
		}
		target, ok := acceptTarget(o.Status)
		if !ok {
			return ErrNotAvailable
		}

		affected, err := s.Repo.AssignRider(tx, orderID, riderID, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAlreadyAssigned
		}
		return nil
	})
}

// SetStatus moves an order the rider owns. Progression is gated only
// by ownership and the rider-settable set; delivered additionally
// bumps the rider's lifetime delivery counter, once per call.
func (s *RiderOrderService) SetStatus(riderID, orderID uint, to entity.OrderStatus) error {
	if err := RiderTransition("", to); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusForRider(tx, orderID, riderID, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotFound
		}

		if to == entity.StatusDelivered {
			if err := s.RiderRepo.IncrementDeliveries(tx, riderID); err != nil {
				return err
			}
		}
		return nil
	})
}

// ---------------- reads ----------------

func (s *RiderOrderService) ListAvailable() ([]repository.RiderOrderRow, error) {
	return s.Repo.ListAvailableForRiders()
}

func (s *RiderOrderService) ListAssigned(riderID uint) ([]repository.RiderOrderRow, error) {
	return s.Repo.ListAssignedToRider(riderID)
}

func (s *RiderOrderService) History(riderID uint, limit int) ([]repository.RiderOrderRow, error) {
	return s.Repo.ListDeliveredByRider(riderID, limit)
}

func (s *RiderOrderService) DetailForRider(riderID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForRider(riderID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// ---------------- earnings ----------------

type EarningsSummary struct {
	Today decimal.Decimal `json:"todayEarnings"`
	Week  decimal.Decimal `json:"weekEarnings"`
	Month decimal.Decimal `json:"monthEarnings"`
	Total decimal.Decimal `json:"totalEarnings"`
}

// Earnings sums delivery fees over delivered orders in four windows.
// A rider with no deliveries gets zeros, never an error.
func (s *RiderOrderService) Earnings(riderID uint) (*EarningsSummary, error) {
	day, week, month := earningsWindows(time.Now())

	var out EarningsSummary
	var err error
	if out.Today, err = s.Repo.EarningsSince(riderID, &day); err != nil {
		return nil, err
	}
	if out.Week, err = s.Repo.EarningsSince(riderID, &week); err != nil {
		return nil, err
	}
	if out.Month, err = s.Repo.EarningsSince(riderID, &month); err != nil {
		return nil, err
	}
	if out.Total, err = s.Repo.EarningsSince(riderID, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// earningsWindows truncates now to the start of the calendar day, the
// ISO week (Monday) and the month.
func earningsWindows(now time.Time) (day, week, month time.Time) {
	day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sinceMonday := (int(now.Weekday()) + 6) % 7
	week = day.AddDate(0, 0, -sinceMonday)
	month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return day, week, month
}
