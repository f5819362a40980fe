package services

import (
	"strings"
	"time"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/MilindByte/food-delivery-app-test/repository"
	"github.com/MilindByte/food-delivery-app-test/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService covers login/register for all three principals; each
// role authenticates against its own table and gets a role-scoped
// token.
type AuthService struct {
	userRepo  *repository.UserRepository
	restRepo  *repository.RestaurantRepository
	riderRepo *repository.RiderRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(
	userRepo *repository.UserRepository,
	restRepo *repository.RestaurantRepository,
	riderRepo *repository.RiderRepository,
	secret string,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		restRepo:  restRepo,
		riderRepo: riderRepo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ---------------- customers ----------------

func (s *AuthService) RegisterUser(name, email, password, phone, address string) (*entity.User, error) {
	email = normalizeEmail(email)
	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashed,
		Phone:    strings.TrimSpace(phone),
		Address:  strings.TrimSpace(address),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) LoginUser(email, password string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, utils.RoleCustomer, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) UserProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// ---------------- restaurants ----------------

func (s *AuthService) RegisterRestaurant(name, email, password, phone, address, cuisine string) (*entity.Restaurant, error) {
	email = normalizeEmail(email)
	count, err := s.restRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	rest := &entity.Restaurant{
		Name:        strings.TrimSpace(name),
		Email:       email,
		Password:    hashed,
		Phone:       strings.TrimSpace(phone),
		Address:     strings.TrimSpace(address),
		CuisineType: strings.TrimSpace(cuisine),
		IsOpen:      true,
	}
	if err := s.restRepo.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *AuthService) LoginRestaurant(email, password string) (string, *entity.Restaurant, error) {
	rest, err := s.restRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rest.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(rest.ID, utils.RoleRestaurant, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, rest, nil
}

// ---------------- riders ----------------

func (s *AuthService) RegisterRider(name, email, password, phone, vehicle string) (*entity.Rider, error) {
	email = normalizeEmail(email)
	count, err := s.riderRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	rider := &entity.Rider{
		Name:          strings.TrimSpace(name),
		Email:         email,
		Password:      hashed,
		Phone:         strings.TrimSpace(phone),
		VehicleNumber: strings.TrimSpace(vehicle),
		IsAvailable:   true,
	}
	if err := s.riderRepo.Create(rider); err != nil {
		return nil, err
	}
	return rider, nil
}

func (s *AuthService) LoginRider(email, password string) (string, *entity.Rider, error) {
	rider, err := s.riderRepo.FindByEmail(normalizeEmail(email))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rider.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(rider.ID, utils.RoleRider, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, rider, nil
}

func (s *AuthService) RiderProfile(riderID uint) (*entity.Rider, error) {
	return s.riderRepo.FindByID(riderID)
}
