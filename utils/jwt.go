package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Principal roles carried in the token. Each role maps to its own
// account table (users, restaurants, riders).
const (
	RoleCustomer   = "customer"
	RoleRestaurant = "restaurant"
	RoleRider      = "rider"
)

// Claims carried by every access token. SubjectID is the row id in the
// role's account table.
type Claims struct {
	SubjectID uint   `json:"subjectId"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(subjectID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
