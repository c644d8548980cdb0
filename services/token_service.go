package services

import (
	"time"

	"github.com/syauqinrm/blog-backend/models"

	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed session tokens both front-ends
// authenticate with. Signing is pure; the secret is loaded once at startup.
type TokenService interface {
	Issue(user *models.User) (string, error)
	Verify(tokenString string) (*Claims, error)
}

type tokenService struct {
	secret     []byte
	expiration time.Duration
}

func NewTokenService(secret []byte, expiration time.Duration) TokenService {
	return &tokenService{secret: secret, expiration: expiration}
}

func (s *tokenService) Issue(user *models.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", models.ErrorInternalServer{Message: "failed to sign token"}
	}

	return signedToken, nil
}

func (s *tokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, models.ErrorUnauthorized{Message: "invalid or expired token"}
	}

	return claims, nil
}
