package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/photolog-dev/photolog-backend/internal/domain"
)

type JWTService struct {
	secretKey      []byte
	accessTokenTTL time.Duration
}

type Claims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

func NewJWTService(secretKey string, accessTokenTTL time.Duration) *JWTService {
	return &JWTService{
		secretKey:      []byte(secretKey),
		accessTokenTTL: accessTokenTTL,
	}
}

func (s *JWTService) GenerateAccessToken(adminID uuid.UUID) (string, time.Time, error) {
	expiresAt := time.Now().UTC().Add(s.accessTokenTTL)

	claims := Claims{
		AdminID: adminID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
			NotBefore: jwt.NewNumericDate(time.Now().UTC()),
			Issuer:    "photolog",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenStr, expiresAt, nil
}

func (s *JWTService) ValidateAccessToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return uuid.Nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, domain.ErrTokenInvalid
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return uuid.Nil, domain.ErrTokenInvalid
	}

	return adminID, nil
}
