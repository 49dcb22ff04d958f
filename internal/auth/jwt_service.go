package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenExpiry is the duration for which session tokens are valid.
const SessionTokenExpiry = 24 * time.Hour

const tokenIssuer = "contacthub"

// Claims represents session token claims.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies stateless session tokens. Verification only
// checks the signature and claims, so it needs no store lookup and runs on
// any replica.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// IssueSessionToken generates a signed token bound to the user.
func (s *JWTService) IssueSessionToken(userID uint, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifySessionToken validates a token and returns its claims.
func (s *JWTService) VerifySessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Username == "" || claims.Issuer != tokenIssuer {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
