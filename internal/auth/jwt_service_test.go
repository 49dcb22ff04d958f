package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.IssueSessionToken(42, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifySessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Subject)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").IssueSessionToken(1, "alice")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").VerifySessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifySessionToken(tok)
		assert.Error(t, err, "token %q should be rejected", tok)
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	now := time.Now()
	claims := &Claims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	assert.NoError(t, err)

	_, err = svc.VerifySessionToken(expired)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignIssuer(t *testing.T) {
	svc := NewJWTService("test-secret")

	claims := &Claims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	assert.NoError(t, err)

	_, err = svc.VerifySessionToken(token)
	assert.Error(t, err)
}
