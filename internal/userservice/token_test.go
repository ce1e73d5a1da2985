package userservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	user := &User{ID: 42, Username: "testuser"}

	token, err := tm.NewAccessToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := tm.VerifyAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestVerifyAccessToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	testCases := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "empty token",
			token: func(t *testing.T) string {
				return ""
			},
		},
		{
			name: "malformed token",
			token: func(t *testing.T) string {
				return "not.a.jwt"
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewTokenManager("other-secret", time.Hour)
				token, err := other.NewAccessToken(&User{ID: 1, Username: "testuser"})
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				claims := &tokenClaims{
					Username: "testuser",
					RegisteredClaims: jwt.RegisteredClaims{
						Subject:   "1",
						IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "unexpected signing method",
			token: func(t *testing.T) string {
				claims := &tokenClaims{
					Username: "testuser",
					RegisteredClaims: jwt.RegisteredClaims{
						Subject:   "1",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "non numeric subject",
			token: func(t *testing.T) string {
				claims := &tokenClaims{
					Username: "testuser",
					RegisteredClaims: jwt.RegisteredClaims{
						Subject:   "abc",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				assert.NoError(t, err)
				return token
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := tm.VerifyAccessToken(tc.token(t))
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Zero(t, id)
		})
	}
}

func TestNewTokenManagerDefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)
	assert.Equal(t, AccessTokenTime, tm.ttl)
}
