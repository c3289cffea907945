// Package auth covers password hashing, session token issue and
// verification, and carrying the caller identity through a context.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/staffql/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload: the registered claims plus the account id and
// username of the token owner.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"id"`
	Username  string `json:"username"`
}

// Identity is what a valid token proves about its bearer.
type Identity struct {
	AccountID string
	Username  string
}

func GenerateToken(accountID, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		AccountID: accountID,
		Username:  username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the signature and expiry of tokenString and returns
// its claims. Expired tokens yield common.ErrTokenExpired, everything else
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.AccountID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// VerifyToken never fails: any malformed, expired or forged token gives nil.
func VerifyToken(tokenString string, secretKey []byte) *Identity {
	claims, err := ParseToken(tokenString, secretKey)
	if err != nil {
		return nil
	}
	return &Identity{AccountID: claims.AccountID, Username: claims.Username}
}
