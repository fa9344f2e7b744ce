// Package auth validates the JWTs issued by the external authentication
// service. The engine never stores credentials; a connection presents a
// signed token and everything downstream trusts the user_id claim.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signingKey is the shared HMAC secret. Overridden at startup from
// configuration; the default only exists so tests can mint tokens.
var signingKey = []byte("chatgram_dev_signing_key_2026")

// SetSigningKey installs the secret shared with the token issuer.
func SetSigningKey(key string) {
	signingKey = []byte(key)
}

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a specific user. The production
// issuer lives in the external auth service; this is used by tests and the
// local client tooling.
func GenerateToken(userID string, tokenDuration time.Duration) (string, error) {
	claims := &CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "chatgram",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
