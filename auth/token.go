package auth

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
)

// TokenTTL is how long an issued claims token (and its cookie) stays valid.
const TokenTTL = 7 * 24 * time.Hour

// AuthCookie is the cookie carrying the claims token for browser clients.
const AuthCookie = "authToken"

type Claims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

func tokenSecret() []byte {
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		secret = "change_this_secret"
	}
	return []byte(secret)
}

// SignToken issues the signed claims token that the middleware later hands
// back to handlers as an Identity.
func SignToken(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tokenSecret())
}

// VerifyToken parses and validates a claims token and returns the caller
// identity embedded in it.
func VerifyToken(token string) (models.Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return tokenSecret(), nil
	})
	if err != nil || !parsed.Valid {
		return models.Identity{}, errors.New("invalid or expired token")
	}
	return models.Identity{
		ID:      claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	}, nil
}

// TokenFromRequest pulls the claims token from the Authorization header or
// the auth cookie, in that order. Empty string when neither is present.
func TokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}
