package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CallerKey is the gin context key the middleware stores the caller under.
const CallerKey = "caller"

// Caller is the identity of the authenticated user for one request.
// It is resolved once by the middleware and passed explicitly into
// every service call.
type Caller struct {
	Username string
	Admin    bool
}

type SignedDetails struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid or expired token")

// ParseToken validates an HS256 bearer token and returns the caller it names.
func ParseToken(tokenString, secret string) (Caller, error) {
	claims := &SignedDetails{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Caller{}, ErrInvalidToken
	}
	return Caller{
		Username: claims.Username,
		Admin:    strings.EqualFold(claims.Role, "admin"),
	}, nil
}

// Middleware rejects requests without a valid bearer token and stores
// the resolved caller in the request context.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing bearer token."})
			return
		}

		caller, err := ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
			return
		}

		c.Set(CallerKey, caller)
		c.Next()
	}
}

// CallerFrom reads the caller placed in the context by Middleware.
func CallerFrom(c *gin.Context) Caller {
	if v, ok := c.Get(CallerKey); ok {
		if caller, ok := v.(Caller); ok {
			return caller
		}
	}
	return Caller{}
}
