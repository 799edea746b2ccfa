package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dandyZicky/wfh-attendance/internal/apierror"
	"github.com/dandyZicky/wfh-attendance/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const (
	ClaimsKey = "claims"

	// SessionCookieName carries the session token when no Authorization
	// header is present.
	SessionCookieName = "wfh-attendance-auth"
)

// Claims are the custom claims embedded in every session token.
// Subject holds the user_key.
type Claims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuth validates the session token on every protected route. The token is
// accepted from either the Authorization: Bearer header or the session
// cookie; the header wins when both are present.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				tokenStr = cookie
			}
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("no token provided"))
			return
		}

		claims := &Claims{}
		// Every token this system issues carries exp; one without it is not ours.
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}, jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("invalid or expired token"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// DepartmentResolver answers which department a user belongs to. The
// user-management service resolves locally through its own store; the other
// services resolve through the directory HTTP client.
type DepartmentResolver interface {
	DepartmentByUserKey(ctx context.Context, userKey string) (int, error)
}

// RequireHR permits the request only when the token's user belongs to the
// Human Resources department. Every lookup failure fails closed: the route
// is denied, never silently allowed.
func RequireHR(resolver DepartmentResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("user not authenticated"))
			return
		}

		departmentID, err := resolver.DepartmentByUserKey(c.Request.Context(), claims.Subject)
		if err != nil {
			log.Error().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Str("user_key", claims.Subject).
				Msg("department authorization lookup failed")
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("unable to verify department permissions"))
			return
		}

		if departmentID != model.HumanResourcesDepartmentID {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
