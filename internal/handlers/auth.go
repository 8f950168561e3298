package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/services"
)

// SessionClaims are the JWT claims carried by a session token. The role is
// embedded so routing-level checks need no database read; entitlement
// checks still hit the store because approval can change mid-session.
type SessionClaims struct {
	AccountID uint            `json:"account_id"`
	Role      models.UserRole `json:"role"`
	Email     string          `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware issues and validates HMAC-signed session tokens.
type AuthMiddleware struct {
	secret         []byte
	ttl            time.Duration
	accountService services.AccountService
}

func NewAuthMiddleware(secret string, ttl time.Duration, accountService services.AccountService) *AuthMiddleware {
	return &AuthMiddleware{
		secret:         []byte(secret),
		ttl:            ttl,
		accountService: accountService,
	}
}

// IssueToken signs a session token for an authenticated account.
func (am *AuthMiddleware) IssueToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		AccountID: account.ID,
		Role:      account.Role,
		Email:     account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   fmt.Sprintf("%d", account.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(am.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(am.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (am *AuthMiddleware) parseToken(raw string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return am.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

// RequireAuth validates the bearer token and sets user_id, user_role and
// user_email in the request context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authorization header missing",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid authorization header format",
			})
			return
		}

		claims, err := am.parseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Invalid or expired session token",
			})
			return
		}

		c.Set("user_id", claims.AccountID)
		c.Set("user_role", claims.Role)
		c.Set("user_email", claims.Email)

		c.Next()
	}
}

// RequireRole restricts a route to the given roles. Must run after
// RequireAuth.
func (am *AuthMiddleware) RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Message: "User role not found in context",
			})
			return
		}

		role, ok := v.(models.UserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Message: "Invalid user role",
			})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Message: "Insufficient role for this operation",
		})
	}
}

// RequireApproved gates premium content behind an approved payment. The
// check reads the stored status on every request, so an approval (or a
// data fix) takes effect without re-login. Admins pass unconditionally.
func (am *AuthMiddleware) RequireApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("user_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "User not authenticated",
			})
			return
		}

		accountID, ok := v.(uint)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "User not authenticated",
			})
			return
		}

		if err := am.accountService.CheckGatedAccess(c.Request.Context(), accountID); err != nil {
			if errors.Is(err, services.ErrNotEntitled) {
				c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
					Message: err.Error(),
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Failed to check entitlement",
			})
			return
		}

		c.Next()
	}
}
