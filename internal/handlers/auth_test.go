package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VINNUMaharana0112/InnoMind-Physics-Master/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(auth *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	chain := append([]gin.HandlerFunc{auth.RequireAuth()}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("user_id"),
			"role":    c.MustGet("user_role"),
		})
	})
	router.GET("/probe", chain...)
	return router
}

func studentAccount() *models.Account {
	return &models.Account{
		ID:    42,
		Email: "asha@example.com",
		Role:  models.RoleStudent,
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	auth := NewAuthMiddleware("secret", time.Hour, nil)

	token, err := auth.IssueToken(studentAccount())
	require.NoError(t, err)

	router := testRouter(auth)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	auth := NewAuthMiddleware("secret", time.Hour, nil)
	router := testRouter(auth)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	expired := NewAuthMiddleware("secret", -time.Minute, nil)
	token, err := expired.IssueToken(studentAccount())
	require.NoError(t, err)

	router := testRouter(NewAuthMiddleware("secret", time.Hour, nil))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	other := NewAuthMiddleware("other-secret", time.Hour, nil)
	token, err := other.IssueToken(studentAccount())
	require.NoError(t, err)

	router := testRouter(NewAuthMiddleware("secret", time.Hour, nil))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	auth := NewAuthMiddleware("secret", time.Hour, nil)
	router := testRouter(auth, auth.RequireRole(models.RoleAdmin))

	studentToken, err := auth.IssueToken(studentAccount())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := auth.IssueToken(&models.Account{ID: 1, Email: "admin@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
