package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sessionRouter(tm *jwt.TokenManager) *gin.Engine {
	router := gin.New()
	router.GET("/me", SessionMiddleware(tm, false), func(c *gin.Context) {
		session, err := GetUserSession(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, session)
	})
	return router
}

func TestSessionMiddleware_ValidCookie(t *testing.T) {
	tm := jwt.NewTokenManager("test-secret", "skillhub-test", 1)
	router := sessionRouter(tm)

	token, err := tm.GenerateToken(42, "user@example.com", string(models.RoleInstructor))
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", http.NoBody)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"instructor"`)
}

func TestSessionMiddleware_MissingCookie(t *testing.T) {
	tm := jwt.NewTokenManager("test-secret", "skillhub-test", 1)
	router := sessionRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionMiddleware_BadToken(t *testing.T) {
	tm := jwt.NewTokenManager("test-secret", "skillhub-test", 1)
	router := sessionRouter(tm)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", http.NoBody)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The invalid cookie gets cleared
	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
