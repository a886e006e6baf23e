package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoutCookieSecureFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ac := NewAuthController(nil)

	logout := func(t *testing.T) string {
		t.Helper()
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/auth/logout", nil)
		ac.Logout(c)
		cookie := w.Header().Get("Set-Cookie")
		require.NotEmpty(t, cookie)
		return cookie
	}

	t.Run("secure by default", func(t *testing.T) {
		t.Setenv("COOKIE_SECURE", "")
		assert.Contains(t, logout(t), "Secure")
	})

	t.Run("plain http opt-out", func(t *testing.T) {
		t.Setenv("COOKIE_SECURE", "false")
		assert.NotContains(t, logout(t), "Secure")
	})
}
