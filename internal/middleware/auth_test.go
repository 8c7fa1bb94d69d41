package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(role interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if role != nil {
		c.Set("user_role", role)
	}
	return c, w
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	c, w := newTestContext("organizer")
	called := false
	handler := RequireRole("organizer", "admin")
	handler(c)
	if !c.IsAborted() {
		called = true
	}
	assert.True(t, called)
	assert.NotEqual(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	c, w := newTestContext("user")
	handler := RequireRole("organizer", "admin")
	handler(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	c, w := newTestContext(nil)
	handler := RequireRole("judge")
	handler(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAcceptsAnyOfMultipleAllowed(t *testing.T) {
	for _, role := range []string{"judge", "organizer", "admin"} {
		c, w := newTestContext(role)
		handler := RequireRole("judge", "organizer", "admin")
		handler(c)
		assert.False(t, c.IsAborted(), "role %q should be allowed", role)
		assert.NotEqual(t, http.StatusForbidden, w.Code)
	}
}
