package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUserRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleSuperAdmin.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.False(t, RoleSeller.IsAdmin())
	assert.False(t, RoleSpecialist.IsAdmin())
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleSeller, ParseUserRole("SELLER"))
	assert.Equal(t, RoleUser, ParseUserRole("seller"))
	assert.Equal(t, RoleUser, ParseUserRole(""))
}

func TestCanAccessResourceByOwnerID(t *testing.T) {
	assert.True(t, CanAccessResourceByOwnerID(1, RoleUser, 1))
	assert.False(t, CanAccessResourceByOwnerID(1, RoleUser, 2))
	assert.True(t, CanAccessResourceByOwnerID(1, RoleAdmin, 2))
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "allowed role", role: "SELLER", wantStatus: http.StatusOK},
		{name: "other role", role: "USER", wantStatus: http.StatusForbidden},
		{name: "no role", role: "", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) {
				if tt.role != "" {
					c.Set("user_role", tt.role)
				}
				c.Next()
			}, RequireRoles(RoleSeller, RoleAdmin), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
