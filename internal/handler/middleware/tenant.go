package middleware

import (
	"net/http"
	"strings"

	"slotbook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const (
	tenantHeader = "X-Tenant-ID"
	ctxTenantKey = "tenant_id"
)

// RequireTenant trusts the tenant resolver sitting in front of this
// service (domain routing or gateway) to set the header; the core only
// scopes by it.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(tenantHeader))
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				httperr.NewResponse(http.StatusBadRequest, "Tenant header required"))
			return
		}

		c.Set(ctxTenantKey, tenantID)
		c.Next()
	}
}

func GetTenantID(c *gin.Context) (string, bool) {
	tenantID, exists := c.Get(ctxTenantKey)
	if !exists {
		return "", false
	}

	id, ok := tenantID.(string)
	return id, ok && id != ""
}
