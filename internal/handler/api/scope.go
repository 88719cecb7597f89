package api

import (
	"net/http"

	"slotbook/internal/domain/identity"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// requestScope pulls the tenant and actor the middlewares stored; both
// missing means a route was registered without its middleware chain.
func requestScope(c *gin.Context) (string, identity.Actor, bool) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("tenant missing from context"), "Tenant header required")
		return "", identity.Actor{}, false
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("actor missing from context"), "Internal server error")
		return "", identity.Actor{}, false
	}

	return tenantID, actor, true
}
