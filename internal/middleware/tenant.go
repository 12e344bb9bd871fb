package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const tenantIDKey = contextKey("tenantID")

// TenantHeader is the request header carrying the tenant identity.
// Authentication and tenant enforcement happen upstream at the gateway;
// this service trusts the header.
const TenantHeader = "X-Tenant-ID"

// TenantMiddleware extracts the tenant ID from the request header and makes
// it available to handlers. Requests without a tenant are rejected before
// reaching any handler.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(TenantHeader)
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Tenant ID required", "code": "INVALID_INPUT"})
			return
		}
		c.Set(string(tenantIDKey), tenantID)
		c.Next()
	}
}

// GetTenantIDFromContext retrieves the tenant ID from the Gin context.
// It returns the tenant ID and a boolean indicating if it was found.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	tenantVal, exists := c.Get(string(tenantIDKey))
	if !exists {
		return "", false
	}
	tenantID, ok := tenantVal.(string)
	if !ok {
		return "", false
	}
	return tenantID, true
}
