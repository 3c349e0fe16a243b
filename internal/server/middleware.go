package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibuchix/auto-strada001testing-sub006/internal/auctionerrors"
	"github.com/ibuchix/auto-strada001testing-sub006/internal/models"
	"github.com/ibuchix/auto-strada001testing-sub006/services/auction/helpers"
	"github.com/ibuchix/auto-strada001testing-sub006/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// CapabilityMiddleware resolves the caller's capability token from the
// identity headers once per request. Downstream code receives the token
// explicitly; no handler trusts a cached role flag.
func CapabilityMiddleware(c *gin.Context) {
	actorID := c.GetHeader("X-Actor-ID")
	role := models.Role(c.GetHeader("X-Actor-Role"))

	valid := role == models.RoleDealer || role == models.RoleSeller || role == models.RoleAdmin
	if actorID == "" || !valid {
		utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrPermissionDenied, "missing or invalid identity headers")
		c.Abort()
		return
	}

	c.Set(helpers.CapabilityKey, models.Capability{ActorID: actorID, Role: role})
	c.Next()
}
