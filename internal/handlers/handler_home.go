package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHomeRoutes registers the root and health-check routes.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", home)
	r.GET("/health", health)
}

// home godoc
// @Summary Service banner
// @Description Returns the service name, useful as a liveness probe target
// @Tags home
// @Produce plain
// @Success 200 {string} string "billing rest api"
// @Router / [get]
func home(c *gin.Context) {
	c.String(http.StatusOK, "billing rest api")
}

// health godoc
// @Summary Health check
// @Tags home
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
