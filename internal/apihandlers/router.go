package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API routes onto the router. Kept here so the
// serve command and the handler tests share one route table.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	router.Use(corsMiddleware())

	router.POST("/categorize", h.CategorizeHandler)
	router.POST("/prompts", h.CreatePromptHandler)
	router.GET("/prompts", h.ListPromptsHandler)
	router.GET("/prompts/:id", h.GetPromptHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// corsMiddleware allows browser frontends on any origin to call the API.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
