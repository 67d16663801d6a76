package stats

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/stats", handler.Stats)
}

// RegisterHealthRoute exposes the liveness payload at the root path.
func RegisterHealthRoute(router *gin.Engine, handler *Handler) {
	router.GET("/", handler.Health)
}
