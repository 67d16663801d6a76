package job

import (
	"careernest/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	jobs := r.Group("/jobs")
	{
		jobs.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)

		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetByID)

		jobs.PATCH("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)

		jobs.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
