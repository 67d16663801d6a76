package application

import (
	"careernest/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	// Job-scoped routes share the /jobs/:id prefix with the job module;
	// the param name must stay "id" on both sides.
	r.POST("/jobs/:id/apply",
		middleware.RateLimitByIP(1, 5),
		middleware.Idempotency(rdb),
		handler.Apply,
	)
	r.GET("/jobs/:id/applications", handler.ListByJob)

	applications := r.Group("/applications")
	{
		applications.POST("",
			middleware.RateLimitByIP(1, 5),
			middleware.Idempotency(rdb),
			handler.ApplyCompat,
		)

		applications.GET("/:id", handler.GetByID)

		applications.PATCH("/:id/status",
			middleware.RateLimitByIP(1, 5),
			handler.UpdateStatus,
		)
	}

	r.GET("/students/:email/applications", handler.ListByStudent)
}
