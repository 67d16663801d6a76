package bookmark

import (
	"careernest/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	bookmarks := r.Group("/bookmarks")
	{
		bookmarks.POST("",
			middleware.RateLimitByIP(2, 10),
			handler.Create,
		)

		bookmarks.DELETE("",
			middleware.RateLimitByIP(2, 10),
			handler.Delete,
		)
	}

	r.GET("/students/:email/bookmarks", handler.ListByStudent)
}
