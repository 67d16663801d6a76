package company

import (
	"careernest/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companies := r.Group("/companies")
	{
		companies.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)

		companies.GET("", handler.List)

		companies.GET("/:id", handler.GetDetail)
	}
}
