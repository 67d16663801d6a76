package response

import (
	"careernest/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}

// NewPaginationMeta computes the page window metadata for a result set.
// TotalPages is floored at 1 so an empty result still reports one page.
func NewPaginationMeta(total int64, page, pageSize int) PaginationMeta {
	totalPages := 1
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
		if totalPages < 1 {
			totalPages = 1
		}
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	errBody := map[string]interface{}{
		"code":    errorCode,
		"message": message,
		"details": details,
	}
	if rid := contextutil.GetRequestID(c.Request.Context()); rid != "" {
		errBody["request_id"] = rid
	}

	c.JSON(status, ApiEnvelope{
		Ok:    false,
		Error: errBody,
	})
}
