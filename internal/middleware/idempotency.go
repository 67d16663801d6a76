package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyLockTTL = 30 * time.Second
	idempotencyDoneTTL = 24 * time.Hour
)

// Idempotency de-duplicates POST requests that carry an Idempotency-Key
// header. A key already marked done is rejected with 409; a key whose first
// request is still in flight is rejected with 409 as well, using a short
// redis lock so a crashed request frees the key on its own.
//
// With a nil client (redis not configured) the middleware is a no-op.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		doneKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.ClientIP(), idempKey)
		lockKey := doneKey + ":lock"

		if err := rdb.Get(c.Request.Context(), doneKey).Err(); err == nil {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "DUPLICATE_REQUEST",
				"message": "This request was already processed",
			})
			return
		}

		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "This request is still being processed",
			})
			return
		}

		c.Next()

		// Only mark success done; a failed attempt may be retried with the
		// same key.
		if c.Writer.Status() < http.StatusBadRequest {
			rdb.Set(c.Request.Context(), doneKey, "done", idempotencyDoneTTL)
		}
		rdb.Del(c.Request.Context(), lockKey)
	}
}
