package middleware

import (
	"fmt"
	"net/http"

	"rental-backoffice/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit limits each client IP to the formatted rate, e.g. "300-M".
func RateLimit(format string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		return nil, fmt.Errorf("rate limit %q: %w", format, err)
	}

	instance := limiter.New(memory.NewStore(), rate)
	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			util.Abort(c, http.StatusTooManyRequests, util.CodeRateLimited, "Too many requests. Please slow down.")
		}),
	), nil
}
