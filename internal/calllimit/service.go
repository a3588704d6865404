package calllimit

import (
	"context"
	"fmt"
	"net/http"

	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/session"

	"github.com/gin-gonic/gin"
)

// Result represents the outcome of a concurrency check
type Result struct {
	Allowed bool `json:"allowed"`
	Active  int  `json:"active"`
	Limit   int  `json:"limit"`
}

// Service caps the number of concurrently active calls. The count is the
// number of live session records, so every instance behind the load balancer
// sees the same number.
type Service struct {
	sessions session.Store
	limit    int
	logger   *observability.Logger
}

// NewService creates a call concurrency limiter
func NewService(sessions session.Store, limit int, logger *observability.Logger) *Service {
	return &Service{
		sessions: sessions,
		limit:    limit,
		logger:   logger,
	}
}

// Check counts active calls against the limit.
func (s *Service) Check(ctx context.Context) (Result, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to count active calls: %w", err)
	}

	active := len(sessions)
	return Result{
		Allowed: active < s.limit,
		Active:  active,
		Limit:   s.limit,
	}, nil
}

// Middleware rejects call placement with 429 once the limit is reached. A
// degraded store lets the request through; capacity limiting never blocks
// calls on a store outage.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		result, err := s.Check(ctx)
		if err != nil {
			s.logger.Warn(ctx, "call limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-Call-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-Call-Active", fmt.Sprintf("%d", result.Active))

		if !result.Allowed {
			s.logger.Warn(ctx, fmt.Sprintf("concurrent call limit reached: %d/%d", result.Active, result.Limit), nil)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":  "Concurrent call limit reached",
				"code":   "CALL_LIMIT_EXCEEDED",
				"active": result.Active,
				"limit":  result.Limit,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
