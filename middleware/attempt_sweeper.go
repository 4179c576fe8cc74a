package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"judge/services"
)

// AttemptSweeperMiddleware runs a timeout sweep over in-progress attempts
// before each authenticated request is handled. Two overlapping sweeps are
// harmless: a timed-out attempt is no longer in progress, so the second run
// finds nothing. Sweep failures are logged and never fail the request.
func AttemptSweeperMiddleware(sweeper *services.Sweeper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if swept, err := sweeper.Sweep(); err != nil {
			log.Printf("Attempt sweep failed: %v", err)
		} else if swept > 0 {
			log.Printf("Timed out %d stale attempts", swept)
		}
		c.Next()
	}
}
