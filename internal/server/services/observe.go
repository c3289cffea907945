package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/staffql/internal/logging"
	"github.com/dmitrijs2005/staffql/internal/server/metrics"
	"github.com/dmitrijs2005/staffql/internal/server/models"
)

// observe records the outcome of a finished operation. It is deferred with
// a pointer to the named result.
func observe(ctx context.Context, logger logging.Logger, m *metrics.Metrics, op string, start time.Time, res **models.Result) {
	r := *res
	if r == nil {
		return
	}
	m.ObserveOperation(op, r.Success, start)
	logger.Debug(ctx, "operation finished",
		"operation", op,
		"success", r.Success,
		"message", r.Message,
		"duration", time.Since(start),
	)
}
