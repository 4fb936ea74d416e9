package storage

import (
	"context"
	"time"

	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
	"github.com/uptrace/bun"
)

// QueryLogger writes every executed statement to the storage logger.
type QueryLogger struct {
	logger interfaces.Logger
}

var _ bun.QueryHook = (*QueryLogger)(nil)

func NewQueryLogger(logger interfaces.Logger) *QueryLogger {
	return &QueryLogger{logger: logger}
}

func (h *QueryLogger) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryLogger) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if h == nil || h.logger == nil || event == nil {
		return
	}
	logger := h.logger.WithContext(ctx)
	elapsed := time.Since(event.StartTime)
	if event.Err != nil {
		logger.Debug("storage.query.failed", "query", event.Query, "duration", elapsed, "error", event.Err)
		return
	}
	logger.Trace("storage.query", "query", event.Query, "duration", elapsed)
}
