package blog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	invalidationAttempts = 3
	invalidationBackoff  = 250 * time.Millisecond
)

// FeedInvalidationUseCase drops the cached RSS document whenever a blog post
// changes. It is driven by the content event consumer.
type FeedInvalidationUseCase struct {
	cache    service.FeedCache
	logger   logger.Logger
	attempts int
	backoff  time.Duration
}

func NewFeedInvalidationUseCase(cache service.FeedCache, log logger.Logger) *FeedInvalidationUseCase {
	return &FeedInvalidationUseCase{
		cache:    cache,
		logger:   log,
		attempts: invalidationAttempts,
		backoff:  invalidationBackoff,
	}
}

// Handle reports whether the cache was invalidated. A failing cache is retried
// a few times; the last error is returned once the attempts run out, and the
// cached document then lives until its TTL.
func (uc *FeedInvalidationUseCase) Handle(ctx context.Context, ev service.ContentEvent) (bool, error) {
	if ev.Resource != resource {
		return false, nil
	}

	var err error
	for attempt := 1; attempt <= uc.attempts; attempt++ {
		if err = uc.cache.Invalidate(ctx); err == nil {
			uc.logger.Info("RSS feed cache invalidated",
				zap.String("event", string(ev.Type)),
				zap.String("slug", ev.Key),
			)
			return true, nil
		}
		uc.logger.Warn("RSS feed cache invalidation failed",
			zap.Int("attempt", attempt),
			zap.String("slug", ev.Key),
			zap.Error(err),
		)
		if attempt == uc.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(uc.backoff * time.Duration(attempt)):
		}
	}
	return false, err
}
