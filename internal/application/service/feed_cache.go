package service

import (
	"context"
	"time"
)

// FeedCache holds the rendered RSS document between content changes.
type FeedCache interface {
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, doc string, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
