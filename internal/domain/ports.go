package domain

import "context"

type ReviewStore interface {
	// Write path
	UpsertReviews(ctx context.Context, rs []Review) error

	// Read paths
	ListByEntity(ctx context.Context, entity string) ([]Review, error) // newest first
	ListAll(ctx context.Context) ([]Review, error)
	ListEntities(ctx context.Context) ([]EntityCount, error)
}

// Classifier labels one review's sentiment. Implementations must degrade
// internal failures to Neutral instead of failing the batch.
type Classifier interface {
	Classify(ctx context.Context, text string) Sentiment
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
