package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/spoo-437/voiceofdine-ai/internal/adapters/observability"
	"github.com/spoo-437/voiceofdine-ai/internal/dataset"
	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// IngestionService loads a review dataset, annotates each row with its
// sentiment label, and writes the result to the store. Labels and cleaned
// ratings are written exactly once; the analysis pipeline never mutates
// them afterwards.
type IngestionService struct {
	classifier domain.Classifier
	store      domain.ReviewStore
	cache      domain.Cache
	workers    int
}

func NewIngestionService(cl domain.Classifier, st domain.ReviewStore, cache domain.Cache, workers int) *IngestionService {
	if workers <= 0 {
		workers = 1
	}
	return &IngestionService{classifier: cl, store: st, cache: cache, workers: workers}
}

// IngestFile reads the CSV at path, classifies every review, and upserts
// the annotated rows. Configuration errors (missing file, no review
// column) bubble up for the caller to surface; per-record classification
// failures degrade to Neutral inside the classifier and never abort the
// batch. Returns the number of rows written.
func (s *IngestionService) IngestFile(ctx context.Context, path string) (int, error) {
	reviews, err := dataset.Load(path)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, domain.ErrNoDataset
	}

	if err := s.classifyAll(ctx, reviews); err != nil {
		return 0, err
	}

	if err := s.store.UpsertReviews(ctx, reviews); err != nil {
		return 0, fmt.Errorf("upsert reviews: %w", err)
	}
	observability.AddIngested(len(reviews))
	s.invalidate(ctx, reviews)
	return len(reviews), nil
}

// classifyAll labels reviews in place, bounding fan-out with a weighted
// semaphore. Each goroutine writes only its own index.
func (s *IngestionService) classifyAll(ctx context.Context, reviews []domain.Review) error {
	sem := semaphore.NewWeighted(int64(s.workers))
	var wg sync.WaitGroup
	for i := range reviews {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)
			reviews[i].Sentiment = s.classifier.Classify(ctx, reviews[i].Text)
		}(i)
	}
	wg.Wait()
	return nil
}

// invalidate drops stale cached reports for every touched entity, plus
// the benchmark table.
func (s *IngestionService) invalidate(ctx context.Context, reviews []domain.Review) {
	if s.cache == nil {
		return
	}
	seen := make(map[string]struct{})
	for _, r := range reviews {
		k := strings.ToLower(r.Entity)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		_ = s.cache.Del(ctx, "report:"+k)
	}
	_ = s.cache.Del(ctx, "benchmark")
}
