package app

import (
	"context"
	"strings"
	"time"

	"github.com/spoo-437/voiceofdine-ai/internal/adapters/observability"
	"github.com/spoo-437/voiceofdine-ai/internal/analysis"
	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// ReportService serves the dashboard read paths. Each report is a fresh
// single-pass computation over the entity's stored reviews; Redis only
// caches the finished result.
type ReportService struct {
	store    domain.ReviewStore
	cache    domain.Cache
	analyzer *analysis.Analyzer
	cacheTTL time.Duration
}

func NewReportService(s domain.ReviewStore, c domain.Cache, a *analysis.Analyzer, ttl time.Duration) *ReportService {
	return &ReportService{store: s, cache: c, analyzer: a, cacheTTL: ttl}
}

// EntityReport builds (or returns the cached) dashboard report for one
// entity. An entity with zero reviews is ErrNotFound — never a zeroed-out
// report.
func (s *ReportService) EntityReport(ctx context.Context, name string) (domain.Report, error) {
	key := "report:" + strings.ToLower(name)
	var rep domain.Report
	if ok, _ := s.cache.Get(ctx, key, &rep); ok {
		return rep, nil
	}

	reviews, err := s.store.ListByEntity(ctx, name)
	if err != nil {
		return domain.Report{}, err
	}
	if len(reviews) == 0 {
		return domain.Report{}, domain.ErrNotFound
	}

	// Prefer the stored spelling of the entity over the query spelling.
	display := reviews[0].Entity
	if display == "" {
		display = name
	}

	start := time.Now()
	rep, err = s.analyzer.BuildReport(display, reviews)
	observability.ObserveAnalysis("report", time.Since(start))
	if err != nil {
		return domain.Report{}, err
	}

	_ = s.cache.Set(ctx, key, rep, int(s.cacheTTL.Seconds()))
	return rep, nil
}

// Benchmark computes (or returns the cached) competitor comparison table
// over the full dataset.
func (s *ReportService) Benchmark(ctx context.Context) ([]domain.BenchmarkRow, error) {
	const key = "benchmark"
	var rows []domain.BenchmarkRow
	if ok, _ := s.cache.Get(ctx, key, &rows); ok {
		return rows, nil
	}

	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows = analysis.Benchmark(all, analysis.MinBenchmarkReviews)
	observability.ObserveAnalysis("benchmark", time.Since(start))

	_ = s.cache.Set(ctx, key, rows, int(s.cacheTTL.Seconds()))
	return rows, nil
}

// Entities lists the distinct entities available for dashboard selection.
func (s *ReportService) Entities(ctx context.Context) ([]domain.EntityCount, error) {
	return s.store.ListEntities(ctx)
}

// RecentReviews returns up to limit of the entity's newest raw reviews.
func (s *ReportService) RecentReviews(ctx context.Context, name string, limit int) ([]domain.Review, error) {
	reviews, err := s.store.ListByEntity(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, domain.ErrNotFound
	}
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}
