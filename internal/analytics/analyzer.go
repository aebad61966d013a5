package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/traintower/backend/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=analytics_test

const reportCacheExpireSeconds = 5 * 60

type reportsRepo interface {
	BuildReport(ctx context.Context, trainerID int, from, to time.Time) (*Report, error)
}

// Analyzer serves reports, caching the serialized result. The grouped
// queries are the expensive part, dashboards poll this endpoint often.
type Analyzer struct {
	repo  reportsRepo
	cache *freecache.Cache
}

func NewAnalyzer(repo reportsRepo, cacheSizeBytes int) *Analyzer {
	return &Analyzer{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeBytes),
	}
}

func (a *Analyzer) GetReport(ctx context.Context, trainerID int, from, to time.Time) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analytics.getReport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("trainer.id", trainerID))

	cacheKey := []byte(fmt.Sprintf("report||%d||%d||%d", trainerID, from.Unix(), to.Unix()))
	if cached, err := a.cache.Get(cacheKey); err == nil {
		var report Report
		if err := json.Unmarshal(cached, &report); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &report, nil
		}
		log.Errorf("unmarshal cached report for trainer %d: %s", trainerID, err)
	}

	report, err := a.repo.BuildReport(ctx, trainerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	reportJson, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	if err := a.cache.Set(cacheKey, reportJson, reportCacheExpireSeconds); err != nil {
		// a failed cache write only costs the next caller a recompute
		log.Errorf("cache report for trainer %d: %s", trainerID, err)
	}

	return report, nil
}
