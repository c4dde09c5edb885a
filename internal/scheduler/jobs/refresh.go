package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/stabrank/internal/aggregate"
	"github.com/wonny/stabrank/internal/api/handlers"
	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/internal/dataset"
	"github.com/wonny/stabrank/internal/rank"
	"github.com/wonny/stabrank/pkg/config"
	"github.com/wonny/stabrank/pkg/logger"
)

// RefreshJob re-fetches the watched trial source, recomputes the rank
// summary, persists it as a run and pushes it to live subscribers.
// ⭐ SSOT: 감시 소스 갱신은 이 작업에서만
type RefreshJob struct {
	fetcher    *dataset.Fetcher
	aggregator *aggregate.Aggregator
	repo       contracts.RunRepository // nil when the database is disabled
	hub        *handlers.Hub           // nil when the API server is not running
	cfg        config.WatchConfig
	logger     *logger.Logger
}

// NewRefreshJob creates a new refresh job
func NewRefreshJob(
	fetcher *dataset.Fetcher,
	aggregator *aggregate.Aggregator,
	repo contracts.RunRepository,
	hub *handlers.Hub,
	cfg config.WatchConfig,
	log *logger.Logger,
) *RefreshJob {
	return &RefreshJob{
		fetcher:    fetcher,
		aggregator: aggregator,
		repo:       repo,
		hub:        hub,
		cfg:        cfg,
		logger:     log,
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return "source_refresh"
}

// Schedule returns the cron schedule (seconds field included)
func (j *RefreshJob) Schedule() string {
	return j.cfg.Schedule
}

// Run fetches, aggregates, persists and broadcasts one summary
func (j *RefreshJob) Run(ctx context.Context) error {
	policy, err := rank.ParsePolicy(j.cfg.Policy)
	if err != nil {
		return fmt.Errorf("refresh job: %w", err)
	}

	ds, err := j.fetcher.Fetch(ctx, j.cfg.SourceURL)
	if err != nil {
		return fmt.Errorf("refresh job: %w", err)
	}

	summary, err := j.aggregator.Aggregate(ctx, ds, policy)
	if err != nil {
		return fmt.Errorf("refresh job: %w", err)
	}

	if j.repo != nil {
		run := &contracts.RankRun{
			Source:  ds.Source,
			Policy:  policy.String(),
			Summary: *summary,
		}
		id, err := j.repo.Insert(ctx, run)
		if err != nil {
			return fmt.Errorf("refresh job: save run: %w", err)
		}
		j.logger.WithField("run_id", id).Debug("Run persisted")
	}

	if j.hub != nil {
		j.hub.Publish(summary)
	}

	j.logger.WithFields(map[string]interface{}{
		"source":       ds.Source,
		"policy":       policy.String(),
		"rows":         ds.Rows(),
		"best_index":   summary.BestIndex,
		"stable_index": summary.StableIndex,
	}).Info("Watched source refreshed")

	return nil
}
