package news

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/cenkalti/backoff"

	"funsomex-web/internal/domain"
	"funsomex-web/internal/infra"
)

// Feed is the slice of the collaborator API serving the aggregated headlines.
type Feed interface {
	ExternalNews(ctx context.Context, source string) ([]domain.ExternalNewsItem, error)
	NewsSources(ctx context.Context) ([]domain.NewsSource, error)
	RefreshExternalNews(ctx context.Context) error
}

var errStillRefreshing = errors.New("news: refresh not observed yet")

// Refresher triggers the collaborator's background re-scrape and then polls
// until the published list changes. The collaborator exposes no completion
// signal, so a changed list is the only observable terminal condition; when
// nothing changes before the backoff gives up, the last fetched list is
// returned as-is. Cancelling the context stops the polling immediately.
type Refresher struct {
	svc          Feed
	logger       *infra.Logger
	maxWait      time.Duration
	pollInterval time.Duration
}

func NewRefresher(svc Feed, logger *infra.Logger, maxWait time.Duration) *Refresher {
	if maxWait <= 0 {
		maxWait = 45 * time.Second
	}
	return &Refresher{svc: svc, logger: logger, maxWait: maxWait, pollInterval: 2 * time.Second}
}

// Refresh asks the collaborator to re-scrape its sources and waits, with
// exponential backoff, for the headline list to change.
func (r *Refresher) Refresh(ctx context.Context) ([]domain.ExternalNewsItem, error) {
	before, err := r.svc.ExternalNews(ctx, "")
	if err != nil {
		// No snapshot to compare against; any successful poll counts.
		r.logger.Warn().Err(err).Msg("snapshot before refresh failed")
		before = nil
	}

	if err := r.svc.RefreshExternalNews(ctx); err != nil {
		return nil, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.pollInterval
	bo.MaxElapsedTime = r.maxWait

	var latest []domain.ExternalNewsItem
	err = backoff.Retry(func() error {
		items, err := r.svc.ExternalNews(ctx, "")
		if err != nil {
			return err
		}
		latest = items
		if before != nil && reflect.DeepEqual(before, items) {
			return errStillRefreshing
		}
		return nil
	}, backoff.WithContext(bo, ctx))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	switch {
	case err == nil:
		return latest, nil
	case errors.Is(err, errStillRefreshing):
		// Timed out waiting for a visible change; the old list is still valid.
		r.logger.Info().Msg("external news unchanged after refresh window")
		return latest, nil
	default:
		return nil, err
	}
}

// FilterBySource narrows an already-fetched headline list for display.
func FilterBySource(items []domain.ExternalNewsItem, source string) []domain.ExternalNewsItem {
	if source == "" {
		return items
	}
	out := make([]domain.ExternalNewsItem, 0, len(items))
	for _, item := range items {
		if item.Source == source {
			out = append(out, item)
		}
	}
	return out
}
