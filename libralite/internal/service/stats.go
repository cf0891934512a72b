package service

import (
	"context"
	"time"

	"github.com/skhanzad/libralite/libralite/internal/model"
	"golang.org/x/sync/errgroup"
)

// GetStats summarises circulation over the last days calendar days, today
// included.
func (s *Service) GetStats(ctx context.Context, days int) (model.Stats, error) {
	if days <= 0 {
		days = defaultStatsDays
	}
	now := s.now().UTC()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))

	stats := model.Stats{Days: days}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.DailyCheckouts, err = s.repo.DailyCheckouts(gctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PopularItems, err = s.repo.PopularItems(gctx, since, popularItemsLimit)
		return err
	})
	g.Go(func() error {
		var err error
		stats.NewMembers, err = s.repo.CountNewMembers(gctx, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Stats{}, err
	}
	return stats, nil
}
