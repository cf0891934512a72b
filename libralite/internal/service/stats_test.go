package service_test

import (
	"testing"
	"time"

	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/stretchr/testify/require"
)

func TestService_GetStats(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	jane := f.member(t, "Jane", "jane@x.com")
	dune := f.item(t, "Dune", model.ItemTypeDVD)
	emma := f.item(t, "Emma", model.ItemTypeDVD)

	// day 0: Dune, day 1: Emma, day 2: Dune again
	loan := f.checkout(t, jane, dune)
	f.clock.Advance(24 * time.Hour)
	_, err := f.svc.CheckinItem(f.ctx, model.CheckinRequest{LoanID: loan.ID, ItemID: dune.ID})
	require.NoError(t, err)
	f.checkout(t, jane, emma)
	f.clock.Advance(24 * time.Hour)
	f.checkout(t, jane, dune)
	f.member(t, "John", "john@x.com")

	stats, err := f.svc.GetStats(f.ctx, 0)
	require.NoError(t, err)
	require.Equal(t, 7, stats.Days)
	require.Equal(t, []model.DailyCount{
		{Date: "2024-01-01", Count: 1},
		{Date: "2024-01-02", Count: 1},
		{Date: "2024-01-03", Count: 1},
	}, stats.DailyCheckouts)
	require.Equal(t, []model.PopularItem{
		{ItemID: dune.ID, Title: "Dune", Checkouts: 2},
		{ItemID: emma.ID, Title: "Emma", Checkouts: 1},
	}, stats.PopularItems)
	require.Equal(t, 2, stats.NewMembers)

	// today only
	stats, err = f.svc.GetStats(f.ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []model.DailyCount{{Date: "2024-01-03", Count: 1}}, stats.DailyCheckouts)
	require.Equal(t, 1, stats.NewMembers)
}
