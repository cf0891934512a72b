package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/skhanzad/libralite/libralite/internal/model"
)

func (r *repository) DailyCheckouts(ctx context.Context, since time.Time) ([]model.DailyCount, error) {
	q := qb.Select("to_char(date_trunc('day', checkout_date at time zone 'UTC'), 'YYYY-MM-DD') as day", "count(*)::int as count").
		From(loansTableName).
		Where(sq.GtOrEq{"checkout_date": since}).
		GroupBy("day").
		OrderBy("day")
	return getMany[model.DailyCount](ctx, r, q)
}

func (r *repository) PopularItems(ctx context.Context, since time.Time, limit int) ([]model.PopularItem, error) {
	q := qb.Select("l.item_id as item_id", "i.title as title", "count(*)::int as checkouts").
		From(loansTableName + " l").
		Join(itemsTableName + " i on i.id = l.item_id").
		Where(sq.GtOrEq{"l.checkout_date": since}).
		GroupBy("l.item_id", "i.title").
		OrderBy("checkouts desc", "i.title").
		Limit(uint64(limit))
	return getMany[model.PopularItem](ctx, r, q)
}

func (r *repository) CountNewMembers(ctx context.Context, since time.Time) (int, error) {
	return count(ctx, r, qb.Select("count(*)").
		From(membersTableName).
		Where(sq.GtOrEq{"created_at": since}))
}
