package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"go.uber.org/zap"
)

var itemColumns = []string{
	"id", "title", "author", "isbn", "item_type", "is_available",
	"on_hold_shelf", "hold_shelf_for", "created_at", "updated_at",
}

func (r *repository) CreateItem(ctx context.Context, item model.Item) error {
	q := qb.Insert(itemsTableName).
		Columns(itemColumns...).
		Values(item.ID, item.Title, item.Author, item.ISBN, item.ItemType, item.IsAvailable,
			item.OnHoldShelf, item.HoldShelfFor, item.CreatedAt, item.UpdatedAt)
	return exec(ctx, r, q, nil)
}

func (r *repository) GetItem(ctx context.Context, id string) (model.Item, error) {
	q := r.forUpdate(qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"id": id}))
	return getOne[model.Item](ctx, r, q, errs.ErrItemNotFound)
}

func (r *repository) ListItems(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	q := qb.Select(itemColumns...).
		From(itemsTableName).
		OrderBy("lower(title)", "id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
			sq.ILike{"isbn": pattern},
		})
	}
	if filter.ItemType != "" {
		q = q.Where(sq.Eq{"item_type": filter.ItemType})
	}
	if filter.Available != nil {
		q = q.Where(sq.Eq{"is_available": *filter.Available})
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}
	r.log.Debug("ListItems", zap.Any("filter", filter))
	return getMany[model.Item](ctx, r, q)
}

func (r *repository) UpdateItem(ctx context.Context, item model.Item) error {
	q := qb.Update(itemsTableName).
		SetMap(map[string]any{
			"title":          item.Title,
			"author":         item.Author,
			"isbn":           item.ISBN,
			"item_type":      item.ItemType,
			"is_available":   item.IsAvailable,
			"on_hold_shelf":  item.OnHoldShelf,
			"hold_shelf_for": item.HoldShelfFor,
			"updated_at":     item.UpdatedAt,
		}).
		Where(sq.Eq{"id": item.ID})
	return exec(ctx, r, q, errs.ErrItemNotFound)
}
