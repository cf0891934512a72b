package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/pkg/postgres"
)

var holdInsertColumns = []string{
	"id", "item_id", "library_card_number", "member_name", "member_email", "status",
	"position", "placed_at", "ready_at", "notified_at", "expires_at", "fulfilled_at", "updated_at",
}

// holdColumns adds the sequence the database assigns on insert.
var holdColumns = []string{
	"id", "item_id", "library_card_number", "member_name", "member_email", "status",
	"position", "placed_at", "ready_at", "notified_at", "expires_at", "fulfilled_at", "updated_at",
	"seq",
}

var shelfColumns = []string{
	"id", "hold_id", "item_id", "library_card_number", "member_name", "item_title",
	"placed_on_shelf_at", "expires_at", "notification_sent",
}

func (r *repository) CreateHold(ctx context.Context, h model.Hold) error {
	q := qb.Insert(holdsTableName).
		Columns(holdInsertColumns...).
		Values(h.ID, h.ItemID, h.LibraryCardNumber, h.MemberName, h.MemberEmail, h.Status,
			h.Position, h.PlacedAt, h.ReadyAt, h.NotifiedAt, h.ExpiresAt, h.FulfilledAt, h.UpdatedAt)
	if err := exec(ctx, r, q, nil); err != nil {
		if postgres.IsUniqueViolation(err, "holds_open_member_uniq") {
			return errs.ErrDuplicateHold
		}
		return err
	}
	return nil
}

func (r *repository) GetHold(ctx context.Context, id string) (model.Hold, error) {
	q := r.forUpdate(qb.Select(holdColumns...).
		From(holdsTableName).
		Where(sq.Eq{"id": id}))
	return getOne[model.Hold](ctx, r, q, errs.ErrHoldNotFound)
}

func (r *repository) UpdateHold(ctx context.Context, h model.Hold) error {
	q := qb.Update(holdsTableName).
		SetMap(map[string]any{
			"status":       h.Status,
			"position":     h.Position,
			"ready_at":     h.ReadyAt,
			"notified_at":  h.NotifiedAt,
			"expires_at":   h.ExpiresAt,
			"fulfilled_at": h.FulfilledAt,
			"updated_at":   h.UpdatedAt,
		}).
		Where(sq.Eq{"id": h.ID})
	return exec(ctx, r, q, errs.ErrHoldNotFound)
}

func (r *repository) ListHolds(ctx context.Context, filter model.HoldFilter) ([]model.Hold, error) {
	q := qb.Select(holdColumns...).
		From(holdsTableName).
		OrderBy("placed_at desc", "seq desc")
	if filter.ItemID != "" {
		q = q.Where(sq.Eq{"item_id": filter.ItemID})
	}
	if filter.LibraryCardNumber != "" {
		q = q.Where(sq.Eq{"library_card_number": filter.LibraryCardNumber})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where(sq.Eq{"status": statuses})
	}
	return getMany[model.Hold](ctx, r, q)
}

func (r *repository) ListActiveHolds(ctx context.Context, itemID string) ([]model.Hold, error) {
	q := r.forUpdate(qb.Select(holdColumns...).
		From(holdsTableName).
		Where(sq.Eq{"item_id": itemID, "status": model.HoldActive}).
		OrderBy("placed_at", "seq"))
	return getMany[model.Hold](ctx, r, q)
}

func (r *repository) CreateShelfEntry(ctx context.Context, e model.HoldShelfEntry) error {
	q := qb.Insert(holdShelfTableName).
		Columns(shelfColumns...).
		Values(e.ID, e.HoldID, e.ItemID, e.LibraryCardNumber, e.MemberName, e.ItemTitle,
			e.PlacedOnShelfAt, e.ExpiresAt, e.NotificationSent)
	return exec(ctx, r, q, nil)
}

func (r *repository) getShelfEntry(ctx context.Context, where sq.Eq) (model.HoldShelfEntry, error) {
	q := r.forUpdate(qb.Select(shelfColumns...).
		From(holdShelfTableName).
		Where(where))
	return getOne[model.HoldShelfEntry](ctx, r, q, errs.ErrShelfEntryNotFound)
}

func (r *repository) GetShelfEntry(ctx context.Context, id string) (model.HoldShelfEntry, error) {
	return r.getShelfEntry(ctx, sq.Eq{"id": id})
}

func (r *repository) GetShelfEntryByItem(ctx context.Context, itemID string) (model.HoldShelfEntry, error) {
	return r.getShelfEntry(ctx, sq.Eq{"item_id": itemID})
}

func (r *repository) GetShelfEntryByHold(ctx context.Context, holdID string) (model.HoldShelfEntry, error) {
	return r.getShelfEntry(ctx, sq.Eq{"hold_id": holdID})
}

func (r *repository) DeleteShelfEntry(ctx context.Context, id string) error {
	return exec(ctx, r, qb.Delete(holdShelfTableName).Where(sq.Eq{"id": id}), errs.ErrShelfEntryNotFound)
}

func (r *repository) ListShelfEntries(ctx context.Context, cardNumber string) ([]model.HoldShelfEntry, error) {
	q := qb.Select(shelfColumns...).
		From(holdShelfTableName).
		OrderBy("placed_on_shelf_at desc", "id")
	if cardNumber != "" {
		q = q.Where(sq.Eq{"library_card_number": cardNumber})
	}
	return getMany[model.HoldShelfEntry](ctx, r, q)
}

func (r *repository) ListExpiredShelfEntries(ctx context.Context, now time.Time) ([]model.HoldShelfEntry, error) {
	q := r.forUpdate(qb.Select(shelfColumns...).
		From(holdShelfTableName).
		Where(sq.Lt{"expires_at": now}).
		OrderBy("expires_at", "id"))
	return getMany[model.HoldShelfEntry](ctx, r, q)
}

func (r *repository) MarkShelfNotified(ctx context.Context, id string) error {
	q := qb.Update(holdShelfTableName).
		Set("notification_sent", true).
		Where(sq.Eq{"id": id})
	return exec(ctx, r, q, errs.ErrShelfEntryNotFound)
}
