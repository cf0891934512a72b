package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/libralite/internal/repository"
	"go.uber.org/zap"
)

// promotion is a hold that reached the shelf inside a transaction and is
// announced once that transaction commits.
type promotion struct {
	hold  model.Hold
	entry model.HoldShelfEntry
}

func (s *Service) PlaceHold(ctx context.Context, req model.PlaceHoldRequest) (model.Hold, error) {
	var hold model.Hold
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		// the item row lock serialises placements on the same queue
		item, err := tx.GetItem(ctx, req.ItemID)
		if err != nil {
			return err
		}
		if item.IsAvailable && !item.OnHoldShelf {
			return errs.ErrItemAvailable
		}
		open, err := tx.ListHolds(ctx, model.HoldFilter{
			ItemID:            item.ID,
			LibraryCardNumber: req.LibraryCardNumber,
			Statuses:          []model.HoldStatus{model.HoldActive, model.HoldReady},
		})
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return errs.ErrDuplicateHold
		}
		active, err := tx.ListActiveHolds(ctx, item.ID)
		if err != nil {
			return err
		}

		now := s.now()
		hold = model.Hold{
			ID:                uuid.NewString(),
			ItemID:            item.ID,
			LibraryCardNumber: req.LibraryCardNumber,
			MemberName:        req.MemberName,
			MemberEmail:       normalizeEmail(req.MemberEmail),
			Status:            model.HoldActive,
			Position:          len(active) + 1,
			PlacedAt:          now,
			UpdatedAt:         now,
		}
		return tx.CreateHold(ctx, hold)
	})
	if err != nil {
		return model.Hold{}, err
	}
	s.metrics.HoldEvent(string(model.HoldActive))
	return hold, nil
}

func (s *Service) GetHold(ctx context.Context, id string) (model.HoldView, error) {
	hold, err := s.repo.GetHold(ctx, id)
	if err != nil {
		return model.HoldView{}, err
	}
	view := model.HoldView{Hold: hold}
	if hold.Status == model.HoldActive {
		if view.QueuePosition, err = s.GetQueuePosition(ctx, hold.ItemID, hold.ID); err != nil {
			return model.HoldView{}, err
		}
	}
	return view, nil
}

func (s *Service) ListHolds(ctx context.Context, filter model.HoldFilter) ([]model.Hold, error) {
	return s.repo.ListHolds(ctx, filter)
}

// GetQueuePosition returns the 1-based rank of an active hold, nil when the
// hold is not waiting in the item's queue.
func (s *Service) GetQueuePosition(ctx context.Context, itemID, holdID string) (*int, error) {
	active, err := s.repo.ListActiveHolds(ctx, itemID)
	if err != nil {
		return nil, err
	}
	for i, h := range active {
		if h.ID == holdID {
			pos := i + 1
			return &pos, nil
		}
	}
	return nil, nil
}

func (s *Service) RecalculateQueuePositions(ctx context.Context, itemID string) ([]model.Hold, error) {
	var holds []model.Hold
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		if _, err := tx.GetItem(ctx, itemID); err != nil {
			return err
		}
		var err error
		holds, err = s.renumber(ctx, tx, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return holds, nil
}

// renumber rewrites active positions to 1..N in placement order.
func (s *Service) renumber(ctx context.Context, tx repository.Store, itemID string) ([]model.Hold, error) {
	active, err := tx.ListActiveHolds(ctx, itemID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range active {
		if active[i].Position == i+1 {
			continue
		}
		active[i].Position = i + 1
		active[i].UpdatedAt = now
		if err := tx.UpdateHold(ctx, active[i]); err != nil {
			return nil, err
		}
	}
	return active, nil
}

// PromoteNextHold puts the head of the item's queue on the hold shelf. An
// item still on loan is checked in first, assessing any late fee, so the
// item leaves the borrower before it is reserved.
func (s *Service) PromoteNextHold(ctx context.Context, itemID string) (model.HoldShelfEntry, error) {
	var (
		promoted *promotion
		recalled *model.CheckinResult
	)
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		item, err := tx.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		active, err := tx.ListActiveHolds(ctx, itemID)
		if err != nil {
			return err
		}
		if len(active) == 0 {
			return errs.ErrNoActiveHolds
		}
		if !item.IsAvailable {
			if recalled, err = s.recall(ctx, tx, itemID); err != nil {
				return err
			}
		}
		if promoted, err = s.promoteNext(ctx, tx, itemID); err != nil {
			return err
		}
		if promoted == nil {
			return errs.ErrNoActiveHolds
		}
		return nil
	})
	if err != nil {
		return model.HoldShelfEntry{}, err
	}
	if recalled != nil {
		s.recordCheckin(*recalled)
	}
	s.announce(ctx, promoted)
	return promoted.entry, nil
}

// recall closes the open loan on an item that is wanted for the hold shelf.
func (s *Service) recall(ctx context.Context, tx repository.Store, itemID string) (*model.CheckinResult, error) {
	loan, err := tx.GetOpenLoanByItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, errs.ErrLoanNotFound) {
			return nil, errs.ErrItemUnavailable
		}
		return nil, err
	}
	res, err := s.checkin(ctx, tx, loan.ID, itemID)
	if err != nil {
		return nil, err
	}
	s.log.Info("loan recalled for hold shelf",
		zap.String("loanId", loan.ID), zap.String("itemId", itemID))
	return &res, nil
}

// promoteNext moves the head of the item's queue to the hold shelf.
// It returns nil without error when nobody is waiting.
func (s *Service) promoteNext(ctx context.Context, tx repository.Store, itemID string) (*promotion, error) {
	item, err := tx.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	active, err := tx.ListActiveHolds(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, nil
	}
	if !item.IsAvailable {
		return nil, errs.ErrItemUnavailable
	}
	if item.OnHoldShelf {
		return nil, errs.ErrItemReserved
	}

	now := s.now()
	expires := now.Add(s.shelfRetention)
	head := active[0]
	head.Status = model.HoldReady
	head.Position = 0
	head.ReadyAt = &now
	head.NotifiedAt = &now
	head.ExpiresAt = &expires
	head.UpdatedAt = now
	if err := tx.UpdateHold(ctx, head); err != nil {
		return nil, err
	}

	entry := model.HoldShelfEntry{
		ID:                uuid.NewString(),
		HoldID:            head.ID,
		ItemID:            item.ID,
		LibraryCardNumber: head.LibraryCardNumber,
		MemberName:        head.MemberName,
		ItemTitle:         item.Title,
		PlacedOnShelfAt:   now,
		ExpiresAt:         expires,
	}
	if err := tx.CreateShelfEntry(ctx, entry); err != nil {
		return nil, err
	}

	card := head.LibraryCardNumber
	item.OnHoldShelf = true
	item.HoldShelfFor = &card
	item.UpdatedAt = now
	if err := tx.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	if _, err := s.renumber(ctx, tx, itemID); err != nil {
		return nil, err
	}
	return &promotion{hold: head, entry: entry}, nil
}

// releaseShelf takes a ready hold's item off the shelf and promotes the
// next hold in line.
func (s *Service) releaseShelf(ctx context.Context, tx repository.Store, hold model.Hold) (*promotion, error) {
	entry, err := tx.GetShelfEntryByHold(ctx, hold.ID)
	switch {
	case err == nil:
		if err := tx.DeleteShelfEntry(ctx, entry.ID); err != nil {
			return nil, err
		}
	case !errors.Is(err, errs.ErrShelfEntryNotFound):
		return nil, err
	}

	item, err := tx.GetItem(ctx, hold.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OnHoldShelf && item.HoldShelfFor != nil && *item.HoldShelfFor == hold.LibraryCardNumber {
		item.OnHoldShelf = false
		item.HoldShelfFor = nil
		item.UpdatedAt = s.now()
		if err := tx.UpdateItem(ctx, item); err != nil {
			return nil, err
		}
	}
	if !item.IsAvailable || item.OnHoldShelf {
		return nil, nil
	}
	return s.promoteNext(ctx, tx, hold.ItemID)
}

// CancelHold cancels an active or ready hold and renumbers the queue.
func (s *Service) CancelHold(ctx context.Context, id string) (model.Hold, error) {
	var (
		hold     model.Hold
		promoted *promotion
	)
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		var err error
		if hold, err = tx.GetHold(ctx, id); err != nil {
			return err
		}
		if !hold.Status.CanTransition(model.HoldCancelled) {
			return errs.ErrInvalidHoldTransition
		}
		wasReady := hold.Status == model.HoldReady

		hold.Status = model.HoldCancelled
		hold.Position = 0
		hold.UpdatedAt = s.now()
		if err := tx.UpdateHold(ctx, hold); err != nil {
			return err
		}
		if wasReady {
			if promoted, err = s.releaseShelf(ctx, tx, hold); err != nil {
				return err
			}
		}
		_, err = s.renumber(ctx, tx, hold.ItemID)
		return err
	})
	if err != nil {
		return model.Hold{}, err
	}
	s.metrics.HoldEvent(string(model.HoldCancelled))
	s.announce(ctx, promoted)
	return hold, nil
}

// UpdateHoldStatus applies a staff-requested transition. Moving a hold to
// ready goes through promotion and is only allowed for the queue head.
func (s *Service) UpdateHoldStatus(ctx context.Context, id string, status model.HoldStatus) (model.Hold, error) {
	if status == model.HoldCancelled {
		return s.CancelHold(ctx, id)
	}

	var (
		hold     model.Hold
		promoted *promotion
	)
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		var err error
		if hold, err = tx.GetHold(ctx, id); err != nil {
			return err
		}
		if !hold.Status.CanTransition(status) {
			return errs.ErrInvalidHoldTransition
		}

		switch status {
		case model.HoldReady:
			active, err := tx.ListActiveHolds(ctx, hold.ItemID)
			if err != nil {
				return err
			}
			if len(active) == 0 || active[0].ID != hold.ID {
				return errs.ErrNotQueueHead
			}
			if promoted, err = s.promoteNext(ctx, tx, hold.ItemID); err != nil {
				return err
			}
			hold = promoted.hold
			return nil
		case model.HoldFulfilled:
			now := s.now()
			hold.Status = model.HoldFulfilled
			hold.FulfilledAt = &now
			hold.UpdatedAt = now
			if err := tx.UpdateHold(ctx, hold); err != nil {
				return err
			}
			return s.clearShelf(ctx, tx, hold)
		case model.HoldExpired:
			hold, promoted, err = s.expireHold(ctx, tx, hold)
			return err
		}
		return errs.ErrInvalidHoldTransition
	})
	if err != nil {
		return model.Hold{}, err
	}
	if status != model.HoldReady {
		s.metrics.HoldEvent(string(status))
	}
	s.announce(ctx, promoted)
	return hold, nil
}

// clearShelf removes the shelf entry of a fulfilled hold without promoting.
func (s *Service) clearShelf(ctx context.Context, tx repository.Store, hold model.Hold) error {
	entry, err := tx.GetShelfEntryByHold(ctx, hold.ID)
	switch {
	case err == nil:
		if err := tx.DeleteShelfEntry(ctx, entry.ID); err != nil {
			return err
		}
	case !errors.Is(err, errs.ErrShelfEntryNotFound):
		return err
	}
	item, err := tx.GetItem(ctx, hold.ItemID)
	if err != nil {
		return err
	}
	if item.HoldShelfFor == nil || *item.HoldShelfFor != hold.LibraryCardNumber {
		return nil
	}
	item.OnHoldShelf = false
	item.HoldShelfFor = nil
	item.UpdatedAt = s.now()
	return tx.UpdateItem(ctx, item)
}

func (s *Service) expireHold(ctx context.Context, tx repository.Store, hold model.Hold) (model.Hold, *promotion, error) {
	hold.Status = model.HoldExpired
	hold.UpdatedAt = s.now()
	if err := tx.UpdateHold(ctx, hold); err != nil {
		return model.Hold{}, nil, err
	}
	promoted, err := s.releaseShelf(ctx, tx, hold)
	if err != nil {
		return model.Hold{}, nil, err
	}
	return hold, promoted, nil
}

func (s *Service) ListHoldShelf(ctx context.Context, cardNumber string) ([]model.HoldShelfEntry, error) {
	return s.repo.ListShelfEntries(ctx, cardNumber)
}

// CheckExpiredHoldShelfItems expires every shelf entry past its pickup
// window and passes each item on to the next hold.
func (s *Service) CheckExpiredHoldShelfItems(ctx context.Context) (int, error) {
	var (
		expired  int
		promoted []*promotion
	)
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		expired, promoted = 0, nil
		entries, err := tx.ListExpiredShelfEntries(ctx, s.now())
		if err != nil {
			return err
		}
		for _, entry := range entries {
			hold, err := tx.GetHold(ctx, entry.HoldID)
			if err != nil {
				return err
			}
			if hold.Status != model.HoldReady {
				// stale entry left behind by a finished hold
				if err := tx.DeleteShelfEntry(ctx, entry.ID); err != nil {
					return err
				}
				continue
			}
			_, next, err := s.expireHold(ctx, tx, hold)
			if err != nil {
				return err
			}
			expired++
			if next != nil {
				promoted = append(promoted, next)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		s.log.Info("hold shelf expired", zap.Int("count", expired))
	}
	s.metrics.HoldEvents(string(model.HoldExpired), expired)
	for _, p := range promoted {
		s.announce(ctx, p)
	}
	return expired, nil
}
