package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/pkg/kafka"
	"go.uber.org/zap"
)

// announce publishes a hold-ready event for a committed promotion. Failures
// are logged only; the shelf entry keeps notificationSent=false.
func (s *Service) announce(ctx context.Context, p *promotion) {
	if p == nil {
		return
	}
	event := model.HoldReadyEvent{
		HoldID:            p.hold.ID,
		ShelfEntryID:      p.entry.ID,
		ItemID:            p.entry.ItemID,
		ItemTitle:         p.entry.ItemTitle,
		LibraryCardNumber: p.entry.LibraryCardNumber,
		MemberName:        p.entry.MemberName,
		MemberEmail:       p.hold.MemberEmail,
		ExpiresAt:         p.entry.ExpiresAt,
	}
	log := s.log.With(zap.String("holdId", event.HoldID), zap.String("itemId", event.ItemID))
	s.metrics.HoldEvent(string(model.HoldReady))

	if err := s.enqueuer.Enqueue(kafka.HoldReadyTopic, event.ItemID, event); err != nil {
		if errors.Is(err, kafka.ErrDisabled) {
			log.Debug("hold ready event not published", zap.Error(err))
			return
		}
		log.Warn("publish hold ready", zap.Error(err))
		return
	}
	log.Debug("hold ready event published")
}

// DeliverHoldReady notifies the member and flags the shelf entry. Events for
// entries that no longer exist are dropped.
func (s *Service) DeliverHoldReady(ctx context.Context, event model.HoldReadyEvent) error {
	entry, err := s.repo.GetShelfEntry(ctx, event.ShelfEntryID)
	if err != nil {
		if errors.Is(err, errs.ErrShelfEntryNotFound) {
			s.log.Info("hold ready event for a cleared shelf entry", zap.String("shelfEntryId", event.ShelfEntryID))
			return nil
		}
		return err
	}
	if entry.NotificationSent {
		return nil
	}

	s.log.Info("hold ready notification",
		zap.String("libraryCardNumber", event.LibraryCardNumber),
		zap.String("memberName", event.MemberName),
		zap.String("memberEmail", event.MemberEmail),
		zap.String("itemTitle", event.ItemTitle),
		zap.Time("expiresAt", event.ExpiresAt),
	)
	if err := s.repo.MarkShelfNotified(ctx, entry.ID); err != nil {
		if errors.Is(err, errs.ErrShelfEntryNotFound) {
			return nil
		}
		return err
	}
	s.metrics.HoldEvent("notified")
	return nil
}
