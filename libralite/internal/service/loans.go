package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/libralite/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (s *Service) CheckoutItem(ctx context.Context, req model.CheckoutRequest) (model.Loan, error) {
	var (
		loan      model.Loan
		fulfilled bool
	)
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		member, err := tx.GetMember(ctx, req.MemberID)
		if err != nil {
			return err
		}
		if member.Status != model.MemberApproved {
			return errs.ErrMemberNotApproved
		}
		item, err := tx.GetItem(ctx, req.ItemID)
		if err != nil {
			return err
		}
		if !item.IsAvailable {
			return errs.ErrItemUnavailable
		}

		now := s.now()
		if item.OnHoldShelf {
			if item.HoldShelfFor == nil || *item.HoldShelfFor != member.LibraryCardNumber {
				return errs.ErrItemReserved
			}
			if err := s.fulfilShelfHold(ctx, tx, item.ID); err != nil {
				return err
			}
			item.OnHoldShelf = false
			item.HoldShelfFor = nil
			fulfilled = true
		}

		loan = model.Loan{
			ID:           uuid.NewString(),
			MemberID:     member.LibraryCardNumber,
			ItemID:       item.ID,
			CheckoutDate: now,
			DueDate:      CalculateDueDate(item.ItemType, now),
			Status:       model.LoanCheckedOut,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.CreateLoan(ctx, loan); err != nil {
			return err
		}
		item.IsAvailable = false
		item.UpdatedAt = now
		return tx.UpdateItem(ctx, item)
	})
	if err != nil {
		return model.Loan{}, err
	}
	s.metrics.LoanEvent("checkout")
	if fulfilled {
		s.metrics.HoldEvent(string(model.HoldFulfilled))
	}
	return loan, nil
}

// fulfilShelfHold closes the ready hold behind the item's shelf entry.
func (s *Service) fulfilShelfHold(ctx context.Context, tx repository.Store, itemID string) error {
	entry, err := tx.GetShelfEntryByItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, errs.ErrShelfEntryNotFound) {
			return nil
		}
		return err
	}
	hold, err := tx.GetHold(ctx, entry.HoldID)
	if err != nil {
		return err
	}
	if hold.Status == model.HoldReady {
		now := s.now()
		hold.Status = model.HoldFulfilled
		hold.FulfilledAt = &now
		hold.Position = 0
		hold.UpdatedAt = now
		if err := tx.UpdateHold(ctx, hold); err != nil {
			return err
		}
	}
	return tx.DeleteShelfEntry(ctx, entry.ID)
}

func (s *Service) CheckinItem(ctx context.Context, req model.CheckinRequest) (model.CheckinResult, error) {
	var res model.CheckinResult
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		var err error
		res, err = s.checkin(ctx, tx, req.LoanID, req.ItemID)
		return err
	})
	if err != nil {
		return model.CheckinResult{}, err
	}
	s.recordCheckin(res)
	return res, nil
}

func (s *Service) checkin(ctx context.Context, tx repository.Store, loanID, itemID string) (model.CheckinResult, error) {
	loan, err := tx.GetLoan(ctx, loanID)
	if err != nil {
		return model.CheckinResult{}, err
	}
	if loan.Status == model.LoanReturned || loan.ReturnDate != nil {
		return model.CheckinResult{}, errs.ErrAlreadyReturned
	}
	if loan.ItemID != itemID {
		return model.CheckinResult{}, errs.ErrItemMismatch
	}
	item, err := tx.GetItem(ctx, itemID)
	if err != nil {
		return model.CheckinResult{}, err
	}

	now := s.now()
	res := model.CheckinResult{}
	fee := CalculateLateFee(loan.DueDate, now)
	if fee.IsPositive() {
		fine := model.Fine{
			ID:             uuid.NewString(),
			LoanID:         loan.ID,
			MemberID:       loan.MemberID,
			Amount:         fee,
			Status:         model.FinePending,
			CalculatedDate: now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.CreateFine(ctx, fine); err != nil {
			return model.CheckinResult{}, err
		}
		res.Fine = &fine
		loan.Status = model.LoanOverdue
	} else {
		loan.Status = model.LoanReturned
	}
	loan.ReturnDate = &now
	loan.UpdatedAt = now
	if err := tx.UpdateLoan(ctx, loan); err != nil {
		return model.CheckinResult{}, err
	}

	item.IsAvailable = true
	item.UpdatedAt = now
	if err := tx.UpdateItem(ctx, item); err != nil {
		return model.CheckinResult{}, err
	}
	res.Loan = loan
	return res, nil
}

func (s *Service) recordCheckin(res model.CheckinResult) {
	s.metrics.LoanEvent("checkin")
	if res.Fine != nil {
		s.metrics.LoanEvent(string(model.LoanOverdue))
		s.metrics.FineAssessed(res.Fine.Amount)
	}
}

// ReturnItem checks in the open loan for the item and hands the item to the
// next active hold, if any, in the same transaction.
func (s *Service) ReturnItem(ctx context.Context, itemID string) (model.ReturnResult, error) {
	var (
		res      model.ReturnResult
		promoted *promotion
	)
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		if _, err := tx.GetItem(ctx, itemID); err != nil {
			return err
		}
		loan, err := tx.GetOpenLoanByItem(ctx, itemID)
		if err != nil {
			if errors.Is(err, errs.ErrLoanNotFound) {
				return errs.ErrItemNotCheckedOut
			}
			return err
		}
		checkin, err := s.checkin(ctx, tx, loan.ID, itemID)
		if err != nil {
			return err
		}
		res = model.ReturnResult{Loan: checkin.Loan, Fine: checkin.Fine}

		promoted, err = s.promoteNext(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if promoted != nil {
			res.ShelfEntry = &promoted.entry
		}
		return nil
	})
	if err != nil {
		return model.ReturnResult{}, err
	}
	s.recordCheckin(model.CheckinResult{Loan: res.Loan, Fine: res.Fine})
	s.announce(ctx, promoted)
	return res, nil
}

func (s *Service) ensureMember(ctx context.Context, memberID string) error {
	ok, err := s.repo.MemberExists(ctx, memberID)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrMemberNotFound
	}
	return nil
}

func (s *Service) GetMemberLoans(ctx context.Context, memberID string) ([]model.LoanView, error) {
	if err := s.ensureMember(ctx, memberID); err != nil {
		return nil, err
	}
	return s.openLoans(ctx, memberID)
}

func (s *Service) openLoans(ctx context.Context, memberID string) ([]model.LoanView, error) {
	loans, err := s.repo.ListOpenLoans(ctx, memberID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	views := make([]model.LoanView, 0, len(loans))
	for _, l := range loans {
		views = append(views, model.LoanView{
			Loan:             l,
			PotentialLateFee: CalculateLateFee(l.DueDate, now),
		})
	}
	return views, nil
}

func (s *Service) GetMemberFines(ctx context.Context, memberID string) ([]model.Fine, error) {
	if err := s.ensureMember(ctx, memberID); err != nil {
		return nil, err
	}
	return s.repo.ListFines(ctx, memberID, model.FinePending)
}

// GetMemberAccount loads open loans and pending fines concurrently.
func (s *Service) GetMemberAccount(ctx context.Context, memberID string) (model.MemberAccount, error) {
	if err := s.ensureMember(ctx, memberID); err != nil {
		return model.MemberAccount{}, err
	}
	acc := model.MemberAccount{LibraryCardNumber: memberID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		acc.Loans, err = s.openLoans(gctx, memberID)
		return err
	})
	g.Go(func() error {
		var err error
		acc.Fines, err = s.repo.ListFines(gctx, memberID, model.FinePending)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("GetMemberAccount", zap.String("memberId", memberID), zap.Error(err))
		return model.MemberAccount{}, err
	}

	acc.TotalOutstanding = decimal.Zero
	for _, f := range acc.Fines {
		acc.TotalOutstanding = acc.TotalOutstanding.Add(f.Amount)
	}
	return acc, nil
}
