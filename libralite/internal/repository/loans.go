package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/pkg/postgres"
)

var loanColumns = []string{
	"id", "member_id", "item_id", "checkout_date", "due_date", "return_date",
	"status", "created_at", "updated_at",
}

var fineColumns = []string{
	"id", "loan_id", "member_id", "amount", "status", "calculated_date",
	"paid_date", "created_at", "updated_at",
}

func (r *repository) CreateLoan(ctx context.Context, l model.Loan) error {
	q := qb.Insert(loansTableName).
		Columns(loanColumns...).
		Values(l.ID, l.MemberID, l.ItemID, l.CheckoutDate, l.DueDate, l.ReturnDate,
			l.Status, l.CreatedAt, l.UpdatedAt)
	if err := exec(ctx, r, q, nil); err != nil {
		if postgres.IsUniqueViolation(err, "loans_open_item_uniq") {
			return errs.ErrItemUnavailable
		}
		return err
	}
	return nil
}

func (r *repository) GetLoan(ctx context.Context, id string) (model.Loan, error) {
	q := r.forUpdate(qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"id": id}))
	return getOne[model.Loan](ctx, r, q, errs.ErrLoanNotFound)
}

func (r *repository) UpdateLoan(ctx context.Context, l model.Loan) error {
	q := qb.Update(loansTableName).
		SetMap(map[string]any{
			"return_date": l.ReturnDate,
			"status":      l.Status,
			"updated_at":  l.UpdatedAt,
		}).
		Where(sq.Eq{"id": l.ID})
	return exec(ctx, r, q, errs.ErrLoanNotFound)
}

func (r *repository) GetOpenLoanByItem(ctx context.Context, itemID string) (model.Loan, error) {
	q := r.forUpdate(qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"item_id": itemID, "return_date": nil}))
	return getOne[model.Loan](ctx, r, q, errs.ErrLoanNotFound)
}

func (r *repository) ListOpenLoans(ctx context.Context, memberID string) ([]model.Loan, error) {
	q := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"member_id": memberID, "return_date": nil}).
		OrderBy("due_date", "id")
	return getMany[model.Loan](ctx, r, q)
}

func (r *repository) CreateFine(ctx context.Context, f model.Fine) error {
	q := qb.Insert(finesTableName).
		Columns(fineColumns...).
		Values(f.ID, f.LoanID, f.MemberID, sq.Expr("?::numeric", f.Amount.String()), f.Status,
			f.CalculatedDate, f.PaidDate, f.CreatedAt, f.UpdatedAt)
	return exec(ctx, r, q, nil)
}

func (r *repository) ListFines(ctx context.Context, memberID string, status model.FineStatus) ([]model.Fine, error) {
	q := qb.Select(fineColumns...).
		From(finesTableName).
		Where(sq.Eq{"member_id": memberID}).
		OrderBy("calculated_date desc", "id")
	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}
	return getMany[model.Fine](ctx, r, q)
}
