package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/pkg/postgres"
)

var memberColumns = []string{
	"library_card_number", "first_name", "last_name", "email", "address", "phone",
	"status", "pin_hash", "application_id", "created_at", "updated_at",
}

var applicationColumns = []string{
	"id", "first_name", "last_name", "email", "address", "phone",
	"pin_hash", "status", "library_card_number", "created_at", "updated_at",
}

func (r *repository) CreateMember(ctx context.Context, m model.Member) error {
	q := qb.Insert(membersTableName).
		Columns(memberColumns...).
		Values(m.LibraryCardNumber, m.FirstName, m.LastName, m.Email, m.Address, m.Phone,
			m.Status, m.PinHash, m.ApplicationID, m.CreatedAt, m.UpdatedAt)
	if err := exec(ctx, r, q, nil); err != nil {
		if postgres.IsUniqueViolation(err, "members_pkey") {
			return errs.ErrCardNumberTaken
		}
		return err
	}
	return nil
}

func (r *repository) GetMember(ctx context.Context, cardNumber string) (model.Member, error) {
	q := r.forUpdate(qb.Select(memberColumns...).
		From(membersTableName).
		Where(sq.Eq{"library_card_number": cardNumber}))
	return getOne[model.Member](ctx, r, q, errs.ErrMemberNotFound)
}

func (r *repository) MemberExists(ctx context.Context, cardNumber string) (bool, error) {
	return exists(ctx, r, qb.Select("1").
		From(membersTableName).
		Where(sq.Eq{"library_card_number": cardNumber}))
}

func (r *repository) MemberEmailExists(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r, qb.Select("1").
		From(membersTableName).
		Where(sq.Eq{"email": email, "status": model.MemberApproved}))
}

func (r *repository) ListMembers(ctx context.Context) ([]model.Member, error) {
	q := qb.Select(memberColumns...).
		From(membersTableName).
		Where(sq.Eq{"status": model.MemberApproved}).
		OrderBy("library_card_number")
	return getMany[model.Member](ctx, r, q)
}

func (r *repository) CreateApplication(ctx context.Context, a model.Application) error {
	q := qb.Insert(applicationsTableName).
		Columns(applicationColumns...).
		Values(a.ID, a.FirstName, a.LastName, a.Email, a.Address, a.Phone,
			a.PinHash, a.Status, a.LibraryCardNumber, a.CreatedAt, a.UpdatedAt)
	return exec(ctx, r, q, nil)
}

func (r *repository) GetApplication(ctx context.Context, id string) (model.Application, error) {
	q := r.forUpdate(qb.Select(applicationColumns...).
		From(applicationsTableName).
		Where(sq.Eq{"id": id}))
	return getOne[model.Application](ctx, r, q, errs.ErrApplicationNotFound)
}

func (r *repository) PendingApplicationExists(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r, qb.Select("1").
		From(applicationsTableName).
		Where(sq.Eq{"email": email, "status": model.ApplicationPending}))
}

func (r *repository) ListApplications(ctx context.Context, status model.ApplicationStatus, limit int) ([]model.Application, error) {
	q := qb.Select(applicationColumns...).
		From(applicationsTableName).
		OrderBy("created_at desc", "id")
	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return getMany[model.Application](ctx, r, q)
}

func (r *repository) UpdateApplication(ctx context.Context, a model.Application) error {
	q := qb.Update(applicationsTableName).
		SetMap(map[string]any{
			"status":              a.Status,
			"pin_hash":            a.PinHash,
			"library_card_number": a.LibraryCardNumber,
			"updated_at":          a.UpdatedAt,
		}).
		Where(sq.Eq{"id": a.ID})
	return exec(ctx, r, q, errs.ErrApplicationNotFound)
}
