package repository

import (
	"context"
	"time"

	"github.com/skhanzad/libralite/libralite/internal/model"
)

type ItemRepository interface {
	CreateItem(ctx context.Context, item model.Item) error
	GetItem(ctx context.Context, id string) (model.Item, error)
	ListItems(ctx context.Context, filter model.ItemFilter) ([]model.Item, error)
	UpdateItem(ctx context.Context, item model.Item) error
}

type MemberRepository interface {
	CreateMember(ctx context.Context, member model.Member) error
	GetMember(ctx context.Context, cardNumber string) (model.Member, error)
	MemberExists(ctx context.Context, cardNumber string) (bool, error)
	MemberEmailExists(ctx context.Context, email string) (bool, error)
	ListMembers(ctx context.Context) ([]model.Member, error)
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, app model.Application) error
	GetApplication(ctx context.Context, id string) (model.Application, error)
	PendingApplicationExists(ctx context.Context, email string) (bool, error)
	ListApplications(ctx context.Context, status model.ApplicationStatus, limit int) ([]model.Application, error)
	UpdateApplication(ctx context.Context, app model.Application) error
}

type LoanRepository interface {
	CreateLoan(ctx context.Context, loan model.Loan) error
	GetLoan(ctx context.Context, id string) (model.Loan, error)
	UpdateLoan(ctx context.Context, loan model.Loan) error
	GetOpenLoanByItem(ctx context.Context, itemID string) (model.Loan, error)
	ListOpenLoans(ctx context.Context, memberID string) ([]model.Loan, error)
}

type FineRepository interface {
	CreateFine(ctx context.Context, fine model.Fine) error
	ListFines(ctx context.Context, memberID string, status model.FineStatus) ([]model.Fine, error)
}

type HoldRepository interface {
	CreateHold(ctx context.Context, hold model.Hold) error
	GetHold(ctx context.Context, id string) (model.Hold, error)
	UpdateHold(ctx context.Context, hold model.Hold) error
	// ListHolds returns matching holds, newest first.
	ListHolds(ctx context.Context, filter model.HoldFilter) ([]model.Hold, error)
	// ListActiveHolds returns the queue for an item in placement order.
	ListActiveHolds(ctx context.Context, itemID string) ([]model.Hold, error)
}

type HoldShelfRepository interface {
	CreateShelfEntry(ctx context.Context, entry model.HoldShelfEntry) error
	GetShelfEntry(ctx context.Context, id string) (model.HoldShelfEntry, error)
	GetShelfEntryByItem(ctx context.Context, itemID string) (model.HoldShelfEntry, error)
	GetShelfEntryByHold(ctx context.Context, holdID string) (model.HoldShelfEntry, error)
	DeleteShelfEntry(ctx context.Context, id string) error
	ListShelfEntries(ctx context.Context, cardNumber string) ([]model.HoldShelfEntry, error)
	ListExpiredShelfEntries(ctx context.Context, now time.Time) ([]model.HoldShelfEntry, error)
	MarkShelfNotified(ctx context.Context, id string) error
}

type StatsRepository interface {
	DailyCheckouts(ctx context.Context, since time.Time) ([]model.DailyCount, error)
	PopularItems(ctx context.Context, since time.Time, limit int) ([]model.PopularItem, error)
	CountNewMembers(ctx context.Context, since time.Time) (int, error)
}

// Store is the document store. Reads made through the Store passed to an
// InTx callback lock the rows they return until the transaction ends.
type Store interface {
	ItemRepository
	MemberRepository
	ApplicationRepository
	LoanRepository
	FineRepository
	HoldRepository
	HoldShelfRepository
	StatsRepository

	InTx(ctx context.Context, fn func(tx Store) error) error
}
