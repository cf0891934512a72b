package handler

import (
	"context"

	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/libralite/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Service interface {
	CreateItem(ctx context.Context, req model.CreateItemRequest) (model.Item, error)
	GetItem(ctx context.Context, id string) (model.Item, error)
	ListItems(ctx context.Context, filter model.ItemFilter) (model.ListItems, error)
	UpdateItem(ctx context.Context, id string, req model.UpdateItemRequest) (model.Item, error)

	SubmitApplication(ctx context.Context, req model.ApplicationRequest) (model.Application, error)
	GetApplication(ctx context.Context, id string) (model.Application, error)
	ListApplications(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error)
	ApproveApplication(ctx context.Context, id string) (model.Member, error)
	RejectApplication(ctx context.Context, id string) (model.Application, error)
	AuthenticateMember(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	GetMember(ctx context.Context, cardNumber string) (model.Member, error)
	ListMembers(ctx context.Context) ([]model.Member, error)

	CheckoutItem(ctx context.Context, req model.CheckoutRequest) (model.Loan, error)
	CheckinItem(ctx context.Context, req model.CheckinRequest) (model.CheckinResult, error)
	ReturnItem(ctx context.Context, itemID string) (model.ReturnResult, error)
	GetMemberLoans(ctx context.Context, memberID string) ([]model.LoanView, error)
	GetMemberFines(ctx context.Context, memberID string) ([]model.Fine, error)
	GetMemberAccount(ctx context.Context, memberID string) (model.MemberAccount, error)

	PlaceHold(ctx context.Context, req model.PlaceHoldRequest) (model.Hold, error)
	GetHold(ctx context.Context, id string) (model.HoldView, error)
	ListHolds(ctx context.Context, filter model.HoldFilter) ([]model.Hold, error)
	GetQueuePosition(ctx context.Context, itemID, holdID string) (*int, error)
	RecalculateQueuePositions(ctx context.Context, itemID string) ([]model.Hold, error)
	PromoteNextHold(ctx context.Context, itemID string) (model.HoldShelfEntry, error)
	CancelHold(ctx context.Context, id string) (model.Hold, error)
	UpdateHoldStatus(ctx context.Context, id string, status model.HoldStatus) (model.Hold, error)
	ListHoldShelf(ctx context.Context, cardNumber string) ([]model.HoldShelfEntry, error)
	CheckExpiredHoldShelfItems(ctx context.Context) (int, error)

	GetStats(ctx context.Context, days int) (model.Stats, error)
}

var _ Service = (*service.Service)(nil)
