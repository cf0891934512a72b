package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemType string

const (
	ItemTypeBook     ItemType = "book"
	ItemTypeDVD      ItemType = "dvd"
	ItemTypeMagazine ItemType = "magazine"
	ItemTypeOther    ItemType = "other"
)

type Item struct {
	ID          string   `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Author      string   `json:"author" db:"author"`
	ISBN        *string  `json:"isbn,omitempty" db:"isbn"`
	ItemType    ItemType `json:"itemType" db:"item_type"`
	IsAvailable bool     `json:"isAvailable" db:"is_available"`
	// OnHoldShelf marks an item reserved for HoldShelfFor; it stays
	// IsAvailable but only that member may check it out.
	OnHoldShelf  bool      `json:"onHoldShelf" db:"on_hold_shelf"`
	HoldShelfFor *string   `json:"holdShelfFor,omitempty" db:"hold_shelf_for"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateItemRequest struct {
	Title    string   `json:"title" validate:"required,min=1"`
	Author   string   `json:"author" validate:"required,min=1"`
	ISBN     *string  `json:"isbn,omitempty"`
	ItemType ItemType `json:"itemType,omitempty" validate:"omitempty,oneof=book dvd magazine other"`
}

type UpdateItemRequest struct {
	Title    *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Author   *string   `json:"author,omitempty" validate:"omitempty,min=1"`
	ISBN     *string   `json:"isbn,omitempty"`
	ItemType *ItemType `json:"itemType,omitempty" validate:"omitempty,oneof=book dvd magazine other"`
}

type ItemFilter struct {
	Search    string
	ItemType  ItemType
	Available *bool
	Page      int
	Size      int
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListItems struct {
	Paging
	Items []Item `json:"items"`
}

type MemberStatus string

const (
	MemberPending  MemberStatus = "pending"
	MemberApproved MemberStatus = "approved"
	MemberRejected MemberStatus = "rejected"
)

type Member struct {
	LibraryCardNumber string       `json:"libraryCardNumber" db:"library_card_number"`
	FirstName         string       `json:"firstName" db:"first_name"`
	LastName          string       `json:"lastName" db:"last_name"`
	Email             string       `json:"email" db:"email"`
	Address           string       `json:"address" db:"address"`
	Phone             string       `json:"phone" db:"phone"`
	Status            MemberStatus `json:"status" db:"status"`
	PinHash           string       `json:"-" db:"pin_hash"`
	ApplicationID     string       `json:"applicationId" db:"application_id"`
	CreatedAt         time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time    `json:"updatedAt" db:"updated_at"`
}

func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID                string            `json:"id" db:"id"`
	FirstName         string            `json:"firstName" db:"first_name"`
	LastName          string            `json:"lastName" db:"last_name"`
	Email             string            `json:"email" db:"email"`
	Address           string            `json:"address" db:"address"`
	Phone             string            `json:"phone" db:"phone"`
	PinHash           *string           `json:"-" db:"pin_hash"`
	Status            ApplicationStatus `json:"status" db:"status"`
	LibraryCardNumber *string           `json:"libraryCardNumber,omitempty" db:"library_card_number"`
	CreatedAt         time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time         `json:"updatedAt" db:"updated_at"`
}

type ApplicationRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1"`
	LastName  string `json:"lastName" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Address   string `json:"address" validate:"required,min=1"`
	Phone     string `json:"phone" validate:"required,min=7"`
	Pin       string `json:"pin" validate:"required,min=4,max=6"`
}

type LoginRequest struct {
	LibraryCardNumber string `json:"libraryCardNumber" validate:"required,min=5"`
	Pin               string `json:"pin" validate:"required,min=4"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Member Member `json:"member"`
}

type LoanStatus string

const (
	LoanCheckedOut LoanStatus = "checked-out"
	LoanOverdue    LoanStatus = "overdue"
	LoanReturned   LoanStatus = "returned"
)

type Loan struct {
	ID           string     `json:"id" db:"id"`
	MemberID     string     `json:"memberId" db:"member_id"`
	ItemID       string     `json:"itemId" db:"item_id"`
	CheckoutDate time.Time  `json:"checkoutDate" db:"checkout_date"`
	DueDate      time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate   *time.Time `json:"returnDate,omitempty" db:"return_date"`
	Status       LoanStatus `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// IsOpen reports whether the item has not come back yet. A loan checked
// in late keeps status overdue but is no longer open.
func (l Loan) IsOpen() bool {
	return l.ReturnDate == nil && l.Status != LoanReturned
}

type LoanView struct {
	Loan
	PotentialLateFee decimal.Decimal `json:"potentialLateFee"`
}

type CheckoutRequest struct {
	MemberID string `json:"memberId" validate:"required,min=5"`
	ItemID   string `json:"itemId" validate:"required,min=1"`
}

type CheckinRequest struct {
	LoanID string `json:"loanId" validate:"required,min=1"`
	ItemID string `json:"itemId" validate:"required,min=1"`
}

type CheckinResult struct {
	Loan Loan  `json:"loan"`
	Fine *Fine `json:"fine,omitempty"`
}

type ReturnResult struct {
	Loan       Loan            `json:"loan"`
	Fine       *Fine           `json:"fine,omitempty"`
	ShelfEntry *HoldShelfEntry `json:"holdShelfEntry,omitempty"`
}

type FineStatus string

const (
	FinePending FineStatus = "pending"
	FinePaid    FineStatus = "paid"
)

type Fine struct {
	ID             string          `json:"id" db:"id"`
	LoanID         string          `json:"loanId" db:"loan_id"`
	MemberID       string          `json:"memberId" db:"member_id"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	Status         FineStatus      `json:"status" db:"status"`
	CalculatedDate time.Time       `json:"calculatedDate" db:"calculated_date"`
	PaidDate       *time.Time      `json:"paidDate,omitempty" db:"paid_date"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

type MemberAccount struct {
	LibraryCardNumber string          `json:"libraryCardNumber"`
	Loans             []LoanView      `json:"loans"`
	Fines             []Fine          `json:"fines"`
	TotalOutstanding  decimal.Decimal `json:"totalOutstanding"`
}

type HoldStatus string

const (
	HoldActive    HoldStatus = "active"
	HoldReady     HoldStatus = "ready"
	HoldFulfilled HoldStatus = "fulfilled"
	HoldCancelled HoldStatus = "cancelled"
	HoldExpired   HoldStatus = "expired"
)

var holdTransitions = map[HoldStatus][]HoldStatus{
	HoldActive: {HoldReady, HoldCancelled},
	HoldReady:  {HoldFulfilled, HoldExpired, HoldCancelled},
}

// CanTransition reports whether the hold state machine allows s -> to.
func (s HoldStatus) CanTransition(to HoldStatus) bool {
	for _, next := range holdTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type Hold struct {
	ID                string     `json:"id" db:"id"`
	ItemID            string     `json:"itemId" db:"item_id"`
	LibraryCardNumber string     `json:"libraryCardNumber" db:"library_card_number"`
	MemberName        string     `json:"memberName" db:"member_name"`
	MemberEmail       string     `json:"memberEmail" db:"member_email"`
	Status            HoldStatus `json:"status" db:"status"`
	// Position is the 1-based rank among active holds, 0 once the hold
	// has left the queue.
	Position    int        `json:"position" db:"position"`
	PlacedAt    time.Time  `json:"placedAt" db:"placed_at"`
	ReadyAt     *time.Time `json:"readyAt,omitempty" db:"ready_at"`
	NotifiedAt  *time.Time `json:"notifiedAt,omitempty" db:"notified_at"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty" db:"expires_at"`
	FulfilledAt *time.Time `json:"fulfilledAt,omitempty" db:"fulfilled_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	// Seq is assigned by the store on insert and breaks placedAt ties.
	Seq int64 `json:"-" db:"seq"`
}

type HoldView struct {
	Hold
	QueuePosition *int `json:"queuePosition"`
}

type PlaceHoldRequest struct {
	ItemID            string `json:"itemId" validate:"required,min=1"`
	LibraryCardNumber string `json:"libraryCardNumber" validate:"required,min=5"`
	MemberName        string `json:"memberName" validate:"required,min=1"`
	MemberEmail       string `json:"memberEmail" validate:"required,email"`
}

type UpdateHoldStatusRequest struct {
	Status HoldStatus `json:"status" validate:"required,oneof=ready fulfilled cancelled expired"`
}

type PromoteRequest struct {
	ItemID string `json:"itemId" validate:"required,min=1"`
}

type HoldFilter struct {
	ItemID            string
	LibraryCardNumber string
	Statuses          []HoldStatus
}

type HoldShelfEntry struct {
	ID                string    `json:"id" db:"id"`
	HoldID            string    `json:"holdId" db:"hold_id"`
	ItemID            string    `json:"itemId" db:"item_id"`
	LibraryCardNumber string    `json:"libraryCardNumber" db:"library_card_number"`
	MemberName        string    `json:"memberName" db:"member_name"`
	ItemTitle         string    `json:"itemTitle" db:"item_title"`
	PlacedOnShelfAt   time.Time `json:"placedOnShelfAt" db:"placed_on_shelf_at"`
	ExpiresAt         time.Time `json:"expiresAt" db:"expires_at"`
	NotificationSent  bool      `json:"notificationSent" db:"notification_sent"`
}

type ExpireResult struct {
	Expired int `json:"expired"`
}

// HoldReadyEvent is published once a hold reaches the shelf.
type HoldReadyEvent struct {
	HoldID            string    `json:"holdId"`
	ShelfEntryID      string    `json:"shelfEntryId"`
	ItemID            string    `json:"itemId"`
	ItemTitle         string    `json:"itemTitle"`
	LibraryCardNumber string    `json:"libraryCardNumber"`
	MemberName        string    `json:"memberName"`
	MemberEmail       string    `json:"memberEmail"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

type DailyCount struct {
	Date  string `json:"date" db:"day"`
	Count int    `json:"count" db:"count"`
}

type PopularItem struct {
	ItemID    string `json:"itemId" db:"item_id"`
	Title     string `json:"title" db:"title"`
	Checkouts int    `json:"checkouts" db:"checkouts"`
}

type Stats struct {
	Days           int           `json:"days"`
	DailyCheckouts []DailyCount  `json:"dailyCheckouts"`
	PopularItems   []PopularItem `json:"popularItems"`
	NewMembers     int           `json:"newMembers"`
}
