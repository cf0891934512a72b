package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/skhanzad/libralite/libralite/internal/model"
)

const day = 24 * time.Hour

var lateFeePerDay = decimal.RequireFromString("0.50")

func loanPeriodDays(t model.ItemType) int {
	switch t {
	case model.ItemTypeBook:
		return 21
	case model.ItemTypeDVD:
		return 7
	case model.ItemTypeMagazine:
		return 14
	default:
		return 14
	}
}

// CalculateDueDate adds the loan period for itemType in calendar days.
func CalculateDueDate(itemType model.ItemType, checkout time.Time) time.Time {
	return checkout.AddDate(0, 0, loanPeriodDays(itemType))
}

// CalculateLateFee charges 0.50 for every started day past due.
func CalculateLateFee(due, returned time.Time) decimal.Decimal {
	if !returned.After(due) {
		return decimal.Zero
	}
	late := returned.Sub(due)
	days := int64(late / day)
	if late%day != 0 {
		days++
	}
	return lateFeePerDay.Mul(decimal.NewFromInt(days)).Round(2)
}
