package model_test

import (
	"testing"
	"time"

	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/stretchr/testify/require"
)

func TestHoldStatus_CanTransition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from, to model.HoldStatus
		want     bool
	}{
		{model.HoldActive, model.HoldReady, true},
		{model.HoldActive, model.HoldCancelled, true},
		{model.HoldActive, model.HoldFulfilled, false},
		{model.HoldActive, model.HoldExpired, false},
		{model.HoldReady, model.HoldFulfilled, true},
		{model.HoldReady, model.HoldExpired, true},
		{model.HoldReady, model.HoldCancelled, true},
		{model.HoldReady, model.HoldActive, false},
		{model.HoldCancelled, model.HoldActive, false},
		{model.HoldFulfilled, model.HoldCancelled, false},
		{model.HoldExpired, model.HoldReady, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestLoan_IsOpen(t *testing.T) {
	t.Parallel()
	now := time.Now()
	require.True(t, model.Loan{Status: model.LoanCheckedOut}.IsOpen())
	require.False(t, model.Loan{Status: model.LoanOverdue, ReturnDate: &now}.IsOpen())
	require.False(t, model.Loan{Status: model.LoanReturned, ReturnDate: &now}.IsOpen())
}
