package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/libralite/internal/service"
	"github.com/stretchr/testify/require"
)

// queue places one hold per member, a minute apart, on an item that is
// already checked out by a separate borrower.
func (f *fixture) queue(t *testing.T, item model.Item, members ...model.Member) []model.Hold {
	t.Helper()
	holds := make([]model.Hold, 0, len(members))
	for _, m := range members {
		holds = append(holds, f.hold(t, m, item))
		f.clock.Advance(time.Minute)
	}
	return holds
}

func (f *fixture) positions(t *testing.T, itemID string) map[string]int {
	t.Helper()
	active, err := f.store.ListActiveHolds(f.ctx, itemID)
	require.NoError(t, err)
	out := make(map[string]int, len(active))
	for _, h := range active {
		out[h.ID] = h.Position
	}
	return out
}

// requireContiguous checks that active holds are numbered 1..N in
// placement order.
func requireContiguous(t *testing.T, f *fixture, itemID string) {
	t.Helper()
	active, err := f.store.ListActiveHolds(f.ctx, itemID)
	require.NoError(t, err)
	for i, h := range active {
		require.Equal(t, i+1, h.Position, "hold %s", h.ID)
	}
}

type circulationDesk struct {
	*fixture
	borrower model.Member
	jane     model.Member
	john     model.Member
	ann      model.Member
	book     model.Item
	loan     model.Loan
}

func newDesk(t *testing.T, opts ...service.Option) *circulationDesk {
	t.Helper()
	f := newFixture(t, opts...)
	d := &circulationDesk{
		fixture:  f,
		borrower: f.member(t, "Bob", "bob@x.com"),
		jane:     f.member(t, "Jane", "jane@x.com"),
		john:     f.member(t, "John", "john@x.com"),
		ann:      f.member(t, "Ann", "ann@x.com"),
		book:     f.item(t, "Dune", model.ItemTypeBook),
	}
	d.loan = f.checkout(t, d.borrower, d.book)
	return d
}

func TestService_PlaceHold(t *testing.T) {
	t.Parallel()

	t.Run("available item", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		m := f.member(t, "Jane", "jane@x.com")
		book := f.item(t, "Dune", model.ItemTypeBook)
		_, err := f.svc.PlaceHold(f.ctx, model.PlaceHoldRequest{
			ItemID:            book.ID,
			LibraryCardNumber: m.LibraryCardNumber,
			MemberName:        m.FullName(),
			MemberEmail:       m.Email,
		})
		require.ErrorIs(t, err, errs.ErrItemAvailable)
	})

	t.Run("unknown item", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.PlaceHold(f.ctx, model.PlaceHoldRequest{ItemID: "nope", LibraryCardNumber: "LIB-12345678"})
		require.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("positions and duplicates", func(t *testing.T) {
		t.Parallel()
		d := newDesk(t)
		holds := d.queue(t, d.book, d.jane, d.john, d.ann)
		for i, h := range holds {
			require.Equal(t, i+1, h.Position)
			require.Equal(t, model.HoldActive, h.Status)
		}
		requireContiguous(t, d.fixture, d.book.ID)

		_, err := d.svc.PlaceHold(d.ctx, model.PlaceHoldRequest{
			ItemID:            d.book.ID,
			LibraryCardNumber: d.john.LibraryCardNumber,
			MemberName:        d.john.FullName(),
			MemberEmail:       d.john.Email,
		})
		require.ErrorIs(t, err, errs.ErrDuplicateHold)

		view, err := d.svc.GetHold(d.ctx, holds[2].ID)
		require.NoError(t, err)
		require.NotNil(t, view.QueuePosition)
		require.Equal(t, 3, *view.QueuePosition)
	})
}

func TestService_CancelHold(t *testing.T) {
	t.Parallel()
	d := newDesk(t)
	holds := d.queue(t, d.book, d.jane, d.john, d.ann)

	cancelled, err := d.svc.CancelHold(d.ctx, holds[0].ID)
	require.NoError(t, err)
	require.Equal(t, model.HoldCancelled, cancelled.Status)
	require.Zero(t, cancelled.Position)

	require.Equal(t, map[string]int{holds[1].ID: 1, holds[2].ID: 2}, d.positions(t, d.book.ID))
	pos, err := d.svc.GetQueuePosition(d.ctx, d.book.ID, holds[2].ID)
	require.NoError(t, err)
	require.Equal(t, 2, *pos)
	pos, err = d.svc.GetQueuePosition(d.ctx, d.book.ID, holds[0].ID)
	require.NoError(t, err)
	require.Nil(t, pos)

	view, err := d.svc.GetHold(d.ctx, holds[0].ID)
	require.NoError(t, err)
	require.Nil(t, view.QueuePosition)

	_, err = d.svc.CancelHold(d.ctx, holds[0].ID)
	require.ErrorIs(t, err, errs.ErrInvalidHoldTransition)
	_, err = d.svc.CancelHold(d.ctx, "nope")
	require.ErrorIs(t, err, errs.ErrHoldNotFound)

	// a member may queue again once the old hold is closed
	again := d.hold(t, d.jane, d.book)
	require.Equal(t, 3, again.Position)
	requireContiguous(t, d.fixture, d.book.ID)
}

func TestService_RecalculateQueuePositions(t *testing.T) {
	t.Parallel()
	d := newDesk(t)
	holds := d.queue(t, d.book, d.jane, d.john)

	// simulate a gap left by an interrupted writer
	broken := holds[1]
	broken.Position = 7
	require.NoError(t, d.store.UpdateHold(d.ctx, broken))

	active, err := d.svc.RecalculateQueuePositions(d.ctx, d.book.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	require.Equal(t, holds[0].ID, active[0].ID)
	requireContiguous(t, d.fixture, d.book.ID)

	_, err = d.svc.RecalculateQueuePositions(d.ctx, "nope")
	require.ErrorIs(t, err, errs.ErrItemNotFound)
}

func TestService_PromoteNextHold(t *testing.T) {
	t.Parallel()
	d := newDesk(t)
	holds := d.queue(t, d.book, d.jane, d.john)

	entry, err := d.svc.PromoteNextHold(d.ctx, d.book.ID)
	require.NoError(t, err)
	require.Equal(t, holds[0].ID, entry.HoldID)
	require.Equal(t, d.jane.LibraryCardNumber, entry.LibraryCardNumber)
	require.True(t, entry.ExpiresAt.Equal(entry.PlacedOnShelfAt.Add(service.DefaultHoldShelfRetention)))
	require.False(t, entry.NotificationSent)

	loan, err := d.store.GetLoan(d.ctx, d.loan.ID)
	require.NoError(t, err)
	require.Equal(t, model.LoanReturned, loan.Status)
	require.NotNil(t, loan.ReturnDate)

	item := d.getItem(t, d.book.ID)
	require.True(t, item.IsAvailable)
	require.True(t, item.OnHoldShelf)
	require.Equal(t, d.jane.LibraryCardNumber, *item.HoldShelfFor)

	ready := d.getHold(t, holds[0].ID)
	require.Equal(t, model.HoldReady, ready.Status)
	require.Zero(t, ready.Position)
	require.NotNil(t, ready.ReadyAt)
	require.NotNil(t, ready.ExpiresAt)
	require.Equal(t, map[string]int{holds[1].ID: 1}, d.positions(t, d.book.ID))

	// one reservation per item at a time
	_, err = d.svc.PromoteNextHold(d.ctx, d.book.ID)
	require.ErrorIs(t, err, errs.ErrItemReserved)

	require.Len(t, d.events.Events(), 1)
	require.Equal(t, entry.ID, d.events.Events()[0].ShelfEntryID)

	other := d.item(t, "Emma", model.ItemTypeBook)
	_, err = d.svc.PromoteNextHold(d.ctx, other.ID)
	require.ErrorIs(t, err, errs.ErrNoActiveHolds)

	_, err = d.svc.PromoteNextHold(d.ctx, "missing")
	require.ErrorIs(t, err, errs.ErrItemNotFound)
}

func TestService_PromoteNextHoldRecallsLoan(t *testing.T) {
	t.Parallel()

	t.Run("overdue loan is fined", func(t *testing.T) {
		t.Parallel()
		d := newDesk(t)
		d.queue(t, d.book, d.jane)
		// checked out on day 0, due day 21, recalled on day 25
		d.clock.Advance(25*24*time.Hour - time.Minute)

		_, err := d.svc.PromoteNextHold(d.ctx, d.book.ID)
		require.NoError(t, err)

		loan, err := d.store.GetLoan(d.ctx, d.loan.ID)
		require.NoError(t, err)
		require.Equal(t, model.LoanOverdue, loan.Status)
		fines, err := d.svc.GetMemberFines(d.ctx, d.borrower.LibraryCardNumber)
		require.NoError(t, err)
		require.Len(t, fines, 1)
		require.True(t, decimal.RequireFromString("2.00").Equal(fines[0].Amount), "fine %s", fines[0].Amount)
	})

	t.Run("no holds leaves the loan open", func(t *testing.T) {
		t.Parallel()
		d := newDesk(t)

		_, err := d.svc.PromoteNextHold(d.ctx, d.book.ID)
		require.ErrorIs(t, err, errs.ErrNoActiveHolds)

		_, err = d.store.GetOpenLoanByItem(d.ctx, d.book.ID)
		require.NoError(t, err)
		require.False(t, d.getItem(t, d.book.ID).IsAvailable)
	})

	t.Run("failed promotion keeps the loan", func(t *testing.T) {
		t.Parallel()
		d := newDesk(t)
		d.queue(t, d.book, d.jane)
		d.store.FailOn("CreateShelfEntry", errors.New("disk full"))

		_, err := d.svc.PromoteNextHold(d.ctx, d.book.ID)
		require.Error(t, err)

		_, err = d.store.GetOpenLoanByItem(d.ctx, d.book.ID)
		require.NoError(t, err)
		require.False(t, d.getItem(t, d.book.ID).IsAvailable)
	})
}

func TestService_CancelReadyHoldPromotesNext(t *testing.T) {
	t.Parallel()
	d := newDesk(t)
	holds := d.queue(t, d.book, d.jane, d.john)

	_, err := d.svc.ReturnItem(d.ctx, d.book.ID)
	require.NoError(t, err)
	require.Equal(t, model.HoldReady, d.getHold(t, holds[0].ID).Status)

	_, err = d.svc.CancelHold(d.ctx, holds[0].ID)
	require.NoError(t, err)

	require.Equal(t, model.HoldReady, d.getHold(t, holds[1].ID).Status)
	item := d.getItem(t, d.book.ID)
	require.True(t, item.OnHoldShelf)
	require.Equal(t, d.john.LibraryCardNumber, *item.HoldShelfFor)

	shelf, err := d.svc.ListHoldShelf(d.ctx, "")
	require.NoError(t, err)
	require.Len(t, shelf, 1)
	require.Equal(t, holds[1].ID, shelf[0].HoldID)
	require.Len(t, d.events.Events(), 2)

	// last one out clears the shelf flags
	_, err = d.svc.CancelHold(d.ctx, holds[1].ID)
	require.NoError(t, err)
	item = d.getItem(t, d.book.ID)
	require.True(t, item.IsAvailable)
	require.False(t, item.OnHoldShelf)
	require.Nil(t, item.HoldShelfFor)
	shelf, err = d.svc.ListHoldShelf(d.ctx, "")
	require.NoError(t, err)
	require.Empty(t, shelf)
}

func TestService_CheckExpiredHoldShelfItems(t *testing.T) {
	t.Parallel()
	d := newDesk(t, service.WithHoldShelfRetention(48*time.Hour))
	holds := d.queue(t, d.book, d.jane, d.john)

	_, err := d.svc.ReturnItem(d.ctx, d.book.ID)
	require.NoError(t, err)

	n, err := d.svc.CheckExpiredHoldShelfItems(d.ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	d.clock.Advance(49 * time.Hour)
	n, err = d.svc.CheckExpiredHoldShelfItems(d.ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, model.HoldExpired, d.getHold(t, holds[0].ID).Status)
	require.Equal(t, model.HoldReady, d.getHold(t, holds[1].ID).Status)

	mine, err := d.svc.ListHoldShelf(d.ctx, d.john.LibraryCardNumber)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.True(t, mine[0].ExpiresAt.Equal(d.clock.Now().Add(48*time.Hour)))
	mine, err = d.svc.ListHoldShelf(d.ctx, d.jane.LibraryCardNumber)
	require.NoError(t, err)
	require.Empty(t, mine)

	d.clock.Advance(49 * time.Hour)
	n, err = d.svc.CheckExpiredHoldShelfItems(d.ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	item := d.getItem(t, d.book.ID)
	require.True(t, item.IsAvailable)
	require.False(t, item.OnHoldShelf)
	require.Nil(t, item.HoldShelfFor)
	require.Len(t, d.events.Events(), 2)
}

func TestService_UpdateHoldStatus(t *testing.T) {
	t.Parallel()

	t.Run("ready only for queue head", func(t *testing.T) {
		t.Parallel()
		d := newDesk(t)
		holds := d.queue(t, d.book, d.jane, d.john)
		_, err := d.svc.CheckinItem(d.ctx, model.CheckinRequest{LoanID: d.loan.ID, ItemID: d.book.ID})
		require.NoError(t, err)

		_, err = d.svc.UpdateHoldStatus(d.ctx, holds[1].ID, model.HoldReady)
		require.ErrorIs(t, err, errs.ErrNotQueueHead)

		h, err := d.svc.UpdateHoldStatus(d.ctx, holds[0].ID, model.HoldReady)
		require.NoError(t, err)
		require.Equal(t, model.HoldReady, h.Status)
		require.Equal(t, d.jane.LibraryCardNumber, *d.getItem(t, d.book.ID).HoldShelfFor)
		require.Len(t, d.events.Events(), 1)
	})

	t.Run("fulfilled clears the shelf", func(t *testing.T) {
		t.Parallel()
		d := newDesk(t)
		holds := d.queue(t, d.book, d.jane, d.john)
		_, err := d.svc.ReturnItem(d.ctx, d.book.ID)
		require.NoError(t, err)

		h, err := d.svc.UpdateHoldStatus(d.ctx, holds[0].ID, model.HoldFulfilled)
		require.NoError(t, err)
		require.Equal(t, model.HoldFulfilled, h.Status)
		require.NotNil(t, h.FulfilledAt)

		item := d.getItem(t, d.book.ID)
		require.False(t, item.OnHoldShelf)
		require.Nil(t, item.HoldShelfFor)
		require.Equal(t, model.HoldActive, d.getHold(t, holds[1].ID).Status)
	})

	t.Run("expired promotes next", func(t *testing.T) {
		t.Parallel()
		d := newDesk(t)
		holds := d.queue(t, d.book, d.jane, d.john)
		_, err := d.svc.ReturnItem(d.ctx, d.book.ID)
		require.NoError(t, err)

		h, err := d.svc.UpdateHoldStatus(d.ctx, holds[0].ID, model.HoldExpired)
		require.NoError(t, err)
		require.Equal(t, model.HoldExpired, h.Status)
		require.Equal(t, model.HoldReady, d.getHold(t, holds[1].ID).Status)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		d := newDesk(t)
		holds := d.queue(t, d.book, d.jane)
		h, err := d.svc.UpdateHoldStatus(d.ctx, holds[0].ID, model.HoldCancelled)
		require.NoError(t, err)
		require.Equal(t, model.HoldCancelled, h.Status)
	})

	t.Run("invalid transitions", func(t *testing.T) {
		t.Parallel()
		d := newDesk(t)
		holds := d.queue(t, d.book, d.jane)

		for _, st := range []model.HoldStatus{model.HoldFulfilled, model.HoldExpired, model.HoldActive} {
			_, err := d.svc.UpdateHoldStatus(d.ctx, holds[0].ID, st)
			require.ErrorIs(t, err, errs.ErrInvalidHoldTransition, st)
		}
		_, err := d.svc.UpdateHoldStatus(d.ctx, "nope", model.HoldReady)
		require.ErrorIs(t, err, errs.ErrHoldNotFound)
	})
}

func TestService_ListHolds(t *testing.T) {
	t.Parallel()
	d := newDesk(t)
	holds := d.queue(t, d.book, d.jane, d.john)
	_, err := d.svc.CancelHold(d.ctx, holds[0].ID)
	require.NoError(t, err)

	all, err := d.svc.ListHolds(d.ctx, model.HoldFilter{ItemID: d.book.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)

	active, err := d.svc.ListHolds(d.ctx, model.HoldFilter{Statuses: []model.HoldStatus{model.HoldActive}})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, holds[1].ID, active[0].ID)

	janes, err := d.svc.ListHolds(d.ctx, model.HoldFilter{LibraryCardNumber: d.jane.LibraryCardNumber})
	require.NoError(t, err)
	require.Len(t, janes, 1)
	require.Equal(t, model.HoldCancelled, janes[0].Status)
}
