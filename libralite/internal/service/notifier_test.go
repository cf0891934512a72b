package service_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/pkg/kafka"
	"github.com/stretchr/testify/require"
)

func TestService_DeliverHoldReady(t *testing.T) {
	t.Parallel()
	d := newDesk(t)
	d.queue(t, d.book, d.jane)
	res, err := d.svc.ReturnItem(d.ctx, d.book.ID)
	require.NoError(t, err)

	events := d.events.Events()
	require.Len(t, events, 1)
	event := events[0]
	require.Equal(t, d.book.ID, event.ItemID)
	require.Equal(t, "Dune", event.ItemTitle)
	require.Equal(t, d.jane.LibraryCardNumber, event.LibraryCardNumber)
	require.Equal(t, "Jane Doe", event.MemberName)
	require.True(t, res.ShelfEntry.ExpiresAt.Equal(event.ExpiresAt))

	require.NoError(t, d.svc.DeliverHoldReady(d.ctx, event))
	entry, err := d.store.GetShelfEntry(d.ctx, event.ShelfEntryID)
	require.NoError(t, err)
	require.True(t, entry.NotificationSent)

	// redelivery is a no-op
	d.store.FailOn("MarkShelfNotified", errors.New("must not be called"))
	require.NoError(t, d.svc.DeliverHoldReady(d.ctx, event))
	d.store.FailOn("MarkShelfNotified", nil)

	d.checkout(t, d.jane, d.book)
	require.NoError(t, d.svc.DeliverHoldReady(d.ctx, event), "cleared entries are dropped")
}

func TestService_DeliverHoldReady_StoreError(t *testing.T) {
	t.Parallel()
	d := newDesk(t)
	d.queue(t, d.book, d.jane)
	_, err := d.svc.ReturnItem(d.ctx, d.book.ID)
	require.NoError(t, err)

	boom := errors.New("boom")
	d.store.FailOn("MarkShelfNotified", boom)
	err = d.svc.DeliverHoldReady(d.ctx, d.events.Events()[0])
	require.ErrorIs(t, err, boom)
}

func TestService_PublishFailureKeepsPromotion(t *testing.T) {
	t.Parallel()
	for _, publishErr := range []error{kafka.ErrDisabled, errors.New("broker down")} {
		d := newDesk(t)
		d.events.err = publishErr
		holds := d.queue(t, d.book, d.jane)

		res, err := d.svc.ReturnItem(d.ctx, d.book.ID)
		require.NoError(t, err)
		require.NotNil(t, res.ShelfEntry)
		require.False(t, res.ShelfEntry.NotificationSent)
		require.Equal(t, model.HoldReady, d.getHold(t, holds[0].ID).Status)
		require.Empty(t, d.events.Events())
	}
}
