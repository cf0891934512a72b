package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/libralite/internal/repository/memstore"
	"github.com/skhanzad/libralite/libralite/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingEnqueuer struct {
	mu     sync.Mutex
	events []model.HoldReadyEvent
	err    error
}

func (q *recordingEnqueuer) Enqueue(_, _ string, v any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.events = append(q.events, v.(model.HoldReadyEvent))
	return nil
}

func (q *recordingEnqueuer) Events() []model.HoldReadyEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]model.HoldReadyEvent(nil), q.events...)
}

type fixture struct {
	ctx    context.Context
	store  *memstore.Store
	svc    *service.Service
	clock  *testClock
	events *recordingEnqueuer
}

var day0 = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, opts ...service.Option) *fixture {
	t.Helper()
	f := &fixture{
		ctx:    context.Background(),
		store:  memstore.New(),
		clock:  &testClock{now: day0},
		events: &recordingEnqueuer{},
	}
	base := []service.Option{
		service.WithClock(f.clock.Now),
		service.WithPinHashCost(bcrypt.MinCost),
		service.WithEnqueuer(f.events),
	}
	f.svc = service.NewService(f.store, zap.NewNop(), append(base, opts...)...)
	return f
}

func (f *fixture) member(t *testing.T, firstName, email string) model.Member {
	t.Helper()
	app, err := f.svc.SubmitApplication(f.ctx, model.ApplicationRequest{
		FirstName: firstName,
		LastName:  "Doe",
		Email:     email,
		Address:   "1 Main St",
		Phone:     "5550100",
		Pin:       "1234",
	})
	require.NoError(t, err)
	m, err := f.svc.ApproveApplication(f.ctx, app.ID)
	require.NoError(t, err)
	return m
}

func (f *fixture) item(t *testing.T, title string, itemType model.ItemType) model.Item {
	t.Helper()
	item, err := f.svc.CreateItem(f.ctx, model.CreateItemRequest{Title: title, Author: "Author", ItemType: itemType})
	require.NoError(t, err)
	return item
}

func (f *fixture) checkout(t *testing.T, m model.Member, item model.Item) model.Loan {
	t.Helper()
	loan, err := f.svc.CheckoutItem(f.ctx, model.CheckoutRequest{MemberID: m.LibraryCardNumber, ItemID: item.ID})
	require.NoError(t, err)
	return loan
}

func (f *fixture) hold(t *testing.T, m model.Member, item model.Item) model.Hold {
	t.Helper()
	h, err := f.svc.PlaceHold(f.ctx, model.PlaceHoldRequest{
		ItemID:            item.ID,
		LibraryCardNumber: m.LibraryCardNumber,
		MemberName:        m.FullName(),
		MemberEmail:       m.Email,
	})
	require.NoError(t, err)
	return h
}

func (f *fixture) getItem(t *testing.T, id string) model.Item {
	t.Helper()
	item, err := f.store.GetItem(f.ctx, id)
	require.NoError(t, err)
	return item
}

func (f *fixture) getHold(t *testing.T, id string) model.Hold {
	t.Helper()
	h, err := f.store.GetHold(f.ctx, id)
	require.NoError(t, err)
	return h
}
