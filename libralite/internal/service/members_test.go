package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/libralite/internal/service"
	"github.com/skhanzad/libralite/pkg/auth"
	"github.com/stretchr/testify/require"
)

func janeRequest() model.ApplicationRequest {
	return model.ApplicationRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Address:   "1 Main St",
		Phone:     "5550100",
		Pin:       "1234",
	}
}

func TestService_ApplyAndApprove(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	app, err := f.svc.SubmitApplication(f.ctx, janeRequest())
	require.NoError(t, err)
	require.Equal(t, model.ApplicationPending, app.Status)
	require.NotNil(t, app.PinHash)
	require.NotEqual(t, "1234", *app.PinHash)

	member, err := f.svc.ApproveApplication(f.ctx, app.ID)
	require.NoError(t, err)
	require.Regexp(t, `^LIB-\d{8}$`, member.LibraryCardNumber)
	require.Equal(t, model.MemberApproved, member.Status)
	require.Equal(t, app.ID, member.ApplicationID)

	stored, err := f.svc.GetApplication(f.ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, model.ApplicationApproved, stored.Status)
	require.NotNil(t, stored.LibraryCardNumber)
	require.Equal(t, member.LibraryCardNumber, *stored.LibraryCardNumber)
	require.Nil(t, stored.PinHash)

	_, err = f.svc.ApproveApplication(f.ctx, app.ID)
	require.ErrorIs(t, err, errs.ErrApplicationNotPending)
}

func TestService_SubmitApplication_EmailConflicts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.SubmitApplication(f.ctx, janeRequest())
	require.NoError(t, err)

	req := janeRequest()
	req.Email = "  JANE@x.com "
	_, err = f.svc.SubmitApplication(f.ctx, req)
	require.ErrorIs(t, err, errs.ErrEmailApplicationPending)

	f.member(t, "John", "john@x.com")
	req.Email = "john@x.com"
	_, err = f.svc.SubmitApplication(f.ctx, req)
	require.ErrorIs(t, err, errs.ErrEmailAlreadyMember)
}

func TestService_ApproveApplication_Errors(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.ApproveApplication(f.ctx, "missing")
		require.ErrorIs(t, err, errs.ErrApplicationNotFound)
	})

	t.Run("missing pin hash", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		require.NoError(t, f.store.CreateApplication(f.ctx, model.Application{
			ID: "app-1", Email: "a@x.com", Status: model.ApplicationPending, CreatedAt: day0,
		}))
		_, err := f.svc.ApproveApplication(f.ctx, "app-1")
		require.ErrorIs(t, err, errs.ErrMissingPinHash)
	})

	t.Run("card allocation exhausted", func(t *testing.T) {
		t.Parallel()
		calls := 0
		f := newFixture(t, service.WithCardNumberGenerator(func() (string, error) {
			calls++
			return "LIB-00000001", nil
		}))
		f.member(t, "First", "first@x.com")

		app, err := f.svc.SubmitApplication(f.ctx, janeRequest())
		require.NoError(t, err)
		calls = 0
		_, err = f.svc.ApproveApplication(f.ctx, app.ID)
		require.ErrorIs(t, err, errs.ErrCardAllocationExhausted)
		require.Equal(t, 5, calls)

		stored, err := f.svc.GetApplication(f.ctx, app.ID)
		require.NoError(t, err)
		require.Equal(t, model.ApplicationPending, stored.Status)
	})

	t.Run("retries taken card", func(t *testing.T) {
		t.Parallel()
		cards := []string{"LIB-00000001", "LIB-00000001", "LIB-00000002"}
		f := newFixture(t, service.WithCardNumberGenerator(func() (string, error) {
			c := cards[0]
			cards = cards[1:]
			return c, nil
		}))
		first := f.member(t, "First", "first@x.com")
		require.Equal(t, "LIB-00000001", first.LibraryCardNumber)

		second := f.member(t, "Second", "second@x.com")
		require.Equal(t, "LIB-00000002", second.LibraryCardNumber)
	})

	t.Run("reuses card on application", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		hash := "$2a$04$abcdefghijklmnopqrstuu"
		card := "LIB-12345678"
		require.NoError(t, f.store.CreateApplication(f.ctx, model.Application{
			ID: "app-1", Email: "a@x.com", Status: model.ApplicationPending,
			PinHash: &hash, LibraryCardNumber: &card, CreatedAt: day0,
		}))
		m, err := f.svc.ApproveApplication(f.ctx, "app-1")
		require.NoError(t, err)
		require.Equal(t, card, m.LibraryCardNumber)
	})
}

func TestService_RejectApplication(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	app, err := f.svc.SubmitApplication(f.ctx, janeRequest())
	require.NoError(t, err)

	rejected, err := f.svc.RejectApplication(f.ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, model.ApplicationRejected, rejected.Status)
	require.Nil(t, rejected.PinHash)

	_, err = f.svc.RejectApplication(f.ctx, app.ID)
	require.ErrorIs(t, err, errs.ErrApplicationNotPending)

	// a rejected application no longer blocks a new one
	_, err = f.svc.SubmitApplication(f.ctx, janeRequest())
	require.NoError(t, err)
}

func TestService_ListApplications(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	for i := 0; i < 30; i++ {
		req := janeRequest()
		req.Email = fmt.Sprintf("user%d@x.com", i)
		_, err := f.svc.SubmitApplication(f.ctx, req)
		require.NoError(t, err)
		f.clock.Advance(time.Minute)
	}
	apps, err := f.svc.ListApplications(f.ctx, model.ApplicationPending)
	require.NoError(t, err)
	require.Len(t, apps, 25)
	require.True(t, apps[0].CreatedAt.After(apps[24].CreatedAt))

	apps, err = f.svc.ListApplications(f.ctx, model.ApplicationApproved)
	require.NoError(t, err)
	require.Empty(t, apps)
}

type fakeLimiter struct {
	allow  bool
	err    error
	resets int
}

func (l *fakeLimiter) Allow(context.Context, string) (bool, error) { return l.allow, l.err }

func (l *fakeLimiter) Reset(context.Context, string) error {
	l.resets++
	return nil
}

func TestService_AuthenticateMember(t *testing.T) {
	t.Parallel()
	tokens := auth.NewManager(auth.Config{Secret: "s", Issuer: "libralite", TTL: time.Hour})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		limiter := &fakeLimiter{allow: true}
		f := newFixture(t, service.WithTokenIssuer(tokens), service.WithLoginLimiter(limiter))
		m := f.member(t, "Jane", "jane@x.com")

		resp, err := f.svc.AuthenticateMember(f.ctx, model.LoginRequest{LibraryCardNumber: m.LibraryCardNumber, Pin: "1234"})
		require.NoError(t, err)
		require.Equal(t, m.LibraryCardNumber, resp.Member.LibraryCardNumber)
		require.Equal(t, 1, limiter.resets)

		claims, err := tokens.Parse(resp.Token)
		require.NoError(t, err)
		require.Equal(t, m.LibraryCardNumber, claims.Subject)
	})

	t.Run("wrong pin", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, service.WithTokenIssuer(tokens))
		m := f.member(t, "Jane", "jane@x.com")
		_, err := f.svc.AuthenticateMember(f.ctx, model.LoginRequest{LibraryCardNumber: m.LibraryCardNumber, Pin: "9999"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown card", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		_, err := f.svc.AuthenticateMember(f.ctx, model.LoginRequest{LibraryCardNumber: "LIB-00000000", Pin: "1234"})
		require.ErrorIs(t, err, errs.ErrMemberNotFound)
	})

	t.Run("not approved", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		require.NoError(t, f.store.CreateMember(f.ctx, model.Member{LibraryCardNumber: "LIB-00000009", Status: model.MemberPending}))
		_, err := f.svc.AuthenticateMember(f.ctx, model.LoginRequest{LibraryCardNumber: "LIB-00000009", Pin: "1234"})
		require.ErrorIs(t, err, errs.ErrMemberNotApproved)
	})

	t.Run("throttled", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, service.WithLoginLimiter(&fakeLimiter{allow: false}))
		m := f.member(t, "Jane", "jane@x.com")
		_, err := f.svc.AuthenticateMember(f.ctx, model.LoginRequest{LibraryCardNumber: m.LibraryCardNumber, Pin: "1234"})
		require.ErrorIs(t, err, errs.ErrTooManyAttempts)
	})

	t.Run("limiter down fails open", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, service.WithLoginLimiter(&fakeLimiter{err: errors.New("redis down")}))
		m := f.member(t, "Jane", "jane@x.com")
		_, err := f.svc.AuthenticateMember(f.ctx, model.LoginRequest{LibraryCardNumber: m.LibraryCardNumber, Pin: "1234"})
		require.NoError(t, err)
	})
}

func TestService_ListMembers(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	a := f.member(t, "A", "a@x.com")
	b := f.member(t, "B", "b@x.com")

	members, err := f.svc.ListMembers(f.ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.ElementsMatch(t, []string{a.LibraryCardNumber, b.LibraryCardNumber},
		[]string{members[0].LibraryCardNumber, members[1].LibraryCardNumber})
	require.Less(t, members[0].LibraryCardNumber, members[1].LibraryCardNumber)

	got, err := f.svc.GetMember(f.ctx, a.LibraryCardNumber)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", got.Email)
}
