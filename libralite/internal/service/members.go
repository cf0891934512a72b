package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/libralite/internal/errs"
	"github.com/skhanzad/libralite/libralite/internal/model"
	"github.com/skhanzad/libralite/libralite/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) SubmitApplication(ctx context.Context, req model.ApplicationRequest) (model.Application, error) {
	pinHash, err := bcrypt.GenerateFromPassword([]byte(req.Pin), s.pinCost)
	if err != nil {
		return model.Application{}, errors.Wrap(err, "hash pin")
	}
	hash := string(pinHash)
	now := s.now()
	app := model.Application{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     normalizeEmail(req.Email),
		Address:   strings.TrimSpace(req.Address),
		Phone:     strings.TrimSpace(req.Phone),
		PinHash:   &hash,
		Status:    model.ApplicationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.InTx(ctx, func(tx repository.Store) error {
		isMember, err := tx.MemberEmailExists(ctx, app.Email)
		if err != nil {
			return err
		}
		if isMember {
			return errs.ErrEmailAlreadyMember
		}
		pending, err := tx.PendingApplicationExists(ctx, app.Email)
		if err != nil {
			return err
		}
		if pending {
			return errs.ErrEmailApplicationPending
		}
		return tx.CreateApplication(ctx, app)
	})
	if err != nil {
		return model.Application{}, err
	}
	s.log.Info("application submitted", zap.String("applicationId", app.ID))
	return app, nil
}

func (s *Service) GetApplication(ctx context.Context, id string) (model.Application, error) {
	return s.repo.GetApplication(ctx, id)
}

func (s *Service) ListApplications(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error) {
	return s.repo.ListApplications(ctx, status, applicationsPageSize)
}

// ApproveApplication issues a card and creates the member in one
// transaction. A card number already on the application is reused.
func (s *Service) ApproveApplication(ctx context.Context, id string) (model.Member, error) {
	var member model.Member
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		app, err := tx.GetApplication(ctx, id)
		if err != nil {
			return err
		}
		if app.Status != model.ApplicationPending {
			return errs.ErrApplicationNotPending
		}
		if app.PinHash == nil || *app.PinHash == "" {
			return errs.ErrMissingPinHash
		}

		card, err := s.allocateCardNumber(ctx, tx, app)
		if err != nil {
			return err
		}

		now := s.now()
		member = model.Member{
			LibraryCardNumber: card,
			FirstName:         app.FirstName,
			LastName:          app.LastName,
			Email:             app.Email,
			Address:           app.Address,
			Phone:             app.Phone,
			Status:            model.MemberApproved,
			PinHash:           *app.PinHash,
			ApplicationID:     app.ID,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := tx.CreateMember(ctx, member); err != nil {
			return err
		}

		app.Status = model.ApplicationApproved
		app.LibraryCardNumber = &card
		app.PinHash = nil
		app.UpdatedAt = now
		return tx.UpdateApplication(ctx, app)
	})
	if err != nil {
		return model.Member{}, err
	}
	s.log.Info("application approved",
		zap.String("applicationId", id),
		zap.String("libraryCardNumber", member.LibraryCardNumber))
	return member, nil
}

func (s *Service) allocateCardNumber(ctx context.Context, tx repository.Store, app model.Application) (string, error) {
	if app.LibraryCardNumber != nil && *app.LibraryCardNumber != "" {
		return *app.LibraryCardNumber, nil
	}
	for i := 0; i < cardAllocationAttempts; i++ {
		card, err := s.cardNumber()
		if err != nil {
			return "", errors.Wrap(err, "generate card number")
		}
		taken, err := tx.MemberExists(ctx, card)
		if err != nil {
			return "", err
		}
		if !taken {
			return card, nil
		}
	}
	return "", errs.ErrCardAllocationExhausted
}

func (s *Service) RejectApplication(ctx context.Context, id string) (model.Application, error) {
	var app model.Application
	err := s.repo.InTx(ctx, func(tx repository.Store) error {
		var err error
		if app, err = tx.GetApplication(ctx, id); err != nil {
			return err
		}
		if app.Status != model.ApplicationPending {
			return errs.ErrApplicationNotPending
		}
		app.Status = model.ApplicationRejected
		app.PinHash = nil
		app.UpdatedAt = s.now()
		return tx.UpdateApplication(ctx, app)
	})
	if err != nil {
		return model.Application{}, err
	}
	return app, nil
}

func (s *Service) AuthenticateMember(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	card := strings.TrimSpace(req.LibraryCardNumber)
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, card)
		switch {
		case err != nil:
			// fail open when the limiter is unreachable
			s.log.Warn("login limiter", zap.Error(err))
		case !allowed:
			return model.LoginResponse{}, errs.ErrTooManyAttempts
		}
	}

	member, err := s.repo.GetMember(ctx, card)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if member.Status != model.MemberApproved {
		return model.LoginResponse{}, errs.ErrMemberNotApproved
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PinHash), []byte(req.Pin)); err != nil {
		return model.LoginResponse{}, errs.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, card); err != nil {
			s.log.Warn("login limiter reset", zap.Error(err))
		}
	}
	resp := model.LoginResponse{Member: member}
	if s.tokens != nil {
		if resp.Token, err = s.tokens.Mint(member.LibraryCardNumber, member.FullName()); err != nil {
			return model.LoginResponse{}, errors.Wrap(err, "mint token")
		}
	}
	return resp, nil
}

func (s *Service) GetMember(ctx context.Context, cardNumber string) (model.Member, error) {
	return s.repo.GetMember(ctx, cardNumber)
}

func (s *Service) ListMembers(ctx context.Context) ([]model.Member, error) {
	return s.repo.ListMembers(ctx)
}
