package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/skhanzad/libralite/libralite/internal/repository"
	"github.com/skhanzad/libralite/pkg/kafka"
	"github.com/skhanzad/libralite/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultHoldShelfRetention = 7 * 24 * time.Hour
	applicationsPageSize      = 25
	cardAllocationAttempts    = 5
	popularItemsLimit         = 5
	defaultStatsDays          = 7
)

// LoginLimiter throttles authentication attempts per card number.
type LoginLimiter interface {
	Allow(ctx context.Context, cardNumber string) (bool, error)
	Reset(ctx context.Context, cardNumber string) error
}

type TokenIssuer interface {
	Mint(cardNumber, name string) (string, error)
}

type Service struct {
	log  *zap.Logger
	repo repository.Store

	now            func() time.Time
	cardNumber     func() (string, error)
	pinCost        int
	shelfRetention time.Duration

	limiter  LoginLimiter
	tokens   TokenIssuer
	enqueuer kafka.Enqueuer
	metrics  *metrics.Circulation
}

func NewService(repo repository.Store, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:            log.Named("service"),
		repo:           repo,
		now:            func() time.Time { return time.Now().UTC() },
		cardNumber:     GenerateCardNumber,
		pinCost:        bcrypt.DefaultCost,
		shelfRetention: DefaultHoldShelfRetention,
		enqueuer:       kafka.NewNoopEnqueuer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var cardNumberSpace = big.NewInt(100_000_000)

// GenerateCardNumber returns a random LIB-######## candidate.
func GenerateCardNumber() (string, error) {
	n, err := rand.Int(rand.Reader, cardNumberSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("LIB-%08d", n.Int64()), nil
}
