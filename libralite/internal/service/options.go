package service

import (
	"time"

	"github.com/skhanzad/libralite/pkg/kafka"
	"github.com/skhanzad/libralite/pkg/metrics"
)

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithCardNumberGenerator(gen func() (string, error)) Option {
	return func(s *Service) {
		s.cardNumber = gen
	}
}

// WithPinHashCost sets the bcrypt cost used for new PIN hashes.
func WithPinHashCost(cost int) Option {
	return func(s *Service) {
		s.pinCost = cost
	}
}

func WithHoldShelfRetention(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.shelfRetention = d
		}
	}
}

func WithLoginLimiter(l LoginLimiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

func WithTokenIssuer(t TokenIssuer) Option {
	return func(s *Service) {
		s.tokens = t
	}
}

func WithEnqueuer(q kafka.Enqueuer) Option {
	return func(s *Service) {
		if q != nil {
			s.enqueuer = q
		}
	}
}

func WithMetrics(m *metrics.Circulation) Option {
	return func(s *Service) {
		s.metrics = m
	}
}
