package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Config struct {
	Secret string        `envconfig:"JWT_SECRET" json:"-"`
	Issuer string        `envconfig:"JWT_ISSUER" default:"libralite"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"12h"`
}

// Claims identifies a logged in member by library card number.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

var (
	ErrSecretRequired = errors.New("jwt secret is required")
	ErrInvalidToken   = errors.New("invalid token")

	signingMethod = jwt.SigningMethodHS256
)

type Manager struct {
	cfg Config
	now func() time.Time
}

func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg, now: time.Now}
}

// EnsureSecret fills an empty secret with a random per-process one and
// reports whether it did. Tokens signed with it do not survive a restart.
func EnsureSecret(cfg Config) (Config, bool, error) {
	if cfg.Secret != "" {
		return cfg, false, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return cfg, false, errors.Wrap(err, "generate jwt secret")
	}
	cfg.Secret = hex.EncodeToString(buf)
	return cfg, true, nil
}

// Mint signs a token whose subject is the card number.
func (m *Manager) Mint(cardNumber, name string) (string, error) {
	if m.cfg.Secret == "" {
		return "", ErrSecretRequired
	}
	now := m.now()
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cardNumber,
			Issuer:    m.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.TTL)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	if m.cfg.Secret == "" {
		return nil, ErrSecretRequired
	}
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != signingMethod {
			return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	},
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, fmt.Sprint(err))
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type contextKey int

const cardNumberKey contextKey = iota + 1

func SetAuthContext(ctx context.Context, cardNumber string) context.Context {
	return context.WithValue(ctx, cardNumberKey, cardNumber)
}

func CardNumberFromContext(ctx context.Context) (string, bool) {
	card, ok := ctx.Value(cardNumberKey).(string)
	return card, ok && card != ""
}
