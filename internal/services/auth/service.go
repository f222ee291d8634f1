// Package auth implements the passphrase gate in front of the calculator.
// A successful login opens a session and returns a token bound to it.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fbaprofit/internal/logger"
	"fbaprofit/internal/models"
	"fbaprofit/internal/services/session"
	"fbaprofit/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, passphrase string) (string, *models.Session, error)
	// Authorize validates the token and checks that its session still exists.
	Authorize(ctx context.Context, token string) (*models.SessionClaims, error)
	Logout(ctx context.Context, sessionID string) error
}

type Config struct {
	Passphrase string
	Secret     string
	TokenTTL   time.Duration
}

type service struct {
	sessions session.Service
	hash     []byte
	secret   string
	ttl      time.Duration
}

// NewService hashes the configured passphrase once. An empty passphrase
// leaves the gate closed: every login fails with ErrGateDisabled.
func NewService(sessions session.Service, cfg Config) (Service, error) {
	if cfg.Secret == "" {
		return nil, utils.ErrSecretNotConfigured
	}
	s := &service{
		sessions: sessions,
		secret:   cfg.Secret,
		ttl:      cfg.TokenTTL,
	}
	if cfg.Passphrase != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Passphrase), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash passphrase: %w", err)
		}
		s.hash = hash
	}
	return s, nil
}

func (s *service) Login(ctx context.Context, passphrase string) (string, *models.Session, error) {
	log := logger.Get().WithComponent("auth")
	if s.hash == nil {
		log.Warn("login attempted while gate is disabled")
		return "", nil, ErrGateDisabled
	}

	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(passphrase)); err != nil {
		log.Info("login failed: incorrect passphrase")
		return "", nil, ErrInvalidPassphrase
	}

	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateSessionToken(s.secret, sess.ID, s.ttl)
	if err != nil {
		log.WithError(err).Error("error generating token")
		_ = s.sessions.Delete(ctx, sess.ID)
		return "", nil, errors.New("error generating token")
	}
	return token, sess, nil
}

func (s *service) Authorize(ctx context.Context, token string) (*models.SessionClaims, error) {
	claims, err := utils.ParseSessionToken(s.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if _, err := s.sessions.Get(ctx, claims.SessionID); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
