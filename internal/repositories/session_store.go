package repositories

import (
	"context"
	"fmt"

	"fbaprofit/internal/models"
	"fbaprofit/internal/repositories/cache"
	"fbaprofit/internal/services/session"
	keys "fbaprofit/internal/utils/cache"
)

// SessionStore keeps each session as a JSON document plus a hash of prices
// keyed by models.PriceKey. Every write refreshes the expiry of both keys.
type SessionStore struct {
	cache *cache.CacheService
}

var _ session.Store = (*SessionStore)(nil)

func NewSessionStore(c *cache.CacheService) *SessionStore {
	return &SessionStore{cache: c}
}

func sessionKey(id string) string {
	return keys.GenerateKey(keys.EntitySession, keys.KeyID, id)
}

func pricesKey(id string) string {
	return keys.GenerateKey(keys.EntityPrices, keys.KeySession, id)
}

func (s *SessionStore) SaveSession(ctx context.Context, sess *models.Session) error {
	if err := s.cache.Set(ctx, sessionKey(sess.ID), sess); err != nil {
		return err
	}
	return s.cache.Touch(ctx, pricesKey(sess.ID))
}

func (s *SessionStore) LoadSession(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	found, err := s.cache.Get(ctx, sessionKey(id), &sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, session.ErrSessionNotFound
	}
	if sess.Rates == nil {
		sess.Rates = models.CurrencyRateTable{}
	}
	return &sess, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKey(id), pricesKey(id))
}

func (s *SessionStore) Prices(ctx context.Context, id string) (models.PriceBook, error) {
	raw, err := s.cache.HashGetFloats(ctx, pricesKey(id))
	if err != nil {
		return nil, err
	}
	return models.PriceBook(raw), nil
}

func (s *SessionStore) SetPrices(ctx context.Context, id string, quotes []models.PriceQuote) error {
	return s.writePrices(ctx, id, quotes, false)
}

func (s *SessionStore) SeedPrices(ctx context.Context, id string, quotes []models.PriceQuote) error {
	return s.writePrices(ctx, id, quotes, true)
}

func (s *SessionStore) writePrices(ctx context.Context, id string, quotes []models.PriceQuote, onlyMissing bool) error {
	fields := make(map[string]float64, len(quotes))
	for _, q := range quotes {
		fields[q.Key()] = q.Price
	}
	if err := s.cache.HashSetFloats(ctx, pricesKey(id), fields, onlyMissing); err != nil {
		return fmt.Errorf("session %s: %w", id, err)
	}
	return s.cache.Touch(ctx, sessionKey(id))
}
