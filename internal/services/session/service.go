// Package session owns the caller-side state of a calculator session:
// products, selected markets, rates, freight and editable prices.
package session

import (
	"context"
	"fmt"
	"time"

	"fbaprofit/internal/config"
	"fbaprofit/internal/logger"
	"fbaprofit/internal/models"
	"fbaprofit/internal/services/profit"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error

	ReplaceProducts(ctx context.Context, id string, products []models.Product) (*models.Session, error)
	UpdateSettings(ctx context.Context, id string, in SettingsInput) (*models.Session, error)
	SetPrices(ctx context.Context, id string, quotes []models.PriceQuote) error

	Results(ctx context.Context, id string) (*Results, error)
}

type service struct {
	store   Store
	catalog *config.Catalog
	engine  *profit.Engine
	now     func() time.Time
}

func NewService(store Store, catalog *config.Catalog, engine *profit.Engine) Service {
	return &service{
		store:   store,
		catalog: catalog,
		engine:  engine,
		now:     time.Now,
	}
}

func (s *service) Create(ctx context.Context) (*models.Session, error) {
	countries := make([]models.Country, len(s.catalog.DefaultCountries))
	copy(countries, s.catalog.DefaultCountries)
	rate, _ := s.catalog.FreightRate(models.FreightSea)

	sess := &models.Session{
		ID:          uuid.NewString(),
		CreatedAt:   s.now().UTC(),
		Countries:   countries,
		Rates:       s.catalog.DefaultRates.Clone(),
		FreightMode: models.FreightSea,
		FreightRate: rate,
		Products:    []models.Product{models.SeedProduct()},
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Get().WithComponent("session").WithField("session_id", sess.ID).Info("session created")
	return sess, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Session, error) {
	return s.store.LoadSession(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteSession(ctx, id)
}

func (s *service) ReplaceProducts(ctx context.Context, id string, products []models.Product) (*models.Session, error) {
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if p.SKU == "" {
			return nil, ErrMissingSKU
		}
		if seen[p.SKU] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, p.SKU)
		}
		seen[p.SKU] = true
	}

	sess, err := s.store.LoadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Products = products
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}
	return sess, nil
}

func (s *service) UpdateSettings(ctx context.Context, id string, in SettingsInput) (*models.Session, error) {
	sess, err := s.store.LoadSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Countries != nil {
		countries, err := s.normalizeCountries(in.Countries)
		if err != nil {
			return nil, err
		}
		sess.Countries = countries
	}

	if in.Rates != nil {
		rates := sess.Rates.Clone()
		for code, r := range in.Rates {
			if r <= 0 {
				return nil, fmt.Errorf("%w: %s", ErrInvalidRate, code)
			}
			rates[code] = r
		}
		sess.Rates = rates
	}

	if in.FreightMode != nil {
		rate, ok := s.catalog.FreightRate(*in.FreightMode)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFreightMode, *in.FreightMode)
		}
		sess.FreightMode = *in.FreightMode
		sess.FreightRate = rate
	}

	if in.FreightRate != nil {
		if *in.FreightRate < 0 {
			return nil, ErrInvalidFreightRate
		}
		sess.FreightRate = *in.FreightRate
	}

	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return sess, nil
}

func (s *service) normalizeCountries(in []models.Country) ([]models.Country, error) {
	out := make([]models.Country, 0, len(in))
	seen := make(map[models.Country]bool, len(in))
	for _, raw := range in {
		c := models.ParseCountry(string(raw))
		if !s.catalog.Has(c) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedCountry, raw)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}

func (s *service) SetPrices(ctx context.Context, id string, quotes []models.PriceQuote) error {
	if _, err := s.store.LoadSession(ctx, id); err != nil {
		return err
	}

	normalized := make([]models.PriceQuote, 0, len(quotes))
	for _, q := range quotes {
		q.Country = models.ParseCountry(string(q.Country))
		if !s.catalog.Has(q.Country) {
			return fmt.Errorf("%w: %s", ErrUnsupportedCountry, q.Country)
		}
		if q.SKU == "" {
			return ErrMissingSKU
		}
		if q.Price < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidPrice, q.Key())
		}
		normalized = append(normalized, q)
	}
	if len(normalized) == 0 {
		return nil
	}
	return s.store.SetPrices(ctx, id, normalized)
}

// Results seeds the default price for pairs referenced for the first time,
// then evaluates the session matrix.
func (s *service) Results(ctx context.Context, id string) (*Results, error) {
	sess, err := s.store.LoadSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(sess.Countries) == 0 {
		return &Results{
			Matrix:      &profit.Matrix{Rows: []models.ResultRow{}},
			Notice:      profit.NoCountriesMessage,
			NoticeLevel: NoticeWarning,
		}, nil
	}

	var seeds []models.PriceQuote
	for _, p := range sess.Products {
		if !p.Qualifies() {
			continue
		}
		for _, c := range sess.Countries {
			seeds = append(seeds, models.PriceQuote{SKU: p.SKU, Country: c, Price: s.catalog.DefaultPrice})
		}
	}
	if len(seeds) > 0 {
		if err := s.store.SeedPrices(ctx, id, seeds); err != nil {
			return nil, fmt.Errorf("failed to seed prices: %w", err)
		}
	}

	prices, err := s.store.Prices(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}

	m := s.engine.BuildMatrix(profit.Input{
		Products:    sess.Products,
		Countries:   sess.Countries,
		Prices:      prices,
		Rates:       sess.Rates,
		FreightRate: sess.FreightRate,
	})

	res := &Results{Matrix: m}
	if m.Empty() {
		res.Notice = profit.NoResultsMessage
		res.NoticeLevel = NoticeInfo
	}
	return res, nil
}
