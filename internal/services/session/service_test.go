package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"fbaprofit/internal/config"
	"fbaprofit/internal/fees"
	"fbaprofit/internal/models"
	"fbaprofit/internal/services/profit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveSession(ctx context.Context, s *models.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStore) LoadSession(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockStore) DeleteSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) Prices(ctx context.Context, id string) (models.PriceBook, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.PriceBook), args.Error(1)
}

func (m *MockStore) SetPrices(ctx context.Context, id string, quotes []models.PriceQuote) error {
	args := m.Called(ctx, id, quotes)
	return args.Error(0)
}

func (m *MockStore) SeedPrices(ctx context.Context, id string, quotes []models.PriceQuote) error {
	args := m.Called(ctx, id, quotes)
	return args.Error(0)
}

func newTestService(t *testing.T, store Store) *service {
	t.Helper()
	catalog, err := config.DefaultCatalog()
	require.NoError(t, err)
	engine := profit.NewEngine(catalog, fees.NewFulfillmentCalculator(catalog.LowPriceThresholds()))
	svc := NewService(store, catalog, engine).(*service)
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }
	return svc
}

func sessionFixture() *models.Session {
	return &models.Session{
		ID:          "s-1",
		Countries:   []models.Country{models.CountryUS, models.CountryDE},
		Rates:       models.CurrencyRateTable{"USD": 7.2, "EUR": 7.8},
		FreightMode: models.FreightSea,
		FreightRate: 9,
		Products:    []models.Product{models.SeedProduct()},
	}
}

func TestService_Create(t *testing.T) {
	store := new(MockStore)
	store.On("SaveSession", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)
	svc := newTestService(t, store)

	sess, err := svc.Create(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, []models.Country{models.CountryUS, models.CountryDE, models.CountryUK}, sess.Countries)
	assert.Equal(t, 7.20, sess.Rates["USD"])
	assert.Equal(t, models.FreightSea, sess.FreightMode)
	assert.Equal(t, 9.0, sess.FreightRate)
	assert.Equal(t, []models.Product{models.SeedProduct()}, sess.Products)
	assert.Equal(t, 2026, sess.CreatedAt.Year())
	store.AssertExpectations(t)

	sess.Rates["USD"] = 1
	assert.Equal(t, 7.20, svc.catalog.DefaultRates["USD"])
}

func TestService_CreateStoreFailure(t *testing.T) {
	store := new(MockStore)
	store.On("SaveSession", mock.Anything, mock.Anything).Return(errors.New("redis down"))
	svc := newTestService(t, store)

	_, err := svc.Create(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}

func TestService_ReplaceProducts(t *testing.T) {
	tests := []struct {
		name     string
		products []models.Product
		wantErr  error
	}{
		{
			name:     "replaces products",
			products: []models.Product{{SKU: "A"}, {SKU: "B", WeightGrams: 10}},
		},
		{
			name:     "missing sku",
			products: []models.Product{{SKU: ""}},
			wantErr:  ErrMissingSKU,
		},
		{
			name:     "duplicate sku",
			products: []models.Product{{SKU: "A"}, {SKU: "A"}},
			wantErr:  ErrDuplicateSKU,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			if tt.wantErr == nil {
				store.On("LoadSession", mock.Anything, "s-1").Return(sessionFixture(), nil)
				store.On("SaveSession", mock.Anything, mock.MatchedBy(func(s *models.Session) bool {
					return len(s.Products) == len(tt.products)
				})).Return(nil)
			}
			svc := newTestService(t, store)

			sess, err := svc.ReplaceProducts(context.Background(), "s-1", tt.products)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.products, sess.Products)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestService_UpdateSettings(t *testing.T) {
	mode := func(m models.FreightMode) *models.FreightMode { return &m }
	rate := func(r float64) *float64 { return &r }

	tests := []struct {
		name    string
		input   SettingsInput
		check   func(t *testing.T, s *models.Session)
		wantErr error
	}{
		{
			name:  "countries are normalized and deduplicated",
			input: SettingsInput{Countries: []models.Country{"fr", " SE ", "FR"}},
			check: func(t *testing.T, s *models.Session) {
				assert.Equal(t, []models.Country{models.CountryFR, models.CountrySE}, s.Countries)
			},
		},
		{
			name:  "empty selection is allowed",
			input: SettingsInput{Countries: []models.Country{}},
			check: func(t *testing.T, s *models.Session) {
				assert.Empty(t, s.Countries)
			},
		},
		{
			name:    "unsupported country",
			input:   SettingsInput{Countries: []models.Country{"JP"}},
			wantErr: ErrUnsupportedCountry,
		},
		{
			name:  "rates merge",
			input: SettingsInput{Rates: map[string]float64{"USD": 7.1}},
			check: func(t *testing.T, s *models.Session) {
				assert.Equal(t, 7.1, s.Rates["USD"])
				assert.Equal(t, 7.8, s.Rates["EUR"])
			},
		},
		{
			name:    "non-positive rate",
			input:   SettingsInput{Rates: map[string]float64{"USD": 0}},
			wantErr: ErrInvalidRate,
		},
		{
			name:  "freight mode sets default rate",
			input: SettingsInput{FreightMode: mode(models.FreightAir)},
			check: func(t *testing.T, s *models.Session) {
				assert.Equal(t, models.FreightAir, s.FreightMode)
				assert.Equal(t, 45.0, s.FreightRate)
			},
		},
		{
			name:  "explicit freight rate wins over mode default",
			input: SettingsInput{FreightMode: mode(models.FreightRail), FreightRate: rate(12.5)},
			check: func(t *testing.T, s *models.Session) {
				assert.Equal(t, models.FreightRail, s.FreightMode)
				assert.Equal(t, 12.5, s.FreightRate)
			},
		},
		{
			name:    "unknown freight mode",
			input:   SettingsInput{FreightMode: mode("teleport")},
			wantErr: ErrUnknownFreightMode,
		},
		{
			name:    "negative freight rate",
			input:   SettingsInput{FreightRate: rate(-1)},
			wantErr: ErrInvalidFreightRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			store.On("LoadSession", mock.Anything, "s-1").Return(sessionFixture(), nil)
			if tt.wantErr == nil {
				store.On("SaveSession", mock.Anything, mock.Anything).Return(nil)
			}
			svc := newTestService(t, store)

			sess, err := svc.UpdateSettings(context.Background(), "s-1", tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				store.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			tt.check(t, sess)
			store.AssertExpectations(t)
		})
	}
}

func TestService_SetPrices(t *testing.T) {
	store := new(MockStore)
	store.On("LoadSession", mock.Anything, "s-1").Return(sessionFixture(), nil)
	store.On("SetPrices", mock.Anything, "s-1", []models.PriceQuote{
		{SKU: "A001", Country: models.CountryDE, Price: 10},
	}).Return(nil)
	svc := newTestService(t, store)

	err := svc.SetPrices(context.Background(), "s-1", []models.PriceQuote{{SKU: "A001", Country: "de", Price: 10}})
	require.NoError(t, err)
	store.AssertExpectations(t)

	err = svc.SetPrices(context.Background(), "s-1", []models.PriceQuote{{SKU: "A001", Country: "US", Price: -1}})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	err = svc.SetPrices(context.Background(), "s-1", []models.PriceQuote{{SKU: "A001", Country: "JP", Price: 1}})
	assert.ErrorIs(t, err, ErrUnsupportedCountry)
}

func TestService_SetPricesUnknownSession(t *testing.T) {
	store := new(MockStore)
	store.On("LoadSession", mock.Anything, "gone").Return(nil, ErrSessionNotFound)
	svc := newTestService(t, store)

	err := svc.SetPrices(context.Background(), "gone", []models.PriceQuote{{SKU: "A001", Country: "US", Price: 1}})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ResultsSeedsDefaultPrices(t *testing.T) {
	sess := sessionFixture()
	sess.Products = append(sess.Products, models.Product{SKU: "EMPTY"})

	store := new(MockStore)
	store.On("LoadSession", mock.Anything, "s-1").Return(sess, nil)
	store.On("SeedPrices", mock.Anything, "s-1", []models.PriceQuote{
		{SKU: "A001", Country: models.CountryUS, Price: 19.99},
		{SKU: "A001", Country: models.CountryDE, Price: 19.99},
	}).Return(nil)
	store.On("Prices", mock.Anything, "s-1").Return(models.PriceBook{
		"price_A001_US": 19.99,
		"price_A001_DE": 10,
	}, nil)
	svc := newTestService(t, store)

	res, err := svc.Results(context.Background(), "s-1")
	require.NoError(t, err)
	store.AssertExpectations(t)

	assert.Empty(t, res.Notice)
	assert.Equal(t, []string{"EMPTY"}, res.Matrix.Skipped)
	require.Len(t, res.Matrix.Rows, 2)
	assert.Equal(t, 4.20, res.Matrix.Rows[0].FulfillmentFee)
	assert.Equal(t, 10.0, res.Matrix.Rows[1].Price)
	assert.Equal(t, "Low-Price Extra-Large Envelope", res.Matrix.Rows[1].FulfillmentTier)
}

func TestService_ResultsNotices(t *testing.T) {
	t.Run("no countries", func(t *testing.T) {
		sess := sessionFixture()
		sess.Countries = nil
		store := new(MockStore)
		store.On("LoadSession", mock.Anything, "s-1").Return(sess, nil)
		svc := newTestService(t, store)

		res, err := svc.Results(context.Background(), "s-1")
		require.NoError(t, err)
		assert.Equal(t, profit.NoCountriesMessage, res.Notice)
		assert.Equal(t, NoticeWarning, res.NoticeLevel)
		assert.True(t, res.Matrix.Empty())
	})

	t.Run("no qualifying product", func(t *testing.T) {
		sess := sessionFixture()
		sess.Products = []models.Product{{SKU: "A001", WeightGrams: 300}}
		store := new(MockStore)
		store.On("LoadSession", mock.Anything, "s-1").Return(sess, nil)
		store.On("Prices", mock.Anything, "s-1").Return(models.PriceBook{}, nil)
		svc := newTestService(t, store)

		res, err := svc.Results(context.Background(), "s-1")
		require.NoError(t, err)
		assert.Equal(t, profit.NoResultsMessage, res.Notice)
		assert.Equal(t, NoticeInfo, res.NoticeLevel)
		store.AssertNotCalled(t, "SeedPrices", mock.Anything, mock.Anything, mock.Anything)
	})
}
