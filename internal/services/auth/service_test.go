package auth

import (
	"context"
	"testing"
	"time"

	"fbaprofit/internal/models"
	"fbaprofit/internal/services/session"
	"fbaprofit/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Create(ctx context.Context) (*models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessions) Get(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessions) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessions) ReplaceProducts(ctx context.Context, id string, products []models.Product) (*models.Session, error) {
	args := m.Called(ctx, id, products)
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessions) UpdateSettings(ctx context.Context, id string, in session.SettingsInput) (*models.Session, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessions) SetPrices(ctx context.Context, id string, quotes []models.PriceQuote) error {
	return m.Called(ctx, id, quotes).Error(0)
}

func (m *MockSessions) Results(ctx context.Context, id string) (*session.Results, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*session.Results), args.Error(1)
}

func newAuth(t *testing.T, sessions session.Service, passphrase string) Service {
	t.Helper()
	svc, err := NewService(sessions, Config{Passphrase: passphrase, Secret: "test-secret", TokenTTL: time.Hour})
	require.NoError(t, err)
	return svc
}

func TestLogin(t *testing.T) {
	sessions := new(MockSessions)
	sessions.On("Create", mock.Anything).Return(&models.Session{ID: "s-1"}, nil)
	svc := newAuth(t, sessions, "open sesame")

	token, sess, err := svc.Login(context.Background(), "open sesame")
	require.NoError(t, err)
	assert.Equal(t, "s-1", sess.ID)

	claims, err := utils.ParseSessionToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.SessionID)
	sessions.AssertExpectations(t)
}

func TestLoginWrongPassphrase(t *testing.T) {
	sessions := new(MockSessions)
	svc := newAuth(t, sessions, "open sesame")

	_, _, err := svc.Login(context.Background(), "guess")
	assert.ErrorIs(t, err, ErrInvalidPassphrase)
	sessions.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLoginGateDisabled(t *testing.T) {
	svc := newAuth(t, new(MockSessions), "")

	_, _, err := svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, ErrGateDisabled)
}

func TestNewServiceRequiresSecret(t *testing.T) {
	_, err := NewService(new(MockSessions), Config{Passphrase: "x"})
	assert.ErrorIs(t, err, utils.ErrSecretNotConfigured)
}

func TestAuthorize(t *testing.T) {
	sessions := new(MockSessions)
	sessions.On("Get", mock.Anything, "s-1").Return(&models.Session{ID: "s-1"}, nil)
	sessions.On("Get", mock.Anything, "gone").Return(nil, session.ErrSessionNotFound)
	svc := newAuth(t, sessions, "pw")

	live, err := utils.GenerateSessionToken("test-secret", "s-1", time.Hour)
	require.NoError(t, err)
	claims, err := svc.Authorize(context.Background(), live)
	require.NoError(t, err)
	assert.Equal(t, "s-1", claims.SessionID)

	dropped, err := utils.GenerateSessionToken("test-secret", "gone", time.Hour)
	require.NoError(t, err)
	_, err = svc.Authorize(context.Background(), dropped)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	_, err = svc.Authorize(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	sessions := new(MockSessions)
	sessions.On("Delete", mock.Anything, "s-1").Return(nil)
	svc := newAuth(t, sessions, "pw")

	require.NoError(t, svc.Logout(context.Background(), "s-1"))
	sessions.AssertExpectations(t)
}
