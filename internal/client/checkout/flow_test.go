package checkout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neurobond/neurobond/internal/client/session"
	"github.com/neurobond/neurobond/internal/lib/jwt"
	"github.com/neurobond/neurobond/internal/models"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.CheckoutSession), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAPI) CheckoutStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	args := m.Called(ctx, sessionID)
	if res := args.Get(0); res != nil {
		return res.(*models.CheckoutStatus), args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newTestStore() *session.Store {
	maker := jwt.NewMaker("test-secret", time.Hour)
	return session.NewStore(session.NewMemoryKV(), maker, newNoopLogger())
}

func TestFlow_Start(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*MockAPI)
		wantURL     string
		wantErr     bool
		wantPending *models.PendingUpgrade
	}{
		{
			name: "success persists pending before returning url",
			setupMock: func(m *MockAPI) {
				m.On("CreateCheckoutSession", mock.Anything, mock.AnythingOfType("models.CheckoutRequest")).
					Return(&models.CheckoutSession{URL: "https://pay.example.com/cs_1", SessionID: "cs_1"}, nil)
			},
			wantURL: "https://pay.example.com/cs_1",
			wantPending: &models.PendingUpgrade{
				PackageType:       models.PackageMonthly,
				CheckoutSessionID: "cs_1",
			},
		},
		{
			name: "backend error leaves no pending",
			setupMock: func(m *MockAPI) {
				m.On("CreateCheckoutSession", mock.Anything, mock.AnythingOfType("models.CheckoutRequest")).
					Return(nil, errors.New("backend down"))
			},
			wantErr: true,
		},
		{
			name: "missing redirect url leaves no pending",
			setupMock: func(m *MockAPI) {
				m.On("CreateCheckoutSession", mock.Anything, mock.AnythingOfType("models.CheckoutRequest")).
					Return(&models.CheckoutSession{SessionID: "cs_1"}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockAPI)
			tt.setupMock(api)
			store := newTestStore()
			flow := NewFlow(api, store, newNoopLogger())

			url, err := flow.Start(context.Background(), models.PackageMonthly,
				"anna@example.com", "https://app.example.com/upgrade")

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, store.PendingUpgrade())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantURL, url)
				got := store.PendingUpgrade()
				require.NotNil(t, got)
				assert.Equal(t, *tt.wantPending, *got)
			}
			api.AssertExpectations(t)
		})
	}
}

func TestFlow_ReconcileOnLaunch_Paid(t *testing.T) {
	api := new(MockAPI)
	api.On("CheckoutStatus", mock.Anything, "cs_1").
		Return(&models.CheckoutStatus{PaymentStatus: models.PaymentStatusPaid}, nil)

	store := newTestStore()
	require.NoError(t, store.SavePendingUpgrade(models.PendingUpgrade{
		PackageType:       models.PackageYearly,
		CheckoutSessionID: "cs_1",
	}))

	flow := NewFlow(api, store, newNoopLogger())

	outcome, cleanURL := flow.ReconcileOnLaunch(context.Background(),
		"https://app.example.com/?session_id=cs_1&lang=de")

	assert.Equal(t, OutcomePaid, outcome)
	assert.NotContains(t, cleanURL, "session_id")
	assert.Contains(t, cleanURL, "lang=de")
	assert.Nil(t, store.PendingUpgrade(), "pending must be cleared after reconciliation")
	api.AssertExpectations(t)
}

func TestFlow_ReconcileOnLaunch_FailClosed(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockAPI)
	}{
		{
			name: "unpaid status",
			setupMock: func(m *MockAPI) {
				m.On("CheckoutStatus", mock.Anything, "cs_1").
					Return(&models.CheckoutStatus{PaymentStatus: models.PaymentStatusUnpaid}, nil)
			},
		},
		{
			name: "status call fails",
			setupMock: func(m *MockAPI) {
				m.On("CheckoutStatus", mock.Anything, "cs_1").
					Return(nil, errors.New("network error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockAPI)
			tt.setupMock(api)

			store := newTestStore()
			require.NoError(t, store.SavePendingUpgrade(models.PendingUpgrade{
				PackageType:       models.PackageMonthly,
				CheckoutSessionID: "cs_1",
			}))

			flow := NewFlow(api, store, newNoopLogger())

			outcome, _ := flow.ReconcileOnLaunch(context.Background(), "https://app.example.com/")

			assert.Equal(t, OutcomeNotPaid, outcome)
			assert.Nil(t, store.PendingUpgrade(), "pending must be cleared even without upgrade")
			api.AssertExpectations(t)
		})
	}
}

func TestFlow_ReconcileOnLaunch_NoPending(t *testing.T) {
	api := new(MockAPI)
	store := newTestStore()
	flow := NewFlow(api, store, newNoopLogger())

	outcome, cleanURL := flow.ReconcileOnLaunch(context.Background(), "https://app.example.com/")

	assert.Equal(t, OutcomeNone, outcome)
	assert.Equal(t, "https://app.example.com/", cleanURL)
	api.AssertExpectations(t)
}

func TestFlow_ReconcileOnLaunch_URLParamWins(t *testing.T) {
	// A fresh session id in the URL replaces a stale stored one.
	api := new(MockAPI)
	api.On("CheckoutStatus", mock.Anything, "cs_new").
		Return(&models.CheckoutStatus{PaymentStatus: models.PaymentStatusPaid}, nil)

	store := newTestStore()
	require.NoError(t, store.SavePendingUpgrade(models.PendingUpgrade{
		PackageType:       models.PackageMonthly,
		CheckoutSessionID: "cs_stale",
	}))

	flow := NewFlow(api, store, newNoopLogger())

	outcome, _ := flow.ReconcileOnLaunch(context.Background(),
		"https://app.example.com/?session_id=cs_new")

	assert.Equal(t, OutcomePaid, outcome)
	api.AssertExpectations(t)
}
