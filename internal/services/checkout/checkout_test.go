package checkout

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neurobond/neurobond/internal/models"
	"github.com/neurobond/neurobond/internal/paymentprovider"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ActivateSubscription(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func newTestService(gateway paymentprovider.Gateway, users UserService) *Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	prices := PriceResolver{MonthlyPriceID: "price_m", YearlyPriceID: "price_y"}
	return New(gateway, users, prices, nil, logger)
}

func TestCreateSession(t *testing.T) {
	gateway := paymentprovider.NewFakeGateway()
	svc := newTestService(gateway, new(MockUserService))

	session, err := svc.CreateSession(context.Background(), models.CheckoutRequest{
		PackageType: models.PackageMonthly,
		OriginURL:   "https://app.example.com",
		UserEmail:   "sophia@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Contains(t, session.URL, session.SessionID)
}

func TestCreateSession_UnknownPackage(t *testing.T) {
	gateway := paymentprovider.NewFakeGateway()
	svc := newTestService(gateway, new(MockUserService))

	_, err := svc.CreateSession(context.Background(), models.CheckoutRequest{
		PackageType: "lifetime",
		OriginURL:   "https://app.example.com",
		UserEmail:   "sophia@example.com",
	})

	assert.Error(t, err)
}

func TestCreateSession_ProviderError(t *testing.T) {
	gateway := paymentprovider.NewFakeGateway()
	gateway.CreateErr = errors.New("provider down")
	svc := newTestService(gateway, new(MockUserService))

	_, err := svc.CreateSession(context.Background(), models.CheckoutRequest{
		PackageType: models.PackageMonthly,
		OriginURL:   "https://app.example.com",
		UserEmail:   "sophia@example.com",
	})

	assert.Error(t, err)
}

func TestResolveStatus_PaidActivatesUser(t *testing.T) {
	gateway := paymentprovider.NewFakeGateway()
	users := new(MockUserService)
	svc := newTestService(gateway, users)

	session, err := svc.CreateSession(context.Background(), models.CheckoutRequest{
		PackageType: models.PackageYearly,
		OriginURL:   "https://app.example.com",
		UserEmail:   "sophia@example.com",
	})
	require.NoError(t, err)
	gateway.MarkPaid(session.SessionID)

	users.On("FindByEmail", mock.Anything, "sophia@example.com").
		Return(&models.User{Name: "Sophia", Email: "sophia@example.com"}, nil)
	users.On("ActivateSubscription", mock.Anything, "sophia@example.com").Return(nil)

	status, err := svc.ResolveStatus(context.Background(), session.SessionID)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, status.PaymentStatus)
	users.AssertExpectations(t)
}

func TestResolveStatus_RepeatedPollActivatesOnce(t *testing.T) {
	gateway := paymentprovider.NewFakeGateway()
	users := new(MockUserService)
	svc := newTestService(gateway, users)

	session, err := svc.CreateSession(context.Background(), models.CheckoutRequest{
		PackageType: models.PackageYearly,
		OriginURL:   "https://app.example.com",
		UserEmail:   "sophia@example.com",
	})
	require.NoError(t, err)
	gateway.MarkPaid(session.SessionID)

	users.On("FindByEmail", mock.Anything, "sophia@example.com").
		Return(&models.User{
			Name: "Sophia", Email: "sophia@example.com",
			SubscriptionStatus: models.SubscriptionStatusFree,
		}, nil).Once()
	users.On("ActivateSubscription", mock.Anything, "sophia@example.com").Return(nil).Once()
	// After activation the record reads active; polling again must be a no-op.
	users.On("FindByEmail", mock.Anything, "sophia@example.com").
		Return(&models.User{
			Name: "Sophia", Email: "sophia@example.com",
			SubscriptionStatus: models.SubscriptionStatusActive,
		}, nil)

	first, err := svc.ResolveStatus(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, first.PaymentStatus)

	second, err := svc.ResolveStatus(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, second.PaymentStatus)

	users.AssertNumberOfCalls(t, "ActivateSubscription", 1)
}

func TestResolveStatus_UnpaidDoesNotActivate(t *testing.T) {
	gateway := paymentprovider.NewFakeGateway()
	users := new(MockUserService)
	svc := newTestService(gateway, users)

	session, err := svc.CreateSession(context.Background(), models.CheckoutRequest{
		PackageType: models.PackageMonthly,
		OriginURL:   "https://app.example.com",
		UserEmail:   "sophia@example.com",
	})
	require.NoError(t, err)

	status, err := svc.ResolveStatus(context.Background(), session.SessionID)

	require.NoError(t, err)
	assert.NotEqual(t, models.PaymentStatusPaid, status.PaymentStatus)
	users.AssertNotCalled(t, "ActivateSubscription", mock.Anything, mock.Anything)
}

func TestResolveStatus_UnknownSession(t *testing.T) {
	gateway := paymentprovider.NewFakeGateway()
	users := new(MockUserService)
	svc := newTestService(gateway, users)

	_, err := svc.ResolveStatus(context.Background(), "cs_missing")

	assert.Error(t, err)
	users.AssertNotCalled(t, "ActivateSubscription", mock.Anything, mock.Anything)
}

func TestResolveStatus_PaidUnregisteredEmail(t *testing.T) {
	gateway := paymentprovider.NewFakeGateway()
	users := new(MockUserService)
	svc := newTestService(gateway, users)

	session, err := svc.CreateSession(context.Background(), models.CheckoutRequest{
		PackageType: models.PackageMonthly,
		OriginURL:   "https://app.example.com",
		UserEmail:   "new@example.com",
	})
	require.NoError(t, err)
	gateway.MarkPaid(session.SessionID)

	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, errors.New("user not found"))

	status, err := svc.ResolveStatus(context.Background(), session.SessionID)

	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, status.PaymentStatus)
	users.AssertNotCalled(t, "ActivateSubscription", mock.Anything, mock.Anything)
}
