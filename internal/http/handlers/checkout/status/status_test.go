package status

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/neurobond/neurobond/internal/models"
	"github.com/neurobond/neurobond/internal/paymentprovider"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ResolveStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	args := m.Called(ctx, sessionID)
	if res := args.Get(0); res != nil {
		return res.(*models.CheckoutStatus), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		sessionID      string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "paid session",
			sessionID: "cs_test_1",
			setupMock: func(m *MockService) {
				m.On("ResolveStatus", mock.Anything, "cs_test_1").
					Return(&models.CheckoutStatus{PaymentStatus: models.PaymentStatusPaid}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"payment_status":"paid"`,
		},
		{
			name:      "unpaid session",
			sessionID: "cs_test_2",
			setupMock: func(m *MockService) {
				m.On("ResolveStatus", mock.Anything, "cs_test_2").
					Return(&models.CheckoutStatus{PaymentStatus: models.PaymentStatusUnpaid}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"payment_status":"unpaid"`,
		},
		{
			name:      "unknown session",
			sessionID: "cs_test_404",
			setupMock: func(m *MockService) {
				m.On("ResolveStatus", mock.Anything, "cs_test_404").
					Return(nil, paymentprovider.ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"checkout session not found"`,
		},
		{
			name:      "provider error",
			sessionID: "cs_test_3",
			setupMock: func(m *MockService) {
				m.On("ResolveStatus", mock.Anything, "cs_test_3").
					Return(nil, errors.New("provider unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not resolve checkout status"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/checkout/status/"+tt.sessionID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("session_id", tt.sessionID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
