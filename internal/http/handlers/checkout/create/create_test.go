package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/neurobond/neurobond/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.CheckoutSession), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful session creation",
			body: `{"package_type":"monthly","origin_url":"https://app.example.com/upgrade","user_email":"anna@example.com"}`,
			setupMock: func(m *MockService) {
				session := &models.CheckoutSession{
					URL:       "https://checkout.example.com/pay/cs_test_1",
					SessionID: "cs_test_1",
				}
				m.On("CreateSession", mock.Anything, mock.AnythingOfType("models.CheckoutRequest")).
					Return(session, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"session_id":"cs_test_1"`,
		},
		{
			name:           "invalid JSON",
			body:           `{broken`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "unknown package type",
			body:           `{"package_type":"weekly","origin_url":"https://app.example.com/upgrade","user_email":"anna@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field PackageType must be one of the allowed values`,
		},
		{
			name:           "missing origin url",
			body:           `{"package_type":"monthly","user_email":"anna@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field OriginURL is a required field`,
		},
		{
			name: "provider error",
			body: `{"package_type":"yearly","origin_url":"https://app.example.com/upgrade","user_email":"anna@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("CreateSession", mock.Anything, mock.AnythingOfType("models.CheckoutRequest")).
					Return(nil, errors.New("provider unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not create checkout session"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/checkout/session", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
