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
	caseservice "github.com/neurobond/neurobond/internal/services/cases"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateDirect(ctx context.Context, req models.CreateCaseRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	validBody := `{"dialog":"A: Du hörst mir nie zu.\nB: Das stimmt nicht.","title":"Streit ums Zuhören","category":"Kommunikation","user_consent":true}`
	noConsentBody := `{"dialog":"A: Du hörst mir nie zu.","title":"Streit ums Zuhören","category":"Kommunikation","user_consent":false}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful submission",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("CreateDirect", mock.Anything, mock.AnythingOfType("models.CreateCaseRequest")).
					Return(7, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":7`,
		},
		{
			name:           "invalid JSON",
			body:           `{broken`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "missing title",
			body:           `{"dialog":"A: ...","category":"Kommunikation","user_consent":true}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Title is a required field`,
		},
		{
			name: "consent missing",
			body: noConsentBody,
			setupMock: func(m *MockService) {
				m.On("CreateDirect", mock.Anything, mock.AnythingOfType("models.CreateCaseRequest")).
					Return(0, caseservice.ErrConsentRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"user consent required"`,
		},
		{
			name: "service error",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("CreateDirect", mock.Anything, mock.AnythingOfType("models.CreateCaseRequest")).
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not create community case"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/create-community-case-direct", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
