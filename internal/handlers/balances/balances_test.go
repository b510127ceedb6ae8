package balances

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/internal/dto"
	balanceservice "github.com/GlebRadaev/jobpay/internal/service/balanceservice"
	"github.com/GlebRadaev/jobpay/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func requestCtx(profileID int, targetID string) context.Context {
	ctx := context.WithValue(context.Background(), auth.ProfileKey, &domain.Profile{ID: profileID, Type: domain.ProfileTypeClient})
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", targetID)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		targetID      string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.ProfileResponseDTO
	}{
		{
			name:     "Successful deposit",
			targetID: "1",
			body:     `{"amount":100}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), 1, 1, 100.0).
					Return(&domain.Profile{ID: 1, FirstName: "Harry", LastName: "Potter", Profession: "wizard", Balance: 1250, Type: "client"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ProfileResponseDTO{ID: 1, FirstName: "Harry", LastName: "Potter", Profession: "wizard", Balance: 1250, Type: "client"},
		},
		{
			name:          "Invalid profile id",
			targetID:      "abc",
			body:          `{"amount":100}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid profile id",
		},
		{
			name:          "Invalid request body",
			targetID:      "1",
			body:          `{"amount":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Missing amount",
			targetID:      "1",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:     "Deposit over the cap",
			targetID: "1",
			body:     `{"amount":101}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), 1, 1, 101.0).
					Return(nil, balanceservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid deposit amount",
		},
		{
			name:     "Deposit to a foreign profile",
			targetID: "2",
			body:     `{"amount":100}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), 2, 1, 100.0).
					Return(nil, balanceservice.ErrDepositForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "deposit to this profile is forbidden",
		},
		{
			name:     "Internal server error",
			targetID: "1",
			body:     `{"amount":100}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), 1, 1, 100.0).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/balances/deposit/"+tt.targetID, bytes.NewBufferString(tt.body))
			r = r.WithContext(requestCtx(1, tt.targetID))
			w := httptest.NewRecorder()

			handler.Deposit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
