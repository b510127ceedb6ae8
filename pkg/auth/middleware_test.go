package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := NewMockProfileProvider(ctrl)

	tests := []struct {
		name            string
		header          string
		prepareMock     func()
		expectedCode    int
		expectedProfile *domain.Profile
	}{
		{
			name:         "Missing header",
			header:       "",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed header",
			header:       "not-a-number",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Unknown profile",
			header: "99",
			prepareMock: func() {
				profiles.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Provider error",
			header: "1",
			prepareMock: func() {
				profiles.EXPECT().GetByID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Resolved profile",
			header: "1",
			prepareMock: func() {
				profiles.EXPECT().GetByID(gomock.Any(), 1).
					Return(&domain.Profile{ID: 1, FirstName: "Harry", Type: domain.ProfileTypeClient}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedProfile: &domain.Profile{ID: 1, FirstName: "Harry", Type: domain.ProfileTypeClient},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			var seen *domain.Profile
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = ProfileFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/contracts", nil)
			if tt.header != "" {
				r.Header.Set("profile_id", tt.header)
			}
			w := httptest.NewRecorder()

			Middleware(profiles)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedProfile, seen)
		})
	}
}

func TestProfileFromContext(t *testing.T) {
	assert.Nil(t, ProfileFromContext(context.Background()))

	profile := &domain.Profile{ID: 7}
	ctx := context.WithValue(context.Background(), ProfileKey, profile)
	assert.Equal(t, profile, ProfileFromContext(ctx))
}
