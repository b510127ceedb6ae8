package auth

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/jobpay/internal/domain"
	"github.com/GlebRadaev/jobpay/pkg/utils"
)

type ContextKey string

const ProfileKey ContextKey = "profile"

// ProfileProvider resolves an opaque profile identifier to a profile
// record. Resolution failures of any kind leave the caller unauthorized.
type ProfileProvider interface {
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
}

// Middleware reads the profile_id header, resolves it to a profile and
// stores the profile in the request context under ProfileKey.
func Middleware(profiles ProfileProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("profile_id")
			if raw == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			id, err := strconv.Atoi(raw)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			profile, err := profiles.GetByID(r.Context(), id)
			if err != nil || profile == nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ProfileKey, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProfileFromContext returns the resolved caller profile, or nil when the
// request did not pass through Middleware.
func ProfileFromContext(ctx context.Context) *domain.Profile {
	profile, _ := ctx.Value(ProfileKey).(*domain.Profile)
	return profile
}
