package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers"
	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
)

const msgUnverifiedToken = "access token was not accepted by Holidaze API"

// ProfileClient получает профиль владельца токена из Holidaze API
type ProfileClient interface {
	GetProfile(ctx context.Context, accessToken, name string) (*domain.Profile, error)
}

// VerifyCustomer подтверждает пользователя из Auth у Holidaze API
// Профиль должен открыться этим токеном и совпасть с name и email из claims
// Ставится после Auth на маршрутах, которые отдают данные пользователя из журнала
func VerifyCustomer(profiles ProfileClient, log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			customer, ok := GetCustomer(r.Context())
			if !ok || customer.Name == "" {
				handlers.RespondUnauthorized(w, msgUnverifiedToken)
				return
			}

			profile, err := profiles.GetProfile(r.Context(), customer.AccessToken, customer.Name)
			switch {
			case err == nil:
			case errors.Is(err, holidazeClient.ErrRejected), errors.Is(err, holidazeClient.ErrProfileNotFound):
				log.Warn().
					Err(err).
					Str("customer", customer.Name).
					Str("request_id", GetRequestID(r.Context())).
					Msg("Access token rejected by Holidaze API")
				handlers.RespondUnauthorized(w, msgUnverifiedToken)
				return
			case errors.Is(err, holidazeClient.ErrUnavailable):
				log.Error().Err(err).Str("request_id", GetRequestID(r.Context())).Msg("Profile check failed")
				handlers.RespondRemoteUnavailable(w, err)
				return
			default:
				log.Error().Err(err).Str("request_id", GetRequestID(r.Context())).Msg("Profile check failed")
				handlers.RespondInternalError(w)
				return
			}

			if !sameCustomer(customer, profile) {
				log.Warn().
					Str("claimed_name", customer.Name).
					Str("claimed_email", customer.Email).
					Str("profile_name", profile.Name).
					Str("request_id", GetRequestID(r.Context())).
					Msg("Token claims do not match Holidaze profile")
				handlers.RespondUnauthorized(w, msgUnverifiedToken)
				return
			}

			// Дальше идут данные профиля, а не claims
			customer.Name = profile.Name
			customer.Email = profile.Email

			next.ServeHTTP(w, r.WithContext(WithCustomer(r.Context(), customer)))
		})
	}
}

func sameCustomer(customer domain.Customer, profile *domain.Profile) bool {
	if !strings.EqualFold(customer.Name, profile.Name) {
		return false
	}
	return customer.Email == "" || strings.EqualFold(customer.Email, profile.Email)
}
