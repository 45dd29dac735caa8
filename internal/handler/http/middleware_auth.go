package http

import (
	"net/http"

	"github.com/MKhiriev/speech-analytics/internal/logger"
	"github.com/MKhiriev/speech-analytics/internal/utils"
	"github.com/MKhiriev/speech-analytics/models"
)

// authenticate verifies the "Authorization" header through
// [service.AuthService.Authenticate] and stores the resulting
// [models.AuthToken] in the request context. Requests without the header
// continue as anonymous callers.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := h.services.AuthService.Authenticate(ctx, r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).With().Str("user_id", token.UserID).Logger()
		ctx = utils.WithAuthToken(l.WithContext(ctx), token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// require rejects callers whose token lacks permission.
func (h *Handler) require(permission models.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := utils.GetAuthTokenFromContext(r.Context())
			if !ok {
				token = models.AnonymousToken()
			}

			if err := h.services.AuthService.Authorize(r.Context(), token, permission); err != nil {
				logger.FromRequest(r).Debug().
					Str("permission", string(permission)).
					Bool("anonymous", token.IsAnonymous()).
					Msg("permission denied")
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
