// Package middlewarectx contains HTTP middleware for session token
// handling.
//
// SessionMiddleware checks the Authorization header for a valid session
// token and, on success, puts the session claims and the effective
// access tier into the request context for the handlers.
//
// A failed check returns HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/neurobond/neurobond/internal/http/response"
	"github.com/neurobond/neurobond/internal/lib/jwt"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/models"
)

// Key is the context key type of this package.
type Key string

const (
	// User holds the *jwt.SessionClaims of the authenticated user.
	User Key = "user"
	// Tier holds the models.Tier effective for the request.
	Tier Key = "tier"
)

// SessionMiddleware returns middleware that requires a valid session
// token in the Authorization header.
//
// On success the session claims and the tier derived from the user's
// subscription status are added to the request context, otherwise the
// request is rejected with HTTP 401.
func SessionMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired session token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired session token"))
				return
			}

			ctx := context.WithValue(r.Context(), User, claims)
			ctx = context.WithValue(ctx, Tier, models.TierFromStatus(claims.SubscriptionStatus))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TierMiddleware returns middleware that derives the access tier from
// an optional session token.
//
// Requests without a token, or with a token that does not parse, pass
// through on the free tier. This serves content endpoints that stay
// reachable before login but are sliced per tier.
func TierMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.TierMiddleware"

			tier := models.TierFree

			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
				claims, err := maker.ParseToken(tokenStr)
				if err != nil {
					log.Warn("session token ignored",
						slog.String("op", op),
						slog.String("request_id", middleware.GetReqID(r.Context())),
						sl.Err(err))
				} else {
					tier = models.TierFromStatus(claims.SubscriptionStatus)
					ctx := context.WithValue(r.Context(), User, claims)
					r = r.WithContext(ctx)
				}
			}

			ctx := context.WithValue(r.Context(), Tier, tier)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
