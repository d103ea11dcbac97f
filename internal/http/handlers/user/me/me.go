// Package me implements the HTTP handler returning the profile of the
// authenticated session.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/neurobond/neurobond/internal/http/middlewarectx"
	"github.com/neurobond/neurobond/internal/http/response"
	"github.com/neurobond/neurobond/internal/lib/jwt"
	"github.com/neurobond/neurobond/internal/models"
)

// Handler serves the profile of the authenticated session.
type Handler struct {
	log *slog.Logger
}

// New creates a Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Current session profile
// @Description Returns the user fields and the effective tier of the session token.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Session profile"
// @Failure 401 {object} response.ErrorResponse "Missing or invalid session token"
// @Router /me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.me"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	claims, ok := r.Context().Value(middlewarectx.User).(*jwt.SessionClaims)
	if !ok {
		log.Error("no session claims in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("missing or invalid session token"))
		return
	}

	user := models.User{
		UUID:               claims.UUID,
		Name:               claims.Name,
		Email:              claims.Email,
		PartnerName:        claims.PartnerName,
		SubscriptionStatus: claims.SubscriptionStatus,
	}

	log.Info("session profile served", slog.String("uuid", user.UUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
		"tier": models.TierFromStatus(user.SubscriptionStatus),
	}))
}
