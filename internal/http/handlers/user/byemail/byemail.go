// Package byemail implements the HTTP handler looking up a user record
// by e-mail address. The client core uses it on launch to decide whether
// a restored session still matches a registered user and which tier that
// user holds.
package byemail

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/neurobond/neurobond/internal/http/response"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/models"
	userservice "github.com/neurobond/neurobond/internal/services/user"
)

// Handler handles user lookups by e-mail.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the user lookup business logic.
type Service interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// New creates a Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Find a user by e-mail
// @Description Returns the user record for the given e-mail address.
// @Tags Users
// @Produce json
// @Param email path string true "E-mail address"
// @Success 200 {object} map[string]any "User record"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /user/by-email/{email} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.byemail"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")
	if email == "" {
		log.Error("missing email in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing email in url"))
		return
	}

	user, err := h.service.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, userservice.ErrNotFound) {
			log.Info("user not found", slog.String("email", email))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to find user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not find user"))
		return
	}

	log.Info("user found", slog.String("uuid", user.UUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user,
	}))
}
