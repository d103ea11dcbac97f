// Package list implements the HTTP handler for the community cases page.
//
// Handler returns the builtin cases followed by user submissions in
// stable submission order, so repeated loads render the page the same
// way.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/neurobond/neurobond/internal/http/response"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/models"
	caseservice "github.com/neurobond/neurobond/internal/services/cases"
)

const (
	defaultLimit = caseservice.DefaultListLimit
	maxLimit     = 200
)

// Handler handles community case listing.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the case listing business logic.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]models.CommunityCase, error)
}

// New creates a Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary List community cases
// @Description Returns builtin cases followed by user submissions in submission order.
// @Tags Cases
// @Produce json
// @Param limit query int false "Maximum number of user submissions"
// @Param offset query int false "Submission offset"
// @Success 200 {object} map[string]any "Case list"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /community-cases [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cases.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = min(parsed, maxLimit)
		}
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	cases, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list community cases", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list community cases"))
		return
	}

	log.Info("community cases listed", slog.Int("count", len(cases)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"cases": cases,
	}))
}
