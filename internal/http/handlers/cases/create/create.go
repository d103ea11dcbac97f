// Package create implements the HTTP handler for direct community case
// submission.
//
// A submission without explicit consent is rejected before anything is
// written, and the response names the consent as the reason.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/neurobond/neurobond/internal/http/response"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/models"
	caseservice "github.com/neurobond/neurobond/internal/services/cases"
)

// Handler handles community case submissions.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service describes the case submission business logic.
type Service interface {
	CreateDirect(ctx context.Context, req models.CreateCaseRequest) (int, error)
}

// New creates a Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Submit a community case
// @Description Stores a user-submitted dialog example. Requires explicit consent.
// @Tags Cases
// @Accept json
// @Produce json
// @Param request body models.CreateCaseRequest true "Case data"
// @Success 200 {object} map[string]any "Id of the stored case"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON or missing consent"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Server error"
// @Router /create-community-case-direct [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cases.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("title", req.Title))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.service.CreateDirect(r.Context(), req)
	if err != nil {
		if errors.Is(err, caseservice.ErrConsentRequired) {
			log.Info("case submission without consent rejected")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("user consent required"))
			return
		}
		log.Error("failed to create community case", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create community case"))
		return
	}

	log.Info("community case created", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
