// Package dialog implements the HTTP handler for dialog analysis.
//
// Handler passes the submitted transcript to the configured analysis
// provider and returns the scored feedback.
package dialog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/neurobond/neurobond/internal/http/response"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/metrics"
	"github.com/neurobond/neurobond/internal/models"
)

// Handler handles dialog analysis requests.
type Handler struct {
	log      *slog.Logger
	provider Provider
	validate *validator.Validate
}

// Provider scores a dialog transcript.
type Provider interface {
	Name() string
	Analyze(ctx context.Context, dialog string) (*models.DialogAnalysis, error)
}

// New creates a Handler.
func New(log *slog.Logger, provider Provider) *Handler {
	return &Handler{
		log:      log,
		provider: provider,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Analyze a dialog transcript
// @Description Scores a dialog transcript and returns feedback with recommendations.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "Dialog transcript"
// @Success 200 {object} map[string]any "Analysis result"
// @Failure 400 {object} response.ErrorResponse "Invalid JSON"
// @Failure 422 {object} response.ErrorResponse "Validation error"
// @Failure 500 {object} response.ErrorResponse "Provider error"
// @Router /analysis/dialog [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analysis.dialog"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	result, err := h.provider.Analyze(r.Context(), req.Dialog)
	if err != nil {
		log.Error("failed to analyze dialog",
			slog.String("provider", h.provider.Name()), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not analyze dialog"))
		return
	}

	metrics.DialogAnalyses.WithLabelValues(h.provider.Name()).Inc()
	log.Info("dialog analyzed",
		slog.String("provider", h.provider.Name()),
		slog.Int("empathy_score", result.EmpathyScore))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"analysis": result,
	}))
}
