// Package stages implements the HTTP handler for the training stages.
//
// Free users receive the first stage only, PRO users the whole program.
// The tier is taken from the request context set by the tier middleware.
package stages

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/neurobond/neurobond/internal/access"
	"github.com/neurobond/neurobond/internal/catalog"
	"github.com/neurobond/neurobond/internal/http/middlewarectx"
	"github.com/neurobond/neurobond/internal/http/response"
	"github.com/neurobond/neurobond/internal/models"
)

// Handler serves the training stages sliced by tier.
type Handler struct {
	log *slog.Logger
}

// New creates a Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Training stages
// @Description Returns the training program. Free users receive the first stage only.
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]any "Training stages"
// @Router /training-stages [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.stages"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tier, ok := r.Context().Value(middlewarectx.Tier).(models.Tier)
	if !ok {
		tier = models.TierFree
	}

	stages := access.StagesForTier(catalog.TrainingStages(), tier)

	log.Info("training stages served",
		slog.String("tier", string(tier)),
		slog.Int("count", len(stages)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"stages": stages,
		"total":  len(catalog.TrainingStages()),
	}))
}
