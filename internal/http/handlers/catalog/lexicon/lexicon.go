// Package lexicon implements the HTTP handler for the emotion lexicon.
//
// The full catalog is served to PRO users; free users get the fixed
// leading slice, always the same entries in the same order. The tier is
// taken from the request context set by the tier middleware.
package lexicon

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

// Handler serves the emotion lexicon sliced by tier.
type Handler struct {
	log *slog.Logger
}

// New creates a Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Emotion lexicon
// @Description Returns the emotion lexicon. Free users receive the leading entries only.
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]any "Lexicon entries"
// @Router /lexicon [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.lexicon"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tier, ok := r.Context().Value(middlewarectx.Tier).(models.Tier)
	if !ok {
		tier = models.TierFree
	}

	entries := access.LexiconForTier(catalog.LexiconEntries(), tier)

	log.Info("lexicon served",
		slog.String("tier", string(tier)),
		slog.Int("count", len(entries)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"entries": entries,
		"total":   len(catalog.LexiconEntries()),
	}))
}
