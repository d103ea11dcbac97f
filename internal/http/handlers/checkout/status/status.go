// Package status implements the HTTP handler resolving the payment
// status of a checkout session.
//
// The answer is fail-closed: a session id the provider does not know
// yields 404, and only an explicit "paid" from the provider reports the
// session as paid. The side effect of activating the payer's
// subscription lives in the checkout service, not here.
package status

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
	"github.com/neurobond/neurobond/internal/paymentprovider"
)

// Handler handles checkout status requests.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service describes the checkout status business logic.
type Service interface {
	ResolveStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error)
}

// New creates a Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Resolve a checkout session status
// @Description Returns the payment status of a checkout session. A paid session activates the payer's subscription.
// @Tags Checkout
// @Produce json
// @Param session_id path string true "Checkout session id"
// @Success 200 {object} map[string]any "Payment status"
// @Failure 404 {object} response.ErrorResponse "Unknown session"
// @Failure 500 {object} response.ErrorResponse "Provider error"
// @Router /checkout/status/{session_id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.status"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		log.Error("missing session_id in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing session_id in url"))
		return
	}

	status, err := h.service.ResolveStatus(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, paymentprovider.ErrSessionNotFound) {
			log.Info("unknown checkout session", slog.String("session_id", sessionID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("checkout session not found"))
			return
		}
		log.Error("failed to resolve checkout status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not resolve checkout status"))
		return
	}

	log.Info("checkout status resolved",
		slog.String("session_id", sessionID),
		slog.String("payment_status", status.PaymentStatus))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"payment_status": status.PaymentStatus,
	}))
}
