// Package view implements the view router: the single source of truth
// for which full-screen page is displayed, and the only component that
// changes it.
//
// Transitions are synchronous and driven by explicit user actions only.
// An illegal transition returns an error and leaves the state unchanged.
// The payment view is reachable from everywhere and returns to the view
// that was active before it, dashboard when that is unknown.
package view

import (
	"fmt"
	"sync"

	"github.com/neurobond/neurobond/internal/models"
)

// ErrIllegalTransition is wrapped by every rejected transition.
var ErrIllegalTransition = fmt.Errorf("illegal view transition")

// transitions lists the legal target views per source view, payment and
// reset handled separately.
var transitions = map[models.ViewState][]models.ViewState{
	models.ViewLanding:    {models.ViewOnboarding, models.ViewDashboard},
	models.ViewOnboarding: {models.ViewDashboard},
	models.ViewDashboard:  models.FeatureViews,
	// Feature views go back to the dashboard or, on logout, to landing.
	models.ViewTrainingCatalog:  {models.ViewDashboard, models.ViewLanding, models.ViewTrainingStage},
	models.ViewTrainingStage:    {models.ViewDashboard, models.ViewLanding, models.ViewTrainingCatalog, models.ViewTrainingScenario},
	models.ViewTrainingScenario: {models.ViewDashboard, models.ViewLanding, models.ViewTrainingStage},
	models.ViewLexicon:          {models.ViewDashboard, models.ViewLanding},
	models.ViewCommunityCases:   {models.ViewDashboard, models.ViewLanding},
	models.ViewOwnCases:         {models.ViewDashboard, models.ViewLanding},
	models.ViewDialogCoaching:   {models.ViewDashboard, models.ViewLanding},
	models.ViewPartnerDashboard: {models.ViewDashboard, models.ViewLanding},
}

// Router holds the current view state.
type Router struct {
	mu       sync.Mutex
	current  models.ViewState
	returnTo models.ViewState
}

// NewRouter creates a Router showing the landing view.
func NewRouter() *Router {
	return &Router{current: models.ViewLanding}
}

// Current returns the active view.
func (r *Router) Current() models.ViewState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Go transitions to the target view when the transition table allows it.
func (r *Router) Go(target models.ViewState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if target == models.ViewPayment {
		return fmt.Errorf("%w: use OpenPayment for %s", ErrIllegalTransition, target)
	}
	for _, allowed := range transitions[r.current] {
		if allowed == target {
			r.current = target
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, r.current, target)
}

// OpenPayment shows the payment view from any state and remembers where
// to return.
func (r *Router) OpenPayment() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == models.ViewPayment {
		return
	}
	r.returnTo = r.current
	r.current = models.ViewPayment
}

// ClosePayment returns to the view that was active before the payment
// view, dashboard when that is unknown.
func (r *Router) ClosePayment() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != models.ViewPayment {
		return
	}
	if r.returnTo == "" {
		r.current = models.ViewDashboard
	} else {
		r.current = r.returnTo
	}
	r.returnTo = ""
}

// Reset forces the view at launch or logout, bypassing the transition
// table. Only landing, onboarding and dashboard are valid entry points.
func (r *Router) Reset(target models.ViewState) error {
	switch target {
	case models.ViewLanding, models.ViewOnboarding, models.ViewDashboard:
	default:
		return fmt.Errorf("%w: reset to %s", ErrIllegalTransition, target)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = target
	r.returnTo = ""
	return nil
}
