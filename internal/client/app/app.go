// Package app wires the client core together: session store, access
// policy, view router, notifier, backend client and checkout flow
// become one injectable application object driving the screens.
//
// All state changes go through this object, which keeps the view router
// the single source of truth for what is on screen and the access
// policy the single judge of what a tier may open.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/neurobond/neurobond/internal/access"
	"github.com/neurobond/neurobond/internal/catalog"
	"github.com/neurobond/neurobond/internal/client/checkout"
	"github.com/neurobond/neurobond/internal/client/notify"
	"github.com/neurobond/neurobond/internal/client/session"
	"github.com/neurobond/neurobond/internal/client/view"
	"github.com/neurobond/neurobond/internal/lib/password"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/models"
	"github.com/neurobond/neurobond/internal/services/analysis"
)

var (
	// ErrStaleView marks a response that arrived after the user had
	// already navigated away; the result must be discarded.
	ErrStaleView = errors.New("view changed while the request was in flight")
	// ErrBusy marks a duplicate submission while an identical request is
	// still outstanding.
	ErrBusy = errors.New("request already in flight")
	// ErrTestModeDisabled is returned when no test-mode secret hash is
	// configured.
	ErrTestModeDisabled = errors.New("test mode is not configured")
)

// API is the backend surface the application object needs.
type API interface {
	checkout.API
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	CommunityCases(ctx context.Context) ([]models.CommunityCase, error)
	CreateCommunityCase(ctx context.Context, req models.CreateCaseRequest) (int, error)
	AnalyzeDialog(ctx context.Context, dialog string) (*models.DialogAnalysis, error)
}

// App is the client application state.
type App struct {
	api      API
	store    *session.Store
	router   *view.Router
	notifier *notify.Notifier
	flow     *checkout.Flow
	log      *slog.Logger
	validate *validator.Validate

	// testModeHash is the bcrypt hash of the tier toggle secret; empty
	// disables the toggle.
	testModeHash string

	mu       sync.Mutex
	user     *models.User
	override models.Tier
	// epoch increments on every view change; an async result is applied
	// only when the epoch it was started under is still current.
	epoch uint64

	analysisBusy   bool
	caseSubmitBusy bool
}

// New creates the application object.
func New(api API, store *session.Store, testModeHash string, log *slog.Logger) *App {
	return &App{
		api:          api,
		store:        store,
		router:       view.NewRouter(),
		notifier:     notify.New(),
		flow:         checkout.NewFlow(api, store, log),
		log:          log,
		validate:     validator.New(),
		testModeHash: testModeHash,
	}
}

// Notifier exposes the notification slot for rendering.
func (a *App) Notifier() *notify.Notifier { return a.notifier }

// CurrentView returns the active view.
func (a *App) CurrentView() models.ViewState { return a.router.Current() }

// CurrentUser returns the logged-in user, nil before onboarding.
func (a *App) CurrentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

// EffectiveTier resolves the tier the access policy would apply now.
func (a *App) EffectiveTier() models.Tier {
	a.mu.Lock()
	defer a.mu.Unlock()
	return access.EffectiveTier(a.user, a.override)
}

func (a *App) bumpEpoch() {
	a.mu.Lock()
	a.epoch++
	a.mu.Unlock()
}

func (a *App) currentEpoch() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.epoch
}

// Launch decides the first view. Precedence: a pending checkout is
// reconciled first, then a restorable session opens the dashboard, and
// only a visitor with neither lands on the marketing page. The returned
// URL is the launch URL with the checkout parameter stripped.
func (a *App) Launch(ctx context.Context, rawURL string) string {
	outcome, cleanURL := a.flow.ReconcileOnLaunch(ctx, rawURL)
	if outcome == checkout.OutcomePaid {
		a.mu.Lock()
		a.override = models.TierPro
		a.mu.Unlock()
		// A paid visitor still registers a profile first.
		_ = a.router.Reset(models.ViewOnboarding)
		a.bumpEpoch()
		a.notifier.Show("Zahlung erfolgreich! Bitte vervollständige dein Profil.", models.SeveritySuccess)
		return cleanURL
	}
	if outcome == checkout.OutcomeNotPaid {
		a.notifier.Show("Die Zahlung wurde nicht abgeschlossen.", models.SeverityError)
	}

	if restored := a.store.Restore(); restored != nil {
		a.mu.Lock()
		a.user = a.refreshUser(ctx, restored)
		a.mu.Unlock()
		_ = a.router.Reset(models.ViewDashboard)
		a.bumpEpoch()
		return cleanURL
	}

	_ = a.router.Reset(models.ViewLanding)
	a.bumpEpoch()
	return cleanURL
}

// refreshUser asks the backend for the current record so a subscription
// activated elsewhere is picked up. The restored record survives a
// backend failure. Caller holds the lock.
func (a *App) refreshUser(ctx context.Context, restored *models.User) *models.User {
	fresh, err := a.api.UserByEmail(ctx, restored.Email)
	if err != nil {
		a.log.Warn("could not refresh user from backend, keeping stored session", sl.Err(err))
		return restored
	}
	if fresh.SubscriptionStatus != restored.SubscriptionStatus {
		if err := a.store.Save(fresh); err != nil {
			a.log.Warn("failed to persist refreshed user", sl.Err(err))
		}
	}
	return fresh
}

// StartRegistration moves from the landing page to the onboarding form.
func (a *App) StartRegistration() error {
	if err := a.router.Go(models.ViewOnboarding); err != nil {
		return err
	}
	a.bumpEpoch()
	return nil
}

// SubmitOnboarding validates the form, persists the user and opens the
// dashboard. Validation failure keeps the onboarding view and shows an
// error notification. A backend failure does not block registration:
// the profile is created locally and synced on a later launch.
func (a *App) SubmitOnboarding(ctx context.Context, name, email, partnerName string) error {
	const op = "app.SubmitOnboarding"

	req := models.RegisterRequest{Name: name, Email: email, PartnerName: partnerName}
	if err := a.validate.Struct(req); err != nil {
		a.notifier.Show("Bitte gib deinen Namen und eine gültige E-Mail-Adresse an.", models.SeverityError)
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := a.api.Register(ctx, req)
	if err != nil {
		a.log.Warn("backend registration failed, creating local profile", sl.Err(err))
		user = &models.User{
			UUID:               uuid.NewString(),
			Name:               name,
			Email:              email,
			PartnerName:        partnerName,
			SubscriptionStatus: models.SubscriptionStatusFree,
		}
	}

	a.mu.Lock()
	// A visitor whose checkout was just reconciled registers as PRO.
	if a.override == models.TierPro && user.SubscriptionStatus != models.SubscriptionStatusActive {
		user.SubscriptionStatus = models.SubscriptionStatusActive
	}
	a.user = user
	a.override = models.TierUnknown
	a.mu.Unlock()

	if err := a.store.Save(user); err != nil {
		a.log.Warn("failed to persist session", sl.Err(err))
	}

	if err := a.router.Go(models.ViewDashboard); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	a.bumpEpoch()
	a.notifier.Show(fmt.Sprintf("Willkommen, %s!", user.Name), models.SeveritySuccess)
	return nil
}

// OpenFeature opens a feature page from the dashboard. A PRO-only page
// on a free tier shows the upgrade prompt and leaves the view unchanged.
func (a *App) OpenFeature(target models.ViewState) error {
	a.mu.Lock()
	decision := access.GateView(target, a.user, a.override)
	a.mu.Unlock()

	if !decision.Allowed {
		a.notifier.Show(decision.Prompt, models.SeverityInfo)
		return nil
	}
	if err := a.router.Go(target); err != nil {
		return err
	}
	a.bumpEpoch()
	return nil
}

// OpenTrainingStage opens a stage from the training catalog. A locked
// stage on the free tier shows the upgrade prompt and leaves the view
// unchanged.
func (a *App) OpenTrainingStage(number int) error {
	a.mu.Lock()
	decision := access.GateStage(number, a.user, a.override)
	a.mu.Unlock()

	if !decision.Allowed {
		a.notifier.Show(decision.Prompt, models.SeverityInfo)
		return nil
	}
	if err := a.router.Go(models.ViewTrainingStage); err != nil {
		return err
	}
	a.bumpEpoch()
	return nil
}

// LexiconEntry returns a single lexicon entry by position. A locked
// position on the free tier shows the upgrade prompt and returns nil,
// as does an unknown position.
func (a *App) LexiconEntry(position int) *models.LexiconEntry {
	a.mu.Lock()
	decision := access.GateLexiconEntry(position, a.user, a.override)
	a.mu.Unlock()

	if !decision.Allowed {
		a.notifier.Show(decision.Prompt, models.SeverityInfo)
		return nil
	}
	for _, entry := range catalog.LexiconEntries() {
		if entry.Position == position {
			return &entry
		}
	}
	return nil
}

// Back returns from a feature page to the dashboard.
func (a *App) Back() error {
	if err := a.router.Go(models.ViewDashboard); err != nil {
		return err
	}
	a.bumpEpoch()
	return nil
}

// Logout clears the session and shows the landing page.
func (a *App) Logout() {
	a.store.Clear()
	a.mu.Lock()
	a.user = nil
	a.override = models.TierUnknown
	a.mu.Unlock()
	_ = a.router.Reset(models.ViewLanding)
	a.bumpEpoch()
}

// OpenPayment shows the payment page, remembering where to return.
func (a *App) OpenPayment() {
	a.router.OpenPayment()
	a.bumpEpoch()
}

// ClosePayment returns from the payment page.
func (a *App) ClosePayment() {
	a.router.ClosePayment()
	a.bumpEpoch()
}

// StartUpgrade starts a checkout for the chosen package and returns the
// redirect URL. The e-mail defaults to the logged-in user's.
func (a *App) StartUpgrade(ctx context.Context, packageType, email, originURL string) (string, error) {
	if email == "" {
		a.mu.Lock()
		if a.user != nil {
			email = a.user.Email
		}
		a.mu.Unlock()
	}
	if email == "" {
		a.notifier.Show("Bitte gib eine E-Mail-Adresse für den Kauf an.", models.SeverityError)
		return "", fmt.Errorf("app.StartUpgrade: missing email")
	}

	url, err := a.flow.Start(ctx, packageType, email, originURL)
	if err != nil {
		a.notifier.Show("Die Zahlung konnte nicht gestartet werden. Bitte versuche es erneut.", models.SeverityError)
		return "", err
	}
	return url, nil
}

// ToggleTestTier flips the tier for testing when the secret matches the
// configured hash. Logged-in users get their record flipped and saved,
// visitors get the override flipped.
func (a *App) ToggleTestTier(secret string) error {
	if a.testModeHash == "" {
		return ErrTestModeDisabled
	}
	if err := password.CompareHash(a.testModeHash, secret); err != nil {
		return err
	}

	a.mu.Lock()
	if a.user != nil {
		if a.user.SubscriptionStatus == models.SubscriptionStatusActive {
			a.user.SubscriptionStatus = models.SubscriptionStatusFree
		} else {
			a.user.SubscriptionStatus = models.SubscriptionStatusActive
		}
		user := *a.user
		a.mu.Unlock()
		if err := a.store.Save(&user); err != nil {
			a.log.Warn("failed to persist test tier toggle", sl.Err(err))
		}
	} else {
		if a.override == models.TierPro {
			a.override = models.TierFree
		} else {
			a.override = models.TierPro
		}
		a.mu.Unlock()
	}

	a.notifier.Show(fmt.Sprintf("Test-Modus: Tarif ist jetzt %s.", a.EffectiveTier()), models.SeverityInfo)
	return nil
}

// Lexicon returns the emotion lexicon sliced for the effective tier.
func (a *App) Lexicon() []models.LexiconEntry {
	return access.LexiconForTier(catalog.LexiconEntries(), a.EffectiveTier())
}

// TrainingStages returns the training program sliced for the effective
// tier.
func (a *App) TrainingStages() []models.TrainingStage {
	return access.StagesForTier(catalog.TrainingStages(), a.EffectiveTier())
}

// LoadCommunityCases fetches the case list, falling back to the builtin
// cases when the backend is unreachable. A response that lands after the
// user navigated away is discarded.
func (a *App) LoadCommunityCases(ctx context.Context) ([]models.CommunityCase, error) {
	epoch := a.currentEpoch()

	cases, err := a.api.CommunityCases(ctx)
	if err != nil {
		a.log.Warn("community cases unavailable, using builtin list", sl.Err(err))
		cases = catalog.BuiltinCases()
	}

	if a.currentEpoch() != epoch {
		return nil, ErrStaleView
	}
	return cases, nil
}

// SubmitCommunityCase posts a case. Repeated submissions while one is
// outstanding are rejected.
func (a *App) SubmitCommunityCase(ctx context.Context, req models.CreateCaseRequest) (int, error) {
	a.mu.Lock()
	if a.caseSubmitBusy {
		a.mu.Unlock()
		return 0, ErrBusy
	}
	a.caseSubmitBusy = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.caseSubmitBusy = false
		a.mu.Unlock()
	}()

	if !req.UserConsent {
		a.notifier.Show("Bitte stimme der Veröffentlichung zu.", models.SeverityError)
		return 0, fmt.Errorf("app.SubmitCommunityCase: consent missing")
	}

	id, err := a.api.CreateCommunityCase(ctx, req)
	if err != nil {
		a.notifier.Show("Dein Fall konnte nicht gespeichert werden.", models.SeverityError)
		return 0, err
	}
	a.notifier.Show("Danke! Dein Fall wurde eingereicht.", models.SeveritySuccess)
	return id, nil
}

// AnalyzeDialog scores a transcript, preferring the backend and falling
// back to the local deterministic provider. Duplicate submissions and
// stale responses are rejected.
func (a *App) AnalyzeDialog(ctx context.Context, dialog string) (*models.DialogAnalysis, error) {
	a.mu.Lock()
	if a.analysisBusy {
		a.mu.Unlock()
		return nil, ErrBusy
	}
	a.analysisBusy = true
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.analysisBusy = false
		a.mu.Unlock()
	}()

	epoch := a.currentEpoch()

	result, err := a.api.AnalyzeDialog(ctx, dialog)
	if err != nil {
		a.log.Warn("backend analysis unavailable, using local provider", sl.Err(err))
		result, err = analysis.NewStub().Analyze(ctx, dialog)
		if err != nil {
			return nil, err
		}
	}

	if a.currentEpoch() != epoch {
		return nil, ErrStaleView
	}
	return result, nil
}
