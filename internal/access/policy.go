// Package access implements the tier gating policy: which subscription
// tier a user effectively has, whether a feature is unlocked for that
// tier, and which prefix of the ordered catalog the free tier may see.
//
// The functions are pure so that gating can be tested without a session
// store or router.
package access

import (
	"fmt"

	"github.com/neurobond/neurobond/internal/models"
)

// How much of the ordered catalog the free tier sees.
const (
	FreeLexiconLimit = 5
	FreeStageLimit   = 1
)

// Feature names a gated capability. The name appears verbatim in the
// upgrade prompt, so the values are user-facing.
type Feature string

const (
	FeatureTrainingStages   Feature = "Training Stufen 2-5"
	FeatureFullLexicon      Feature = "Gefühlslexikon PRO"
	FeatureOwnCases         Feature = "Eigene Fälle"
	FeatureDialogCoaching   Feature = "Dialog-Coaching"
	FeaturePartnerDashboard Feature = "Partner Dashboard"
)

// featureByView maps PRO-only feature pages to their gate. Pages absent
// from the map are free.
var featureByView = map[models.ViewState]Feature{
	models.ViewOwnCases:         FeatureOwnCases,
	models.ViewDialogCoaching:   FeatureDialogCoaching,
	models.ViewPartnerDashboard: FeaturePartnerDashboard,
}

// Decision is the result of a gating check.
type Decision struct {
	Allowed bool
	// Prompt is the notification to show when access is denied.
	Prompt string
}

// EffectiveTier resolves the tier from the two sources the app keeps.
// Once a user exists their subscription status is authoritative; the
// override only applies when no user is logged in (pre-login browsing and
// test mode). This fixed precedence replaces the ambiguous dual state of
// the original design.
func EffectiveTier(user *models.User, override models.Tier) models.Tier {
	if user != nil {
		return models.TierFromStatus(user.SubscriptionStatus)
	}
	if override != models.TierUnknown {
		return override
	}
	return models.TierFree
}

// HasProAccess reports whether the effective tier is PRO.
func HasProAccess(user *models.User, override models.Tier) bool {
	return EffectiveTier(user, override) == models.TierPro
}

// Gate checks a feature against the effective tier. Denials carry the
// upgrade prompt naming the feature.
func Gate(feature Feature, user *models.User, override models.Tier) Decision {
	if HasProAccess(user, override) {
		return Decision{Allowed: true}
	}
	return Decision{
		Allowed: false,
		Prompt:  fmt.Sprintf("%s ist ein PRO-Feature. Jetzt upgraden!", feature),
	}
}

// GateView checks the feature page behind a view. Free pages are always
// allowed.
func GateView(view models.ViewState, user *models.User, override models.Tier) Decision {
	feature, gated := featureByView[view]
	if !gated {
		return Decision{Allowed: true}
	}
	return Gate(feature, user, override)
}

// GateStage checks a numbered training stage against the effective
// tier. Stage 1 is free, the later stages are the PRO program.
func GateStage(number int, user *models.User, override models.Tier) Decision {
	if number <= FreeStageLimit {
		return Decision{Allowed: true}
	}
	return Gate(FeatureTrainingStages, user, override)
}

// GateLexiconEntry checks a lexicon position against the effective
// tier. Positions beyond the free prefix belong to the PRO lexicon.
func GateLexiconEntry(position int, user *models.User, override models.Tier) Decision {
	if position <= FreeLexiconLimit {
		return Decision{Allowed: true}
	}
	return Gate(FeatureFullLexicon, user, override)
}

// LexiconForTier slices the canonical lexicon for a tier. Free users get
// the first FreeLexiconLimit entries of the stable order, never a
// different subset.
func LexiconForTier(entries []models.LexiconEntry, tier models.Tier) []models.LexiconEntry {
	if tier == models.TierPro {
		return entries
	}
	if len(entries) > FreeLexiconLimit {
		return entries[:FreeLexiconLimit]
	}
	return entries
}

// StagesForTier slices the training stages for a tier: stage 1 for free,
// all five for PRO.
func StagesForTier(stages []models.TrainingStage, tier models.Tier) []models.TrainingStage {
	if tier == models.TierPro {
		return stages
	}
	if len(stages) > FreeStageLimit {
		return stages[:FreeStageLimit]
	}
	return stages
}
