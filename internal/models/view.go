package models

// ViewState names the full-screen page currently displayed by the client.
// Exactly one view is active at a time.
type ViewState string

const (
	ViewLanding          ViewState = "landing"
	ViewOnboarding       ViewState = "onboarding"
	ViewDashboard        ViewState = "dashboard"
	ViewTrainingCatalog  ViewState = "training-catalog"
	ViewTrainingStage    ViewState = "training-stage"
	ViewTrainingScenario ViewState = "training-scenario"
	ViewLexicon          ViewState = "lexicon"
	ViewCommunityCases   ViewState = "community-cases"
	ViewOwnCases         ViewState = "own-cases"
	ViewDialogCoaching   ViewState = "dialog-coaching"
	ViewPartnerDashboard ViewState = "partner-dashboard"
	ViewPayment          ViewState = "payment"
)

// FeatureViews lists the feature pages reachable from the dashboard.
var FeatureViews = []ViewState{
	ViewTrainingCatalog,
	ViewTrainingStage,
	ViewTrainingScenario,
	ViewLexicon,
	ViewCommunityCases,
	ViewOwnCases,
	ViewDialogCoaching,
	ViewPartnerDashboard,
}

// IsFeature reports whether v is one of the feature pages.
func (v ViewState) IsFeature() bool {
	for _, f := range FeatureViews {
		if v == f {
			return true
		}
	}
	return false
}
