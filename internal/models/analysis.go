package models

// DialogAnalysis is the scored feedback for a submitted dialog transcript.
type DialogAnalysis struct {
	EmpathyScore       int      `json:"empathy_score"`
	ClarityScore       int      `json:"clarity_score"`
	EscalationRisk     int      `json:"escalation_risk"`
	Summary            string   `json:"summary"`
	Recommendations    []string `json:"recommendations"`
	DetectedEmotions   []string `json:"detected_emotions"`
	AlternativePhrases []string `json:"alternative_phrases"`
}

// AnalyzeRequest is the body of POST /api/analysis/dialog.
type AnalyzeRequest struct {
	Dialog string `json:"dialog" validate:"required"`
}
