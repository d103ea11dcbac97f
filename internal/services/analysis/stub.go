package analysis

import (
	"context"
	"hash/fnv"

	"github.com/neurobond/neurobond/internal/models"
)

// Stub is a deterministic Provider: the same dialog always yields the
// same scores and comments. Scores are derived from an FNV hash of the
// transcript, so they look varied without any randomness.
type Stub struct{}

// NewStub returns the deterministic provider.
func NewStub() *Stub { return &Stub{} }

// Name implements Provider.
func (s *Stub) Name() string { return "stub" }

var stubSummaries = []string{
	"Das Gespräch zeigt Bemühen um Verständnis, rutscht aber in Vorwürfe ab.",
	"Beide Seiten benennen Gefühle, hören einander aber noch wenig zu.",
	"Die Eröffnung ist konfrontativ; ein weicherer Einstieg würde entlasten.",
	"Gute Ich-Botschaften, die Bedürfnisse dahinter bleiben unausgesprochen.",
}

var stubRecommendations = [][]string{
	{"Wiederhole in eigenen Worten, was dein Partner gesagt hat.", "Benenne dein Gefühl, bevor du den Sachverhalt erklärst."},
	{"Stelle eine offene Frage, statt zu verteidigen.", "Mache eine Pause, wenn die Stimme lauter wird."},
	{"Beginne mit etwas, das du schätzt.", "Ersetze 'immer' und 'nie' durch konkrete Situationen."},
}

var stubEmotions = [][]string{
	{"Wut", "Enttäuschung"},
	{"Trauer", "Sehnsucht"},
	{"Angst", "Ohnmacht"},
	{"Scham", "Schuld"},
}

var stubPhrases = [][]string{
	{"Ich wünsche mir, dass wir das zusammen lösen.", "Mir ist wichtig, dass du mich ausreden lässt."},
	{"Ich merke, dass mich das traurig macht.", "Können wir später in Ruhe darüber sprechen?"},
}

// Analyze implements Provider.
func (s *Stub) Analyze(_ context.Context, dialog string) (*models.DialogAnalysis, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(dialog))
	seed := h.Sum32()

	pick := func(n int, shift uint32) int {
		return int((seed >> shift) % uint32(n))
	}

	return &models.DialogAnalysis{
		EmpathyScore:       40 + pick(60, 0),
		ClarityScore:       40 + pick(60, 5),
		EscalationRisk:     pick(100, 10),
		Summary:            stubSummaries[pick(len(stubSummaries), 15)],
		Recommendations:    stubRecommendations[pick(len(stubRecommendations), 18)],
		DetectedEmotions:   stubEmotions[pick(len(stubEmotions), 21)],
		AlternativePhrases: stubPhrases[pick(len(stubPhrases), 24)],
	}, nil
}
