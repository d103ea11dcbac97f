package models

// LexiconEntry is one emotion in the vocabulary reference. Position fixes
// the canonical order; the free tier sees a prefix of that order.
type LexiconEntry struct {
	Position    int    `json:"position"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// TrainingScenario is a single exercise inside a stage.
type TrainingScenario struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// TrainingStage groups scenarios by difficulty. Stage 1 is the free stage.
type TrainingStage struct {
	Number    int                `json:"number"`
	Title     string             `json:"title"`
	Scenarios []TrainingScenario `json:"scenarios"`
}
