package catalog

import "github.com/neurobond/neurobond/internal/models"

// TrainingStages returns the five ordered training stages. Stage 1 is the
// free stage; the rest require PRO.
func TrainingStages() []models.TrainingStage {
	stages := make([]models.TrainingStage, len(training))
	copy(stages, training)
	return stages
}

var training = []models.TrainingStage{
	{
		Number: 1,
		Title:  "Zuhören lernen",
		Scenarios: []models.TrainingScenario{
			{Number: 1, Title: "Der stressige Arbeitstag", Prompt: "Dein Partner kommt erschöpft nach Hause und erzählt von einem Konflikt mit dem Chef."},
			{Number: 2, Title: "Das vergessene Versprechen", Prompt: "Du hast vergessen, den gemeinsamen Termin wahrzunehmen, und dein Partner spricht dich darauf an."},
			{Number: 3, Title: "Die stille Enttäuschung", Prompt: "Dein Partner ist auffällig still, sagt aber, es sei alles in Ordnung."},
		},
	},
	{
		Number: 2,
		Title:  "Gefühle benennen",
		Scenarios: []models.TrainingScenario{
			{Number: 1, Title: "Hinter dem Ärger", Prompt: "Dein Partner reagiert gereizt auf eine Kleinigkeit. Welche Gefühle könnten darunter liegen?"},
			{Number: 2, Title: "Eigene Worte finden", Prompt: "Beschreibe deinem Partner, was der Streit von gestern in dir ausgelöst hat."},
		},
	},
	{
		Number: 3,
		Title:  "Bedürfnisse aussprechen",
		Scenarios: []models.TrainingScenario{
			{Number: 1, Title: "Der Wunsch nach Nähe", Prompt: "Formuliere, was du dir für die gemeinsamen Abende wünschst, ohne Vorwürfe."},
			{Number: 2, Title: "Raum für sich", Prompt: "Erkläre deinem Partner, dass du Zeit für dich brauchst, ohne dass er sich zurückgewiesen fühlt."},
		},
	},
	{
		Number: 4,
		Title:  "Konflikte entschärfen",
		Scenarios: []models.TrainingScenario{
			{Number: 1, Title: "Die Eskalationsspirale", Prompt: "Ein Gespräch über Hausarbeit droht zu eskalieren. Finde einen Ausstieg aus der Spirale."},
			{Number: 2, Title: "Der wunde Punkt", Prompt: "Dein Partner trifft unabsichtlich ein altes, schmerzhaftes Thema."},
		},
	},
	{
		Number: 5,
		Title:  "Verbindung vertiefen",
		Scenarios: []models.TrainingScenario{
			{Number: 1, Title: "Wertschätzung zeigen", Prompt: "Sage deinem Partner, wofür du ihn in der letzten Woche bewundert hast."},
			{Number: 2, Title: "Gemeinsame Zukunft", Prompt: "Sprecht darüber, wie ihr in fünf Jahren leben wollt, und hört einander aus."},
		},
	},
}
