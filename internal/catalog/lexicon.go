// Package catalog holds the built-in NEUROBOND content: the emotion
// lexicon, the training stages and the seed community cases. The slices
// are ordered and must stay ordered — the free tier is defined as a fixed
// prefix of them.
package catalog

import "github.com/neurobond/neurobond/internal/models"

// LexiconEntries returns the canonical ordered emotion vocabulary.
// A fresh slice is returned so callers can slice it freely.
func LexiconEntries() []models.LexiconEntry {
	entries := make([]models.LexiconEntry, len(lexicon))
	copy(entries, lexicon)
	return entries
}

var lexicon = []models.LexiconEntry{
	{Position: 1, Name: "Wut", Category: "Grundgefühl", Description: "Starke Erregung als Reaktion auf eine empfundene Verletzung oder Blockade.", Example: "Ich bin wütend, weil meine Bitte ignoriert wurde."},
	{Position: 2, Name: "Trauer", Category: "Grundgefühl", Description: "Schmerz über einen Verlust oder eine unerfüllte Hoffnung.", Example: "Ich bin traurig, weil wir kaum noch Zeit zu zweit haben."},
	{Position: 3, Name: "Angst", Category: "Grundgefühl", Description: "Anspannung angesichts einer erwarteten Bedrohung oder Unsicherheit.", Example: "Ich habe Angst, dich zu verlieren, wenn wir so weitermachen."},
	{Position: 4, Name: "Freude", Category: "Grundgefühl", Description: "Lebendige Leichtigkeit, wenn ein Bedürfnis erfüllt ist.", Example: "Ich freue mich, dass du heute früher nach Hause gekommen bist."},
	{Position: 5, Name: "Scham", Category: "Selbstbezogen", Description: "Das Gefühl, als Person fehlerhaft oder bloßgestellt zu sein.", Example: "Ich schäme mich, dass ich vor deinen Eltern laut geworden bin."},
	{Position: 6, Name: "Schuld", Category: "Selbstbezogen", Description: "Bedauern über eine konkrete eigene Handlung.", Example: "Ich fühle mich schuldig, weil ich unser Gespräch abgebrochen habe."},
	{Position: 7, Name: "Einsamkeit", Category: "Verbindung", Description: "Fehlende emotionale Nähe trotz körperlicher Anwesenheit.", Example: "Neben dir auf dem Sofa fühle ich mich manchmal allein."},
	{Position: 8, Name: "Sehnsucht", Category: "Verbindung", Description: "Starkes Verlangen nach Nähe, Anerkennung oder Veränderung.", Example: "Ich sehne mich danach, dass wir wieder zusammen lachen."},
	{Position: 9, Name: "Ohnmacht", Category: "Belastung", Description: "Das Erleben, eine Situation nicht beeinflussen zu können.", Example: "Ich fühle mich ohnmächtig, wenn du dich zurückziehst."},
	{Position: 10, Name: "Erleichterung", Category: "Entspannung", Description: "Nachlassende Anspannung, wenn eine Sorge sich auflöst.", Example: "Ich bin erleichtert, dass wir darüber gesprochen haben."},
	{Position: 11, Name: "Dankbarkeit", Category: "Verbindung", Description: "Warme Anerkennung für etwas Empfangenes.", Example: "Ich bin dankbar, dass du mir zugehört hast, ohne mich zu unterbrechen."},
	{Position: 12, Name: "Enttäuschung", Category: "Belastung", Description: "Schmerz über eine nicht erfüllte Erwartung.", Example: "Ich bin enttäuscht, dass unser Wochenende wieder ausgefallen ist."},
}
