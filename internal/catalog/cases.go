package catalog

import "github.com/neurobond/neurobond/internal/models"

// BuiltinCases returns the cases shipped with the app. The community list
// endpoint extends this list with stored submissions.
func BuiltinCases() []models.CommunityCase {
	cases := make([]models.CommunityCase, len(builtinCases))
	copy(cases, builtinCases)
	return cases
}

var builtinCases = []models.CommunityCase{
	{ID: 1, Title: "Der ewige Abwasch", Category: "Alltag", Dialog: "A: Du hast schon wieder das Geschirr stehen lassen.\nB: Ich wollte es später machen.\nA: Das sagst du jedes Mal."},
	{ID: 2, Title: "Handy am Esstisch", Category: "Aufmerksamkeit", Dialog: "A: Kannst du das Handy weglegen, wenn wir essen?\nB: Ich muss nur kurz etwas beantworten.\nA: Es ist nie nur kurz."},
	{ID: 3, Title: "Urlaub bei den Schwiegereltern", Category: "Familie", Dialog: "A: Ich möchte dieses Jahr nicht wieder zu deinen Eltern fahren.\nB: Aber sie freuen sich doch so auf uns."},
}
