package promptgen

import "github.com/mhruby/kantor/internal/material"

// qualityConstraints holds the fixed constraint set per quality level.
// The four sets are hand-authored and never computed.
var qualityConstraints = map[material.QualityLevel][]string{
	material.QualityBasic: {
		"Používej jednoduchý, srozumitelný jazyk.",
		"Drž se základního učiva, nepřidávej rozšiřující témata.",
		"Věty piš krátké a jednoznačné.",
	},
	material.QualityStandard: {
		"Používej spisovnou češtinu přiměřenou věku žáků.",
		"Zadání formuluj jednoznačně, bez dvojsmyslů.",
		"Obsah musí odpovídat RVP pro daný ročník.",
		"Ke každé úloze či aktivitě uveď očekávaný výstup.",
	},
	material.QualityHigh: {
		"Používej přesnou odbornou terminologii a vysvětli ji.",
		"Zařaď úlohy rozvíjející vyšší kognitivní dovednosti (analýza, hodnocení).",
		"Propoj učivo s reálnými situacemi ze života žáků.",
		"Obsah musí odpovídat RVP pro daný ročník.",
		"Nabídni diferenciaci pro rychlejší i pomalejší žáky.",
	},
	material.QualityExpert: {
		"Materiál musí snést srovnání s profesionálně vydávanými učebnicemi.",
		"Zařaď úlohy všech úrovní Bloomovy taxonomie včetně tvoření.",
		"Uváděj mezipředmětové vztahy a souvislosti.",
		"Propoj učivo s reálnými situacemi a aktuálním děním.",
		"Nabídni diferenciaci a rozšiřující úlohy pro nadané žáky.",
		"Jazyk musí být bezchybný a stylisticky vytříbený.",
	},
}

// qualityBlock renders the constraint block for the given level.
// Unknown levels get the standard set.
func qualityBlock(level material.QualityLevel) string {
	constraints, ok := qualityConstraints[level]
	if !ok {
		constraints = qualityConstraints[material.QualityStandard]
	}
	block := "Požadavky na kvalitu:"
	for _, c := range constraints {
		block += "\n- " + c
	}
	return block
}
