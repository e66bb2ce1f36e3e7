package promptgen

import "github.com/mhruby/kantor/internal/material"

// Base templates, one per material type. Each template states the
// structural instructions and describes the exact JSON output shape.
// Unknown types get the generic fallback template.

const worksheetTemplate = `Vytvoř pracovní list pro české žáky.

Požadavky na strukturu:
- Pracovní list má jasný název, stručné instrukce pro žáky a sadu úloh.
- Úlohy řaď od jednodušších ke složitějším.
- Každá úloha má zadání a správnou odpověď.

Odpověz jediným JSON objektem ve tvaru:
{
  "title": "název pracovního listu",
  "instructions": "instrukce pro žáky",
  "grade_level": "ročník",
  "questions": [
    {"problem": "zadání úlohy", "answer": "správná odpověď", "type": "short_answer | multiple_choice | essay", "options": ["pouze u multiple_choice"]}
  ],
  "answer_key": "shrnutí řešení"
}`

const lessonPlanTemplate = `Vytvoř přípravu na vyučovací hodinu pro českého učitele.

Požadavky na strukturu:
- Hodina má jasný cíl, navazující aktivity a závěrečné shrnutí.
- U každé aktivity uveď časovou dotaci v minutách.
- Začni aktivizací žáků, skonči reflexí.

Odpověz jediným JSON objektem ve tvaru:
{
  "title": "téma hodiny",
  "objectives": ["výukové cíle"],
  "duration": "celková délka, např. 45 min",
  "activities": [
    {"name": "název aktivity", "description": "popis", "duration": "10 min"}
  ],
  "materials": ["pomůcky"],
  "homework": "volitelný domácí úkol"
}`

const quizTemplate = `Vytvoř kvíz pro české žáky.

Požadavky na strukturu:
- Každá otázka má právě jednu správnou odpověď.
- U otázek s výběrem nabídni 4 možnosti; distraktory mají odrážet časté chyby.
- Uveď časový limit.

Odpověz jediným JSON objektem ve tvaru:
{
  "title": "název kvízu",
  "time_limit": "časový limit, např. 20 min",
  "questions": [
    {"problem": "otázka", "type": "multiple_choice | short_answer | true_false", "options": ["možnosti"], "answer": "správná odpověď"}
  ]
}`

const projectTemplate = `Vytvoř zadání projektu pro české žáky.

Požadavky na strukturu:
- Projekt má jasný výstup, fáze práce a kritéria hodnocení.
- Popiš, co žáci odevzdají a jak budou prezentovat výsledek.

Odpověz jediným JSON objektem ve tvaru:
{
  "title": "název projektu",
  "description": "popis projektu a očekávaný výstup",
  "objectives": ["cíle projektu"],
  "duration": "celková doba",
  "phases": [
    {"name": "fáze", "description": "náplň fáze", "duration": "doba"}
  ],
  "assessment_criteria": ["kritéria hodnocení"]
}`

const presentationTemplate = `Vytvoř podklad pro výukovou prezentaci v češtině.

Požadavky na strukturu:
- Každý slide má titulek a nejvýše 5 odrážek.
- První slide je úvodní, poslední shrnuje.

Odpověz jediným JSON objektem ve tvaru:
{
  "title": "téma prezentace",
  "slides": [
    {"title": "titulek slidu", "bullets": ["odrážky"], "notes": "volitelné poznámky pro přednášejícího"}
  ]
}`

const activityTemplate = `Vytvoř popis výukové aktivity pro české žáky.

Požadavky na strukturu:
- Aktivita má jasný průběh krok za krokem a seznam pomůcek.
- Uveď, jak aktivitu uzavřít a co mají žáci na konci umět.

Odpověz jediným JSON objektem ve tvaru:
{
  "title": "název aktivity",
  "description": "k čemu aktivita slouží",
  "duration": "délka aktivity",
  "group_size": "velikost skupin",
  "instructions": ["kroky aktivity v pořadí"],
  "materials": ["pomůcky"]
}`

const genericTemplate = `Vytvoř výukový materiál pro české žáky.

Odpověz jediným JSON objektem s klíči "title", "description" a "content",
kde "content" obsahuje vlastní materiál ve strukturované podobě.`

// baseTemplates maps each material type to its template.
var baseTemplates = map[material.Type]string{
	material.TypeWorksheet:    worksheetTemplate,
	material.TypeLessonPlan:   lessonPlanTemplate,
	material.TypeQuiz:         quizTemplate,
	material.TypeProject:      projectTemplate,
	material.TypePresentation: presentationTemplate,
	material.TypeActivity:     activityTemplate,
}

// baseTemplate returns the template for t, or the generic fallback.
func baseTemplate(t material.Type) string {
	if tpl, ok := baseTemplates[t]; ok {
		return tpl
	}
	return genericTemplate
}
