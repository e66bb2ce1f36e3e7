package heuristics

// Lookup tables for the Czech text heuristics. All tables are immutable
// after package init and safe to share across goroutines. Matching is
// case-insensitive substring matching against lower-cased input; stems
// are used instead of full words so inflected forms match too.

// stopWords is the Czech stop-word set used by concept extraction.
var stopWords = map[string]struct{}{}

var stopWordList = []string{
	"a", "aby", "ale", "ani", "ano", "až", "bez", "bude", "budou",
	"by", "byl", "byla", "byli", "bylo", "být", "co", "což", "či",
	"další", "do", "ho", "i", "já", "jak", "jako", "je", "jeho",
	"jej", "její", "jejich", "jen", "ještě", "ji", "jiné", "již",
	"jsem", "jsme", "jsou", "k", "kam", "kde", "kdo", "když", "ke",
	"která", "které", "který", "kteří", "má", "mají", "mezi", "mi",
	"mít", "můj", "může", "my", "na", "nad", "nám", "náš", "ne",
	"nebo", "nejsou", "není", "nic", "o", "od", "on", "pak", "po",
	"pod", "podle", "pokud", "pouze", "pro", "proč", "proto",
	"protože", "první", "před", "přes", "při", "s", "se", "si",
	"své", "svých", "ta", "tak", "také", "takže", "tato", "tedy",
	"ten", "tento", "tím", "to", "toho", "tom", "toto", "tu", "ty",
	"tyto", "u", "už", "v", "vám", "váš", "ve", "více", "však",
	"vy", "z", "za", "zde", "že",
}

func init() {
	for _, w := range stopWordList {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the (already lower-cased) word is a Czech
// stop word.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// subjectEntry pairs a subject label with its keyword stems.
type subjectEntry struct {
	Subject  string
	Keywords []string
}

// subjectTable is checked in order; the first entry with a keyword hit
// wins. The order is part of the contract.
var subjectTable = []subjectEntry{
	{"matematika", []string{
		"matemat", "počítání", "čísl", "rovnic", "geometri", "zlomk",
		"algebr", "sčítání", "odčítání", "násobení", "dělení", "procent",
	}},
	{"český jazyk", []string{
		"český jazyk", "čeština", "gramatik", "pravopis", "literatur",
		"sloh", "vyjmenovan", "slovní druh", "větný rozbor",
	}},
	{"přírodověda", []string{
		"přírod", "biologi", "fyzik", "chemi", "rostlin", "živočich",
		"ekosystém", "fotosyntéz", "lidské tělo",
	}},
	{"dějepis", []string{
		"dějepis", "histori", "středověk", "pravěk", "válk", "panovn",
		"revoluc", "letopoč",
	}},
	{"zeměpis", []string{
		"zeměpis", "geografi", "kontinent", "hlavní měst", "pohoří",
		"řeka", "podnebí", "mapa", "mapě",
	}},
	{"angličtina", []string{
		"angličtin", "anglick", "english",
	}},
	{"informatika", []string{
		"informatik", "programování", "počítač", "algoritm", "software",
	}},
}

// SubjectGeneral is the fallback subject when no keyword matches.
const SubjectGeneral = "obecný"

// Difficulty is the detected cognitive demand of an assignment.
type Difficulty string

// Declaration order matters: ties in keyword scoring resolve to the
// earliest declared level.
const (
	DifficultyBasic        Difficulty = "základní"
	DifficultyIntermediate Difficulty = "střední"
	DifficultyAdvanced     Difficulty = "pokročilá"
	DifficultyExpert       Difficulty = "expertní"
)

// AllDifficulties lists the levels in declaration order.
var AllDifficulties = []Difficulty{
	DifficultyBasic,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyExpert,
}

// difficultyKeywords maps each level to its keyword stems.
var difficultyKeywords = map[Difficulty][]string{
	DifficultyBasic: {
		"základ", "jednoduch", "úvod", "seznámení", "začátečn", "lehk",
	},
	DifficultyIntermediate: {
		"procvič", "upevn", "rozšíř", "střední", "navazuj", "aplikac",
	},
	DifficultyAdvanced: {
		"pokročil", "složit", "náročn", "obtížn", "komplexn", "analý", "do hloubky",
	},
	DifficultyExpert: {
		"expert", "olympiád", "soutěž", "výzkum", "vědeck", "mistrovsk",
	},
}

// InappropriateKeywords flag content unsuitable for school materials.
var InappropriateKeywords = []string{
	"násilí", "zabít", "zabij", "zbraň", "alkohol", "drog", "cigaret",
	"sex", "smrt", "mrtvol", "krev", "mučení", "sebevražd", "hazard",
}

// BloomLevelName identifies one of the six Bloom's taxonomy levels.
type BloomLevelName string

const (
	BloomRemember   BloomLevelName = "zapamatování"
	BloomUnderstand BloomLevelName = "porozumění"
	BloomApply      BloomLevelName = "aplikace"
	BloomAnalyze    BloomLevelName = "analýza"
	BloomEvaluate   BloomLevelName = "hodnocení"
	BloomCreate     BloomLevelName = "tvoření"
)

// BloomOrder lists the taxonomy levels from lowest to highest.
var BloomOrder = []BloomLevelName{
	BloomRemember, BloomUnderstand, BloomApply,
	BloomAnalyze, BloomEvaluate, BloomCreate,
}

// BloomVerbs maps each taxonomy level to Czech verb stems that signal it.
var BloomVerbs = map[BloomLevelName][]string{
	BloomRemember:   {"vyjmenuj", "definuj", "zopakuj", "doplň", "přiřaď", "urči", "vybav"},
	BloomUnderstand: {"vysvětli", "shrň", "popiš", "objasni", "interpretuj", "uveď příklad"},
	BloomApply:      {"použij", "vyřeš", "spočítej", "vypočítej", "aplikuj", "procvič", "demonstruj"},
	BloomAnalyze:    {"analyzuj", "porovnej", "rozliš", "roztřiď", "rozeber", "kategorizuj", "srovnej"},
	BloomEvaluate:   {"zhodnoť", "posuď", "obhaj", "zdůvodni", "ohodnoť", "kritizuj"},
	BloomCreate:     {"vytvoř", "navrhni", "sestav", "naplánuj", "vymysli", "zkombinuj", "napiš vlastní"},
}

// LearningStyleName tags content with the learning style it serves.
type LearningStyleName string

const (
	StyleVisual      LearningStyleName = "vizuální"
	StyleAuditory    LearningStyleName = "sluchový"
	StyleKinesthetic LearningStyleName = "pohybový"
	StyleReading     LearningStyleName = "čtenářský"
)

// StyleOrder lists the learning styles in a fixed reporting order.
var StyleOrder = []LearningStyleName{
	StyleVisual, StyleAuditory, StyleKinesthetic, StyleReading,
}

// LearningStyleIndicators maps each style to indicator word stems.
var LearningStyleIndicators = map[LearningStyleName][]string{
	StyleVisual:      {"obrázk", "obrázek", "diagram", "graf", "schéma", "tabulk", "barevn", "nákres", "ilustrac"},
	StyleAuditory:    {"poslech", "poslouch", "diskus", "diskuz", "nahlas", "vypráv", "písnič", "rytmus"},
	StyleKinesthetic: {"pohyb", "vyrob", "postav", "model", "manipul", "sestav", "vystřihn", "prakticky"},
	StyleReading:     {"čtení", "přečti", "přečtěte", "zápis", "poznámk", "článek", "napiš"},
}

// ActionVerbs are imperative stems that make a learning objective or an
// instruction actionable. Union of the Bloom verb stems plus a few
// common classroom imperatives.
var ActionVerbs = buildActionVerbs()

func buildActionVerbs() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, level := range BloomOrder {
		for _, v := range BloomVerbs[level] {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, v := range []string{"naučit", "pochopit", "porozumět", "osvojit", "umět", "zapiš", "vyznač", "podtrhni"} {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// InterrogativeWords open Czech questions.
var InterrogativeWords = []string{
	"kdo", "co", "kde", "kdy", "proč", "jak", "kolik", "který", "jaký", "čím", "kam",
}
