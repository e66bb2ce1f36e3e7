package quality

// IssueType ranks how serious a finding is. Only error findings gate
// validity; warnings and infos lower scores without blocking.
type IssueType string

const (
	IssueError   IssueType = "error"
	IssueWarning IssueType = "warning"
	IssueInfo    IssueType = "info"
)

// IssueCategory names the aspect of the content a finding concerns.
type IssueCategory string

const (
	CategoryContent   IssueCategory = "content"
	CategoryStructure IssueCategory = "structure"
	CategoryLanguage  IssueCategory = "language"
	CategoryPedagogy  IssueCategory = "pedagogy"
	CategoryMath      IssueCategory = "math"
)

// Issue is one validation finding. Field and Suggestion are optional.
type Issue struct {
	Type       IssueType
	Category   IssueCategory
	Message    string
	Field      string
	Suggestion string
}

// Score weights for the overall quality score. They sum to 1.
const (
	weightAccuracy   = 0.25
	weightAge        = 0.20
	weightPedagogy   = 0.25
	weightClarity    = 0.15
	weightEngagement = 0.15
)

// Score holds the weighted quality sub-scores, each in [0,1].
type Score struct {
	Overall              float64
	Accuracy             float64
	AgeAppropriateness   float64
	PedagogicalSoundness float64
	Clarity              float64
	Engagement           float64
}

// weighted recomputes Overall from the five components.
func (s Score) weighted() Score {
	s.Overall = weightAccuracy*s.Accuracy +
		weightAge*s.AgeAppropriateness +
		weightPedagogy*s.PedagogicalSoundness +
		weightClarity*s.Clarity +
		weightEngagement*s.Engagement
	return s
}

// Result is the outcome of validating one piece of content. The
// validator is advisory; callers decide whether to block on it.
type Result struct {
	IsValid     bool
	Score       Score
	Issues      []Issue
	Suggestions []string
}

func (r *Result) errorCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Type == IssueError {
			n++
		}
	}
	return n
}
