package material

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog holds the known subtypes, keyed by subtype ID.
type Catalog struct {
	subtypes map[string]*Subtype
	order    []string
}

// NewCatalog creates a catalog seeded with the built-in subtypes.
func NewCatalog() *Catalog {
	c := &Catalog{subtypes: make(map[string]*Subtype)}
	for i := range builtinSubtypes {
		c.add(&builtinSubtypes[i])
	}
	return c
}

// LoadCatalog reads additional subtype definitions from a YAML file and
// merges them over the built-ins. Definitions with a known ID replace
// the built-in entry.
func LoadCatalog(path string) (*Catalog, error) {
	c := NewCatalog()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtype catalog: %w", err)
	}

	var file struct {
		Subtypes []Subtype `yaml:"subtypes"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse subtype catalog: %w", err)
	}

	for i := range file.Subtypes {
		st := &file.Subtypes[i]
		if st.ID == "" {
			return nil, fmt.Errorf("subtype at index %d has no id", i)
		}
		if !st.ParentType.IsValid() {
			return nil, fmt.Errorf("subtype %q: unknown parent type %q", st.ID, st.ParentType)
		}
		for _, m := range st.PromptModifications {
			if (m.Type == ModReplace || m.Type == ModInject) && m.Target == "" {
				return nil, fmt.Errorf("subtype %q: %s modification requires a target", st.ID, m.Type)
			}
		}
		c.add(st)
	}

	return c, nil
}

func (c *Catalog) add(st *Subtype) {
	if _, exists := c.subtypes[st.ID]; !exists {
		c.order = append(c.order, st.ID)
	}
	c.subtypes[st.ID] = st
}

// Get returns the subtype with the given ID, or nil if unknown.
func (c *Catalog) Get(id string) *Subtype {
	return c.subtypes[id]
}

// ForType returns the subtypes whose parent is t, in registration order.
func (c *Catalog) ForType(t Type) []*Subtype {
	var out []*Subtype
	for _, id := range c.order {
		if st := c.subtypes[id]; st.ParentType == t {
			out = append(out, st)
		}
	}
	return out
}

// builtinSubtypes ship with the binary so the pipeline works without a
// catalog file.
var builtinSubtypes = []Subtype{
	{
		ID:          "practice-problems",
		Name:        "Procvičovací úlohy",
		Description: "Pracovní list zaměřený na opakované procvičení jednoho postupu, s rozcvičkou a bonusovými úlohami.",
		ParentType:  TypeWorksheet,
		SpecialFields: []FieldDescriptor{
			{Key: "problem_pattern", Label: "Vzor úlohy", Description: "Typ úlohy, který se má opakovat"},
		},
		PromptModifications: []PromptModification{
			{Type: ModPrepend, Content: "Zaměř se na drilové procvičení jednoho konkrétního postupu. Úlohy se mají lišit jen čísly, ne postupem."},
			{Type: ModAppend, Content: "První dvě úlohy musí být výrazně jednodušší než zbytek (rozcvička), poslední dvě naopak nejtěžší (bonus)."},
		},
	},
	{
		ID:          "word-problems",
		Name:        "Slovní úlohy",
		Description: "Pracovní list se slovními úlohami zasazenými do reálných situací.",
		ParentType:  TypeWorksheet,
		PromptModifications: []PromptModification{
			{Type: ModPrepend, Content: "Všechny úlohy formuluj jako slovní úlohy s realistickým kontextem ze života dětí."},
		},
	},
	{
		ID:          "revision-quiz",
		Name:        "Opakovací kvíz",
		Description: "Kvíz shrnující učivo za delší období, s rostoucí obtížností.",
		ParentType:  TypeQuiz,
		PromptModifications: []PromptModification{
			{Type: ModAppend, Content: "Otázky seřaď od nejjednodušší po nejtěžší a pokryj celé opakované období."},
		},
	},
	{
		ID:          "group-project",
		Name:        "Skupinový projekt",
		Description: "Projekt pro práci ve skupinách s rozdělenými rolemi.",
		ParentType:  TypeProject,
		SpecialFields: []FieldDescriptor{
			{Key: "roles", Label: "Role ve skupině"},
		},
		PromptModifications: []PromptModification{
			{Type: ModAppend, Content: "Navrhni konkrétní role pro členy skupiny a popiš, jak si skupina rozdělí práci."},
		},
	},
}
