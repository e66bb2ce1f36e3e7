package material

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCatalogHasBuiltins(t *testing.T) {
	c := NewCatalog()

	for _, id := range []string{"practice-problems", "word-problems", "revision-quiz", "group-project"} {
		if c.Get(id) == nil {
			t.Errorf("Get(%q) = nil, want built-in subtype", id)
		}
	}

	worksheets := c.ForType(TypeWorksheet)
	if len(worksheets) != 2 {
		t.Fatalf("ForType(worksheet) returned %d subtypes, want 2", len(worksheets))
	}
	if worksheets[0].ID != "practice-problems" {
		t.Errorf("first worksheet subtype = %q, want practice-problems (registration order)", worksheets[0].ID)
	}
}

func TestLoadCatalogMergesOverBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subtypes.yaml")
	content := `subtypes:
  - id: practice-problems
    name: Jiný název
    parent_type: worksheet
  - id: lab-activity
    name: Laboratorní aktivita
    parent_type: activity
    prompt_modifications:
      - type: append
        content: Přidej bezpečnostní pokyny.
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if got := c.Get("practice-problems").Name; got != "Jiný název" {
		t.Errorf("overridden subtype name = %q, want %q", got, "Jiný název")
	}

	lab := c.Get("lab-activity")
	if lab == nil {
		t.Fatal("Get(lab-activity) = nil, want loaded subtype")
	}
	if lab.ParentType != TypeActivity {
		t.Errorf("lab-activity parent = %q, want activity", lab.ParentType)
	}
	if len(lab.PromptModifications) != 1 || lab.PromptModifications[0].Type != ModAppend {
		t.Errorf("lab-activity modifications = %+v, want one append", lab.PromptModifications)
	}
}

func TestLoadCatalogRejectsInvalidEntries(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"missing id", "subtypes:\n  - name: X\n    parent_type: quiz\n"},
		{"unknown parent", "subtypes:\n  - id: x\n    parent_type: poster\n"},
		{"replace without target", "subtypes:\n  - id: x\n    parent_type: quiz\n    prompt_modifications:\n      - type: replace\n        content: y\n"},
	}

	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "subtypes.yaml")
		if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadCatalog(path); err == nil {
			t.Errorf("%s: LoadCatalog accepted invalid catalog", tc.name)
		}
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, known := range AllTypes {
		if !known.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", known)
		}
	}
	if Type("poster").IsValid() {
		t.Error(`IsValid("poster") = true, want false`)
	}
}
