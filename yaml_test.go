package jsearch

import (
	"testing"

	yaml "github.com/goccy/go-yaml"
)

// Rule files are how callers typically carry search paths around: plain
// strings in config, parsed once at load time.
type searchRule struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type ruleFile struct {
	Rules []searchRule `yaml:"rules"`
}

// TestRuleFile_PathsResolve loads search-path expressions from a YAML rule
// file and resolves each against a document
func TestRuleFile_PathsResolve(t *testing.T) {
	src := []byte(`
rules:
  - name: every item id
    path: items[*].id
  - name: first item name
    path: items[0].name
  - name: owner may be absent
    path: meta.owner?
  - name: whole document
    path: ""
`)

	var rf ruleFile
	if err := yaml.Unmarshal(src, &rf); err != nil {
		t.Fatalf("yaml.Unmarshal error = %v", err)
	}
	if len(rf.Rules) != 4 {
		t.Fatalf("got %d rules, want 4", len(rf.Rules))
	}

	doc := MustParseDocument(`{"items":[{"id":1,"name":"a"},{"id":2,"name":"b"}],"meta":{}}`)
	wantMatches := map[string]int{
		"every item id":       2,
		"first item name":     1,
		"owner may be absent": 0,
		"whole document":      1,
	}

	for _, rule := range rf.Rules {
		expr, err := Parse(rule.Path)
		if err != nil {
			t.Fatalf("rule %q: Parse(%q) error = %v", rule.Name, rule.Path, err)
		}
		matches := Resolve(doc, expr)
		if len(matches) != wantMatches[rule.Name] {
			t.Errorf("rule %q: got %d matches, want %d", rule.Name, len(matches), wantMatches[rule.Name])
		}
	}
}

// TestRuleFile_MalformedPathSurfaces verifies load-time validation of rule
// files reports parser errors instead of resolving nothing
func TestRuleFile_MalformedPathSurfaces(t *testing.T) {
	src := []byte("rules:\n  - name: broken\n    path: items[\n")

	var rf ruleFile
	if err := yaml.Unmarshal(src, &rf); err != nil {
		t.Fatalf("yaml.Unmarshal error = %v", err)
	}
	if len(rf.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rf.Rules))
	}
	if _, err := Parse(rf.Rules[0].Path); err == nil {
		t.Error("malformed rule path parsed without error")
	}
}
