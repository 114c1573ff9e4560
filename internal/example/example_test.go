package example

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRender(t *testing.T) {
	rendered, err := Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if strings.Contains(rendered, "{{") {
		t.Errorf("unsubstituted template markers remain:\n%s", rendered)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(rendered), &decoded); err != nil {
		t.Fatalf("rendered config is not valid YAML: %v", err)
	}

	for _, section := range []string{"scan", "output", "logging"} {
		if _, ok := decoded[section]; !ok {
			t.Errorf("rendered config missing %q section", section)
		}
	}
}
