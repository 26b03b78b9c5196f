package help

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestColdstartYAMLParses(t *testing.T) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(ColdstartYAML), &doc); err != nil {
		t.Fatalf("ColdstartYAML is not valid YAML: %v", err)
	}
	for _, key := range []string{"buckets", "commands", "config_keys"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing %q section", key)
		}
	}
}
