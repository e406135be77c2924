package scenario

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads, parses and validates a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML into a Scenario and validates it. Decoding goes
// through a generic map first and then mapstructure, so scenario files
// tolerate YAML's loose typing (e.g. "1" vs 1.0) while field names stay
// declared in one place, on the struct tags.
func Parse(data []byte) (Scenario, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Scenario{}, fmt.Errorf("parse yaml: %w", err)
	}

	s := Scenario{Steps: DefaultSteps}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Scenario{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}
