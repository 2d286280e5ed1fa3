package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON decodes the JSON file at path into target. Unknown fields and
// trailing data are errors, so typos in hand-edited config files surface.
func LoadJSON(path string, target any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	if dec.More() {
		return fmt.Errorf("failed to unmarshal JSON from %s: trailing data", path)
	}
	return nil
}
