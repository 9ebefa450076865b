package tasks

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Seed is the on-disk shape of a seed task list.
type Seed struct {
	Tasks []Task `yaml:"tasks"`
}

// LoadSeed parses a YAML seed document into tasks with fresh IDs.
func LoadSeed(data []byte) ([]Task, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	for i := range seed.Tasks {
		seed.Tasks[i].Description = strings.TrimSpace(seed.Tasks[i].Description)
		if seed.Tasks[i].Description == "" {
			return nil, fmt.Errorf("seed task %d has no description", i+1)
		}
	}

	return NewStore(seed.Tasks...).List(), nil
}
