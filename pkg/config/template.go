package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// templateHeader is prepended to generated configuration files.
const templateHeader = `# unipatch configuration
# See: https://github.com/yaklabco/unipatch

`

// GenerateTemplate creates a commented .unipatch.yml template populated
// with the default configuration values.
func GenerateTemplate() ([]byte, error) {
	body, err := yaml.Marshal(NewConfig())
	if err != nil {
		return nil, fmt.Errorf("marshal defaults: %w", err)
	}
	return append([]byte(templateHeader), body...), nil
}
