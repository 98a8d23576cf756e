package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const templateHeader = `# rubyfmt configuration.
#
# Search order: an explicit --config path, then .rubyfmt.yml upward from
# the working directory (stopping at the repository root), then
# $XDG_CONFIG_HOME/rubyfmt/config.yaml. Environment variables prefixed
# with RUBYFMT_ override file values.
`

// GenerateTemplate renders a starter configuration file with defaults.
func GenerateTemplate() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(templateHeader)
	buf.WriteString("\n")

	body, err := yaml.Marshal(NewConfig())
	if err != nil {
		return nil, fmt.Errorf("marshal default config: %w", err)
	}
	buf.Write(body)

	return buf.Bytes(), nil
}
