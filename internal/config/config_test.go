package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileOverridesGeneration(t *testing.T) {
	yamlConfig := `
generation:
  model: gpt-4o-mini
  temperature: 0.9
  suggestion_count: 7
`

	config := &Config{Generation: DefaultGenerationConfig()}
	err := LoadConfigFile(strings.NewReader(yamlConfig), config)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", config.Generation.Model)
	assert.Equal(t, 0.9, config.Generation.Temperature)
	assert.Equal(t, 7, config.Generation.SuggestionCount)

	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultMaxTokens, config.Generation.MaxTokens)
	assert.Equal(t, DefaultDomainAvailability, config.Generation.DomainAvailability)
}

func TestLoadConfigFileWithoutGenerationSection(t *testing.T) {
	config := &Config{Generation: DefaultGenerationConfig()}
	err := LoadConfigFile(strings.NewReader("port: \"9090\"\n"), config)
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, config.Generation.Model)
	assert.Equal(t, DefaultTemperature, config.Generation.Temperature)
}

func TestLoadConfigFileRejectsMalformedYAML(t *testing.T) {
	config := &Config{}
	err := LoadConfigFile(strings.NewReader("generation: [not a map"), config)
	assert.Error(t, err)
}
