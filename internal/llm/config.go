// Package llm provides the language-model client used for search-query generation.
package llm

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// DefaultTemperature keeps completions deterministic enough for list-shaped output.
const DefaultTemperature float32 = 0.1

// Config holds the model configuration for the client.
type Config struct {
	Model       string
	Temperature float32
}

// DefaultConfig returns the default model configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
	}
}

// WithModel returns a copy of the config targeting the given model.
func (c *Config) WithModel(model string) *Config {
	return &Config{
		Model:       model,
		Temperature: c.Temperature,
	}
}
