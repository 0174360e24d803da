package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "gemini-2.0-flash", config.Model)
	assert.Equal(t, float32(0.1), config.Temperature)
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel("custom-model")

	// Original should be unchanged
	assert.Equal(t, DefaultModel, config.Model)

	// New config should have the custom model with temperature preserved
	assert.Equal(t, "custom-model", newConfig.Model)
	assert.Equal(t, config.Temperature, newConfig.Temperature)
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), DefaultConfig(), "")

	assert.Nil(t, client)
	assert.Error(t, err)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}
