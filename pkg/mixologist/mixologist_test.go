package mixologist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neat.bar/Neat/pkg/mixologist"
)

func TestSuggest_ReturnsSignatureRecipe(t *testing.T) {
	m := &mixologist.Mixologist{ThinkDelay: time.Millisecond}

	suggestion, err := m.Suggest(context.Background(), "something spicy")
	require.NoError(t, err)

	assert.Contains(t, suggestion.Reply, "Spicy Pineapple Margarita")
	assert.Equal(t, "Spicy Pineapple Margarita", suggestion.Recipe.Name)
	assert.NotEmpty(t, suggestion.Recipe.Ingredients)
	assert.NotEmpty(t, suggestion.Recipe.Instructions)
}

func TestSuggest_CancelledContextStopsTheWait(t *testing.T) {
	m := &mixologist.Mixologist{ThinkDelay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suggestion, err := m.Suggest(ctx, "anything")

	assert.Nil(t, suggestion)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_SetsAThinkDelay(t *testing.T) {
	assert.Greater(t, mixologist.New().ThinkDelay, time.Duration(0))
}
