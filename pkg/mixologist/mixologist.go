// Package mixologist is the scripted suggestion engine. It plays the part of
// an AI bartender without any model behind it: a fixed think delay, a canned
// reply, and one signature recipe the caller may save to the menu.
package mixologist

import (
	"context"
	"time"

	"neat.bar/Neat/pkg/model"
)

const Greeting = "Hi there! I'm your AI Mixologist. What kind of cocktail are you in the mood for today?"

const defaultThinkDelay = 1500 * time.Millisecond

type Suggestion struct {
	Reply  string
	Recipe model.Cocktail
}

type Mixologist struct {
	// ThinkDelay is how long Suggest pretends to think before answering.
	ThinkDelay time.Duration
}

func New() *Mixologist {
	return &Mixologist{ThinkDelay: defaultThinkDelay}
}

// Suggest waits out the think delay, then answers with the signature recipe
// regardless of the prompt. The wait is cancellable through ctx.
func (m *Mixologist) Suggest(ctx context.Context, _ string) (*Suggestion, error) {
	timer := time.NewTimer(m.ThinkDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &Suggestion{
		Reply: "I think you might enjoy a Spicy Pineapple Margarita. It's a tropical twist on the classic " +
			"margarita with a spicy kick from jalapeño. Would you like to see the recipe?",
		Recipe: SignatureRecipe(),
	}, nil
}

// SignatureRecipe is the one cocktail the mixologist knows how to pitch.
func SignatureRecipe() model.Cocktail {
	return model.Cocktail{
		Name:        "Spicy Pineapple Margarita",
		Description: "A tropical twist on the classic margarita with a spicy kick.",
		Glassware:   model.GlassRocks,
		Ingredients: []model.Ingredient{
			{Name: "Tequila", Amount: "2", Unit: "oz"},
			{Name: "Pineapple Juice", Amount: "1", Unit: "oz"},
			{Name: "Lime Juice", Amount: "0.75", Unit: "oz"},
			{Name: "Agave Syrup", Amount: "0.5", Unit: "oz"},
			{Name: "Jalapeño Slices", Amount: "2-3", Unit: "slices"},
		},
		Instructions: []string{
			"Muddle jalapeño slices in a shaker",
			"Add tequila, pineapple juice, lime juice, and agave syrup",
			"Add ice and shake vigorously for 15 seconds",
			"Strain into a rocks glass over fresh ice",
			"Garnish with a pineapple wedge and jalapeño slice",
		},
		Tags: []string{"spicy", "tropical", "tequila", "refreshing"},
	}
}
