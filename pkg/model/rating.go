package model

import (
	"time"

	"gorm.io/gorm"
)

type DrinkType string

const (
	DrinkSpirit   DrinkType = "spirit"
	DrinkBeer     DrinkType = "beer"
	DrinkWine     DrinkType = "wine"
	DrinkCocktail DrinkType = "cocktail"
)

func DrinkTypes() []DrinkType {
	return []DrinkType{DrinkSpirit, DrinkBeer, DrinkWine, DrinkCocktail}
}

func (d DrinkType) Valid() bool {
	switch d {
	case DrinkSpirit, DrinkBeer, DrinkWine, DrinkCocktail:
		return true
	}

	return false
}

// Subtypes returns the fixed subtype list for the drink type. Unknown types
// have no subtypes.
func (d DrinkType) Subtypes() []string {
	switch d {
	case DrinkSpirit:
		return []string{"whiskey", "gin", "vodka", "rum", "tequila", "other"}
	case DrinkBeer:
		return []string{"ale", "lager", "wheat", "specialty"}
	case DrinkWine:
		return []string{"red", "white", "sparkling", "rose", "fortified"}
	case DrinkCocktail:
		return []string{"classic", "modern", "tiki", "low-abv", "non-alcoholic"}
	}

	return nil
}

// Scores holds the five tasting sub-scores, each 0-5.
type Scores struct {
	Aroma     int
	Flavor    int
	Mouthfeel int
	Finish    int
	Overall   int
}

func (s Scores) Total() int {
	return s.Aroma + s.Flavor + s.Mouthfeel + s.Finish + s.Overall
}

type Rating struct {
	gorm.Model
	ItemType    DrinkType `gorm:"index"`
	ItemSubType *string   `gorm:"index"`
	ItemName    string    `gorm:"index"`
	Brand       *string   `gorm:"index"`
	Scores      Scores    `gorm:"embedded"`
	TotalScore  int       `gorm:"index"`
	Notes       *string
	Images      []string  `gorm:"serializer:json"`
	DateAdded   time.Time `gorm:"index"`
}

// BeforeSave recomputes the derived total from the sub-scores so the two can
// never disagree at rest.
func (r *Rating) BeforeSave(*gorm.DB) error {
	r.TotalScore = r.Scores.Total()

	if r.DateAdded.IsZero() {
		r.DateAdded = time.Now()
	}

	return nil
}
