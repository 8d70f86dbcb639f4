package model

import (
	"time"

	"gorm.io/gorm"
)

type Glassware string

const (
	GlassRocks    Glassware = "rocks"
	GlassCoupe    Glassware = "coupe"
	GlassHighball Glassware = "highball"
	GlassMartini  Glassware = "martini"
	GlassWine     Glassware = "wine"
	GlassShot     Glassware = "shot"
	GlassMug      Glassware = "mug"
	GlassOther    Glassware = "other"
)

func (g Glassware) Valid() bool {
	switch g {
	case GlassRocks, GlassCoupe, GlassHighball, GlassMartini, GlassWine, GlassShot, GlassMug, GlassOther:
		return true
	}

	return false
}

// Ingredient is embedded in a cocktail, not a standalone entity. Amount is
// free text and may be empty or a range such as "2-3"; consumers must not
// assume it parses as a number.
type Ingredient struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Unit     string `json:"unit"`
	Optional bool   `json:"optional,omitempty"`
}

type Cocktail struct {
	gorm.Model
	Name         string       `gorm:"index"`
	Description  string
	Glassware    Glassware    `gorm:"index"`
	Ingredients  []Ingredient `gorm:"serializer:json"`
	Instructions []string     `gorm:"serializer:json"`
	Tags         []string     `gorm:"serializer:json;index"`
	Rating       *float64     `gorm:"index"`
	DateAdded    time.Time    `gorm:"index"`
	Images       []string     `gorm:"serializer:json"`
	Notes        *string
	IsFavorite   bool         `gorm:"index"`
}

// BeforeSave keeps the embedded sequences non-null and stamps DateAdded.
func (c *Cocktail) BeforeSave(*gorm.DB) error {
	if c.Ingredients == nil {
		c.Ingredients = []Ingredient{}
	}

	if c.Instructions == nil {
		c.Instructions = []string{}
	}

	if c.Tags == nil {
		c.Tags = []string{}
	}

	if c.Images == nil {
		c.Images = []string{}
	}

	if c.DateAdded.IsZero() {
		c.DateAdded = time.Now()
	}

	return nil
}
