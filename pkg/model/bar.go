package model

import (
	"time"

	"gorm.io/gorm"
)

type BarItem struct {
	gorm.Model
	Name        string  `gorm:"index"`
	Category    string  `gorm:"index"`
	SubCategory *string `gorm:"index"`
	Amount      *string
	DateAdded   time.Time `gorm:"index"`
	Notes       *string
	Image       *string
}

func (b *BarItem) BeforeSave(*gorm.DB) error {
	if b.DateAdded.IsZero() {
		b.DateAdded = time.Now()
	}

	return nil
}

// BarCategories is the display grouping for the bar cart. Items may carry any
// category string; this list only drives presentation order.
func BarCategories() []string {
	return []string{
		"Spirits",
		"Liqueurs",
		"Mixers",
		"Fruits & Juices",
		"Syrups & Sweeteners",
		"Bitters & Aromatics",
	}
}
