// Package catalog is the domain facade over the cocktail collection: sample
// seeding, random selection, filtering, sorting, and ingredient availability.
// It adds no error handling of its own beyond logging; storage errors pass
// through untouched.
package catalog

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"neat.bar/Neat/pkg/model"
	"neat.bar/Neat/pkg/repository"
)

var ErrNoCocktails = errors.New("no cocktails in the catalog")

type Catalog struct {
	repo      *repository.Repository
	cocktails *repository.Collection[model.Cocktail]
	logger    *zap.Logger

	seedOnce sync.Once
}

func New(repo *repository.Repository, logger *zap.Logger) *Catalog {
	return &Catalog{repo: repo, cocktails: repo.Cocktails(), logger: logger}
}

// Cocktails exposes the underlying collection for callers that need plain
// CRUD.
func (c *Catalog) Cocktails() *repository.Collection[model.Cocktail] {
	return c.cocktails
}

// Seed inserts the sample set when the catalog is empty. The once guard makes
// repeat calls within a session free; the transaction re-checks emptiness so
// two processes racing on an empty store cannot double-seed.
func (c *Catalog) Seed(ctx context.Context) error {
	var seedErr error

	c.seedOnce.Do(func() { seedErr = c.seed(ctx) })

	return seedErr
}

func (c *Catalog) seed(ctx context.Context) error {
	err := c.repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if result := tx.Model(&model.Cocktail{}).Count(&count); result.Error != nil {
			return result.Error
		}

		if count > 0 {
			return nil
		}

		samples := SampleCocktails()

		var errs error

		for i := range samples {
			if result := tx.Create(&samples[i]); result.Error != nil {
				errs = multierr.Append(errs, result.Error)
			}
		}

		return errs
	})
	if err != nil {
		c.logger.Error("error seeding sample cocktails", zap.Error(err))

		return err
	}

	_, err = c.cocktails.All(ctx)

	return err
}

// Random returns a uniformly random cocktail from the current collection, or
// ErrNoCocktails when it is empty.
func (c *Catalog) Random(ctx context.Context) (*model.Cocktail, error) {
	cocktails, err := c.cocktails.All(ctx)
	if err != nil {
		return nil, err
	}

	if len(cocktails) == 0 {
		return nil, ErrNoCocktails
	}

	pick := cocktails[rand.Intn(len(cocktails))] //nolint:gosec // we don't need crypto security here

	return &pick, nil
}

// Filter re-fetches the collection and applies the criteria.
func (c *Catalog) Filter(ctx context.Context, criteria FilterCriteria) ([]model.Cocktail, error) {
	cocktails, err := c.cocktails.All(ctx)
	if err != nil {
		return nil, err
	}

	return Filter(cocktails, criteria), nil
}
