// Package backup moves the local store between machines as a JSON archive.
package backup

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"neat.bar/Neat/pkg/model"
	"neat.bar/Neat/pkg/repository"
)

type Archive struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Cocktails []model.Cocktail `json:"cocktails"`
	Ratings   []model.Rating   `json:"ratings"`
	BarItems  []model.BarItem  `json:"barItems"`
}

// Export writes every collection to w as an indented JSON archive tagged with
// a fresh archive id.
func Export(ctx context.Context, repo *repository.Repository, w io.Writer) (*Archive, error) {
	archive := &Archive{ID: uuid.New(), CreatedAt: time.Now()}

	var err error

	if archive.Cocktails, err = repo.Cocktails().All(ctx); err != nil {
		return nil, err
	}

	if archive.Ratings, err = repo.Ratings().All(ctx); err != nil {
		return nil, err
	}

	if archive.BarItems, err = repo.BarItems().All(ctx); err != nil {
		return nil, err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(archive); err != nil {
		return nil, err
	}

	return archive, nil
}

// Import appends the archive's records to the store, assigning fresh
// identifiers. There are no merge semantics; importing twice duplicates.
// Per-record failures are accumulated and the rest of the archive still
// loads.
func Import(ctx context.Context, repo *repository.Repository, r io.Reader) (*Archive, error) {
	var archive Archive
	if err := json.NewDecoder(r).Decode(&archive); err != nil {
		return nil, err
	}

	var errs error

	cocktails := repo.Cocktails()
	for i := range archive.Cocktails {
		cocktail := archive.Cocktails[i]
		cocktail.ID = 0

		if _, err := cocktails.Add(ctx, &cocktail); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	ratings := repo.Ratings()
	for i := range archive.Ratings {
		rating := archive.Ratings[i]
		rating.ID = 0

		if _, err := ratings.Add(ctx, &rating); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	barItems := repo.BarItems()
	for i := range archive.BarItems {
		item := archive.BarItems[i]
		item.ID = 0

		if _, err := barItems.Add(ctx, &item); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return &archive, errs
}
