package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	"neat.bar/Neat/configs"
	"neat.bar/Neat/pkg/model"
	"neat.bar/Neat/pkg/repository"
)

type CollectionTestSuite struct {
	suite.Suite
	repo *repository.Repository
}

func TestCollectionTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionTestSuite))
}

func (suite *CollectionTestSuite) SetupTest() {
	conf := &configs.Config{DB: configs.DB{Path: ":memory:", BusyTimeoutMS: 500, MaxOpenConnections: 1}}

	repo, err := repository.Open(conf, zaptest.NewLogger(suite.T()))
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Migrate(context.Background()))

	suite.repo = repo
}

func (suite *CollectionTestSuite) TearDownTest() {
	suite.NoError(suite.repo.Close())
}

func (suite *CollectionTestSuite) sampleCocktail() *model.Cocktail {
	return &model.Cocktail{
		Name:        "Negroni",
		Description: "Equal parts, bitter and sweet.",
		Glassware:   model.GlassRocks,
		Ingredients: []model.Ingredient{
			{Name: "Gin", Amount: "1", Unit: "oz"},
			{Name: "Campari", Amount: "1", Unit: "oz"},
			{Name: "Sweet Vermouth", Amount: "1", Unit: "oz"},
			{Name: "Orange Peel", Amount: "1", Unit: "piece", Optional: true},
		},
		Instructions: []string{"Stir with ice", "Strain over fresh ice"},
		Tags:         []string{"gin", "bitter"},
	}
}

func (suite *CollectionTestSuite) TestAdd_AssignsIDAndRoundTrips() {
	cocktails := suite.repo.Cocktails()

	id, err := cocktails.Add(context.Background(), suite.sampleCocktail())
	suite.Require().NoError(err)
	suite.NotZero(id)

	got, err := cocktails.Get(context.Background(), id)
	suite.Require().NoError(err)

	suite.Equal("Negroni", got.Name)
	suite.Equal(model.GlassRocks, got.Glassware)
	suite.Equal(suite.sampleCocktail().Ingredients, got.Ingredients)
	suite.Equal([]string{"Stir with ice", "Strain over fresh ice"}, got.Instructions)
	suite.Equal([]string{"gin", "bitter"}, got.Tags)
	suite.False(got.IsFavorite)
	suite.False(got.DateAdded.IsZero())
}

func (suite *CollectionTestSuite) TestAdd_NormalizesNilSequences() {
	cocktails := suite.repo.Cocktails()

	id, err := cocktails.Add(context.Background(), &model.Cocktail{Name: "Empty Glass"})
	suite.Require().NoError(err)

	got, err := cocktails.Get(context.Background(), id)
	suite.Require().NoError(err)

	suite.NotNil(got.Ingredients)
	suite.Empty(got.Ingredients)
	suite.NotNil(got.Instructions)
	suite.Empty(got.Instructions)
}

func (suite *CollectionTestSuite) TestAdd_RefreshesSnapshot() {
	cocktails := suite.repo.Cocktails()
	suite.Empty(cocktails.Items())

	_, err := cocktails.Add(context.Background(), suite.sampleCocktail())
	suite.Require().NoError(err)

	suite.Len(cocktails.Items(), 1)
	suite.NoError(cocktails.Err())
}

func (suite *CollectionTestSuite) TestUpdate_MergesChangedFieldsOnly() {
	cocktails := suite.repo.Cocktails()

	id, err := cocktails.Add(context.Background(), suite.sampleCocktail())
	suite.Require().NoError(err)

	err = cocktails.Update(context.Background(), id, map[string]any{"is_favorite": true})
	suite.Require().NoError(err)

	got, err := cocktails.Get(context.Background(), id)
	suite.Require().NoError(err)

	suite.True(got.IsFavorite)
	suite.Equal("Negroni", got.Name)
	suite.Equal("Equal parts, bitter and sweet.", got.Description)
	suite.Equal(suite.sampleCocktail().Ingredients, got.Ingredients)
}

func (suite *CollectionTestSuite) TestUpdate_MissingIDReturnsNotFound() {
	cocktails := suite.repo.Cocktails()

	err := cocktails.Update(context.Background(), 999, map[string]any{"is_favorite": true})

	suite.Require().ErrorIs(err, repository.ErrNotFound)
	suite.ErrorIs(cocktails.Err(), repository.ErrNotFound)
}

func (suite *CollectionTestSuite) TestGet_MissingIDReturnsNotFound() {
	_, err := suite.repo.Cocktails().Get(context.Background(), 999)

	suite.ErrorIs(err, repository.ErrNotFound)
}

func (suite *CollectionTestSuite) TestDelete_RemovesRecord() {
	cocktails := suite.repo.Cocktails()

	id, err := cocktails.Add(context.Background(), suite.sampleCocktail())
	suite.Require().NoError(err)

	suite.Require().NoError(cocktails.Delete(context.Background(), id))

	_, err = cocktails.Get(context.Background(), id)
	suite.ErrorIs(err, repository.ErrNotFound)
	suite.Empty(cocktails.Items())
}

func (suite *CollectionTestSuite) TestDelete_AbsentIDIsNoOp() {
	cocktails := suite.repo.Cocktails()

	_, err := cocktails.Add(context.Background(), suite.sampleCocktail())
	suite.Require().NoError(err)

	suite.NoError(cocktails.Delete(context.Background(), 999))
	suite.Len(cocktails.Items(), 1)
}

func (suite *CollectionTestSuite) TestErr_ClearsAfterSuccess() {
	cocktails := suite.repo.Cocktails()

	err := cocktails.Update(context.Background(), 999, map[string]any{"is_favorite": true})
	suite.Require().Error(err)
	suite.Error(cocktails.Err())

	_, err = cocktails.All(context.Background())
	suite.Require().NoError(err)
	suite.NoError(cocktails.Err())
}

func (suite *CollectionTestSuite) TestOperations_AfterCloseReturnStorageError() {
	cocktails := suite.repo.Cocktails()
	suite.Require().NoError(suite.repo.Close())

	_, err := cocktails.All(context.Background())

	suite.ErrorIs(err, repository.ErrStorage)
	suite.ErrorIs(cocktails.Err(), repository.ErrStorage)
}

func (suite *CollectionTestSuite) TestAdd_RatingDerivesTotalScore() {
	ratings := suite.repo.Ratings()

	rating := &model.Rating{
		ItemType:    model.DrinkSpirit,
		ItemSubType: pointy.String("whiskey"),
		ItemName:    "Lagavulin 16",
		Scores:      model.Scores{Aroma: 5, Flavor: 5, Mouthfeel: 4, Finish: 5, Overall: 5},
		TotalScore:  3, // deliberately wrong; the save hook recomputes it
	}

	id, err := ratings.Add(context.Background(), rating)
	suite.Require().NoError(err)

	got, err := ratings.Get(context.Background(), id)
	suite.Require().NoError(err)

	suite.Equal(24, got.TotalScore)
	suite.Equal("Lagavulin 16", got.ItemName)
	suite.Equal("whiskey", *got.ItemSubType)
}

func (suite *CollectionTestSuite) TestBarItems_RoundTrip() {
	barItems := suite.repo.BarItems()

	item := &model.BarItem{
		Name:     "Bourbon",
		Category: "Spirits",
		Amount:   pointy.String("750ml"),
	}

	id, err := barItems.Add(context.Background(), item)
	suite.Require().NoError(err)

	got, err := barItems.Get(context.Background(), id)
	suite.Require().NoError(err)

	suite.Equal("Bourbon", got.Name)
	suite.Equal("Spirits", got.Category)
	suite.Equal("750ml", *got.Amount)
	suite.Nil(got.SubCategory)
}
