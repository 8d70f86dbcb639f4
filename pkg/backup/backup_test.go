package backup_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	"neat.bar/Neat/configs"
	"neat.bar/Neat/pkg/backup"
	"neat.bar/Neat/pkg/model"
	"neat.bar/Neat/pkg/repository"
)

type BackupTestSuite struct {
	suite.Suite
	repo *repository.Repository
}

func TestBackupTestSuite(t *testing.T) {
	suite.Run(t, new(BackupTestSuite))
}

func (suite *BackupTestSuite) openRepo() *repository.Repository {
	conf := &configs.Config{DB: configs.DB{Path: ":memory:", BusyTimeoutMS: 500, MaxOpenConnections: 1}}

	repo, err := repository.Open(conf, zaptest.NewLogger(suite.T()))
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Migrate(context.Background()))

	return repo
}

func (suite *BackupTestSuite) SetupTest() {
	suite.repo = suite.openRepo()
}

func (suite *BackupTestSuite) TearDownTest() {
	suite.NoError(suite.repo.Close())
}

func (suite *BackupTestSuite) populate() {
	ctx := context.Background()

	_, err := suite.repo.Cocktails().Add(ctx, &model.Cocktail{
		Name:        "Negroni",
		Glassware:   model.GlassRocks,
		Ingredients: []model.Ingredient{{Name: "Gin", Amount: "1", Unit: "oz"}},
		Tags:        []string{"gin"},
	})
	suite.Require().NoError(err)

	_, err = suite.repo.Ratings().Add(ctx, &model.Rating{
		ItemType: model.DrinkSpirit,
		ItemName: "Lagavulin 16",
		Scores:   model.Scores{Aroma: 5, Flavor: 5, Mouthfeel: 4, Finish: 5, Overall: 5},
	})
	suite.Require().NoError(err)

	_, err = suite.repo.BarItems().Add(ctx, &model.BarItem{
		Name:     "Gin",
		Category: "Spirits",
		Amount:   pointy.String("500ml"),
	})
	suite.Require().NoError(err)
}

func (suite *BackupTestSuite) TestExport_WritesTaggedArchive() {
	suite.populate()

	var buf bytes.Buffer

	archive, err := backup.Export(context.Background(), suite.repo, &buf)
	suite.Require().NoError(err)

	suite.NotEqual(uuid.Nil, archive.ID)
	suite.Len(archive.Cocktails, 1)
	suite.Len(archive.Ratings, 1)
	suite.Len(archive.BarItems, 1)
	suite.True(strings.Contains(buf.String(), "Negroni"))
	suite.True(strings.Contains(buf.String(), archive.ID.String()))
}

func (suite *BackupTestSuite) TestImport_RestoresIntoFreshStore() {
	suite.populate()

	var buf bytes.Buffer

	_, err := backup.Export(context.Background(), suite.repo, &buf)
	suite.Require().NoError(err)

	fresh := suite.openRepo()
	defer fresh.Close() //nolint:errcheck // test cleanup

	archive, err := backup.Import(context.Background(), fresh, &buf)
	suite.Require().NoError(err)
	suite.Len(archive.Cocktails, 1)

	cocktails, err := fresh.Cocktails().All(context.Background())
	suite.Require().NoError(err)
	suite.Len(cocktails, 1)
	suite.Equal("Negroni", cocktails[0].Name)
	suite.NotZero(cocktails[0].ID)

	ratings, err := fresh.Ratings().All(context.Background())
	suite.Require().NoError(err)
	suite.Len(ratings, 1)
	suite.Equal(24, ratings[0].TotalScore)

	barItems, err := fresh.BarItems().All(context.Background())
	suite.Require().NoError(err)
	suite.Len(barItems, 1)
	suite.Equal("Gin", barItems[0].Name)
}

func (suite *BackupTestSuite) TestImport_AppendsWithoutMerging() {
	suite.populate()

	var buf bytes.Buffer

	_, err := backup.Export(context.Background(), suite.repo, &buf)
	suite.Require().NoError(err)

	_, err = backup.Import(context.Background(), suite.repo, &buf)
	suite.Require().NoError(err)

	cocktails, err := suite.repo.Cocktails().All(context.Background())
	suite.Require().NoError(err)
	suite.Len(cocktails, 2)
}

func (suite *BackupTestSuite) TestImport_RejectsMalformedArchive() {
	_, err := backup.Import(context.Background(), suite.repo, strings.NewReader("not json"))

	suite.Error(err)
}
