package queries_test

import (
	"context"
	"testing"
	"time"

	"bytebowl/internal/adapters/out/postgres/menurepo"
	"bytebowl/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetMenuQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMenuQueryHandler
}

func (suite *GetMenuQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&menurepo.MenuItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetMenuQueryHandler(db)
}

func (suite *GetMenuQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetMenuQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE menu_items").Error
	suite.Require().NoError(err)
}

func (suite *GetMenuQueryHandlerTestSuite) seedMenu(items map[string]float64) {
	for name, price := range items {
		err := suite.db.Create(&menurepo.MenuItemDTO{Name: name, Price: price}).Error
		suite.Require().NoError(err)
	}
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_EmptyCatalog_ReturnsNoItems() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetMenuQuery())

	suite.Require().NoError(err)
	suite.Empty(result.Items)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_ReturnsItemsOrderedByName() {
	suite.seedMenu(map[string]float64{
		"Samosa":      3,
		"Mango Lassi": 5,
		"Pav Bhaji":   6.5,
	})

	result, err := suite.handler.Handle(context.Background(), queries.NewGetMenuQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 3)
	suite.Equal("Mango Lassi", result.Items[0].Name)
	suite.InDelta(5, result.Items[0].Price, 0.001)
	suite.Equal("Pav Bhaji", result.Items[1].Name)
	suite.Equal("Samosa", result.Items[2].Name)
}

func TestGetMenuQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMenuQueryHandlerTestSuite))
}
