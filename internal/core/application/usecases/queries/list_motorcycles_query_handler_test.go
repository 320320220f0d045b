package queries_test

import (
	"context"
	"testing"
	"time"

	"rental/internal/adapters/out/postgres/motorcyclerepo"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/motorcycle"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ListMotorcyclesQueryHandlerTestSuite provides integration tests for the
// fleet read model using a PostgreSQL container.
type ListMotorcyclesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListMotorcyclesQueryHandler
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&motorcyclerepo.MotorcycleDTO{}))

	suite.handler = queries.NewListMotorcyclesQueryHandler(db)
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE motorcycles").Error)
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) saveMotorcycle(code, placa, model string, year int) *motorcycle.Motorcycle {
	result := motorcycle.Create(code, placa, model, year)
	suite.Require().True(result.IsSuccess())
	moto := result.RequiredValue()

	dto := motorcyclerepo.MotorcycleDTO{
		ID:        moto.ID().Bytes(),
		Code:      moto.Code().String(),
		Placa:     moto.Placa(),
		Model:     moto.Model(),
		Year:      moto.Year(),
		CreatedAt: moto.CreatedAt(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return moto
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) TestHandle_NoFilters_ReturnsFleetOrderedByCode() {
	suite.saveMotorcycle("moto-03", "xyz-9876", "Honda CG 160", 2024)
	suite.saveMotorcycle("moto-01", "abc-1234", "Yamaha Factor 150", 2023)
	suite.saveMotorcycle("moto-02", "def-5678", "Honda Biz 125", 2022)

	result, err := suite.handler.Handle(context.Background(), queries.NewListMotorcyclesQuery("", ""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("MOTO-01", result[0].Code)
	suite.Equal("MOTO-02", result[1].Code)
	suite.Equal("MOTO-03", result[2].Code)
	suite.Equal("abc1234", result[0].Placa)
	suite.Equal("YAMAHA FACTOR 150", result[0].Model)
	suite.Equal(2023, result[0].Year)
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) TestHandle_CodeFilter_NormalizesBeforeLookup() {
	saved := suite.saveMotorcycle("moto-01", "abc-1234", "Honda CG 160", 2024)
	suite.saveMotorcycle("moto-02", "def-5678", "Honda Biz 125", 2022)

	result, err := suite.handler.Handle(context.Background(), queries.NewListMotorcyclesQuery(" -moto-01- ", ""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(saved.ID().IsEqual(result[0].ID))
	suite.Equal("MOTO-01", result[0].Code)
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) TestHandle_PlacaFilter_NormalizesBeforeLookup() {
	saved := suite.saveMotorcycle("moto-01", "abc-1234", "Honda CG 160", 2024)
	suite.saveMotorcycle("moto-02", "def-5678", "Honda Biz 125", 2022)

	result, err := suite.handler.Handle(context.Background(), queries.NewListMotorcyclesQuery("", "abc-1234"))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(saved.ID().IsEqual(result[0].ID))
	suite.Equal("abc1234", result[0].Placa)
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmptySlice() {
	suite.saveMotorcycle("moto-01", "abc-1234", "Honda CG 160", 2024)

	result, err := suite.handler.Handle(context.Background(), queries.NewListMotorcyclesQuery("ghost", ""))

	suite.Require().NoError(err)
	suite.Empty(result)
	suite.NotNil(result)
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) TestHandle_ContextCancellation() {
	suite.saveMotorcycle("moto-01", "abc-1234", "Honda CG 160", 2024)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, queries.NewListMotorcyclesQuery("", ""))

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *ListMotorcyclesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListMotorcyclesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestListMotorcyclesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListMotorcyclesQueryHandlerTestSuite))
}
