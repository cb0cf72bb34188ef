package productrepo_test

import (
	"context"
	"testing"

	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/testdb"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func TestProductRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := testdb.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
	suite.repository = productrepo.NewGormProductRepository(db)
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	p, err := product.NewProduct(kernel.NewUUID(), "Boxy Hoodie", 180000, []string{"S", "M", "L"}, "hoodie.webp", true)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, p))
	got, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.Equal("Boxy Hoodie", got.Name())
	suite.Equal(int64(180000), got.Price())
	suite.Equal([]string{"S", "M", "L"}, got.Sizes())
	suite.Equal("hoodie.webp", got.Image())
	suite.True(got.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_InactiveOneSize() {
	ctx := context.Background()
	p, err := product.NewProduct(kernel.NewUUID(), "Snapback", 35000, nil, "", false)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, p))
	got, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.False(got.IsActive())
	suite.Empty(got.Sizes())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
