package db

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProductRepoTestSuite struct {
	suite.Suite
	dao          *DbDao
	productRepo  *ProductRepo
	categoryRepo *CategoryRepo
	category     *model.Category
}

// SetupTest 在每個測試前執行
func (suite *ProductRepoTestSuite) SetupTest() {
	suite.dao = newTestDao(suite.T())
	suite.productRepo = NewProductRepo(suite.dao)
	suite.categoryRepo = NewCategoryRepo(suite.dao)

	category, err := suite.categoryRepo.CreateCategory(context.Background(), &model.Category{
		Name: "Stationery",
	})
	require.NoError(suite.T(), err)
	suite.category = category
}

func (suite *ProductRepoTestSuite) newProduct(name, description string, stock int) *model.Product {
	return &model.Product{
		Name:        name,
		Description: description,
		Price:       decimal.NewFromInt(2),
		Stock:       stock,
		CategoryID:  suite.category.ID,
		IsActive:    true,
	}
}

func (suite *ProductRepoTestSuite) TestCreateProduct() {
	product, err := suite.productRepo.CreateProduct(context.Background(), suite.newProduct("Pen", "Blue pen", 10))

	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), product.ID)
	require.True(suite.T(), product.IsActive)
	require.False(suite.T(), product.CreatedAt.IsZero())
	// 回傳的商品帶分類
	require.NotNil(suite.T(), product.Category)
	require.Equal(suite.T(), "Stationery", product.Category.Name)
}

func (suite *ProductRepoTestSuite) TestGetProductByID_NotFound() {
	product, err := suite.productRepo.GetProductByID(context.Background(), "no-such-id")

	require.ErrorIs(suite.T(), err, ErrProductNotFound)
	require.Nil(suite.T(), product)
}

func (suite *ProductRepoTestSuite) TestGetActiveProducts_ExcludesInactiveAndSortsNewestFirst() {
	ctx := context.Background()

	older := suite.newProduct("Pen", "Blue pen", 10)
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := suite.newProduct("Notebook", "A5 notebook", 5)
	newer.CreatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	inactive := suite.newProduct("Eraser", "White eraser", 3)
	inactive.CreatedAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, p := range []*model.Product{older, newer, inactive} {
		_, err := suite.productRepo.CreateProduct(ctx, p)
		require.NoError(suite.T(), err)
	}
	_, err := suite.productRepo.SoftDeleteProduct(ctx, inactive.ID)
	require.NoError(suite.T(), err)

	products, err := suite.productRepo.GetActiveProducts(ctx)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 2)
	require.Equal(suite.T(), "Notebook", products[0].Name)
	require.Equal(suite.T(), "Pen", products[1].Name)
}

func (suite *ProductRepoTestSuite) TestSearchActiveProducts_CaseInsensitive() {
	ctx := context.Background()

	_, err := suite.productRepo.CreateProduct(ctx, suite.newProduct("Blue Pen", "writes smoothly", 10))
	require.NoError(suite.T(), err)
	_, err = suite.productRepo.CreateProduct(ctx, suite.newProduct("Notebook", "contains PEN holder", 5))
	require.NoError(suite.T(), err)
	_, err = suite.productRepo.CreateProduct(ctx, suite.newProduct("Eraser", "white", 3))
	require.NoError(suite.T(), err)

	products, err := suite.productRepo.SearchActiveProducts(ctx, "pen")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 2)
}

func (suite *ProductRepoTestSuite) TestSearchActiveProducts_ExcludesInactive() {
	ctx := context.Background()

	product, err := suite.productRepo.CreateProduct(ctx, suite.newProduct("Pen", "Blue pen", 10))
	require.NoError(suite.T(), err)
	_, err = suite.productRepo.SoftDeleteProduct(ctx, product.ID)
	require.NoError(suite.T(), err)

	products, err := suite.productRepo.SearchActiveProducts(ctx, "pen")

	require.NoError(suite.T(), err)
	require.Empty(suite.T(), products)
}

func (suite *ProductRepoTestSuite) TestPatchProductFields() {
	ctx := context.Background()

	product, err := suite.productRepo.CreateProduct(ctx, suite.newProduct("Pen", "Blue pen", 10))
	require.NoError(suite.T(), err)

	updated, err := suite.productRepo.PatchProductFields(ctx, product.ID, map[string]interface{}{
		"name": "Red Pen",
	})

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Red Pen", updated.Name)
	// 沒帶的欄位不異動
	require.Equal(suite.T(), "Blue pen", updated.Description)
	require.Equal(suite.T(), 10, updated.Stock)
}

func (suite *ProductRepoTestSuite) TestPatchProductFields_NotFound() {
	_, err := suite.productRepo.PatchProductFields(context.Background(), "no-such-id", map[string]interface{}{
		"name": "Red Pen",
	})

	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func (suite *ProductRepoTestSuite) TestSoftDeleteProduct_Idempotent() {
	ctx := context.Background()

	product, err := suite.productRepo.CreateProduct(ctx, suite.newProduct("Pen", "Blue pen", 10))
	require.NoError(suite.T(), err)

	first, err := suite.productRepo.SoftDeleteProduct(ctx, product.ID)
	require.NoError(suite.T(), err)
	require.False(suite.T(), first.IsActive)

	// 重複刪除不報錯，結果相同
	second, err := suite.productRepo.SoftDeleteProduct(ctx, product.ID)
	require.NoError(suite.T(), err)
	require.False(suite.T(), second.IsActive)
}

func (suite *ProductRepoTestSuite) TestDeductProductStock() {
	ctx := context.Background()

	product, err := suite.productRepo.CreateProduct(ctx, suite.newProduct("Pen", "Blue pen", 10))
	require.NoError(suite.T(), err)

	updated, err := suite.productRepo.DeductProductStock(ctx, product.ID, 4)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 6, updated.Stock)
}

func (suite *ProductRepoTestSuite) TestDeductProductStock_NotEnough() {
	ctx := context.Background()

	product, err := suite.productRepo.CreateProduct(ctx, suite.newProduct("Pen", "Blue pen", 5))
	require.NoError(suite.T(), err)

	_, err = suite.productRepo.DeductProductStock(ctx, product.ID, 10)
	require.ErrorIs(suite.T(), err, ErrProductStockNotEnough)

	// 庫存不異動
	unchanged, err := suite.productRepo.GetProductByID(ctx, product.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 5, unchanged.Stock)
}

func (suite *ProductRepoTestSuite) TestDeductProductStock_NotFound() {
	_, err := suite.productRepo.DeductProductStock(context.Background(), "no-such-id", 1)
	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}
