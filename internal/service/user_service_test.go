package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceTestSuite struct {
	suite.Suite
	dao         *db.DbDao
	userRepo    *db.UserRepo
	orderRepo   *db.OrderRepo
	userService IUserService
}

// SetupTest 在每個測試前執行
func (suite *UserServiceTestSuite) SetupTest() {
	suite.dao = newTestDao(suite.T())
	suite.userRepo = db.NewUserRepo(suite.dao)
	suite.orderRepo = db.NewOrderRepo(suite.dao)
	suite.userService = NewUserService(suite.userRepo, suite.orderRepo)
}

func (suite *UserServiceTestSuite) register(email string) *model.User {
	user, err := suite.userService.Register(context.Background(), RegisterUserParams{
		Email:    email,
		Name:     "John Doe",
		Password: "secret123",
	})
	require.NoError(suite.T(), err)
	return user
}

func (suite *UserServiceTestSuite) requireCode(err error, code apperr.Code) {
	require.Error(suite.T(), err)
	require.Equal(suite.T(), code, apperr.CodeOf(err))
}

func (suite *UserServiceTestSuite) TestRegister() {
	user := suite.register("john@example.com")

	require.NotEmpty(suite.T(), user.ID)
	require.Equal(suite.T(), model.RoleCustomer, user.Role)
	// 回傳的用戶不帶密碼
	require.Empty(suite.T(), user.Password)

	// DB內存的是bcrypt hash，不是明文
	stored, err := suite.userRepo.GetUserByID(context.Background(), user.ID)
	require.NoError(suite.T(), err)
	require.NotEqual(suite.T(), "secret123", stored.Password)
	require.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	suite.register("john@example.com")

	_, err := suite.userService.Register(context.Background(), RegisterUserParams{
		Email:    "john@example.com",
		Name:     "Jane Doe",
		Password: "secret456",
	})
	suite.requireCode(err, apperr.EmailExistsCode)
}

func (suite *UserServiceTestSuite) TestRegister_DistinctEmails() {
	suite.register("john@example.com")
	suite.register("jane@example.com")

	users, err := suite.userService.ListAll(context.Background())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), users, 2)
	for _, u := range users {
		require.Empty(suite.T(), u.Password)
	}
}

func (suite *UserServiceTestSuite) TestLogin() {
	suite.register("john@example.com")

	user, err := suite.userService.Login(context.Background(), "john@example.com", "secret123")
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), user.Password)
	require.Equal(suite.T(), "john@example.com", user.Email)
}

func (suite *UserServiceTestSuite) TestLogin_WrongPassword() {
	suite.register("john@example.com")

	_, err := suite.userService.Login(context.Background(), "john@example.com", "wrong-password")
	suite.requireCode(err, apperr.InvalidPasswordCode)
}

func (suite *UserServiceTestSuite) TestLogin_UnknownEmail() {
	_, err := suite.userService.Login(context.Background(), "nobody@example.com", "secret123")
	suite.requireCode(err, apperr.UserNotFoundCode)
}

func (suite *UserServiceTestSuite) TestGetByID_NotFound() {
	_, err := suite.userService.GetByID(context.Background(), "no-such-id")
	suite.requireCode(err, apperr.UserNotFoundCode)
}

func (suite *UserServiceTestSuite) TestUpdate_EmailSelfMatchAllowed() {
	user := suite.register("john@example.com")

	// 更新成自己現有的email不算衝突
	email := "john@example.com"
	updated, err := suite.userService.Update(context.Background(), user.ID, UpdateUserParams{
		Email: &email,
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "john@example.com", updated.Email)
}

func (suite *UserServiceTestSuite) TestUpdate_EmailHeldByOther() {
	suite.register("john@example.com")
	other := suite.register("jane@example.com")

	email := "john@example.com"
	_, err := suite.userService.Update(context.Background(), other.ID, UpdateUserParams{
		Email: &email,
	})
	suite.requireCode(err, apperr.EmailExistsCode)
}

func (suite *UserServiceTestSuite) TestUpdate_PasswordRehashed() {
	user := suite.register("john@example.com")

	newPassword := "newsecret"
	updated, err := suite.userService.Update(context.Background(), user.ID, UpdateUserParams{
		Password: &newPassword,
	})
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), updated.Password)

	_, err = suite.userService.Login(context.Background(), "john@example.com", "newsecret")
	require.NoError(suite.T(), err)
	_, err = suite.userService.Login(context.Background(), "john@example.com", "secret123")
	suite.requireCode(err, apperr.InvalidPasswordCode)
}

func (suite *UserServiceTestSuite) TestUpdate_InvalidRole() {
	user := suite.register("john@example.com")

	role := model.UserRole("SUPERVISOR")
	_, err := suite.userService.Update(context.Background(), user.ID, UpdateUserParams{
		Role: &role,
	})
	suite.requireCode(err, apperr.BadRequestCode)
}

func (suite *UserServiceTestSuite) TestDelete() {
	user := suite.register("john@example.com")

	deleted, err := suite.userService.Delete(context.Background(), user.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), user.ID, deleted.ID)
	require.Empty(suite.T(), deleted.Password)

	_, err = suite.userService.GetByID(context.Background(), user.ID)
	suite.requireCode(err, apperr.UserNotFoundCode)
}

func (suite *UserServiceTestSuite) TestGetUserOrders() {
	ctx := context.Background()
	user := suite.register("john@example.com")

	categoryRepo := db.NewCategoryRepo(suite.dao)
	category, err := categoryRepo.CreateCategory(ctx, &model.Category{Name: "Stationery"})
	require.NoError(suite.T(), err)

	productRepo := db.NewProductRepo(suite.dao)
	product, err := productRepo.CreateProduct(ctx, &model.Product{
		Name:        "Pen",
		Description: "Blue pen",
		Price:       decimal.NewFromInt(2),
		Stock:       10,
		CategoryID:  category.ID,
		IsActive:    true,
	})
	require.NoError(suite.T(), err)

	_, err = suite.orderRepo.CreateOrder(ctx, &model.Order{
		UserID: user.ID,
		Amount: decimal.NewFromInt(4),
		OrderItems: []model.OrderItem{
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.NoError(suite.T(), err)

	orders, err := suite.userService.GetUserOrders(ctx, user.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 1)
	require.Len(suite.T(), orders[0].OrderItems, 1)
	// 明細帶商品
	require.NotNil(suite.T(), orders[0].OrderItems[0].Product)
	require.Equal(suite.T(), "Pen", orders[0].OrderItems[0].Product.Name)
}

func (suite *UserServiceTestSuite) TestGetUserOrders_UnknownUser() {
	_, err := suite.userService.GetUserOrders(context.Background(), "no-such-id")
	suite.requireCode(err, apperr.UserNotFoundCode)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
