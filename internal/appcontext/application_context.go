package appcontext

import (
	"context"
	"fmt"
	"log"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"gorm.io/gorm"
)

// ApplicationContext 集中管理共用資源
// DbConn是process-wide單一連線池，所有repo共用，gorm保證並發安全
type ApplicationContext struct {
	DbConn          *gorm.DB
	DbDao           *db.DbDao
	Cf              *config.Config
	UserRepo        *db.UserRepo
	ProductRepo     *db.ProductRepo
	CategoryRepo    *db.CategoryRepo
	OrderRepo       *db.OrderRepo
	UserService     service.IUserService
	ProductService  service.IProductService
	CategoryService service.ICategoryService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	app.setUpdbDao()

	// schema migration，冪等
	err = app.DbDao.InitMigrate()
	if err != nil {
		return err
	}

	app.setUpRepos()
	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	log.Printf("Finish setup database DAO")
}

func (app *ApplicationContext) setUpRepos() {
	log.Printf("Start setup repositories")
	app.UserRepo = db.NewUserRepo(app.DbDao)
	app.ProductRepo = db.NewProductRepo(app.DbDao)
	app.CategoryRepo = db.NewCategoryRepo(app.DbDao)
	app.OrderRepo = db.NewOrderRepo(app.DbDao)
	log.Printf("Finish setup repositories")
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")
	app.UserService = service.NewUserService(app.UserRepo, app.OrderRepo)
	app.ProductService = service.NewProductService(app.ProductRepo, app.CategoryRepo)
	app.CategoryService = service.NewCategoryService(app.CategoryRepo)
	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
