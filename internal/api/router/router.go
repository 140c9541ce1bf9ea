package router

import (
	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", server.AuthHandler.Login)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", server.CategoryHandler.ListCategories)
			r.Post("/", server.CategoryHandler.CreateCategory)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Post("/", server.ProductHandler.CreateProduct)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.Put("/{id}", server.ProductHandler.UpdateProduct)
			r.Delete("/{id}", server.ProductHandler.DeleteProduct)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", server.UserHandler.ListUsers)
			r.Post("/", server.UserHandler.CreateUser)
			r.Get("/{id}", server.UserHandler.GetUser)
			r.Put("/{id}", server.UserHandler.UpdateUser)
			r.Delete("/{id}", server.UserHandler.DeleteUser)
			r.Get("/{id}/orders", server.UserHandler.GetUserOrders)
		})
	})

	return r
}
