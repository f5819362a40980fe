package routes

import (
	"github.com/MilindByte/food-delivery-app-test/cache"
	"github.com/MilindByte/food-delivery-app-test/configs"
	"github.com/MilindByte/food-delivery-app-test/controllers"
	"github.com/MilindByte/food-delivery-app-test/middlewares"
	"github.com/MilindByte/food-delivery-app-test/repository"
	"github.com/MilindByte/food-delivery-app-test/services"
	"github.com/MilindByte/food-delivery-app-test/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, c *cache.Client, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	riderRepo := repository.NewRiderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, restRepo, riderRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(restRepo, menuRepo, c)
	menuSvc := services.NewMenuService(menuRepo, c)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo)
	riderOrderSvc := services.NewRiderOrderService(db, orderRepo, riderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	restOrderCtrl := controllers.NewRestaurantOrderController(orderSvc)
	riderOrderCtrl := controllers.NewRiderOrderController(riderOrderSvc)

	customer := middlewares.AuthMiddleware(cfg.JWTSecret, utils.RoleCustomer)
	restaurant := middlewares.AuthMiddleware(cfg.JWTSecret, utils.RoleRestaurant)
	rider := middlewares.AuthMiddleware(cfg.JWTSecret, utils.RoleRider)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", customer, authCtrl.Me)
	}
	ra := r.Group("/restaurant/auth")
	{
		ra.POST("/register", authCtrl.RegisterRestaurant)
		ra.POST("/login", authCtrl.LoginRestaurant)
	}
	da := r.Group("/rider/auth")
	{
		da.POST("/register", authCtrl.RegisterRider)
		da.POST("/login", authCtrl.LoginRider)
		da.GET("/me", rider, authCtrl.RiderMe)
	}

	// Public catalog
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", restCtrl.Menu)

	// Customer app
	cart := r.Group("/cart", customer)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("", cartCtrl.Add)
		cart.PUT("/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}
	orders := r.Group("/orders", customer)
	{
		orders.POST("", orderCtrl.Place)
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Restaurant panel
	rest := r.Group("/restaurant", restaurant)
	{
		rest.GET("/orders", restOrderCtrl.List)
		rest.GET("/orders/:id", restOrderCtrl.Detail)
		rest.PUT("/orders/:id/status", restOrderCtrl.SetStatus)

		rest.GET("/menu", menuCtrl.List)
		rest.POST("/menu", menuCtrl.Create)
		rest.PUT("/menu/:id", menuCtrl.Update)
	}

	// Rider app
	rd := r.Group("/rider", rider)
	{
		rd.GET("/orders/available", riderOrderCtrl.Available)
		rd.GET("/orders/assigned", riderOrderCtrl.Assigned)
		rd.GET("/orders/history", riderOrderCtrl.History)
		rd.POST("/orders/:id/accept", riderOrderCtrl.Accept)
		rd.PUT("/orders/:id/status", riderOrderCtrl.SetStatus)
		rd.GET("/earnings", riderOrderCtrl.Earnings)
	}
}
