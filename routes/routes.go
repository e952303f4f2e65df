package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/configs"
	"github.com/mohanwork1803-cell/Foodie-Express/controllers"
	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/middlewares"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
	"github.com/mohanwork1803-cell/Foodie-Express/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo, menuRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, restRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo)
	deliverySvc := services.NewDeliveryService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	adminCtrl := controllers.NewAdminController(userRepo, restRepo, orderRepo)

	auth := func(roles ...entity.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth(), authCtrl.Me)
	}

	// Catalog (public reads)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.GET("/restaurants/:id/menu", restCtrl.Menu)
	api.GET("/restaurants/:id/reviews", reviewCtrl.List)
	api.GET("/menu", menuCtrl.List)
	api.GET("/menu/categories", menuCtrl.Categories)

	// Catalog management (owner/admin)
	manage := api.Group("", auth(entity.RoleOwner, entity.RoleAdmin))
	{
		manage.POST("/restaurants", restCtrl.Create)
		manage.PATCH("/restaurants/:id", restCtrl.Update)
		manage.POST("/menu", menuCtrl.Create)
		manage.PATCH("/menu/:id", menuCtrl.Update)
		manage.DELETE("/menu/:id", menuCtrl.Delete)
		manage.POST("/menu/categories", menuCtrl.CreateCategory)
	}

	// Reviews (any authenticated user)
	api.POST("/restaurants/:id/reviews", auth(), reviewCtrl.Create)

	// Cart (customer)
	cart := api.Group("/cart", auth(entity.RoleCustomer))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/add", cartCtrl.Add)
		cart.POST("/remove", cartCtrl.Remove)
		cart.POST("/update_quantity", cartCtrl.UpdateQuantity)
	}

	// Orders
	orders := api.Group("/orders", auth())
	{
		orders.GET("", orderCtrl.List)
		orders.GET("/:id", orderCtrl.Detail)
	}
	api.POST("/orders/create_order", auth(entity.RoleCustomer), orderCtrl.Create)
	api.POST("/orders/:id/update_status", auth(entity.RoleOwner, entity.RoleAdmin), orderCtrl.UpdateStatus)

	// Delivery (agent)
	agent := api.Group("/agent/orders", auth(entity.RoleAgent))
	{
		agent.GET("", deliveryCtrl.ListAssigned)
		agent.GET("/available_orders", deliveryCtrl.ListAvailable)
		agent.POST("/:id/accept_order", deliveryCtrl.Accept)
		agent.POST("/:id/update_delivery_status", deliveryCtrl.UpdateDeliveryStatus)
	}

	// Admin oversight
	admin := api.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/users", adminCtrl.ListUsers)
		admin.GET("/restaurants", adminCtrl.ListRestaurants)
		admin.GET("/orders", adminCtrl.ListOrders)
	}
}
