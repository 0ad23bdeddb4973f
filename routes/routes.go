package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rocketfood/configs"
	"rocketfood/controllers"
	"rocketfood/middlewares"
	"rocketfood/pkg/rabbitmq"
	"rocketfood/repository"
	"rocketfood/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, events *rabbitmq.Client) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"message": "healthy"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	courierRepo := repository.NewCourierRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	productRepo := repository.NewProductRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(db, restRepo, addressRepo, userRepo, productRepo, employeeRepo)
	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, customerRepo, courierRepo, restRepo, productRepo, addressRepo, events)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	productCtrl := controllers.NewProductController(productSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	api := r.Group("/api")

	// Public
	api.POST("/auth", authCtrl.Login)
	api.POST("/users", authCtrl.Register)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Get)
	api.GET("/products", productCtrl.List)

	// Authenticated
	auth := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.POST("/restaurants", restCtrl.Create)
		auth.PUT("/restaurants/:id", restCtrl.Update)
		auth.DELETE("/restaurants/:id", restCtrl.Delete)

		auth.POST("/orders", orderCtrl.Create)
		auth.GET("/orders", orderCtrl.List)
		auth.POST("/orders/:order_id/status", orderCtrl.ChangeStatus)
	}
}
