package routes

import (
	"log"

	"foodie/configs"
	"foodie/controllers"
	"foodie/middlewares"
	"foodie/repository"
	"foodie/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterRoutes wires repositories, services, auth and controllers into
// the engine. All dependencies are built here, nothing is process-global.
func RegisterRoutes(r *gin.Engine, db *mongo.Database, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(orderRepo)
	authSvc := services.NewAuthService(customerRepo, cfg.JWTSecret, cfg.JWTTTL)
	adminSvc := services.NewAdminService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Auth gates
	adminAuth := &middlewares.AdminAuth{Secret: cfg.JWTSecret, Admins: adminRepo}
	customerAuth := &middlewares.CustomerAuth{Secret: cfg.JWTSecret, Customers: customerRepo}

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, customerAuth)
	authCtrl := controllers.NewAuthController(authSvc, orderSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)

	api := r.Group("/api")

	// Public catalog
	api.GET("/menu", menuCtrl.ListPublic)

	// Orders
	api.POST("/orders", orderCtrl.Create) // optional auth, guest orders allowed
	ordersAdmin := api.Group("/orders", adminAuth.Middleware())
	{
		ordersAdmin.GET("", orderCtrl.List)
		ordersAdmin.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}

	// Customer accounts
	users := api.Group("/users")
	{
		users.POST("/register", authCtrl.Register)
		users.POST("/login", authCtrl.Login)
	}
	usersAuth := users.Group("", customerAuth.Middleware())
	{
		usersAuth.GET("/profile", authCtrl.Profile)
		usersAuth.PUT("/profile", authCtrl.UpdateProfile)
		usersAuth.GET("/my-orders", authCtrl.MyOrders)
	}

	// Admin
	admin := api.Group("/admin")
	{
		admin.POST("/login", adminCtrl.Login)
		admin.POST("/register", adminCtrl.Register)
	}
	adminGated := admin.Group("", adminAuth.Middleware())
	{
		adminGated.GET("/menu", menuCtrl.ListAdmin)
		adminGated.POST("/menu", menuCtrl.Create)
		adminGated.PUT("/menu/:id", menuCtrl.Update)
		adminGated.DELETE("/menu/:id", menuCtrl.Delete)
		adminGated.PATCH("/menu/:id/toggle-availability", menuCtrl.ToggleAvailability)

		if cfg.CloudinaryURL == "" {
			log.Println("skip upload route: missing CLOUDINARY_URL")
		} else if uploadSvc, err := services.NewUploadService(cfg.CloudinaryURL); err != nil {
			log.Println("skip upload route: bad CLOUDINARY_URL:", err)
		} else {
			uploadCtrl := controllers.NewUploadController(uploadSvc)
			adminGated.POST("/upload-image", uploadCtrl.UploadImage)
		}
	}
}
