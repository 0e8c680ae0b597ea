package routes

import (
	"inventory-backend/internal/config"
	"inventory-backend/internal/handlers"
	"inventory-backend/internal/middleware"
	"inventory-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS))
	router.Use(middleware.RateLimitMiddleware(cfg.Server.RateLimit))

	userHandler := handlers.NewUserHandler(services.NewUserService(db))
	cabinetHandler := handlers.NewCabinetHandler(services.NewCabinetService(db))
	categoryHandler := handlers.NewCategoryHandler(services.NewCategoryService(db))
	itemHandler := handlers.NewItemHandler(services.NewItemService(db))
	orderRequestHandler := handlers.NewOrderRequestHandler(services.NewOrderRequestService(db))
	storageUnitHandler := handlers.NewStorageUnitHandler(services.NewStorageUnitService(db))
	unlockAttemptHandler := handlers.NewUnlockAttemptHandler(services.NewUnlockAttemptService(db))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to Smart Inventory"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Service is running",
		})
	})

	api := router.Group("/api")
	{
		api.GET("/users", userHandler.GetUsers)
		api.GET("/user/:uid", userHandler.GetUser)
		api.POST("/user", userHandler.CreateUser)
		api.DELETE("/user/:uid", userHandler.DeleteUser)

		api.GET("/cabinets", cabinetHandler.GetCabinets)
		api.GET("/cabinet/:id", cabinetHandler.GetCabinet)
		api.POST("/cabinet", cabinetHandler.CreateCabinet)
		api.DELETE("/cabinet/:id", cabinetHandler.DeleteCabinet)

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetRootCategories)
			categories.GET("/subcategories/:parent_id", categoryHandler.GetSubCategories)
			categories.GET("/:category_id/items", itemHandler.GetItemsByCategory)
		}
		api.GET("/category/:id", categoryHandler.GetCategory)
		api.POST("/category", categoryHandler.CreateCategory)
		api.DELETE("/category/:id", categoryHandler.DeleteCategory)

		api.GET("/items", itemHandler.GetItems)
		api.GET("/item/:id", itemHandler.GetItem)
		api.POST("/item", itemHandler.CreateItem)
		api.DELETE("/item/:id", itemHandler.DeleteItem)

		orderRequests := api.Group("/order-requests")
		{
			orderRequests.GET("", orderRequestHandler.GetOrderRequests)
			orderRequests.GET("/item/:id", orderRequestHandler.GetOrderRequestsByItem)
			orderRequests.GET("/user/:uid", orderRequestHandler.GetOrderRequestsByUser)
			orderRequests.GET("/state/:state", orderRequestHandler.GetOrderRequestsByState)
		}
		api.POST("/order-request", orderRequestHandler.CreateOrderRequest)
		api.DELETE("/order-request/:id", orderRequestHandler.DeleteOrderRequest)

		api.GET("/storage-unit/:id", storageUnitHandler.GetStorageUnit)
		api.GET("/storage-units/cabinet/:cabinet_id", storageUnitHandler.GetStorageUnitsByCabinet)
		api.POST("/storage-unit", storageUnitHandler.CreateStorageUnit)
		api.DELETE("/storage-unit/:id", storageUnitHandler.DeleteStorageUnit)

		unlockAttempts := api.Group("/unlock-attempts")
		{
			unlockAttempts.GET("", unlockAttemptHandler.GetUnlockAttempts)
			unlockAttempts.GET("/cabinet/:cabinet_id", unlockAttemptHandler.GetUnlockAttemptsByCabinet)
			unlockAttempts.GET("/user/:uid", unlockAttemptHandler.GetUnlockAttemptsByUser)
			unlockAttempts.GET("/cabinet/:cabinet_id/user/:uid", unlockAttemptHandler.GetUnlockAttemptsByCabinetAndUser)
			unlockAttempts.DELETE("/days/:n", unlockAttemptHandler.PurgeUnlockAttempts)
		}
		api.POST("/unlock-attempt", unlockAttemptHandler.CreateUnlockAttempt)
	}

	return router
}
