package main

import (
	"fmt"
	"log"
	"net/http"

	"topbest/backend/internal/config"
	"topbest/backend/internal/database"
	"topbest/backend/internal/handler"
	"topbest/backend/internal/steam"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "topbest/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Topbest API
// @version         1.0
// @description     Community game recommendation API backed by the Steam catalog.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Wire up the Steam client and app list cache
	steam.Init(config.AppConfig.SteamAPIKey)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Game routes
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", handler.GetGames)
			gameRoutes.POST("", handler.RecommendGame)
			gameRoutes.GET("/:id", handler.GetGameByID)
			gameRoutes.DELETE("/:id", handler.DeleteGame)
			gameRoutes.GET("/:id/reviews", handler.GetGameReviews)
		}

		// Steam catalog routes
		steamRoutes := apiV1.Group("/steam")
		{
			steamRoutes.GET("/search", handler.SearchSteamApps)
			steamRoutes.GET("/apps/:appid", handler.GetSteamAppDetails)
		}
	}

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost" + addr + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
