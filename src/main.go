package main

import (
	"fmt"
	"log"

	_ "Backend-Blueview/docs"
	"Backend-Blueview/src/config"
	"Backend-Blueview/src/controllers"
	"Backend-Blueview/src/database"
	"Backend-Blueview/src/jobs"
	"Backend-Blueview/src/routes"
	"Backend-Blueview/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title Blueview API
// @version 3.0.0
// @description Construction site operations backend
// @BasePath /api
func main() {
	cfg := config.Load()
	utils.SetJWTSecret(cfg.JWTSecret)
	controllers.SetConfig(cfg)

	if err := database.ConnectMongoDB(cfg); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis is optional: without it rate limiting, SMS fast-login and the
	// report scheduler are disabled but the API still serves.
	database.InitRedis(cfg.RedisURI)
	database.InitAsynq()

	go jobs.StartWorker(cfg)
	go jobs.StartScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Owner-Key",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	log.Println("✅ Blueview server is running on port " + cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
