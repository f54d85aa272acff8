package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/arulmigu/tiruchendur-assist-backend/database"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/locales"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/models"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/routes"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/services"
	"github.com/arulmigu/tiruchendur-assist-backend/internal/storage"
)

const defaultFeedbackLink = "https://docs.google.com/forms/d/e/1FAIpQLSempmuc0_3KkCX3JK3wCZTod51Zw3o8ZkG78kQpcMTmVTGsPg/viewform?usp=header"

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		err := godotenv.Load(".env")
		if err != nil {
			err = godotenv.Load("environments/.env.development")
			if err != nil {
				log.Println("⚠️  No .env file found - checking environment variables")
			}
		}
	}

	mapsAPIKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if mapsAPIKey == "" {
		log.Println("⚠️  GOOGLE_MAPS_API_KEY not set - map links will be limited")
	}

	feedbackLink := os.Getenv("FEEDBACK_FORM_URL")
	if feedbackLink == "" {
		feedbackLink = defaultFeedbackLink
	}

	// Initialize the document store. A missing database degrades to empty
	// results; it never prevents the bot from answering.
	var store storage.Store
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		memStore := storage.NewMemoryStore()
		memStore.SeedDemoData()
		store = memStore
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(); err != nil {
			log.Printf("⚠️  Database unavailable - running with empty data: %v", err)
		} else {
			log.Println("🔄 Running database migrations...")
			err := database.DB.AutoMigrate(
				&models.LocalInfoDoc{},
				&models.ParkingLot{},
			)
			if err != nil {
				log.Fatal("Failed to migrate database:", err)
			}
			log.Println("✅ Database migrations completed!")
			store = storage.NewDatabaseStore(database.DB)
		}
	}

	// Twilio is optional: without credentials the WhatsApp channel only logs
	twilioService, err := services.NewTwilioService()
	if err != nil {
		log.Printf("⚠️  Twilio not configured - WhatsApp replies disabled: %v", err)
	} else {
		log.Println("✅ Twilio service initialized")
	}

	// Wire the dialogue core
	catalog := locales.NewCatalog()
	mapLinks := services.NewMapLinks(mapsAPIKey)
	cache := services.NewDataCache(store)
	cache.Preload()

	states := services.NewMemoryStateStore()
	parkingFinder := services.NewParkingFinder(cache, catalog, mapLinks)
	infoFormatter := services.NewInfoFormatter(cache, catalog, mapLinks)
	engine := services.NewDialogueEngine(states, catalog, parkingFinder, infoFormatter, feedbackLink)

	log.Println("✅ Dialogue engine initialized")

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Tiruchendur Assist Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// Service overview endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":     "Tiruchendur Assist Backend",
			"version":     "1.0.0",
			"status":      "healthy",
			"environment": getEnvironment(),
			"storage":     getStorageType(),
			"whatsapp":    twilioService != nil,
			"languages":   locales.LanguageCodes,
			"services": fiber.Map{
				"sessions":     states.Count(),
				"parking_lots": len(cache.ParkingLots()),
			},
		})
	})

	routes.SetupRoutes(app, engine, cache, states, twilioService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Tiruchendur Assist Backend starting on port %s", port)
	log.Printf("📊 Storage: %s", getStorageType())
	log.Printf("🌍 Environment: %s", getEnvironment())
	log.Printf("📱 WhatsApp: %s", getWhatsAppStatus(twilioService))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func getEnvironment() string {
	if os.Getenv("INSTANCE_CONNECTION_NAME") != "" {
		return "Production (Cloud Run)"
	}
	return "Development (Local)"
}

func getStorageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func getWhatsAppStatus(twilioService *services.TwilioService) string {
	if twilioService == nil {
		return "Not configured"
	}
	return "Configured"
}
