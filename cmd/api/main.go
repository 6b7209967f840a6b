package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/config"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/handler"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/middleware"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/pkg/i18n"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/repository"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	if err := i18n.LoadTranslations("locales"); err != nil {
		log.Printf("Warning: Failed to load translations: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadSize),
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/register", h.Auth.Register)
	authRoutes.Post("/login", h.Auth.Login)
	authRoutes.Post("/refresh", h.Auth.RefreshToken)
	authRoutes.Post("/forgot-password", h.Auth.ForgotPassword)
	authRoutes.Post("/reset-password", h.Auth.ResetPassword)

	// Browsing is open; everything that writes or is user-scoped needs a session.
	v1.Get("/ads", h.Ad.List)
	v1.Get("/ads/:adId", h.Ad.Get)
	v1.Get("/ads/:adId/comments", h.Comment.List)
	// The guid constraint keeps this from swallowing /users/me below.
	v1.Get("/users/:id<guid>", h.User.GetPublicProfile)

	protected := v1.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Put("/me", h.User.UpdateProfile)
	users.Get("/me/ads", h.Ad.ListMine)

	ads := protected.Group("/ads")
	ads.Post("/", h.Ad.Create)
	ads.Put("/:adId", h.Ad.Update)
	ads.Delete("/:adId", h.Ad.Delete)
	ads.Post("/:adId/comments", h.Comment.Create)

	comments := protected.Group("/comments")
	comments.Put("/:commentId", h.Comment.Update)
	comments.Delete("/:commentId", h.Comment.Delete)

	inbox := protected.Group("/inbox")
	inbox.Get("/", h.Inbox.List)
	inbox.Patch("/", h.Inbox.MarkRead)
	inbox.Get("/unread-count", h.Inbox.UnreadCount)

	savedAds := protected.Group("/saved-ads")
	savedAds.Get("/", h.Saved.List)
	savedAds.Post("/:adId", h.Saved.Save)
	savedAds.Get("/:adId", h.Saved.IsSaved)
	savedAds.Delete("/:adId", h.Saved.Unsave)

	media := protected.Group("/media")
	media.Post("/", h.Media.Upload)
	media.Delete("/", h.Media.Delete)

	admin := protected.Group("/admin", middleware.RequireRole("admin"))
	admin.Get("/users", h.User.ListAll)
	admin.Patch("/users/:id/expert", h.User.SetExpert)
	admin.Delete("/users/:id", h.User.Delete)
}
