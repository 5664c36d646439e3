package api

import (
	"finsight/internal/api/handlers"
	"finsight/pkg/auth"
	"finsight/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	stHandler *handlers.StatementHandler,
	profileHandler *handlers.ProfileHandler,
	adviceHandler *handlers.AdviceHandler,
	jwtManager *auth.JWTManager,
	exportDir string,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
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

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Categorized CSV exports are plain files.
	if exportDir != "" {
		app.Static("/exports", exportDir)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	statements := protected.Group("/statements")
	statements.Post("/upload", stHandler.Upload)
	statements.Get("", stHandler.List)
	statements.Post("/:id/process", stHandler.Process)

	profile := protected.Group("/profile")
	profile.Post("", profileHandler.Save)
	profile.Get("", profileHandler.Get)
	profile.Post("/analyze", profileHandler.Analyze)

	advice := protected.Group("/advice")
	advice.Get("/suggestions", adviceHandler.Suggestions)
	advice.Get("/budget", adviceHandler.Budget)
	advice.Get("/tips", adviceHandler.Tips)

	chat := protected.Group("/chat")
	chat.Post("", adviceHandler.Chat)
	chat.Get("/questions", adviceHandler.SuggestedQuestions)

	return app
}
