package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	// Auth
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/auth", authController.Login)

	// Gates: strict for the back-office CRUD, lenient for progress reads so
	// anonymous visitors get empty data instead of 401s.
	strictAuth := middleware.StrictAuth(db, cfg)
	lenientAuth := middleware.LenientAuth(cfg)

	api := app.Group("/api")

	// Catalog: public reads for the marketing site, gated writes.
	categoryController := controllers.NewCategoryController(db, cfg)
	categories := api.Group("/categories")
	categories.Get("/", categoryController.GetCategories)
	categories.Get("/:id", categoryController.GetCategory)
	categories.Post("/", strictAuth, categoryController.CreateCategory)
	categories.Put("/:id", strictAuth, categoryController.UpdateCategory)
	categories.Delete("/:id", strictAuth, categoryController.DeleteCategory)

	coursesController := controllers.NewCoursesController(db, cfg)
	courses := api.Group("/courses")
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Post("/", strictAuth, coursesController.CreateCourse)
	courses.Put("/:id", strictAuth, coursesController.UpdateCourse)
	courses.Delete("/:id", strictAuth, coursesController.DeleteCourse)

	sessionController := controllers.NewSessionController(db, cfg)
	sessions := api.Group("/sessions")
	sessions.Get("/", sessionController.GetSessions)
	sessions.Get("/:id", sessionController.GetSession)
	sessions.Post("/", strictAuth, sessionController.CreateSession)
	sessions.Put("/:id", strictAuth, sessionController.UpdateSession)
	sessions.Delete("/:id", strictAuth, sessionController.DeleteSession)

	subscriptionController := controllers.NewSubscriptionController(db, cfg)
	subscriptions := api.Group("/subscriptions", strictAuth)
	subscriptions.Get("/", subscriptionController.GetSubscriptions)
	subscriptions.Get("/:id", subscriptionController.GetSubscription)
	subscriptions.Post("/", subscriptionController.CreateSubscription)
	subscriptions.Put("/:id", subscriptionController.UpdateSubscription)
	subscriptions.Delete("/:id", subscriptionController.DeleteSubscription)

	userController := controllers.NewUserController(db, cfg)
	users := api.Group("/users", strictAuth)
	users.Get("/", userController.GetUsers)
	users.Get("/:id", userController.GetUser)
	users.Post("/", userController.CreateUser)
	users.Put("/:id", userController.UpdateUser)
	users.Delete("/:id", userController.DeleteUser)

	// Progress endpoints sit behind the lenient gate.
	progressController := controllers.NewProgressController(db, cfg, logger)
	userSessions := api.Group("/user-sessions", lenientAuth)
	userSessions.Get("/progress", progressController.GetBulkProgress)
	userSessions.Post("/:sessionId/progress", progressController.UpdateProgress)
}
