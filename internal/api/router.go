package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"herbverse/internal/api/controllers"
	"herbverse/internal/config"
	"herbverse/internal/models/db_models"
	"herbverse/internal/services"
	"herbverse/pkg/middleware"
	"herbverse/pkg/utils"
)

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *utils.TokenService,
	accountService services.AccountServiceInterface,
	accountController *controllers.AccountController,
	plantsController *controllers.PlantsController,
	toursController *controllers.ToursController,
	adminController *controllers.AdminController,
	uploadController *controllers.UploadController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(logger))
	r.Use(middleware.ZapRecovery(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, cfg, tokens, accountService, accountController, plantsController, toursController, adminController, uploadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	tokens *utils.TokenService,
	accountService services.AccountServiceInterface,
	accountController *controllers.AccountController,
	plantsController *controllers.PlantsController,
	toursController *controllers.ToursController,
	adminController *controllers.AdminController,
	uploadController *controllers.UploadController) {

	adminOnly := middleware.RequireRole(db_models.RoleAdmin)

	r.GET("/", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "HerbVerse API is running")
	})
	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "healthy")
	})
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	// Every route below needs a valid token for an account that still exists.
	authed := api.Group("", middleware.JWTAuthMiddleware(tokens), middleware.RequireAccount(accountService))

	api.POST("/auth/register", accountController.Register)
	api.POST("/auth/login", accountController.Login)

	authGroup := authed.Group("/auth")
	authGroup.GET("/me", accountController.Me)
	authGroup.GET("/data", accountController.GetData)
	authGroup.POST("/bookmark/:plantId", accountController.AddBookmark)
	authGroup.DELETE("/bookmark/:plantId", accountController.RemoveBookmark)
	authGroup.POST("/note/:plantId", accountController.SaveNote)
	authGroup.DELETE("/note/:plantId", accountController.DeleteNote)

	api.GET("/plants", plantsController.ListPlants)
	api.GET("/plants/:id", plantsController.GetPlantById)

	plantsGroup := authed.Group("/plants", adminOnly)
	plantsGroup.POST("", plantsController.CreatePlant)
	plantsGroup.PUT("/:id", plantsController.UpdatePlant)
	plantsGroup.DELETE("/:id", plantsController.DeletePlant)

	toursGroup := authed.Group("/tours")
	toursGroup.GET("", toursController.ListTours)
	toursGroup.GET("/:id", toursController.GetTourById)
	toursGroup.POST("", adminOnly, toursController.CreateTour)
	toursGroup.PUT("/:id", adminOnly, toursController.UpdateTour)
	toursGroup.DELETE("/:id", adminOnly, toursController.DeleteTour)

	adminGroup := authed.Group("/admin", adminOnly)
	adminGroup.GET("/plants", plantsController.ListPlants)
	adminGroup.GET("/plants/:id", plantsController.GetPlantById)
	adminGroup.POST("/plants", plantsController.CreatePlant)
	adminGroup.PUT("/plants/:id", plantsController.UpdatePlant)
	adminGroup.DELETE("/plants/:id", plantsController.DeletePlant)
	adminGroup.GET("/users", adminController.GetAllUsers)
	adminGroup.PUT("/users/:id", adminController.UpdateUserRole)
	adminGroup.DELETE("/users/:id", adminController.DeleteUser)

	authed.POST("/upload", uploadController.Upload)

	testGroup := authed.Group("/test")
	testGroup.GET("/protect", whoAmI("Protected route accessed"))
	testGroup.GET("/admin", adminOnly, whoAmI("Admin route accessed"))

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})
}

func whoAmI(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{
			"id":   middleware.CurrentUserID(c),
			"role": middleware.CurrentRole(c),
		}, message)
	}
}
