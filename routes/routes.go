package routes

import (
	"HostelHub/config"
	"HostelHub/controllers"
	"HostelHub/events"
	"HostelHub/middlewares"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the stores and services the handlers are built from.
type Deps struct {
	Users    controllers.UserStore
	Meals    controllers.MealStore
	Likes    controllers.LikeStore
	Requests controllers.RequestedMealStore
	Reviews  controllers.ReviewStore
	DB       controllers.Pinger
	Events   events.Publisher
}

func Routes(router *gin.Engine, cfg config.Config, deps Deps) {
	router.HandleMethodNotAllowed = true
	router.Use(middlewares.RequestLogger(), middlewares.CORS(cfg.CORSOrigins, cfg.AllowAnyOrigin()))

	if deps.Events == nil {
		deps.Events = events.NoopPublisher{}
	}

	auth := controllers.NewAuthController(cfg.TokenSecret, cfg.TokenTTL)
	users := controllers.NewUserController(deps.Users)
	meals := controllers.NewMealController(deps.Meals)
	likes := controllers.NewLikeController(deps.Likes, deps.Events)
	requests := controllers.NewRequestedMealController(deps.Requests, deps.Events)
	reviews := controllers.NewReviewController(deps.Reviews, deps.Events)

	router.GET("/", controllers.Home)
	router.GET("/health", controllers.Health(deps.DB))

	if cfg.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.POST("/jwt", auth.IssueToken)
	router.POST("/users", users.CreateUser)

	// Admin user management
	if cfg.AdminRoutes {
		verifyToken := middlewares.VerifyToken([]byte(cfg.TokenSecret))
		verifyAdmin := middlewares.VerifyAdmin(deps.Users)

		router.GET("/users", verifyToken, verifyAdmin, users.GetUsers)

		adminRoutes := router.Group("/users/admin")
		adminRoutes.Use(verifyToken)
		{
			adminRoutes.GET("/:email", middlewares.SelfOnly("email"), users.GetAdminStatus)
			adminRoutes.PATCH("/:id", verifyAdmin, users.PromoteUser)
		}
	}

	mealRoutes := router.Group("/meals")
	{
		mealRoutes.GET("", meals.GetMeals)
		mealRoutes.POST("", meals.AddMeal)
		mealRoutes.GET("/:id", meals.GetMeal)
		mealRoutes.PATCH("/:id", meals.UpdateMeal)
		mealRoutes.DELETE("/:id", meals.DeleteMeal)
	}

	router.GET("/likes", likes.GetLikes)
	router.POST("/likes", likes.AddLike)

	router.GET("/requestedMeal", requests.GetRequestedMeals)
	router.POST("/requestedMeal", requests.RequestMeal)

	reviewRoutes := router.Group("/reviews")
	{
		reviewRoutes.GET("", reviews.GetReviews)
		reviewRoutes.POST("", reviews.AddReview)
		reviewRoutes.GET("/:email", reviews.GetReviewsByEmail)
		reviewRoutes.DELETE("/:id", reviews.DeleteReview)
	}
}
