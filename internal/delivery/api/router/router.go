// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gymtrack/config"
	"gymtrack/internal/delivery/api/middleware"
	"gymtrack/internal/delivery/api/router/handler"
	"gymtrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	FoodHandler      *handler.FoodHandler
	BasketHandler    *handler.BasketHandler
	MealHandler      *handler.MealHandler
	NutritionHandler *handler.NutritionHandler
	MealPlanHandler  *handler.MealPlanHandler
	DeviceHandler    *handler.DeviceHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

type router struct {
	userHandler      *handler.UserHandler
	foodHandler      *handler.FoodHandler
	basketHandler    *handler.BasketHandler
	mealHandler      *handler.MealHandler
	nutritionHandler *handler.NutritionHandler
	mealPlanHandler  *handler.MealPlanHandler
	deviceHandler    *handler.DeviceHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		foodHandler:      params.FoodHandler,
		basketHandler:    params.BasketHandler,
		mealHandler:      params.MealHandler,
		nutritionHandler: params.NutritionHandler,
		mealPlanHandler:  params.MealPlanHandler,
		deviceHandler:    params.DeviceHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
	}

	// Everything below needs an access token.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("/me", r.userHandler.GetProfile)
		usersGroup.PUT("/me", r.userHandler.UpdateProfile)
	}

	foodsGroup := apiV1.Group("/foods")
	{
		foodsGroup.GET("", r.foodHandler.ListFoods)
		foodsGroup.POST("", r.foodHandler.CreateFood)
		foodsGroup.GET("/liked", r.foodHandler.LikedFoods)
		foodsGroup.GET("/suggestions", r.nutritionHandler.Suggestions)
		foodsGroup.GET("/:id", r.foodHandler.GetFood)
		foodsGroup.PUT("/:id/preference", r.foodHandler.SetPreference)
		foodsGroup.GET("/:id/qr", r.foodHandler.FoodQRCode)
	}

	basketGroup := apiV1.Group("/basket")
	{
		basketGroup.GET("", r.basketHandler.Preview)
		basketGroup.DELETE("", r.basketHandler.Clear)
		basketGroup.POST("/items", r.basketHandler.AddFood)
		basketGroup.PUT("/items/:foodId", r.basketHandler.UpdateQuantity)
		basketGroup.DELETE("/items/:foodId", r.basketHandler.RemoveFood)
		basketGroup.POST("/meal-plan", r.basketHandler.AddMealPlanFood)
		basketGroup.POST("/qr", r.basketHandler.AddFromQR)
	}

	mealsGroup := apiV1.Group("/meals")
	{
		mealsGroup.POST("", r.mealHandler.Submit)
		mealsGroup.GET("", r.mealHandler.History)
		mealsGroup.GET("/:id", r.mealHandler.GetMeal)
		mealsGroup.DELETE("/:id", r.mealHandler.DeleteMeal)
	}

	apiV1.GET("/nutrition/daily", r.nutritionHandler.Daily)

	mealPlanGroup := apiV1.Group("/meal-plan")
	{
		mealPlanGroup.GET("", r.mealPlanHandler.GetPlan)
		mealPlanGroup.PUT("", r.mealPlanHandler.SavePlan)
		mealPlanGroup.DELETE("", r.mealPlanHandler.DeletePlan)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.Register)
		devicesGroup.GET("", r.deviceHandler.List)
		devicesGroup.DELETE("/:id", r.deviceHandler.Deactivate)
	}
}

// RegisterTestRoutes mounts the /test endpoints when enabled in config.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

	authGroup := testGroup.Group("", r.authMiddleware.Authenticate)
	{
		authGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		authGroup.GET("/admin", r.testHandler.TestAuthMiddleware, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}
}
