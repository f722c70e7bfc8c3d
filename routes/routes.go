package routes

import (
	"net/http"

	"github.com/Ipannazim/Calorie-Tracker/controllers"
	"github.com/Ipannazim/Calorie-Tracker/middlewares"
	"github.com/Ipannazim/Calorie-Tracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	catalog := services.NewCatalog()
	store := services.NewGormLedgerStore(db)
	sessions := services.NewSessionManager(store, catalog)
	hub := services.NewRealtimeHub()
	alerts := services.NewAlertService(db, hub)
	users := services.NewUserService(db)

	authCtl := controllers.NewAuthController(users, sessions)
	entryCtl := controllers.NewEntryController(sessions, alerts, hub)
	goalCtl := controllers.NewGoalController(sessions)
	foodCtl := controllers.NewFoodController(catalog)
	userCtl := controllers.NewUserController(users)
	alertCtl := controllers.NewAlertController(alerts)
	rtCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
		user.GET("/goal", goalCtl.GetGoal)
		user.PUT("/goal", goalCtl.UpdateGoal)
		user.GET("/alerts", alertCtl.List)
		user.POST("/logout", authCtl.Logout)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("", foodCtl.List)
	}

	entries := r.Group("/entries")
	entries.Use(middlewares.AuthMiddleware())
	{
		entries.GET("", entryCtl.List)
		entries.POST("", entryCtl.Add)
		entries.DELETE("/:id", entryCtl.Delete)
		entries.DELETE("", entryCtl.ResetDay)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", rtCtl.LedgerWS)
	}

	return r
}
