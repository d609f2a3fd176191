package routes

import (
    "github.com/MeenakshiPramod/WellHer/controllers"
    "github.com/MeenakshiPramod/WellHer/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public auth routes
    auth := r.Group("/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
    }

    // Everything below requires a session token
    api := r.Group("/")
    api.Use(middlewares.AuthMiddleware())
    {
        api.POST("/auth/logout", controllers.Logout)

        api.GET("/health/dashboard", controllers.GetDashboard)
        api.POST("/health/logs", controllers.LogHealthMetrics)
        api.GET("/health/logs", controllers.GetHealthLogs)
        api.POST("/health/insights", controllers.GetHealthInsights)

        api.POST("/food/entries", controllers.AddFoodEntry)
        api.GET("/food/entries", controllers.GetTodayFoodEntries)
        api.GET("/food/history", controllers.GetFoodHistory)
        api.POST("/food/analyze", controllers.AnalyzeFood)

        api.POST("/pcod/profile", controllers.SavePcodProfile)
        api.GET("/pcod/profile", controllers.GetPcodProfile)
        api.POST("/pcod/advice", controllers.GetPcodAdvice)

        api.PUT("/calories", controllers.UpdateCalorieTotals)
        api.PUT("/calories/goal", controllers.SetCalorieGoal)
        api.POST("/calories/exercise", controllers.AddExercise)
    }

    return r
}
