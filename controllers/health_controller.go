package controllers

import (
	"errors"
	"net/http"

	"github.com/MeenakshiPramod/WellHer/services"

	"github.com/gin-gonic/gin"
)

type HealthLogInput struct {
	BloodPressure float64 `json:"blood_pressure" binding:"required,min=50,max=200"`
	SugarLevel    float64 `json:"sugar_level" binding:"required,min=50,max=300"`
	Cholesterol   float64 `json:"cholesterol" binding:"required,min=100,max=300"`
}

// POST /health/logs
func LogHealthMetrics(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input HealthLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.RecordHealthMetrics(input.BloodPressure, input.SugarLevel, input.Cholesterol); err != nil {
		// The in-memory log keeps the entry; only the durable write failed.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health metrics logged!"})
}

// GET /health/logs
func GetHealthLogs(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": session.HealthLogs()})
}

// GET /health/dashboard
func GetDashboard(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	intake, burned, goal := session.CalorieTotals()
	out := gin.H{
		"username":     session.Username(),
		"intake":       intake,
		"burned":       burned,
		"net_calories": session.NetCalories(),
		"goal":         goal,
		"over_goal":    session.NetCalories() > goal,
	}

	logs := session.HealthLogs()
	if len(logs) > 0 {
		latest := logs[len(logs)-1]
		out["latest_metrics"] = gin.H{
			"blood_pressure":        latest.BloodPressure,
			"blood_pressure_status": statusLabel(latest.BloodPressure <= 120, "Normal", "Elevated"),
			"sugar_level":           latest.SugarLevel,
			"sugar_status":          statusLabel(latest.SugarLevel <= 100, "Normal", "High"),
			"cholesterol":           latest.Cholesterol,
			"cholesterol_status":    statusLabel(latest.Cholesterol <= 200, "Normal", "High"),
		}
	}
	out["history"] = logs

	c.JSON(http.StatusOK, out)
}

func statusLabel(ok bool, good, bad string) string {
	if ok {
		return good
	}
	return bad
}

// POST /health/insights
func GetHealthInsights(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	advice := services.Advice()
	if advice == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI advice is not configured"})
		return
	}

	insights, err := advice.HealthInsights(c.Request.Context(), session.HealthLogs())
	if err != nil {
		c.JSON(adviceStatus(err), gin.H{"error": err.Error(), "retry": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}

func adviceStatus(err error) int {
	var ext *services.ExternalServiceError
	if errors.As(err, &ext) && ext.Kind == services.ExternalTimeout {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}
