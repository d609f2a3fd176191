package controllers

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/MeenakshiPramod/WellHer/config"
	"github.com/MeenakshiPramod/WellHer/services"
	"github.com/MeenakshiPramod/WellHer/utils"

	"github.com/gin-gonic/gin"
)

type FoodEntryInput struct {
	FoodName string  `json:"food_name" binding:"required"`
	Calories float64 `json:"calories" binding:"min=0"`
}

// POST /food/entries — manual calorie entry
func AddFoodEntry(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input FoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.RecordFoodEntry(input.FoodName, input.Calories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food added to your log!"})
}

// GET /food/entries — today's session-local food list
func GetTodayFoodEntries(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": session.FoodEntries()})
}

// GET /food/history — persisted food logs, latest first
func GetFoodHistory(c *gin.Context) {
	username := c.MustGet("username").(string)

	repo := services.NewRecordRepository(config.DB)
	logs, err := repo.FoodLogs(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].LoggedAt.After(logs[j].LoggedAt)
	})

	var total float64
	for _, l := range logs {
		total += l.Calories
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "total_calories": total})
}

type AnalyzeFoodInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"` // "data:image/...;base64,..."
}

// POST /food/analyze — AI food photo analysis
func AnalyzeFood(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input AnalyzeFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	contentType, imageData, err := utils.DecodeImageDataURI(input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	advice := services.Advice()
	if advice == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI advice is not configured"})
		return
	}

	analysis, err := advice.AnalyzeFoodImage(c.Request.Context(), contentType, imageData)
	if err != nil {
		if errors.Is(err, services.ErrMalformedAnalysis) {
			// Recovered locally: the caller can still retry or enter manually.
			c.JSON(http.StatusOK, gin.H{"analysis": analysis, "fallback": true})
			return
		}
		c.JSON(adviceStatus(err), gin.H{"error": err.Error(), "retry": true})
		return
	}

	// Merge the numeric result into the session and the durable food log.
	foodName := strings.Join(analysis.FoodItems, ", ")
	var warning string
	if err := session.RecordFoodEntry(foodName, analysis.Calories); err != nil {
		warning = err.Error()
	}

	out := gin.H{"analysis": analysis, "fallback": false}
	if warning != "" {
		out["warning"] = warning
	}

	if key, err := utils.ArchiveMealPhoto(session.Username(), contentType, imageData); err == nil {
		out["photo_key"] = key
	} else {
		log.Printf("meal photo archive skipped: %v", err)
	}

	c.JSON(http.StatusOK, out)
}
