package controllers

import (
	"net/http"
	"strings"

	"github.com/MeenakshiPramod/WellHer/models"
	"github.com/MeenakshiPramod/WellHer/services"
	"github.com/MeenakshiPramod/WellHer/utils"

	"github.com/gin-gonic/gin"
)

type PcodProfileInput struct {
	Diagnosed string   `json:"diagnosed" binding:"required"` // Yes / No / Not Sure
	WeightKg  float64  `json:"weight" binding:"required,min=30,max=200"`
	HeightCm  float64  `json:"height" binding:"required,min=100,max=200"`
	Symptoms  []string `json:"symptoms"`
	Goals     []string `json:"goals"`
}

// POST /pcod/profile
func SavePcodProfile(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input PcodProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := models.PcodProfile{
		Diagnosed: input.Diagnosed,
		WeightKg:  input.WeightKg,
		HeightCm:  input.HeightCm,
		Symptoms:  strings.Join(input.Symptoms, ", "),
		Goals:     strings.Join(input.Goals, ", "),
	}

	if err := session.SavePcodProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PCOD profile saved!"})
}

// GET /pcod/profile
func GetPcodProfile(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	profile := session.PcodProfile()
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{"profile": nil})
		return
	}

	out := gin.H{"profile": profile}
	if bmi, defined := session.BMI(); defined {
		out["bmi"] = bmi
		out["bmi_category"] = utils.BMICategory(bmi)
	}
	c.JSON(http.StatusOK, out)
}

// POST /pcod/advice
func GetPcodAdvice(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	advice := services.Advice()
	if advice == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI advice is not configured"})
		return
	}

	intake, burned, _ := session.CalorieTotals()
	plan, err := advice.PcodAdvice(c.Request.Context(), session.PcodProfile(), intake, burned)
	if err != nil {
		c.JSON(adviceStatus(err), gin.H{"error": err.Error(), "retry": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": plan})
}
