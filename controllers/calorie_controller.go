package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CalorieTotalsInput struct {
	Intake float64 `json:"intake" binding:"min=0"`
	Burned float64 `json:"burned" binding:"min=0"`
}

// PUT /calories
func UpdateCalorieTotals(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input CalorieTotalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.UpdateCalorieTotals(input.Intake, input.Burned); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intake":       input.Intake,
		"burned":       input.Burned,
		"net_calories": session.NetCalories(),
	})
}

type CalorieGoalInput struct {
	Goal float64 `json:"goal" binding:"required,min=1200,max=3000"`
}

// PUT /calories/goal
func SetCalorieGoal(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input CalorieGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.SetCalorieGoal(input.Goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": input.Goal})
}

type ExerciseInput struct {
	Activity string  `json:"activity" binding:"required"`
	Minutes  float64 `json:"minutes" binding:"required,min=1,max=120"`
}

// POST /calories/exercise
func AddExercise(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var input ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := session.AddExerciseBurn(input.Activity, input.Minutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity":     input.Activity,
		"kcal_burned":  added,
		"net_calories": session.NetCalories(),
	})
}
