package controllers

import (
	"net/http"

	"github.com/Ipannazim/Calorie-Tracker/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	sessions *services.SessionManager
}

func NewGoalController(sessions *services.SessionManager) *GoalController {
	return &GoalController{sessions: sessions}
}

func (gc *GoalController) GetGoal(c *gin.Context) {
	sess := gc.sessions.Get(c.GetString("userID"))
	if err := sess.LoadGoal(); err != nil {
		// Last confirmed value still stands; report the refresh failure.
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "daily_goal": sess.Goal()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_goal": sess.Goal()})
}

type UpdateGoalInput struct {
	Goal *int `json:"goal" binding:"required"`
}

// UpdateGoal saves a new target. Non-numeric input fails the bind and the
// stored goal stays whatever it was; negatives clamp to 0.
func (gc *GoalController) UpdateGoal(c *gin.Context) {
	var input UpdateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := gc.sessions.Get(c.GetString("userID"))
	if err := sess.SetGoal(*input.Goal); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"daily_goal": sess.Goal()})
}
