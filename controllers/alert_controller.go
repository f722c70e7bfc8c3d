package controllers

import (
	"net/http"
	"strconv"

	"github.com/Ipannazim/Calorie-Tracker/services"

	"github.com/gin-gonic/gin"
)

type AlertController struct {
	alerts *services.AlertService
}

func NewAlertController(alerts *services.AlertService) *AlertController {
	return &AlertController{alerts: alerts}
}

// List returns the user's recent alerts, newest first.
func (ac *AlertController) List(c *gin.Context) {
	uid := c.GetString("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	alerts, err := ac.alerts.ListRecent(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
