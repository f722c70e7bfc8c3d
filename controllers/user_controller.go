package controllers

import (
	"net/http"

	"github.com/Ipannazim/Calorie-Tracker/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type ProfileInput struct {
	Name string `json:"name" binding:"required"`
}

func (uc *UserController) GetProfile(c *gin.Context) {
	uid := c.GetString("userID")
	profile, err := uc.users.GetProfile(uid)
	if err != nil {
		// Unknown user is a 404; a store outage must not masquerade as one.
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	uid := c.GetString("userID")
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := uc.users.UpdateName(uid, input.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
