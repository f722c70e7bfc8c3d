package controllers

import (
	"net/http"

	"github.com/Ipannazim/Calorie-Tracker/services"
	"github.com/Ipannazim/Calorie-Tracker/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users    *services.UserService
	sessions *services.SessionManager
}

func NewAuthController(users *services.UserService, sessions *services.SessionManager) *AuthController {
	return &AuthController{users: users, sessions: sessions}
}

type LoginInput struct {
	Name   string `json:"name" binding:"required"`
	Matric string `json:"matric" binding:"required"`
}

// Login signs the user in by matric number, creating the account on first
// use, and returns a bearer token for the protected routes.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, created, err := ac.users.LoginOrRegister(input.Matric, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	msg := "Login successful"
	if created {
		msg = "Account created"
	}
	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user_id": user.ID,
		"message": msg,
	})
}

// Logout drops the server-side session. The token simply expires.
func (ac *AuthController) Logout(c *gin.Context) {
	uid := c.GetString("userID")
	ac.sessions.Drop(uid)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
