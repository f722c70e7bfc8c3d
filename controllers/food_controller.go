package controllers

import (
	"net/http"

	"github.com/Ipannazim/Calorie-Tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	catalog *services.Catalog
}

func NewFoodController(catalog *services.Catalog) *FoodController {
	return &FoodController{catalog: catalog}
}

// List returns the whole catalog; clients populate their food picker from it.
func (fc *FoodController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": fc.catalog.List()})
}
