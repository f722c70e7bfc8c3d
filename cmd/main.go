package main

import (
	"os"

	"github.com/Ipannazim/Calorie-Tracker/config"
	"github.com/Ipannazim/Calorie-Tracker/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
