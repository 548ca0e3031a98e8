package main

import (
	"os"

	"github.com/jozanardo/Daily-Diet-API/config"
	"github.com/jozanardo/Daily-Diet-API/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter(config.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3030"
	}
	r.Run(":" + port)
}
