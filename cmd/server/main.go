package main

import (
	"fmt"
	"log"
	"net/http"

	"carpool_api/internal/config"
	"carpool_api/internal/logger"
	"carpool_api/internal/middleware"
	"carpool_api/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect to the database and migrate the schema
	config.InitDB()

	r := routes.SetupRouter(config.GetEnv("SESSION_SECRET", "supersecret"))

	// Wrap with CORS so the browser client can send the session cookie
	handler := middleware.EnableCORS(r)

	port := config.GetEnvInt("SERVER_PORT", 8080)
	log.Printf("🚀 Carpool API running at :%d", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), handler))
}
