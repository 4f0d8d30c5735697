package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mahmoudsultan/trivia-api/auth"
	"github.com/mahmoudsultan/trivia-api/config"
	"github.com/mahmoudsultan/trivia-api/handlers"
	"github.com/mahmoudsultan/trivia-api/middleware"
	"github.com/mahmoudsultan/trivia-api/store"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	issueToken := flag.String("issue-token", "", "print a write token for the given subject and exit")
	flag.Parse()

	env := config.Load()

	if *issueToken != "" {
		token, err := auth.CreateToken(env.JWTSecret, *issueToken)
		if err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	db, err := config.Connect(env)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	DBHandler := handlers.NewDBHandler(store.NewGormStore(db))

	var guard func(http.HandlerFunc) http.HandlerFunc
	if env.JWTSecret != "" {
		guard = auth.RequireToken(env.JWTSecret)
		log.Println("write endpoints require a bearer token")
	}

	var handler http.Handler = DBHandler.Routes(guard)
	handler = middleware.Recover(handler)
	handler = middleware.CORS(env.AllowedOrigins, env.JWTSecret != "")(handler)
	handler = middleware.Logger(handler)
	handler = middleware.RequestID(handler)

	serverAddr := "0.0.0.0:" + env.Port
	log.Printf("listening on %s (driver=%s)", serverAddr, env.DBDriver)
	if err := http.ListenAndServe(serverAddr, handler); err != nil {
		log.Fatal(err)
	}
}
