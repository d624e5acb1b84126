package main

import (
	"log"
	"net/http"
	"os"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/auth"
	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/database"
	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/gamification"
	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/middleware"
	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/planner"
	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/quiz"
	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/review"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedQuestions(db); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}

	// Initialize services and handlers
	streakService := gamification.NewService(gamification.NewStore(db))
	authHandler := auth.NewHandler(db, streakService)
	quizHandler := quiz.NewHandler(quiz.NewService(quiz.NewStore(db)))
	reviewHandler := review.NewHandler(review.NewStore(db))
	plannerHandler := planner.NewHandler(planner.NewStore(db))

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	quizHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(protected)
	plannerHandler.RegisterRoutes(protected)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
