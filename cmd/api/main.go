package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loanlift/loanlift-api/internal/auth"
	"github.com/loanlift/loanlift-api/internal/config"
	"github.com/loanlift/loanlift-api/internal/handlers"
	"github.com/loanlift/loanlift-api/internal/middleware"
	"github.com/loanlift/loanlift-api/internal/models"
	"github.com/loanlift/loanlift-api/internal/services"
	"github.com/loanlift/loanlift-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is NOT SET; token endpoints will fail.")
	}
	if cfg.StripeSecretKey == "" {
		log.Println("STRIPE_SECRET_KEY is NOT SET; payment intents will fail.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	// --- Stores and Services ---
	users := store.NewUsers(db)
	loans := store.NewLoans(db)
	applications := store.NewApplications(db)
	payments := store.NewPayments(db)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	gateway := services.NewGateway(cfg.StripeSecretKey)

	h := handlers.NewHandler(users, loans, applications, payments, tokens, gateway, cfg.Production)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Gates ---
	authed := middleware.Chain(middleware.Authenticated(tokens))
	managerOnly := middleware.Chain(middleware.Authenticated(tokens), middleware.MinRole(users, models.RoleManager))
	adminOnly := middleware.Chain(middleware.Authenticated(tokens), middleware.MinRole(users, models.RoleAdmin))

	// --- Routes ---
	r.GET("/", h.Liveness)
	r.POST("/jwt", h.IssueToken)
	r.POST("/logout", h.Logout)

	r.GET("/users", adminOnly, h.ListUsers)
	r.POST("/users", h.CreateUser)
	r.GET("/user/role/:email", h.GetUserRole)
	r.PATCH("/users/role/:id", adminOnly, h.UpdateUserModeration)

	r.GET("/loans", h.ListLoans)
	r.GET("/loans/:id", h.GetLoan)
	r.POST("/loans", managerOnly, h.CreateLoan)
	r.PUT("/loans/:id", managerOnly, h.UpsertLoan)
	r.DELETE("/loans/:id", managerOnly, h.DeleteLoan)

	r.GET("/applications", authed, h.ListApplications)
	r.POST("/applications", authed, h.CreateApplication)
	r.PATCH("/applications/status/:id", managerOnly, h.UpdateApplicationStatus)
	r.PATCH("/applications/stage/:id", managerOnly, h.UpdateApplicationStage)
	r.DELETE("/applications/:id", authed, h.DeleteApplication)

	r.POST("/create-payment-intent", authed, h.CreatePaymentIntent)
	r.POST("/payments", authed, h.RecordPayment)
	r.GET("/payments/:applicationId", authed, h.GetPaymentByApplication)

	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
