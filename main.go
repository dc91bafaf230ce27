package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"expense-tracker-backend/analytics"
	"expense-tracker-backend/authentication"
	"expense-tracker-backend/expense"
	"expense-tracker-backend/users"
	"expense-tracker-backend/version"
)

func main() {
	// A missing .env just means config comes from the environment
	_ = godotenv.Load()
	cfg := LoadConfig()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize MongoDB connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Error("could not connect to MongoDB", "error", err)
		os.Exit(1)
	}

	// Ping the database
	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("could not ping MongoDB", "error", err)
		os.Exit(1)
	}

	logger.Info("connected to MongoDB", "database", cfg.DatabaseName)

	jwtSecret := []byte(cfg.JWTSecret)
	store := expense.NewMongoStore(client, cfg)

	authHandler := authentication.NewHandler(client, cfg, jwtSecret)
	usersHandler := users.NewHandler(client, cfg)
	expenseHandler := expense.NewHandler(store, cfg)
	analyticsHandler := analytics.NewHandler(store)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.HandleSignup)
	auth.POST("/login", authHandler.HandleLogin)

	expenses := api.Group("/expenses")
	expenses.Use(authHandler.AuthMiddleware())
	expenses.GET("/summary", analyticsHandler.HandleGetSummary)
	expenses.GET("/trend", analyticsHandler.HandleGetTrend)
	expenses.GET("", expenseHandler.HandleGetExpenses)
	expenses.POST("", expenseHandler.HandleCreateExpense)
	expenses.GET("/:id", expenseHandler.HandleGetExpense)
	expenses.PUT("/:id", expenseHandler.HandleUpdateExpense)
	expenses.DELETE("/:id", expenseHandler.HandleDeleteExpense)

	usersGroup := api.Group("/users")
	usersGroup.Use(authHandler.AuthMiddleware())
	usersGroup.GET("/me", usersHandler.HandleGetCurrentUser)

	api.GET("/info", func(c *gin.Context) {
		info := version.GetInfo()
		info.ServerEnv = cfg.AppEnv
		info.DatabaseName = cfg.DatabaseName
		c.JSON(http.StatusOK, info)
	})

	logger.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
