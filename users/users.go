package users

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"expense-tracker-backend/config"
)

type Handler struct {
	mongoClient *mongo.Client
	config      *config.Config
}

func NewHandler(mongoClient *mongo.Client, config *config.Config) *Handler {
	return &Handler{
		mongoClient: mongoClient,
		config:      config,
	}
}

// HandleGetCurrentUser returns the profile of the authenticated user.
// Runs behind the auth middleware, which put user_id in the context.
func (h *Handler) HandleGetCurrentUser(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found"})
		return
	}

	collection := h.mongoClient.Database(h.config.DatabaseName).Collection(h.config.CollectionUserName)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user User
	err := collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, ToResponse(user))
}
