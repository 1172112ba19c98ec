package main

import (
	"context"
	"log"
	"os"

	"pushkit_api/firebase"
	"pushkit_api/handlers"
	"pushkit_api/middlewares"
	"pushkit_api/types"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize the platform once; a broken configuration stops startup
	firebaseApp := firebase.MustDefault(context.Background())

	// Check each component of the Firebase app
	if firebaseApp.Admin == nil {
		log.Fatalf("Failed to initialize Firebase Admin app\n")
	}
	if firebaseApp.DB == nil {
		log.Fatalf("Failed to initialize Firestore client\n")
	}
	if firebaseApp.Storage == nil {
		log.Fatalf("Failed to initialize Firebase Storage client\n")
	}
	if firebaseApp.Auth == nil {
		log.Fatalf("Failed to initialize Firebase Auth client\n")
	}
	if firebaseApp.Logger == nil {
		log.Fatalf("Failed to initialize Firebase Logger\n")
	}
	if firebaseApp.MessageClient == nil {
		log.Fatalf("Failed to initialize Firebase Messaging client\n")
	}

	r := gin.Default()

	// Disable TrustedProxies feature
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Fatalf("Failed to set trusted proxies: %v\n", err)
	}

	r.GET("/api/health", handlers.HealthHandler(firebaseApp))

	configGroup := r.Group("/api/config")
	configGroup.GET("", handlers.GetConfigHandler(firebaseApp.Config))
	configGroup.GET("/options", handlers.GetConfigOptionsHandler())

	registrations := handlers.NewFirestoreRegistrationStore(firebaseApp.DB)

	messagingGroup := r.Group("/api/messaging")
	messagingGroup.Use(middlewares.AuthMiddleware(firebaseApp.Logger, firebaseApp.Auth))
	messagingGroup.GET("/token", handlers.GetPushTokenHandler(firebaseApp.Logger, firebaseApp.Registrar, firebaseApp.VAPIDKey))
	messagingGroup.POST("", handlers.SetMessagingRegistrationToken(firebaseApp.Logger, registrations, firebaseApp.MessageClient))
	messagingGroup.GET("/registrations/:clientId", handlers.GetMessagingRegistration(firebaseApp.Logger, registrations))
	messagingGroup.Use(middlewares.AdminAuthMiddleware(firebaseApp.Logger))
	messagingGroup.GET("/registrations", handlers.GetMessagingRegistrations(firebaseApp.Logger, registrations))
	messagingGroup.DELETE("/registrations/:clientId", handlers.DeleteMessagingRegistration(firebaseApp.Logger, registrations))

	port := os.Getenv(types.ENV_PORT)
	if port == "" {
		port = types.DEFAULT_PORT
	}

	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.Fatalf("Server stopped: %v\n", err)
	}
}
