package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"codesaathi_server/config"
	"codesaathi_server/models"
	"codesaathi_server/routes"
	"codesaathi_server/services"
	"codesaathi_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	authService := services.NewAuthService(dynamoService)
	authService.Table = cfg.UsersTable
	profileService := &services.UserProfileService{Dynamo: dynamoService, Table: cfg.UserProfilesTable}
	matchService := &services.MatchService{Dynamo: dynamoService, Table: cfg.UserProfilesTable}
	chatService := services.NewChatService()
	appService := services.NewAppService(authService, profileService, matchService, chatService)
	s3Service := &services.S3Service{Client: services.InitializeS3Client(cfg.AWSRegion), Bucket: cfg.S3BucketName}

	// Socket.IO server fans simulated replies out to listening clients
	socketServer := socket.NewSocketServer()
	chatService.Broadcast = func(threadID string, msg models.Message) {
		socketServer.BroadcastToRoom("/", threadID, "newMessage", msg)
	}
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Code-Saathi")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterUserProfileRoutes(r, authService, profileService)
	routes.RegisterAppRoutes(r, appService)
	routes.RegisterSwipeRoutes(r, appService)
	routes.RegisterMatchRoutes(r, appService)
	routes.RegisterChatRoutes(r, appService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
