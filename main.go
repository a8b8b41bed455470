package main

import (
	"log"
	"net/http"
	"time"

	"github.com/HAS1ELB/INTELLIPATH/internal/agent"
	"github.com/HAS1ELB/INTELLIPATH/internal/config"
	"github.com/HAS1ELB/INTELLIPATH/internal/db"
	"github.com/HAS1ELB/INTELLIPATH/internal/event"
	"github.com/HAS1ELB/INTELLIPATH/internal/handlers"
	"github.com/HAS1ELB/INTELLIPATH/internal/llm"
	"github.com/HAS1ELB/INTELLIPATH/internal/quiz"
	"github.com/HAS1ELB/INTELLIPATH/internal/recommend"
	"github.com/HAS1ELB/INTELLIPATH/internal/repository"
	"github.com/HAS1ELB/INTELLIPATH/internal/service"
	"github.com/HAS1ELB/INTELLIPATH/internal/skills"
	"github.com/HAS1ELB/INTELLIPATH/internal/syllabus"
	"github.com/HAS1ELB/INTELLIPATH/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)

	if err := db.InitMongo(cfg.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	database := db.Client.Database(cfg.MongoDatabase)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.EventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Single language model client injected everywhere
	model, err := llm.NewClient(llm.Config{
		Provider: cfg.LLMProvider,
		BaseURL:  cfg.LLMBaseURL,
		APIKey:   cfg.LLMAPIKey,
		Model:    cfg.LLMModel,
	})
	if err != nil {
		log.Fatalf("Failed to create language model client: %v", err)
	}

	// Repositories
	resultRepo := repository.NewResultRepository(database)
	studyRepo := repository.NewStudyRepository(database)
	skillRepo := repository.NewSkillRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	userRepo := repository.NewUserRepository(database)

	// Services
	generator := quiz.NewGenerator(model)
	progressService := service.NewProgressService(resultRepo, studyRepo, skillRepo, publisher)
	sessionService := service.NewSessionService(sessionRepo, generator, progressService, publisher)
	userService := service.NewUserService(userRepo, cfg.JWTSecret)
	chatService := service.NewChatService(
		agent.NewTutorAgent(model, generator),
		syllabus.NewGenerator(model),
		publisher,
	)
	analyzer := skills.NewAnalyzer(model, resultRepo, skillRepo)
	recommender := recommend.NewRecommender(model, progressService)

	// Handlers
	chatHandler := handlers.NewChatHandler(chatService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	progressHandler := handlers.NewProgressHandler(progressService, analyzer)
	recommendHandler := handlers.NewRecommendHandler(recommender)
	authHandler := handlers.NewAuthHandler(userService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		if !db.IsConnected() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
			"mongo":   db.IsConnected(),
		})
	})

	// Public routes
	auth := r.Group("/public/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	publicProgress := r.Group("/public/progress")
	{
		publicProgress.GET("/:id/results", progressHandler.GetResults)
		publicProgress.GET("/:id/dashboard", progressHandler.GetDashboard)
	}

	// Protected routes
	protected := r.Group("/protected", authHandler.AuthRequired())
	{
		chat := protected.Group("/chat")
		{
			chat.POST("/", chatHandler.Chat)
			chat.POST("/topic", chatHandler.StartTopic)
			chat.GET("/state", chatHandler.GetState)
			chat.POST("/reset-quiz", chatHandler.ResetQuizState)
		}

		session := protected.Group("/quiz/session")
		{
			session.POST("/", sessionHandler.CreateSession)
			session.GET("/:id", sessionHandler.GetSession)
			session.GET("/:id/next", sessionHandler.NextQuestion)
			session.POST("/:id/answer", sessionHandler.SubmitAnswer)
		}

		progress := protected.Group("/progress")
		{
			progress.POST("/study-session", progressHandler.RecordStudySession)
			progress.GET("/analysis", progressHandler.AnalyzePerformance)
			progress.GET("/skill-gap", progressHandler.SkillGap)
		}

		protected.GET("/recommendations", recommendHandler.GetRecommendations)
	}

	// Optional Consul registration
	if cfg.ConsulAddress != "" {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Printf("Warning: Consul client unavailable: %v", err)
		} else if err := registry.Register(); err != nil {
			log.Printf("Warning: Consul registration failed: %v", err)
		} else {
			defer registry.Deregister()
		}
	}

	log.Printf("Starting %s on port %s", cfg.ServiceName, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
