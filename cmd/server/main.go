package main

import (
	"log"
	"strconv"

	"learnhub/config"
	"learnhub/db"
	"learnhub/events"
	"learnhub/middlewares"
	"learnhub/routes"
	"learnhub/services"
	"learnhub/store"
	"learnhub/utils"
	"learnhub/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.prod.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.Expiry)

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Redis backs the like sets; the forum degrades without it but the
	// rest of the app keeps working.
	if err := db.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("Redis unavailable, likes disabled: %v", err)
	}

	bus := events.NewBus()
	bus.Subscribe(websocket.BroadcastGamificationEvent)

	users := store.NewMongoUserStore(db.MongoDatabase)
	forum := store.NewMongoForumStore(db.MongoDatabase)
	notifications := store.NewMongoNotificationStore(db.MongoDatabase)
	services.InitGamificationService(users, forum, notifications, bus)

	if err := services.InitQuizFeedbackService(cfg.Gemini.ApiKey); err != nil {
		log.Printf("Quiz feedback disabled: %v", err)
	}

	if cfg.Seed {
		utils.SeedDemoData()
	}

	// Set up the Gin router and configure routes
	router := setupRouter()
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Configure CORS for your frontend (e.g., localhost:5173 for Vite)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes for authentication
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.GET("/badges", routes.GetBadgeCatalogRouteHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/user/profile", routes.GetProfileRouteHandler)
		auth.PUT("/user/equipbadge", routes.EquipBadgeRouteHandler)
		auth.GET("/user/activity", routes.GetActivityLogRouteHandler)
		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
		auth.GET("/notifications", routes.GetNotificationsRouteHandler)

		auth.GET("/courses", routes.GetCoursesRouteHandler)
		auth.GET("/courses/:id", routes.GetCourseRouteHandler)
		auth.POST("/courses/:id/lessons/:lessonId/complete", routes.CompleteLessonRouteHandler)
		auth.POST("/courses/:id/lessons/:lessonId/quiz", routes.SubmitQuizRouteHandler)
		auth.GET("/certificates", routes.GetCertificatesRouteHandler)

		auth.POST("/forum/topics", routes.CreateTopicRouteHandler)
		auth.GET("/forum/topics", routes.GetTopicsRouteHandler)
		auth.POST("/forum/topics/:id/like", routes.ToggleLikeRouteHandler)
		auth.POST("/forum/topics/:id/comments", routes.CreateCommentRouteHandler)
		auth.GET("/forum/topics/:id/comments", routes.GetCommentsRouteHandler)

		// Gamification event stream
		auth.GET("/ws", websocket.GamificationHandler)
	}

	return router
}
