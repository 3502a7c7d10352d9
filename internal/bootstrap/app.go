package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpHandler "github.com/zach0583-rgb/ThatZachGuy/internal/handler/http"
	"github.com/zach0583-rgb/ThatZachGuy/internal/catalog"
	"github.com/zach0583-rgb/ThatZachGuy/internal/infra/blob"
	gormpersistence "github.com/zach0583-rgb/ThatZachGuy/internal/infra/persistence/gorm"
	"github.com/zach0583-rgb/ThatZachGuy/internal/infra/setup"
	"github.com/zach0583-rgb/ThatZachGuy/internal/middleware"
	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
	"github.com/zach0583-rgb/ThatZachGuy/internal/token"
)

// Config holds everything loaded from the environment at startup.
type Config struct {
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	JWTExpiryHours    int
	ServerPort        string
	LogLevel          string
	AppEnv            string
	UploadDir         string
	CORSAllowedOrigin string
	RateLimitMax      int
	RateLimitWindow   time.Duration
}

// LoadConfig reads configuration from the environment, preferring a
// local .env file when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // optional; plain env vars are fine

	cfg := &Config{
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBName:            os.Getenv("DB_NAME"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		ServerPort:        os.Getenv("SERVER_PORT"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		AppEnv:            os.Getenv("APP_ENV"),
		UploadDir:         os.Getenv("UPLOAD_DIR"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),
		RateLimitMax:      100,
		RateLimitWindow:   1 * time.Second,
		JWTExpiryHours:    720, // 30 days
	}

	cfg.RedisDB, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	if hours := os.Getenv("JWT_EXPIRY_HOURS"); hours != "" {
		v, err := strconv.Atoi(hours)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS %q", hours)
		}
		cfg.JWTExpiryHours = v
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "./uploads"
	}
	if cfg.CORSAllowedOrigin == "" {
		cfg.CORSAllowedOrigin = "http://localhost:3000"
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("environment variable REDIS_ADDR must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App wires the whole service together and owns its lifecycle.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	HttpServer  *http.Server
}

// NewApp builds every component: infrastructure, repositories,
// services, handlers and the router.
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel) // validated in LoadConfig
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	logrus.SetLevel(logLevel)
	log.Info("Configuration loaded successfully")

	log.Info("Initializing infrastructure...")
	db, err := setup.InitDB(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	if err := gormpersistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database initialized")

	redisClient, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}
	log.Info("Redis client initialized")

	fileStore, err := blob.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init upload store: %w", err)
	}
	log.Infof("Upload store initialized at %s", cfg.UploadDir)

	tokens, err := token.NewManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	log.Info("Initializing repositories...")
	userRepo := gormpersistence.NewGormUserRepository(db)
	sceneRepo := gormpersistence.NewGormSceneRepository(db)
	messageRepo := gormpersistence.NewGormMessageRepository(db)
	mediaRepo := gormpersistence.NewGormMediaRepository(db)
	artworkRepo := gormpersistence.NewGormArtworkRepository(db)

	log.Info("Initializing services...")
	suites := catalog.Default()
	authService := service.NewAuthService(userRepo, tokens)
	sceneService := service.NewSceneService(sceneRepo, userRepo, messageRepo, mediaRepo, fileStore)
	messageService := service.NewMessageService(messageRepo, sceneRepo, userRepo)
	mediaService := service.NewMediaService(mediaRepo, sceneRepo, userRepo, fileStore)
	artworkService := service.NewArtworkService(artworkRepo, fileStore, suites)
	suiteService := service.NewSuiteService(suites, artworkRepo)

	log.Info("Initializing handlers...")
	authHandler := httpHandler.NewAuthHandler(authService)
	sceneHandler := httpHandler.NewSceneHandler(sceneService)
	messageHandler := httpHandler.NewMessageHandler(messageService)
	mediaHandler := httpHandler.NewMediaHandler(mediaService)
	artworkHandler := httpHandler.NewArtworkHandler(artworkService)
	suiteHandler := httpHandler.NewSuiteHandler(suiteService)
	healthHandler := httpHandler.NewHealthHandler(db, redisClient)

	log.Info("Setting up Gin router...")
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(corsMiddleware(cfg.CORSAllowedOrigin))
	router.Use(middleware.RateLimit(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow))

	registerRoutes(router, tokens, authHandler, sceneHandler, messageHandler, mediaHandler, artworkHandler, suiteHandler, healthHandler)
	router.Static("/uploads", cfg.UploadDir)
	log.Info("Router setup complete")

	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		RedisClient: redisClient,
		HttpServer:  httpServer,
	}, nil
}

func registerRoutes(
	router *gin.Engine,
	tokens *token.Manager,
	authHandler *httpHandler.AuthHandler,
	sceneHandler *httpHandler.SceneHandler,
	messageHandler *httpHandler.MessageHandler,
	mediaHandler *httpHandler.MediaHandler,
	artworkHandler *httpHandler.ArtworkHandler,
	suiteHandler *httpHandler.SuiteHandler,
	healthHandler *httpHandler.HealthHandler,
) {
	api := router.Group("/api")

	api.GET("/health", healthHandler.Check)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Suite directory, single artworks and the gallery are public
	// reads.
	api.GET("/suites", suiteHandler.List)
	api.GET("/suites/:suiteId", suiteHandler.Get)
	api.GET("/artworks/:artworkId", artworkHandler.Get)
	api.GET("/public-gallery", artworkHandler.Gallery)

	authed := api.Group("")
	authed.Use(middleware.Auth(tokens))
	{
		authed.GET("/auth/profile", authHandler.Profile)
		authed.PUT("/auth/profile", authHandler.UpdateProfile)
		authed.POST("/auth/logout", authHandler.Logout)

		authed.POST("/scenes", sceneHandler.Create)
		authed.GET("/scenes", sceneHandler.List)
		authed.GET("/scenes/:sceneId", sceneHandler.Get)
		authed.PUT("/scenes/:sceneId", sceneHandler.Update)
		authed.DELETE("/scenes/:sceneId", sceneHandler.Delete)
		authed.POST("/scenes/:sceneId/invite", sceneHandler.Invite)
		authed.POST("/scenes/:sceneId/invite/respond", sceneHandler.RespondInvite)
		authed.DELETE("/scenes/:sceneId/collaborators/:userId", sceneHandler.RemoveCollaborator)

		authed.GET("/scenes/:sceneId/messages", messageHandler.List)
		authed.POST("/scenes/:sceneId/messages", messageHandler.Send)

		authed.GET("/scenes/:sceneId/media", mediaHandler.List)
		authed.POST("/scenes/:sceneId/media", mediaHandler.Upload)

		authed.GET("/suites/:suiteId/artworks", artworkHandler.ListBySuite)
		authed.POST("/suites/:suiteId/artworks", artworkHandler.Upload)
		authed.PUT("/artworks/:artworkId", artworkHandler.Update)
		authed.DELETE("/artworks/:artworkId", artworkHandler.Delete)
		authed.POST("/artworks/:artworkId/like", artworkHandler.Like)
	}
}

// Start launches the HTTP server.
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown drains in-flight requests and closes connections.
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	a.Log.Info("Application shutdown complete.")
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware logs one structured line per request.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		if errorMessage != "" {
			entry.Error(errorMessage)
		} else if statusCode >= 500 {
			entry.Error("Server error")
		} else if statusCode >= 400 {
			entry.Warn("Client error")
		} else {
			entry.Info("Request handled")
		}
	}
}
