package main

import (
	"context"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/notes-api/internal/cache"
	redisCache "github.com/yukikurage/notes-api/internal/cache/redis"
	"github.com/yukikurage/notes-api/internal/config"
	"github.com/yukikurage/notes-api/internal/constants"
	"github.com/yukikurage/notes-api/internal/database"
	"github.com/yukikurage/notes-api/internal/handlers"
	"github.com/yukikurage/notes-api/internal/logger"
	"github.com/yukikurage/notes-api/internal/middleware"
	"github.com/yukikurage/notes-api/internal/notify"
	"github.com/yukikurage/notes-api/internal/repository"
	"github.com/yukikurage/notes-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// Setup session middleware with Redis
	store, err := redisStore.NewStore(
		10,              // Redis pool size
		"tcp",           // network type
		cfg.RedisAddr(), // Redis address from config
		"",              // username (empty for default user)
		"",              // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		logrus.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Dictionary cache is optional; lookups go straight upstream without it
	var definitionCache cache.DefinitionCache
	if c, err := redisCache.NewRedisDefinitionCache(context.Background(), cfg.RedisAddr()); err != nil {
		logrus.WithError(err).Warn("Dictionary cache disabled")
	} else {
		definitionCache = c
		defer c.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	prefsRepo := repository.NewPreferencesRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	resetService := services.NewPasswordResetService(userRepo, resetRepo, notify.NewLogNotifier(), cfg.PasswordResetTTL)
	noteService := services.NewNoteService(noteRepo)
	prefsService := services.NewPreferencesService(prefsRepo)
	dictionaryService := services.NewDictionaryService(services.DictionaryConfig{
		BaseURL:    cfg.DictionaryBaseURL,
		CacheTTL:   cfg.DictionaryCacheTTL,
		RatePerSec: cfg.DictionaryRateLimit,
	}, definitionCache)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, resetService)
	noteHandler := handlers.NewNoteHandler(noteService)
	prefsHandler := handlers.NewPreferencesHandler(prefsService)
	dictionaryHandler := handlers.NewDictionaryHandler(dictionaryService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Notes API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/password-reset", authHandler.RequestPasswordReset)
			auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
			auth.DELETE("/me", middleware.RequireAuth(), authHandler.DeleteCurrentUser)
		}

		// Note routes; single notes are readable anonymously when public
		notes := api.Group("/notes")
		{
			notes.GET("/:id", middleware.OptionalAuth(), middleware.RequireNoteVisible(noteService), noteHandler.GetNote)
			notes.GET("", middleware.RequireAuth(), noteHandler.ListNotes)
			notes.POST("", middleware.RequireAuth(), noteHandler.CreateNote)
			notes.PATCH("/:id", middleware.RequireAuth(), noteHandler.UpdateNote)
			notes.DELETE("/:id", middleware.RequireAuth(), noteHandler.DeleteNote)
		}

		// Preferences routes (protected)
		prefs := api.Group("/preferences")
		prefs.Use(middleware.RequireAuth())
		{
			prefs.GET("", prefsHandler.GetPreferences)
			prefs.PUT("", prefsHandler.UpdatePreferences)
		}

		api.GET("/dictionary/:word", dictionaryHandler.Lookup)
	}

	// Start server
	addr := ":" + cfg.Port
	logrus.WithField("addr", addr).Info("Server starting")
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
