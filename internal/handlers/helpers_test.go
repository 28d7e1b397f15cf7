package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/notes-api/internal/constants"
	"github.com/yukikurage/notes-api/internal/database"
	"github.com/yukikurage/notes-api/internal/middleware"
	"github.com/yukikurage/notes-api/internal/models"
	"github.com/yukikurage/notes-api/internal/notify/mocks"
	"github.com/yukikurage/notes-api/internal/repository"
	"github.com/yukikurage/notes-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	authService  *services.AuthService
	noteService  *services.NoteService
	prefsService *services.PreferencesService
	sentTokens   map[string]string
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	sentTokens := map[string]string{}
	notifier := new(mocks.MockResetNotifier)
	notifier.On("SendReset", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sentTokens[args.String(1)] = args.String(2)
		}).Return(nil).Maybe()
	resetService := services.NewPasswordResetService(userRepo, repository.NewPasswordResetRepository(db), notifier, time.Hour)
	noteService := services.NewNoteService(repository.NewNoteRepository(db))
	prefsService := services.NewPreferencesService(repository.NewPreferencesRepository(db))

	authHandler := NewAuthHandler(authService, resetService)
	noteHandler := NewNoteHandler(noteService)
	prefsHandler := NewPreferencesHandler(prefsService)

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))

	api := r.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/password-reset", authHandler.RequestPasswordReset)
	auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
	auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	auth.DELETE("/me", middleware.RequireAuth(), authHandler.DeleteCurrentUser)

	notes := api.Group("/notes")
	notes.GET("/:id", middleware.OptionalAuth(), middleware.RequireNoteVisible(noteService), noteHandler.GetNote)
	notes.GET("", middleware.RequireAuth(), noteHandler.ListNotes)
	notes.POST("", middleware.RequireAuth(), noteHandler.CreateNote)
	notes.PATCH("/:id", middleware.RequireAuth(), noteHandler.UpdateNote)
	notes.DELETE("/:id", middleware.RequireAuth(), noteHandler.DeleteNote)

	prefs := api.Group("/preferences", middleware.RequireAuth())
	prefs.GET("", prefsHandler.GetPreferences)
	prefs.PUT("", prefsHandler.UpdatePreferences)

	return testEnv{
		db:           db,
		router:       r,
		authService:  authService,
		noteService:  noteService,
		prefsService: prefsService,
		sentTokens:   sentTokens,
	}
}

// signupAndLogin creates a user and returns the session cookies of a fresh login.
func (env testEnv) signupAndLogin(t *testing.T, email string) (*models.User, []*http.Cookie) {
	t.Helper()

	user, err := env.authService.Signup(context.Background(), services.SignupInput{
		Email:    email,
		Name:     "User " + email,
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": "supersecret",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return user, cookies
}

func (env testEnv) do(t *testing.T, method, path string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
