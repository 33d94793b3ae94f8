package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskflowhq/taskflow-api/internal/audit"
	"github.com/taskflowhq/taskflow-api/internal/auth"
	"github.com/taskflowhq/taskflow-api/internal/avatar"
	"github.com/taskflowhq/taskflow-api/internal/config"
	"github.com/taskflowhq/taskflow-api/internal/handlers"
	"github.com/taskflowhq/taskflow-api/internal/middleware"
	"github.com/taskflowhq/taskflow-api/internal/storage"
	"github.com/taskflowhq/taskflow-api/internal/store"
	ucEvent "github.com/taskflowhq/taskflow-api/internal/usecase/event"
)

func RegisterRoutes(r *gin.Engine, st *storage.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	domainStore := store.New(st)

	auditLogger := audit.New(st.DB())
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var codes auth.CodeStore = auth.NewMemoryCodeStore()
	if cfg.RedisAddr != "" {
		codes = auth.NewRedisCodeStore(cfg.RedisAddr)
	}

	sms := auth.NewMockSMS(cfg.SMSDelay)
	authService := auth.NewService(domainStore, codes, sms, auditDispatcher, cfg.JWTSecret)

	uploader := avatar.NewUploader(cfg)

	// ======================================================
	// USE CASES — EVENTS
	// ======================================================
	saveEventUC := ucEvent.NewSaveEvent(
		domainStore,
		auditDispatcher,
	)

	quickStatusUC := ucEvent.NewQuickStatus(
		domainStore,
		auditDispatcher,
	)

	listTasksUC := ucEvent.NewListTasks(
		domainStore,
	)

	monthViewUC := ucEvent.NewMonthView(
		domainStore,
		time.Sunday,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService)
	meHandler := handlers.NewMeHandler(domainStore, uploader)
	userHandler := handlers.NewUserHandler(domainStore, authService, auditDispatcher)
	eventTypeHandler := handlers.NewEventTypeHandler(domainStore, auditDispatcher)
	eventHandler := handlers.NewEventHandler(domainStore, saveEventUC, quickStatusUC, listTasksUC)
	calendarHandler := handlers.NewCalendarHandler(monthViewUC, time.Sunday)
	settingsHandler := handlers.NewSettingsHandler(domainStore)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/auth/request-code", authHandler.RequestCode)
		api.POST("/auth/verify-code", authHandler.VerifyCode)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/session", authHandler.Session)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/users", userHandler.List)
			secured.POST("/users", userHandler.Save)
			secured.DELETE("/users/:id", userHandler.Delete)
			secured.POST("/users/invite", userHandler.Invite)

			secured.GET("/event-types", eventTypeHandler.List)
			secured.POST("/event-types", eventTypeHandler.Save)
			secured.DELETE("/event-types/:id", eventTypeHandler.Delete)

			// ------------------------------
			// EVENTS / TASKS
			// ------------------------------
			secured.GET("/events", eventHandler.List)
			secured.POST("/events", eventHandler.Save)
			secured.DELETE("/events/:id", eventHandler.Delete)
			secured.PATCH("/events/:id/start", eventHandler.Start)
			secured.PATCH("/events/:id/complete", eventHandler.Complete)

			secured.GET("/tasks", eventHandler.ListTasks)

			secured.GET("/calendar/month", calendarHandler.Month)

			secured.GET("/permissions", settingsHandler.ListPermissions)
			secured.GET("/role-capabilities", settingsHandler.RoleCapabilities)
		}
	}
}
