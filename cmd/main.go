// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"glossary_console/internal/config"
	"glossary_console/internal/handlers"
	"glossary_console/internal/middleware"
	"glossary_console/internal/model"
	"glossary_console/internal/realtime"
	"glossary_console/internal/repository"
	"glossary_console/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// --- tint Handler を使用 ---
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)
	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. External clients
	objectStore, err := service.NewMinioObjectStore(&config.Cfg.Minio)
	if err != nil {
		slog.Error("Error initializing object storage client", slog.Any("error", err))
		os.Exit(1)
	}
	mailer := service.NewMailer(&config.Cfg)

	// リアルタイム通知ハブ。無効時はサービスに渡さない (配信スキップ)
	var hub *realtime.Hub
	var notifier service.Notifier
	if config.Cfg.Realtime.Enabled {
		hub = realtime.NewHub(logger)
		notifier = hub
	}

	// 4. Dependency Injection
	taskRepo := repository.NewGormGlossaryTaskRepository()
	keywordRepo := repository.NewGormGlossaryKeywordRepository()
	auditRepo := repository.NewGormAuditLogRepository()
	broadcastRepo := repository.NewGormBroadcastRepository()
	storageRepo := repository.NewGormStorageRepository()
	userRepo := repository.NewGormUserRepository()
	guidelineRepo := repository.NewGormGuidelineRepository()

	auditService := service.NewAuditService(db, auditRepo, &config.Cfg)
	glossaryService := service.NewGlossaryService(db, taskRepo, keywordRepo, auditService, &config.Cfg)
	broadcastService := service.NewBroadcastService(db, broadcastRepo, mailer, notifier, auditService, &config.Cfg)
	storageService := service.NewStorageService(db, storageRepo, objectStore, auditService)
	authService := service.NewAuthService(db, userRepo, auditService, &config.Cfg)
	guidelineService := service.NewGuidelineService(db, guidelineRepo, auditService)

	glossaryHandler := handlers.NewGlossaryHandler(glossaryService, logger)
	auditHandler := handlers.NewAuditHandler(auditService, logger)
	broadcastHandler := handlers.NewBroadcastHandler(broadcastService, logger)
	storageHandler := handlers.NewStorageHandler(storageService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)
	guidelineHandler := handlers.NewGuidelineHandler(guidelineService, logger)

	// 5. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/login", authHandler.Login)
		r.Get("/auth/azure/login", authHandler.AzureLogin)
		r.Get("/auth/azure/callback", authHandler.AzureCallback)

		// --- Protected routes (require valid JWT) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/auth/me", authHandler.GetMe)

			// 参照系は member も可
			r.Route("/glossary", func(r chi.Router) {
				r.Get("/tasks", glossaryHandler.ListTasks)
				r.Get("/tasks/{task_id}", glossaryHandler.GetTask)
				r.Get("/tasks/{task_id}/keywords", glossaryHandler.ListKeywords)
				r.Get("/keywords", glossaryHandler.ListAllKeywords)
				r.Get("/tree", glossaryHandler.Tree)
				r.Get("/search", glossaryHandler.Search)
				r.Post("/generate-prompt", glossaryHandler.GeneratePrompt)
				r.Post("/preview-prompt", glossaryHandler.PreviewPrompt)

				// 更新系は admin 以上
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleRoot, model.RoleAdmin))
					r.Post("/tasks", glossaryHandler.CreateTask)
					r.Put("/tasks/{task_id}", glossaryHandler.UpdateTask)
					r.Delete("/tasks/{task_id}", glossaryHandler.DeleteTask)
					r.Post("/tasks/batch-delete", glossaryHandler.BatchDeleteTasks)
					r.Post("/tasks/bulk-import", glossaryHandler.BulkImportTasks)
					r.Post("/tasks/{task_id}/keywords", glossaryHandler.CreateKeyword)
					r.Post("/tasks/{task_id}/keywords/bulk-import", glossaryHandler.BulkImportKeywords)
					r.Put("/keywords/{keyword_id}", glossaryHandler.UpdateKeyword)
					r.Delete("/keywords/{keyword_id}", glossaryHandler.DeleteKeyword)
					r.Post("/keywords/batch-delete", glossaryHandler.BatchDeleteKeywords)
					r.Post("/bulk-import", glossaryHandler.BulkImport)
				})
			})

			r.Route("/audit", func(r chi.Router) {
				r.Get("/logs", auditHandler.List)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleRoot, model.RoleAdmin))
					r.Post("/logs", auditHandler.Append)
				})
			})

			r.Route("/broadcasts", func(r chi.Router) {
				r.Get("/", broadcastHandler.List)
				r.Get("/active", broadcastHandler.ListActive)
				r.Get("/{broadcast_id}", broadcastHandler.Get)
				// 却下は本人操作なのでロール不問
				r.Post("/{broadcast_id}/dismiss", broadcastHandler.Dismiss)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleRoot, model.RoleAdmin))
					r.Post("/", broadcastHandler.Create)
					r.Put("/{broadcast_id}", broadcastHandler.Update)
					r.Delete("/{broadcast_id}", broadcastHandler.Delete)
					r.Post("/batch-delete", broadcastHandler.BatchDelete)
				})
			})

			r.Route("/storage", func(r chi.Router) {
				r.Get("/buckets", storageHandler.ListBuckets)
				// オブジェクト操作の可否はバケット権限レベルでサービス側が判定する
				r.Get("/buckets/{bucket_id}/objects", storageHandler.ListObjects)
				r.Post("/buckets/{bucket_id}/objects", storageHandler.UploadObject)
				r.Delete("/buckets/{bucket_id}/objects", storageHandler.DeleteObject)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleRoot, model.RoleAdmin))
					r.Post("/buckets", storageHandler.CreateBucket)
					r.Delete("/buckets/{bucket_id}", storageHandler.DeleteBucket)
					r.Get("/buckets/{bucket_id}/permissions", storageHandler.ListPermissions)
					r.Put("/buckets/{bucket_id}/permissions", storageHandler.GrantPermission)
				})
			})

			r.Route("/guidelines", func(r chi.Router) {
				r.Get("/", guidelineHandler.List)
				r.Get("/{slug}", guidelineHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(model.RoleRoot, model.RoleAdmin))
					r.Post("/", guidelineHandler.Create)
					r.Put("/{slug}", guidelineHandler.Update)
					r.Delete("/{slug}", guidelineHandler.Delete)
				})
			})
		})
	})

	// 通知配信用 WebSocket。JWT ではなく API キーで認証する
	if hub != nil {
		rtHandler := realtime.NewHandler(hub, config.Cfg.Realtime.APIKey, logger)
		r.Get("/ws", rtHandler.ServeWS)
	}

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	// WebSocket クライアントへ終了を知らせてから HTTP を閉じる
	if hub != nil {
		hub.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
