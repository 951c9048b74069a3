package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shoply/shoply-backend/internal/config"
	"github.com/shoply/shoply-backend/internal/mail"
	"github.com/shoply/shoply-backend/internal/modules/account"
	"github.com/shoply/shoply-backend/internal/modules/auth"
	"github.com/shoply/shoply-backend/internal/modules/verification"
	"github.com/shoply/shoply-backend/internal/token"
	"github.com/shoply/shoply-backend/internal/upload"
)

func main() {
	// Missing .env is fine in containerized deployments; the environment
	// itself carries the configuration there.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var zl *zap.Logger
	if cfg.Development() {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalw("open database", "error", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalw("ping database", "error", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// ── Shared capabilities ─────────────────────────────────
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	uploads := upload.NewStorage(cfg.UploadRoot, cfg.UploadMaxSize)

	// ── Identity & account management ───────────────────────
	userRepo := account.NewPostgresRepository(db)
	accountService := account.NewService(userRepo, cfg.BcryptCost, logger)
	account.NewHandler(accountService, issuer, uploads, logger).RegisterRoutes(router)

	authService := auth.NewService(userRepo, issuer, logger)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Email verification ──────────────────────────────────
	codeStore := verification.NewRedisStore(rdb)
	verificationService := verification.NewService(codeStore, mailer, cfg.VerificationTTL, logger)
	verification.NewHandler(verificationService, logger).RegisterRoutes(router)

	// ── Static assets (profile images) ──────────────────────
	fileServer := http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.UploadRoot)))
	router.Get("/assets/*", fileServer.ServeHTTP)

	logger.Infow("shoply api starting", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
