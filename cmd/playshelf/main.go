package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/playshelf/playshelf/internal/application/auth"
	"github.com/playshelf/playshelf/internal/application/games"
	"github.com/playshelf/playshelf/internal/application/ports"
	"github.com/playshelf/playshelf/internal/config"
	"github.com/playshelf/playshelf/internal/infrastructure/catalog"
	httprouter "github.com/playshelf/playshelf/internal/infrastructure/http"
	"github.com/playshelf/playshelf/internal/infrastructure/http/handlers"
	"github.com/playshelf/playshelf/internal/infrastructure/http/middleware"
	"github.com/playshelf/playshelf/internal/infrastructure/persistence/memory"
	"github.com/playshelf/playshelf/internal/infrastructure/persistence/postgres"
	"github.com/playshelf/playshelf/internal/infrastructure/queue"
	"github.com/playshelf/playshelf/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()

	// The store is constructed here and injected everywhere; nothing
	// reaches it through package state.
	var store ports.UserStore
	var pool *pgxpool.Pool
	if cfg.Database.URL != "" {
		pool, err = pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to database")
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("ping database")
		}
		pgStore := postgres.NewStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensure schema")
		}
		store = pgStore
	} else {
		log.Warn().Msg("DATABASE_URL not set; using in-memory store")
		store = memory.NewStore()
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	var notifier ports.Notifier
	var worker *queue.Worker
	if redisClient != nil {
		redisOpt, _ := redis.ParseURL(cfg.Redis.URL)
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		asynqNotifier := queue.NewAsynqNotifier(asynqOpt, cfg.Server.BaseURL, log)
		defer asynqNotifier.Close()
		notifier = asynqNotifier
		worker = queue.NewWorker(asynqOpt, log)
		go func() {
			if err := worker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		notifier = queue.NewLogNotifier(cfg.Server.BaseURL, log)
	}

	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := security.NewRandomTokenGenerator()

	createAccountUC := auth.NewCreateAccount(store, hasher, tokens, notifier)
	loginUC := auth.NewLogin(store, hasher, tokens, cfg.Auth.SessionTTL)
	logoutUC := auth.NewLogout(store)
	verifyAccountUC := auth.NewVerifyAccount(store)
	requestPasswordResetUC := auth.NewRequestPasswordReset(store, tokens, notifier, cfg.Auth.ResetTTL)
	resetPasswordUC := auth.NewResetPassword(store, hasher)
	updatePreferencesUC := auth.NewUpdatePreferences(store)
	sessionsUC := auth.NewGetUserFromSession(store)

	steam := catalog.NewSteamClient(cfg.Catalog.GameIDs)
	listGamesUC := games.NewListGames(steam)
	randomGameUC := games.NewRandomGame(steam, cfg.Catalog.GameIDs)
	trendingGamesUC := games.NewTrendingGames(steam)

	authHandler := handlers.NewAuthHandler(createAccountUC, loginUC, logoutUC, verifyAccountUC, requestPasswordResetUC, resetPasswordUC, updatePreferencesUC, cfg.Auth.RequireVerification, log)
	gamesHandler := handlers.NewGamesHandler(listGamesUC, randomGameUC, trendingGamesUC, log)
	healthHandler := handlers.NewHealthHandler(pool, redisClient)
	sessionResolver := middleware.NewSessionResolver(sessionsUC)
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Database.URL == ""))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:   authHandler,
		GamesHandler:  gamesHandler,
		HealthHandler: healthHandler,
		Sessions:      sessionResolver,
		Log:           log,
		Secure:        secureMiddleware,
		Metrics:       true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if worker != nil {
		worker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
