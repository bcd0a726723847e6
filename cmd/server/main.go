package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/weather-widget/config"
	"ulascansenturk/weather-widget/internal/db/preference"
	"ulascansenturk/weather-widget/internal/db/weatherquery"
	"ulascansenturk/weather-widget/internal/providers"
	"ulascansenturk/weather-widget/internal/server"
	"ulascansenturk/weather-widget/internal/service"
	"ulascansenturk/weather-widget/internal/session"
	"ulascansenturk/weather-widget/internal/theme"
	"ulascansenturk/weather-widget/internal/widget"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	var db *gorm.DB
	if conf.NeedsDatabase() {
		db, err = initializeDatabase(conf)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize database")
		}
	}

	var queryLog weatherquery.Repository
	if conf.QueryLogEnabled {
		queryLog = weatherquery.NewRepository(db)
	}

	themes, closeThemes, err := initializeThemeStore(ctx, conf, db)
	if err != nil {
		logger.Fatal().Err(err).Str("theme_store", conf.ThemeStore).Msg("failed to initialize theme store")
	}

	provider := providers.NewOpenWeatherMapProvider(
		conf.OpenWeatherMapAPIKey,
		conf.OpenWeatherMapBaseURL,
		conf.HTTPTimeoutDuration(),
	)
	weatherService := service.NewWeatherService(provider, queryLog)
	presenter := widget.NewPresenter(conf.OpenWeatherMapIconURL)

	sessions := session.NewManager(func(ctx context.Context, sessionID string) *widget.Controller {
		return widget.NewController(ctx, sessionID, weatherService, presenter, themes)
	}, conf.SessionTTL, conf.SessionCleanupInterval)

	router := server.NewRouter(server.Dependencies{
		Logger:         logger,
		Sessions:       sessions,
		WeatherService: weatherService,
		Presenter:      presenter,
		QueryLog:       queryLog,
		Timeout:        conf.HTTPTimeoutDuration(),
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
		sessions.Close()
		closeThemes()
	})

	log.Info().
		Str("theme_store", conf.ThemeStore).
		Bool("query_log", conf.QueryLogEnabled).
		Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&weatherquery.WeatherQuery{}, &preference.Preference{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

// initializeThemeStore returns the configured backend and a func releasing it.
func initializeThemeStore(ctx context.Context, conf *config.Config, db *gorm.DB) (theme.Store, func(), error) {
	switch conf.ThemeStore {
	case config.ThemeStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, conf.HTTPTimeoutDuration())
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}

		return theme.NewRedisStore(client), func() { _ = client.Close() }, nil
	case config.ThemeStorePostgres:
		return preference.NewRepository(db), func() {}, nil
	default:
		return theme.NewMemoryStore(), func() {}, nil
	}
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
