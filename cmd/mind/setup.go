package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/sandevgo/contactmind/internal/config"
	"github.com/sandevgo/contactmind/internal/export"
	"github.com/sandevgo/contactmind/internal/providers/backend"
	"github.com/sandevgo/contactmind/internal/service/assistant"
	"github.com/sandevgo/contactmind/internal/service/command"
	"github.com/sandevgo/contactmind/internal/service/parser"
	"github.com/sandevgo/contactmind/internal/service/roster"
	"github.com/sandevgo/contactmind/internal/storage/sqlite"
	"github.com/sandevgo/contactmind/internal/transport/cli"
	"github.com/sandevgo/contactmind/internal/transport/telegram"
	"github.com/sandevgo/contactmind/pkg/log"
	"github.com/sandevgo/contactmind/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	backendCfg := config.NewBackendConfig(ctx)

	// 2. Storage
	db, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	contactsRepo := sqlite.NewContactsRepo(db)
	queueRepo := sqlite.NewQueueRepo(db)
	messagesRepo := sqlite.NewMessagesRepo(db)

	// 3. Backend client + roster service
	client := backend.NewClient(backendCfg)
	rosterSvc := roster.New(client, contactsRepo, queueRepo)

	// 4. Background queue replay
	interval := time.Duration(appCfg.SyncIntervalSeconds) * time.Second
	services = append(services, roster.NewSyncWorker(rosterSvc, interval))

	// 5. Parsing + conversation
	parserSvc := parser.New(client)
	assist := assistant.New(client, parserSvc, rosterSvc, messagesRepo)

	// 6. Slash commands
	exporter := export.NewService(rosterSvc, appCfg.GetExportPath())
	router := command.New(command.NewCommands(rosterSvc, exporter))

	// 7. Transports
	transports, err := initTransports(ctx, appCfg, assist, router)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, err
	}
	return sqlite.NewDB(ctx, cfg.GetDatabasePath())
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	assist *assistant.Service,
	router *command.Router,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, assist, router)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableCLI {
		chat, err := cli.NewChat(assist, router, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, chat)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
