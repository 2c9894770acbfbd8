package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"moviehub/cmd"
	"moviehub/internal/data/repository"
	"moviehub/internal/wire"
	"moviehub/migrations"
	"moviehub/pkg/database"
	"moviehub/pkg/utils"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
)

func main() {
	app := kingpin.New("moviehub", "Movie Hub catalog and admin API.")
	envFile := app.Flag("env-file", "Path to an optional .env file.").Default(".env").String()

	serveCmd := app.Command("serve", "Run the public API.").Default()
	adminCmd := app.Command("admin", "Run the admin API.")
	migrateCmd := app.Command("migrate", "Apply database migrations and exit.")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	config, err := utils.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case serveCmd.FullCommand():
		err = runServer(utils.ServicePublic, config)
	case adminCmd.FullCommand():
		err = runServer(utils.ServiceAdmin, config)
	case migrateCmd.FullCommand():
		err = runMigrate(config)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
		os.Exit(1)
	}
}

func runServer(service string, config *utils.Config) error {
	if err := config.Validate(service); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.Name+"-"+service, config.App.LogPath, config.App.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	port := config.App.Port
	if service == utils.ServiceAdmin {
		port = config.HTTP.AdminPort
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("service", service),
		zap.String("port", port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	var application *wire.App
	if service == utils.ServiceAdmin {
		application = wire.WiringAdmin(repos, config, logger)
	} else {
		application = wire.Wiring(repos, config, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.APIServer(ctx, application.Router, port, config.HTTP.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("Server stopped")
	return nil
}

func runMigrate(config *utils.Config) error {
	logger, err := utils.InitLogger(config.App.Name+"-migrate", config.App.LogPath, config.App.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	sqlDB, err := database.OpenSQL(config.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrations.Migrate(sqlDB); err != nil {
		logger.Error("Migration failed", zap.Error(err))
		return err
	}

	logger.Info("Migrations applied")
	return nil
}
