package main

import (
	"context"
	"os"

	"github.com/vkapoor/studentinfo/internal/bootstrap"
	"github.com/vkapoor/studentinfo/internal/pkg/logger"
	"github.com/vkapoor/studentinfo/internal/server"
)

func main() {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(context.Background(), cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer database.Close()

	deps, err := bootstrap.BuildDependencies(cfg, database)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build dependencies")
		os.Exit(1)
	}

	router := bootstrap.SetupRouter(deps)

	srv := server.New(router, cfg.Server.Port)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
