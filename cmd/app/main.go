package main

import (
	"worldclock/config"
	"worldclock/di"
	"worldclock/helper"
	"worldclock/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title World Clock API
// @version 1.0
// @description Colleague world clock with DST aware offsets and time conversion.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate roster table")
	}

	http := di.InitializeService()
	http.Serve()
}
