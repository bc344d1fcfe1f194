package main

import (
	"flag"

	"github.com/danmuck/scramblectl/internal/config"
	"github.com/danmuck/scramblectl/internal/observability"
	"github.com/danmuck/scramblectl/internal/server"
	"github.com/rs/zerolog/log"
)

func main() {
	observability.InitLogger("scramblerd")
	configPath := flag.String("config", "", "server config path (defaults are used when empty)")
	flag.Parse()

	cfg := config.DefaultServerConfig()
	if *configPath != "" {
		loaded, err := config.LoadServerConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load server config")
		}
		cfg = loaded
		log.Info().Str("path", *configPath).Msg("loaded server config")
	}

	srv := server.New(cfg)
	if err := srv.Serve(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
