package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mntnorv/wrdl/internal/config"
	"github.com/mntnorv/wrdl/internal/dict"
	"github.com/mntnorv/wrdl/internal/httpserver"
	"github.com/mntnorv/wrdl/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dicts := dict.NewProvider()
	dicts.Register(cfg.DictName, cfg.DictFile)
	for name, path := range cfg.ExtraDicts {
		dicts.Register(name, path)
	}
	// Fail fast on a broken default list; extra dictionaries load on first use.
	if _, err := dicts.Get(cfg.DictName); err != nil {
		log.Fatal().Err(err).Str("dictionary", cfg.DictName).Msg("failed to load dictionary")
	}

	cache := store.NewMemoryCache()
	if cfg.CacheDSN != "" {
		sc, err := store.OpenSQLiteCache(cfg.CacheDSN)
		if err != nil {
			log.Fatal().Err(err).Str("dsn", cfg.CacheDSN).Msg("failed to open solution cache")
		}
		defer sc.Close()
		cache = sc
	}

	srv := httpserver.New(cfg, dicts, store.NewMemoryStore(cfg.MaxGames), cache)
	log.Info().Str("port", cfg.Port).Str("dictionary", cfg.DictName).Msg("starting wrdl server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
