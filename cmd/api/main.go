package main

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/djajbladi/poultry-backend/internal/auth"
	"github.com/djajbladi/poultry-backend/internal/cache"
	"github.com/djajbladi/poultry-backend/internal/config"
	"github.com/djajbladi/poultry-backend/internal/database"
	httpHandlers "github.com/djajbladi/poultry-backend/internal/http"
	"github.com/djajbladi/poultry-backend/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr()})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, user lookups will skip the cache")
	}
	cancel()

	userCache := cache.NewUserCache(rdb, config.UserCacheTTL())
	tokens := auth.NewTokenIssuer(config.JWTSecret(), config.JWTAccessTTL(), config.JWTRefreshTTL())

	svcs := service.New(db, userCache, tokens)
	app := fiber.New()
	httpHandlers.Register(app, svcs, tokens)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}
