package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bumdes-sale/backend/internal/api"
	"github.com/bumdes-sale/backend/internal/infrastructure/config"
	"github.com/bumdes-sale/backend/internal/infrastructure/db/mongo"
	"github.com/bumdes-sale/backend/internal/infrastructure/db/redis"
	"github.com/bumdes-sale/backend/pkg/logger"
	"github.com/bumdes-sale/backend/pkg/token"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(ctx)
		if err != nil {
			return err
		}

		log := logger.Init(logger.Options{
			Level:  cfg.LogLevel,
			Pretty: cfg.Env == "development",
		})

		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return err
		}
		defer func() {
			_ = client.Disconnect(ctx)
		}()

		if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}

		rdb, err := redis.Connect(ctx, redis.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() {
			_ = rdb.Close()
		}()

		tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

		e := api.NewRouter(db, rdb, tokens, cfg.StatsCacheTTL, log)
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		return e.Start(":" + cfg.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
