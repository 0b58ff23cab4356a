package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bumdes-sale/backend/internal/infrastructure/config"
	"github.com/bumdes-sale/backend/internal/infrastructure/db/mongo"
	"github.com/bumdes-sale/backend/internal/infrastructure/seed"
	"github.com/bumdes-sale/backend/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with initial data",
	Long:  "Creates the default admin account and sample site content. Collections that already contain documents are left untouched.",
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
			return err
		}

		return seed.New(db, log).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
