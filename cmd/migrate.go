package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/miles/straymaps/migration"
)

// migrateCommand DBマイグレーションコマンド
func migrateCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:   "migrate",
		Short: "Execute database schema migration only",
		Run: func(cmd *cobra.Command, args []string) {
			logger := getLogger()
			defer logger.Sync()

			engine, err := c.getDatabase(logger)
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()

			init, err := migration.Migrate(engine)
			if err != nil {
				logger.Fatal("failed to migrate database", zap.Error(err))
			}
			if init {
				logger.Info("database was initialized")
			}
			logger.Info("migration completed")
		},
	}
	return &cmd
}
