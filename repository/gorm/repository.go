package gorm

import (
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miles/straymaps/migration"
	"github.com/miles/straymaps/repository"
)

// Repository リポジトリ実装
type Repository struct {
	db     *gorm.DB
	hub    *hub.Hub
	logger *zap.Logger
}

// NewGormRepository リポジトリ実装を初期化して生成します
//
// doMigrationがtrueの場合、スキーママイグレーションを実行します。
func NewGormRepository(db *gorm.DB, hub *hub.Hub, logger *zap.Logger, doMigration bool) (repository.Repository, bool, error) {
	repo := &Repository{
		db:     db,
		hub:    hub,
		logger: logger.Named("repository"),
	}
	if doMigration {
		init, err := migration.Migrate(db)
		if err != nil {
			return nil, false, err
		}
		return repo, init, nil
	}
	return repo, false, nil
}

func orderColumn(order repository.ReportOrder) string {
	switch order {
	case repository.OrderByType:
		return "type"
	case repository.OrderByName:
		return "name"
	case repository.OrderByColour:
		return "colour"
	case repository.OrderBySex:
		return "sex"
	case repository.OrderByDate:
		return "reported_at"
	default:
		return "id"
	}
}
