package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/miles/straymaps/model"
)

// v1 レポートテーブルの作成
func v1() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			return db.AutoMigrate(&model.StrayAnimalReport{}, &model.LostPetReport{})
		},
	}
}
