package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/miles/straymaps/model"
)

// Migrations 全てのデータベースマイグレーション
//
// 新たなマイグレーションを行う場合は、この配列の末尾に必ず追加すること
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		v1(), // レポートテーブル(stray_animals, lost_pets)の作成
	}
}

// AllTables 最新のスキーマの全テーブルモデル
func AllTables() []interface{} {
	return []interface{}{
		&model.StrayAnimalReport{},
		&model.LostPetReport{},
	}
}
