package repository

import (
	"github.com/gofrs/uuid"

	"github.com/miles/straymaps/model"
)

// LostPetReportRepository 迷子ペットレポートのローカルストアアクセス
type LostPetReportRepository interface {
	// GetLostPetReports 全ての迷子ペットレポートを指定した並び順で取得します
	GetLostPetReports(order ReportOrder) ([]*model.LostPetReport, error)
	// GetLostPetReportsByType 指定した種別の迷子ペットレポートを取得します
	GetLostPetReportsByType(typ string) ([]*model.LostPetReport, error)
	// GetLostPetReportsByName 指定した名前の迷子ペットレポートを取得します
	GetLostPetReportsByName(name string) ([]*model.LostPetReport, error)
	// GetLostPetReportByUniqueID 指定した一意IDのレポートを取得します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	GetLostPetReportByUniqueID(uniqueID uuid.UUID) (*model.LostPetReport, error)
	// GetLostPetReportByMicrochipID 指定したマイクロチップIDのレポートを取得します
	GetLostPetReportByMicrochipID(microchipID string) (*model.LostPetReport, error)
	// GetPendingLostPetReports リモートに未同期のレポートを取得します
	GetPendingLostPetReports() ([]*model.LostPetReport, error)
	// SaveLostPetReport レポートを一意IDをキーにupsertします
	SaveLostPetReport(r *model.LostPetReport) error
	// UpdateLostPetSyncStatus 指定したレポートの同期状態を更新します
	UpdateLostPetSyncStatus(uniqueID uuid.UUID, status model.SyncStatus) error
	// DeleteLostPetReport レポートをローカルストアから削除します
	DeleteLostPetReport(uniqueID uuid.UUID) error
}
