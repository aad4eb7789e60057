package repository

import (
	"github.com/gofrs/uuid"

	"github.com/miles/straymaps/model"
)

// StrayAnimalReportRepository 野良動物レポートのローカルストアアクセス
type StrayAnimalReportRepository interface {
	// GetStrayAnimalReports 全ての野良動物レポートを指定した並び順で取得します
	//
	// 成功した場合、レポートの配列とnilを返します。
	GetStrayAnimalReports(order ReportOrder) ([]*model.StrayAnimalReport, error)
	// GetStrayAnimalReportsByType 指定した種別の野良動物レポートを取得します
	GetStrayAnimalReportsByType(typ string) ([]*model.StrayAnimalReport, error)
	// GetStrayAnimalReportByUniqueID 指定した一意IDのレポートを取得します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	// 引数にuuid.Nilを指定した場合、ErrNilIDを返します。
	GetStrayAnimalReportByUniqueID(uniqueID uuid.UUID) (*model.StrayAnimalReport, error)
	// GetStrayAnimalReportByMicrochipID 指定したマイクロチップIDのレポートを取得します
	//
	// IDは正規化済み(大文字)であること。存在しなかった場合、ErrNotFoundを返します。
	GetStrayAnimalReportByMicrochipID(microchipID string) (*model.StrayAnimalReport, error)
	// GetPendingStrayAnimalReports リモートに未同期のレポートを取得します
	GetPendingStrayAnimalReports() ([]*model.StrayAnimalReport, error)
	// SaveStrayAnimalReport レポートを一意IDをキーにupsertします
	//
	// 同じ一意IDの行が既にある場合は内容を置き換えます。ローカルIDは保持されます。
	SaveStrayAnimalReport(r *model.StrayAnimalReport) error
	// UpdateStrayAnimalSyncStatus 指定したレポートの同期状態を更新します
	UpdateStrayAnimalSyncStatus(uniqueID uuid.UUID, status model.SyncStatus) error
	// DeleteStrayAnimalReport レポートをローカルストアから削除します
	//
	// リモートのドキュメント・blobには作用しません。
	// 存在しなかった場合、ErrNotFoundを返します。
	DeleteStrayAnimalReport(uniqueID uuid.UUID) error
}
