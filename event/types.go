package event

// Type イベントの種類
type Type string

const (
	// StrayAnimalReportSaved 野良動物レポートが作成または更新された
	//
	// Fields:
	// 	unique_id: uuid.UUID
	// 	status: model.SyncStatus
	StrayAnimalReportSaved Type = "STRAY_ANIMAL_REPORT_SAVED"
	// StrayAnimalReportDeleted 野良動物レポートが削除された
	//
	// Fields:
	// 	unique_id: uuid.UUID
	StrayAnimalReportDeleted Type = "STRAY_ANIMAL_REPORT_DELETED"

	// LostPetReportSaved 迷子ペットレポートが作成または更新された
	//
	// Fields:
	// 	unique_id: uuid.UUID
	// 	status: model.SyncStatus
	LostPetReportSaved Type = "LOST_PET_REPORT_SAVED"
	// LostPetReportDeleted 迷子ペットレポートが削除された
	//
	// Fields:
	// 	unique_id: uuid.UUID
	LostPetReportDeleted Type = "LOST_PET_REPORT_DELETED"
)
