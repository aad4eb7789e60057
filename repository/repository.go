package repository

// ReportOrder レポート一覧の並び順
type ReportOrder string

const (
	// OrderDefault 挿入順
	OrderDefault ReportOrder = ""
	// OrderByType 種別順
	OrderByType ReportOrder = "type"
	// OrderByName 名前順 (迷子ペットのみ)
	OrderByName ReportOrder = "name"
	// OrderByColour 毛色順
	OrderByColour ReportOrder = "colour"
	// OrderBySex 性別順
	OrderBySex ReportOrder = "sex"
	// OrderByDate 作成日時順
	OrderByDate ReportOrder = "date"
)

// Repository ローカルストアのリポジトリ
type Repository interface {
	StrayAnimalReportRepository
	LostPetReportRepository
}
