package model

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	// StrayAnimalReportCollection 野良動物レポートのリモートコレクション名
	StrayAnimalReportCollection = "stray_animal_reports"
	// StrayAnimalImagePrefix 野良動物レポート写真のblobキープレフィックス
	StrayAnimalImagePrefix = "stray_animal_images"
)

// StrayAnimalReport 野良動物レポートの構造体
type StrayAnimalReport struct {
	ID          int        `gorm:"primaryKey;autoIncrement"`
	UniqueID    uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex"`
	Photo       PhotoRef   `gorm:"embedded;embeddedPrefix:photo_"`
	Type        string     `gorm:"type:varchar(64);not null"`
	Colour      string     `gorm:"type:varchar(64);not null"`
	Sex         string     `gorm:"type:varchar(32);not null"`
	Appearance  string     `gorm:"type:text;not null"`
	Location    string     `gorm:"type:text;not null"`
	MicrochipID string     `gorm:"type:varchar(64);not null;index"`
	Contact     string     `gorm:"type:text;not null"`
	Additional  string     `gorm:"type:text;not null"`
	ReportedAt  time.Time  `gorm:"precision:6"`
	ReportedBy  string     `gorm:"type:varchar(128);not null"`
	SyncStatus  SyncStatus `gorm:"type:varchar(8);not null;default:'local';index"`
}

// TableName StrayAnimalReport構造体のテーブル名
func (*StrayAnimalReport) TableName() string {
	return "stray_animals"
}

// ReportKey implements Report interface.
func (r *StrayAnimalReport) ReportKey() uuid.UUID { return r.UniqueID }

// ReportPhoto implements Report interface.
func (r *StrayAnimalReport) ReportPhoto() PhotoRef { return r.Photo }

// SetReportPhoto implements Report interface.
func (r *StrayAnimalReport) SetReportPhoto(p PhotoRef) { r.Photo = p }

// ReportStatus implements Report interface.
func (r *StrayAnimalReport) ReportStatus() SyncStatus { return r.SyncStatus }

// SetReportStatus implements Report interface.
func (r *StrayAnimalReport) SetReportStatus(s SyncStatus) { r.SyncStatus = s }

// ToDocument implements Report interface.
//
// フィールド名はモバイルクライアントが書き込むドキュメントと互換。
func (r *StrayAnimalReport) ToDocument() map[string]any {
	var photo string
	if !r.Photo.IsNone() {
		photo = r.Photo.Ref
	}
	return map[string]any{
		"strayAnimalReportUniqueId":       r.UniqueID.String(),
		"strayAnimalPhotoPath":            photo,
		"strayAnimalType":                 r.Type,
		"strayAnimalColour":               r.Colour,
		"strayAnimalSex":                  r.Sex,
		"strayAnimalAppearanceDescription": r.Appearance,
		"strayAnimalLocationDescription":  r.Location,
		"strayAnimalMicrochipID":          r.MicrochipID,
		"strayAnimalContactInformation":   r.Contact,
		"strayAnimalAdditionalInformation": r.Additional,
		"strayAnimalReportDateAndTime":    FormatReportTime(r.ReportedAt),
		"strayAnimalReportMadeByUserId":   r.ReportedBy,
		"strayAnimalIsUploaded":           true,
	}
}

// StrayAnimalReportFromDocument リモートドキュメントからレポートを復元します
//
// 写真参照はドキュメントに載っているパスを信用せず、呼び出し側がblobストアから
// 解決し直して設定する。
func StrayAnimalReportFromDocument(doc map[string]any) (*StrayAnimalReport, error) {
	id, err := uuid.FromString(docString(doc, "strayAnimalReportUniqueId"))
	if err != nil {
		return nil, ErrBadDocument
	}
	at, err := ParseReportTime(docString(doc, "strayAnimalReportDateAndTime"))
	if err != nil {
		return nil, ErrBadDocument
	}
	return &StrayAnimalReport{
		UniqueID:    id,
		Photo:       NoPhoto(),
		Type:        docString(doc, "strayAnimalType"),
		Colour:      docString(doc, "strayAnimalColour"),
		Sex:         docString(doc, "strayAnimalSex"),
		Appearance:  docString(doc, "strayAnimalAppearanceDescription"),
		Location:    docString(doc, "strayAnimalLocationDescription"),
		MicrochipID: NormalizeMicrochipID(docString(doc, "strayAnimalMicrochipID")),
		Contact:     docString(doc, "strayAnimalContactInformation"),
		Additional:  docString(doc, "strayAnimalAdditionalInformation"),
		ReportedAt:  at,
		ReportedBy:  docString(doc, "strayAnimalReportMadeByUserId"),
		SyncStatus:  SyncStatusSynced,
	}, nil
}
