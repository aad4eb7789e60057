package model

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	// LostPetReportCollection 迷子ペットレポートのリモートコレクション名
	LostPetReportCollection = "lost_pet_reports"
	// LostPetImagePrefix 迷子ペットレポート写真のblobキープレフィックス
	LostPetImagePrefix = "lost_pet_images"
)

// LostPetReport 迷子ペットレポートの構造体
type LostPetReport struct {
	ID          int        `gorm:"primaryKey;autoIncrement"`
	UniqueID    uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex"`
	Photo       PhotoRef   `gorm:"embedded;embeddedPrefix:photo_"`
	Type        string     `gorm:"type:varchar(64);not null"`
	Name        string     `gorm:"type:varchar(64);not null"`
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

// TableName LostPetReport構造体のテーブル名
func (*LostPetReport) TableName() string {
	return "lost_pets"
}

// ReportKey implements Report interface.
func (r *LostPetReport) ReportKey() uuid.UUID { return r.UniqueID }

// ReportPhoto implements Report interface.
func (r *LostPetReport) ReportPhoto() PhotoRef { return r.Photo }

// SetReportPhoto implements Report interface.
func (r *LostPetReport) SetReportPhoto(p PhotoRef) { r.Photo = p }

// ReportStatus implements Report interface.
func (r *LostPetReport) ReportStatus() SyncStatus { return r.SyncStatus }

// SetReportStatus implements Report interface.
func (r *LostPetReport) SetReportStatus(s SyncStatus) { r.SyncStatus = s }

// ToDocument implements Report interface.
func (r *LostPetReport) ToDocument() map[string]any {
	var photo string
	if !r.Photo.IsNone() {
		photo = r.Photo.Ref
	}
	return map[string]any{
		"lostPetReportUniqueId":        r.UniqueID.String(),
		"lostPetPhoto":                 photo,
		"lostPetType":                  r.Type,
		"lostPetName":                  r.Name,
		"lostPetColour":                r.Colour,
		"lostPetSex":                   r.Sex,
		"lostPetAppearanceDescription": r.Appearance,
		"lostPetLastKnownLocation":     r.Location,
		"lostPetMicrochipId":           r.MicrochipID,
		"lostPetContactInformation":    r.Contact,
		"lostPetAdditionalInformation": r.Additional,
		"lostPetReportDateAndTime":     FormatReportTime(r.ReportedAt),
		"lostPetReportMadeByUserId":    r.ReportedBy,
		"lostPetIsUploaded":            true,
	}
}

// LostPetReportFromDocument リモートドキュメントからレポートを復元します
func LostPetReportFromDocument(doc map[string]any) (*LostPetReport, error) {
	id, err := uuid.FromString(docString(doc, "lostPetReportUniqueId"))
	if err != nil {
		return nil, ErrBadDocument
	}
	at, err := ParseReportTime(docString(doc, "lostPetReportDateAndTime"))
	if err != nil {
		return nil, ErrBadDocument
	}
	return &LostPetReport{
		UniqueID:    id,
		Photo:       NoPhoto(),
		Type:        docString(doc, "lostPetType"),
		Name:        docString(doc, "lostPetName"),
		Colour:      docString(doc, "lostPetColour"),
		Sex:         docString(doc, "lostPetSex"),
		Appearance:  docString(doc, "lostPetAppearanceDescription"),
		Location:    docString(doc, "lostPetLastKnownLocation"),
		MicrochipID: NormalizeMicrochipID(docString(doc, "lostPetMicrochipId")),
		Contact:     docString(doc, "lostPetContactInformation"),
		Additional:  docString(doc, "lostPetAdditionalInformation"),
		ReportedAt:  at,
		ReportedBy:  docString(doc, "lostPetReportMadeByUserId"),
		SyncStatus:  SyncStatusSynced,
	}, nil
}
