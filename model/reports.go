package model

import (
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

// ErrBadDocument 不正なリモートドキュメント
var ErrBadDocument = errors.New("bad document")

// Report 両レポート種別(StrayAnimalReport, LostPetReport)が実装する共通インターフェース
//
// 同期エンジンはこのインターフェースだけを通して行を扱う。
type Report interface {
	// ReportKey ローカル行・リモートドキュメント・リモートblobを結ぶ一意ID
	ReportKey() uuid.UUID
	// ReportPhoto 写真参照
	ReportPhoto() PhotoRef
	SetReportPhoto(p PhotoRef)
	// ReportStatus 同期状態
	ReportStatus() SyncStatus
	SetReportStatus(s SyncStatus)
	// ToDocument リモートドキュメントコレクション用の表現に変換します
	ToDocument() map[string]any
}

// ReportTimeFormat レポート作成日時のドキュメント上での表現 (タイムゾーンなしISO-8601)
const ReportTimeFormat = "2006-01-02T15:04:05"

// SyncStatus レポート行の同期状態
type SyncStatus string

const (
	// SyncStatusLocal ローカルにのみ存在する
	SyncStatusLocal SyncStatus = "local"
	// SyncStatusPending リモートへのプッシュが進行中または失敗してリトライ待ち
	SyncStatusPending SyncStatus = "pending"
	// SyncStatusSynced リモートのドキュメントコレクションに存在することが確認済み
	SyncStatusSynced SyncStatus = "synced"
)

// Valid 有効な値かどうか
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusLocal, SyncStatusPending, SyncStatusSynced:
		return true
	}
	return false
}

// PhotoKind 写真参照の種別
type PhotoKind string

const (
	// PhotoKindNone 写真なし
	PhotoKindNone PhotoKind = "none"
	// PhotoKindLocal ローカルファイルパス
	PhotoKindLocal PhotoKind = "local"
	// PhotoKindRemote リモートblobのURL
	PhotoKindRemote PhotoKind = "remote"
)

// PhotoRef レポート写真へのタグ付き参照
//
// ローカルパスとリモートURLを同じ文字列カラムに混在させない。
// Refの解釈はKindによってのみ決まる。
type PhotoRef struct {
	Kind PhotoKind `gorm:"type:varchar(8);not null;default:'none'" json:"kind"`
	Ref  string    `gorm:"type:text" json:"ref"`
}

// NoPhoto 写真なしの参照
func NoPhoto() PhotoRef {
	return PhotoRef{Kind: PhotoKindNone}
}

// LocalPhoto ローカルファイルパスへの参照
func LocalPhoto(path string) PhotoRef {
	return PhotoRef{Kind: PhotoKindLocal, Ref: path}
}

// RemotePhoto リモートURLへの参照
func RemotePhoto(url string) PhotoRef {
	return PhotoRef{Kind: PhotoKindRemote, Ref: url}
}

// IsLocal ローカルファイルを指しているかどうか
func (p PhotoRef) IsLocal() bool { return p.Kind == PhotoKindLocal && p.Ref != "" }

// IsRemote リモートURLを指しているかどうか
func (p PhotoRef) IsRemote() bool { return p.Kind == PhotoKindRemote && p.Ref != "" }

// IsNone 写真なしかどうか
func (p PhotoRef) IsNone() bool { return !p.IsLocal() && !p.IsRemote() }

// NormalizeMicrochipID マイクロチップIDを大文字に正規化します
func NormalizeMicrochipID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// FormatReportTime ドキュメント用に日時を文字列化します
func FormatReportTime(t time.Time) string {
	return t.Format(ReportTimeFormat)
}

// ParseReportTime ドキュメントの日時文字列を解釈します
func ParseReportTime(s string) (time.Time, error) {
	if t, err := time.Parse(ReportTimeFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func docString(doc map[string]any, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}
