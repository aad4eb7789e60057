package router

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"

	"github.com/miles/straymaps/model"
)

// photoResponse 写真参照のレスポンス表現
//
// ローカルキャッシュ上の写真は/media経由のURLに変換する。
type photoResponse struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

func formatPhoto(p model.PhotoRef) photoResponse {
	switch {
	case p.IsLocal():
		return photoResponse{Kind: string(model.PhotoKindLocal), URL: "/media/" + p.Ref}
	case p.IsRemote():
		return photoResponse{Kind: string(model.PhotoKindRemote), URL: p.Ref}
	default:
		return photoResponse{Kind: string(model.PhotoKindNone)}
	}
}

type strayAnimalReportResponse struct {
	UniqueID    uuid.UUID        `json:"uniqueId"`
	Photo       photoResponse    `json:"photo"`
	Type        string           `json:"type"`
	Colour      string           `json:"colour"`
	Sex         string           `json:"sex"`
	Appearance  string           `json:"appearance"`
	Location    string           `json:"location"`
	MicrochipID string           `json:"microchipId"`
	Contact     string           `json:"contact"`
	Additional  string           `json:"additional"`
	ReportedAt  time.Time        `json:"reportedAt"`
	ReportedBy  string           `json:"reportedBy"`
	SyncStatus  model.SyncStatus `json:"syncStatus"`
}

func formatStrayAnimalReport(r *model.StrayAnimalReport) *strayAnimalReportResponse {
	return &strayAnimalReportResponse{
		UniqueID:    r.UniqueID,
		Photo:       formatPhoto(r.Photo),
		Type:        r.Type,
		Colour:      r.Colour,
		Sex:         r.Sex,
		Appearance:  r.Appearance,
		Location:    r.Location,
		MicrochipID: r.MicrochipID,
		Contact:     r.Contact,
		Additional:  r.Additional,
		ReportedAt:  r.ReportedAt,
		ReportedBy:  r.ReportedBy,
		SyncStatus:  r.SyncStatus,
	}
}

func formatStrayAnimalReports(rs []*model.StrayAnimalReport) []*strayAnimalReportResponse {
	return lo.Map(rs, func(r *model.StrayAnimalReport, _ int) *strayAnimalReportResponse {
		return formatStrayAnimalReport(r)
	})
}

type lostPetReportResponse struct {
	UniqueID    uuid.UUID        `json:"uniqueId"`
	Photo       photoResponse    `json:"photo"`
	Type        string           `json:"type"`
	Name        string           `json:"name"`
	Colour      string           `json:"colour"`
	Sex         string           `json:"sex"`
	Appearance  string           `json:"appearance"`
	Location    string           `json:"location"`
	MicrochipID string           `json:"microchipId"`
	Contact     string           `json:"contact"`
	Additional  string           `json:"additional"`
	ReportedAt  time.Time        `json:"reportedAt"`
	ReportedBy  string           `json:"reportedBy"`
	SyncStatus  model.SyncStatus `json:"syncStatus"`
}

func formatLostPetReport(r *model.LostPetReport) *lostPetReportResponse {
	return &lostPetReportResponse{
		UniqueID:    r.UniqueID,
		Photo:       formatPhoto(r.Photo),
		Type:        r.Type,
		Name:        r.Name,
		Colour:      r.Colour,
		Sex:         r.Sex,
		Appearance:  r.Appearance,
		Location:    r.Location,
		MicrochipID: r.MicrochipID,
		Contact:     r.Contact,
		Additional:  r.Additional,
		ReportedAt:  r.ReportedAt,
		ReportedBy:  r.ReportedBy,
		SyncStatus:  r.SyncStatus,
	}
}

func formatLostPetReports(rs []*model.LostPetReport) []*lostPetReportResponse {
	return lo.Map(rs, func(r *model.LostPetReport, _ int) *lostPetReportResponse {
		return formatLostPetReport(r)
	})
}
