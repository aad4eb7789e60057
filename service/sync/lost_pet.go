package sync

import (
	"context"
	"io"
	"time"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"

	"github.com/miles/straymaps/model"
)

// LostPetSyncer 迷子ペットレポートの同期操作
type LostPetSyncer struct {
	e *Engine
	s slice
}

// NewLostPetSyncer 迷子ペットレポート用のSyncerを生成します
func NewLostPetSyncer(e *Engine) *LostPetSyncer {
	repo := e.repo
	return &LostPetSyncer{
		e: e,
		s: slice{
			collection:  model.LostPetReportCollection,
			imagePrefix: model.LostPetImagePrefix,
			pending: func() ([]model.Report, error) {
				rows, err := repo.GetPendingLostPetReports()
				return lo.Map(rows, func(r *model.LostPetReport, _ int) model.Report { return r }), err
			},
			save: func(r model.Report) error {
				return repo.SaveLostPetReport(r.(*model.LostPetReport))
			},
			setStatus: repo.UpdateLostPetSyncStatus,
			fromDocument: func(doc map[string]any) (model.Report, error) {
				return model.LostPetReportFromDocument(doc)
			},
		},
	}
}

// Save レポートをローカルへ保存し、未同期行のプッシュを試みます
func (s *LostPetSyncer) Save(ctx context.Context, r *model.LostPetReport) error {
	if r.UniqueID == uuid.Nil {
		r.UniqueID = uuid.Must(uuid.NewV4())
	}
	if r.ReportedAt.IsZero() {
		r.ReportedAt = time.Now()
	}
	r.MicrochipID = model.NormalizeMicrochipID(r.MicrochipID)
	r.SyncStatus = model.SyncStatusLocal
	return s.e.write(ctx, &s.s, r)
}

// AttachPhoto 写真をローカルキャッシュに保存し、レポートに参照を設定します
func (s *LostPetSyncer) AttachPhoto(r *model.LostPetReport, src io.Reader) error {
	if r.UniqueID == uuid.Nil {
		r.UniqueID = uuid.Must(uuid.NewV4())
	}
	key := s.s.blobKey(r.UniqueID)
	if err := s.e.cache.SaveByKey(src, key, "image/png"); err != nil {
		return err
	}
	r.Photo = model.LocalPhoto(key)
	return nil
}

// Sweep 未同期の全行をリモートへプッシュします
func (s *LostPetSyncer) Sweep(ctx context.Context) error {
	return s.e.sweep(ctx, &s.s)
}

// PullAndMerge リモートコレクションをローカルへ取り込みます
func (s *LostPetSyncer) PullAndMerge(ctx context.Context) error {
	return s.e.pullAndMerge(ctx, &s.s)
}

// Refresh スイープとプルをまとめて実行します
func (s *LostPetSyncer) Refresh(ctx context.Context) error {
	return s.e.refresh(ctx, &s.s)
}

// FindByMicrochipID マイクロチップIDでレポートを検索します。入力は正規化してから照合する
func (s *LostPetSyncer) FindByMicrochipID(microchipID string) (*model.LostPetReport, error) {
	return s.e.repo.GetLostPetReportByMicrochipID(model.NormalizeMicrochipID(microchipID))
}

// Delete レポートをローカルキャッシュから削除します。リモートには伝播しない
func (s *LostPetSyncer) Delete(uniqueID uuid.UUID) error {
	return s.e.repo.DeleteLostPetReport(uniqueID)
}
