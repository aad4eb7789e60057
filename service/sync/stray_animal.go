package sync

import (
	"context"
	"io"
	"time"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"

	"github.com/miles/straymaps/model"
)

// StrayAnimalSyncer 野良動物レポートの同期操作
type StrayAnimalSyncer struct {
	e *Engine
	s slice
}

// NewStrayAnimalSyncer 野良動物レポート用のSyncerを生成します
func NewStrayAnimalSyncer(e *Engine) *StrayAnimalSyncer {
	repo := e.repo
	return &StrayAnimalSyncer{
		e: e,
		s: slice{
			collection:  model.StrayAnimalReportCollection,
			imagePrefix: model.StrayAnimalImagePrefix,
			pending: func() ([]model.Report, error) {
				rows, err := repo.GetPendingStrayAnimalReports()
				return lo.Map(rows, func(r *model.StrayAnimalReport, _ int) model.Report { return r }), err
			},
			save: func(r model.Report) error {
				return repo.SaveStrayAnimalReport(r.(*model.StrayAnimalReport))
			},
			setStatus: repo.UpdateStrayAnimalSyncStatus,
			fromDocument: func(doc map[string]any) (model.Report, error) {
				return model.StrayAnimalReportFromDocument(doc)
			},
		},
	}
}

// Save レポートをローカルへ保存し、未同期行のプッシュを試みます
//
// uniqueIdが未設定の場合は採番する。マイクロチップIDは大文字に正規化される。
func (s *StrayAnimalSyncer) Save(ctx context.Context, r *model.StrayAnimalReport) error {
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
func (s *StrayAnimalSyncer) AttachPhoto(r *model.StrayAnimalReport, src io.Reader) error {
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
func (s *StrayAnimalSyncer) Sweep(ctx context.Context) error {
	return s.e.sweep(ctx, &s.s)
}

// PullAndMerge リモートコレクションをローカルへ取り込みます
func (s *StrayAnimalSyncer) PullAndMerge(ctx context.Context) error {
	return s.e.pullAndMerge(ctx, &s.s)
}

// Refresh スイープとプルをまとめて実行します
func (s *StrayAnimalSyncer) Refresh(ctx context.Context) error {
	return s.e.refresh(ctx, &s.s)
}

// FindByMicrochipID マイクロチップIDでレポートを検索します。入力は正規化してから照合する
func (s *StrayAnimalSyncer) FindByMicrochipID(microchipID string) (*model.StrayAnimalReport, error) {
	return s.e.repo.GetStrayAnimalReportByMicrochipID(model.NormalizeMicrochipID(microchipID))
}

// Delete レポートをローカルキャッシュから削除します。リモートには伝播しない
func (s *StrayAnimalSyncer) Delete(uniqueID uuid.UUID) error {
	return s.e.repo.DeleteStrayAnimalReport(uniqueID)
}
