// Package sync ローカルキャッシュとリモートストアの同期エンジン
package sync

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"github.com/motoki317/sc"
	"go.uber.org/zap"

	"github.com/miles/straymaps/model"
	"github.com/miles/straymaps/repository"
	"github.com/miles/straymaps/service/imaging"
	"github.com/miles/straymaps/storage"
	"github.com/miles/straymaps/utils"
)

// DocumentStore リモートのドキュメントコレクション
type DocumentStore interface {
	// Add 指定したコレクションに新規ドキュメントを追加します
	Add(ctx context.Context, collection string, doc map[string]any) error
	// FetchAll 指定したコレクションの全ドキュメントを取得します
	FetchAll(ctx context.Context, collection string) ([]map[string]any, error)
}

// Engine 同期エンジン
//
// レポート種別ごとの差分はslice構造体に寄せ、プッシュ・プルの手順自体は
// 全種別で共有する。
type Engine struct {
	repo     repository.Repository
	store    DocumentStore
	cache    storage.FileStorage
	blobs    storage.FileStorage
	logger   *zap.Logger
	inflight *utils.KeyTryLock
	urls     *sc.Cache[string, string]
}

// NewEngine 同期エンジンを生成します
//
// cacheは書き込み時に写真を受けるローカルblobキャッシュ、blobsはリモートblobストア。
// 行の変化はリポジトリがイベントとして発行するため、エンジン自身はハブを持たない。
func NewEngine(repo repository.Repository, store DocumentStore, cache, blobs storage.FileStorage, logger *zap.Logger) *Engine {
	e := &Engine{
		repo:     repo,
		store:    store,
		cache:    cache,
		blobs:    blobs,
		logger:   logger.Named("sync"),
		inflight: utils.NewKeyTryLock(),
	}
	// アクセスURLの発行(署名)は行単位で繰り返されるためキャッシュする
	e.urls = sc.NewMust(func(_ context.Context, key string) (string, error) {
		return e.blobs.GenerateAccessURL(key)
	}, 10*time.Minute, 15*time.Minute)
	return e
}

// slice レポート種別ごとの同期設定
type slice struct {
	collection   string
	imagePrefix  string
	pending      func() ([]model.Report, error)
	save         func(model.Report) error
	setStatus    func(uuid.UUID, model.SyncStatus) error
	fromDocument func(map[string]any) (model.Report, error)
}

func (s *slice) blobKey(key uuid.UUID) string {
	return s.imagePrefix + "/" + key.String()
}

// write ローカルに保存し、そのあと未同期行の一掃を試みます
//
// ローカル保存の失敗のみがエラーになる。プッシュの失敗は書き込みを失敗させず、
// 次のスイープに持ち越される。
func (e *Engine) write(ctx context.Context, s *slice, r model.Report) error {
	if err := s.save(r); err != nil {
		return err
	}
	// 同期済みの行を書き直しただけならプッシュするものはない
	if r.ReportStatus() == model.SyncStatusSynced {
		return nil
	}
	return e.sweep(ctx, s)
}

// sweep 未同期の全行をリモートへプッシュします
//
// 行単位の失敗はログに残して続行する。
func (e *Engine) sweep(ctx context.Context, s *slice) error {
	rows, err := s.pending()
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.pushOne(ctx, s, r); err != nil {
			e.logger.Warn("report push failed",
				zap.String("collection", s.collection),
				zap.Stringer("uniqueId", r.ReportKey()),
				zap.Error(err))
		}
	}
	return nil
}

// pushOne 1行をリモートへプッシュします
//
// 同じuniqueIdのプッシュが進行中の場合は何もしない。重複ドキュメントの挿入を防ぐ。
func (e *Engine) pushOne(ctx context.Context, s *slice, r model.Report) error {
	key := r.ReportKey()
	if !e.inflight.TryLock(key) {
		return nil
	}
	defer e.inflight.Unlock(key)

	if r.ReportStatus() == model.SyncStatusLocal {
		if err := s.setStatus(key, model.SyncStatusPending); err != nil {
			return err
		}
		r.SetReportStatus(model.SyncStatusPending)
	}

	if p := r.ReportPhoto(); p.IsLocal() {
		url, err := e.uploadPhoto(ctx, s, key, p.Ref)
		if err != nil {
			return err
		}
		// ドキュメント追加前にURL書き換えを永続化する
		// ここで落ちても再試行はアップロード済みblobのURLを引き直すだけで済む
		r.SetReportPhoto(model.RemotePhoto(url))
		if err := s.save(r); err != nil {
			return err
		}
	}

	if err := e.store.Add(ctx, s.collection, r.ToDocument()); err != nil {
		return err
	}

	if err := s.setStatus(key, model.SyncStatusSynced); err != nil {
		return err
	}
	r.SetReportStatus(model.SyncStatusSynced)
	return nil
}

func (e *Engine) uploadPhoto(ctx context.Context, s *slice, key uuid.UUID, cacheKey string) (string, error) {
	f, err := e.cache.OpenFileByKey(cacheKey)
	if err != nil {
		return "", err
	}
	defer f.Close()

	blobKey := s.blobKey(key)
	if err := e.blobs.SaveByKey(f, blobKey, "image/png"); err != nil {
		return "", err
	}
	return e.urls.Get(ctx, blobKey)
}

// pullAndMerge リモートコレクションの全ドキュメントを取得し、ローカルへ取り込みます
//
// 既存行はuniqueIdをキーに上書きされる。解釈できないドキュメントがあった場合は
// その時点でプル全体を中断する。取り込み済みの行はそのまま残る。
func (e *Engine) pullAndMerge(ctx context.Context, s *slice) error {
	docs, err := e.store.FetchAll(ctx, s.collection)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		r, err := s.fromDocument(doc)
		if err != nil {
			return err
		}
		r.SetReportPhoto(e.resolvePhoto(ctx, s, r.ReportKey()))
		if err := s.save(r); err != nil {
			return err
		}
	}
	return nil
}

// resolvePhoto 一意IDからリモートblobのURLを引き直します
//
// ドキュメントの写真フィールドは書き込み元デバイスのローカルパスを含みうるため
// 信用せず、blobストアをuniqueIdで照会する。解決できない場合は代替画像を指す。
func (e *Engine) resolvePhoto(ctx context.Context, s *slice, key uuid.UUID) model.PhotoRef {
	url, err := e.urls.Get(ctx, s.blobKey(key))
	if err != nil {
		return model.LocalPhoto(imaging.PlaceholderKey)
	}
	return model.RemotePhoto(url)
}

// refresh スイープとプルをまとめて実行します
func (e *Engine) refresh(ctx context.Context, s *slice) error {
	if err := e.sweep(ctx, s); err != nil {
		return err
	}
	return e.pullAndMerge(ctx, s)
}
