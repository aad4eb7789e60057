package cmd

import (
	"image"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/miles/straymaps/service/imaging"
	"github.com/miles/straymaps/storage"
	"github.com/miles/straymaps/utils/gormzap"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`

	// Origin サーバーオリジン (default: http://localhost:3000)
	Origin string `mapstructure:"origin" yaml:"origin"`
	// Port サーバーポート番号 (default: 3000)
	Port int `mapstructure:"port" yaml:"port"`
	// Gzip レスポンスのGZIP圧縮を有効にするかどうか (default: true)
	Gzip bool `mapstructure:"gzip" yaml:"gzip"`
	// ShutdownTimeout シャットダウン猶予時間(秒) (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// Imaging 画像処理設定
	Imaging struct {
		// MaxPixels 処理可能な最大画素数 (default: 2560*1600)
		MaxPixels int `mapstructure:"maxPixels" yaml:"maxPixels"`
		// Concurrency 処理並列数 (default: 1)
		Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
	} `mapstructure:"imaging" yaml:"imaging"`

	// SQLite ローカルキャッシュDB設定
	SQLite struct {
		// Path データベースファイルパス (default: ./straymaps.db)
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"sqlite" yaml:"sqlite"`

	// Sync 同期設定
	Sync struct {
		// SweepInterval 未同期行を再送する間隔(秒). 0で無効 (default: 300)
		SweepInterval int `mapstructure:"sweepInterval" yaml:"sweepInterval"`
		// PullOnStart 起動時にリモートコレクションを取り込むかどうか (default: false)
		PullOnStart bool `mapstructure:"pullOnStart" yaml:"pullOnStart"`
	} `mapstructure:"sync" yaml:"sync"`

	// Storage ローカルblobキャッシュ設定
	Storage struct {
		// Type ストレージタイプ (default: local)
		// 	local: ローカルストレージ
		// 	memory: メモリストレージ
		Type string `mapstructure:"type" yaml:"type"`

		// Local ローカルストレージ設定
		Local struct {
			// Dir 保存先ディレクトリ (default: ./storage)
			Dir string `mapstructure:"dir" yaml:"dir"`
		} `mapstructure:"local" yaml:"local"`
	} `mapstructure:"storage" yaml:"storage"`

	// BlobStorage リモートblobストア設定
	BlobStorage struct {
		// Type ストレージタイプ (default: memory)
		// 	gcs: Google Cloud Storage (Firebase Storageバケット)
		// 	s3: S3互換オブジェクトストレージ
		// 	local: ローカルストレージ
		// 	memory: メモリストレージ
		Type string `mapstructure:"type" yaml:"type"`

		// Local ローカルストレージ設定
		Local struct {
			// Dir 保存先ディレクトリ (default: ./blob-storage)
			Dir string `mapstructure:"dir" yaml:"dir"`
		} `mapstructure:"local" yaml:"local"`

		// GCS Google Cloud Storage設定
		GCS struct {
			// Bucket バケット名
			Bucket string `mapstructure:"bucket" yaml:"bucket"`
			// CredentialsFile クレデンシャルファイル
			CredentialsFile string `mapstructure:"credentialsFile" yaml:"credentialsFile"`
		} `mapstructure:"gcs" yaml:"gcs"`

		// S3 S3互換オブジェクトストレージ設定
		S3 struct {
			// Bucket バケット名
			Bucket string `mapstructure:"bucket" yaml:"bucket"`
			// Region リージョン
			Region string `mapstructure:"region" yaml:"region"`
			// Endpoint エンドポイント
			Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
			// AccessKey アクセスキー
			AccessKey string `mapstructure:"accessKey" yaml:"accessKey"`
			// SecretKey シークレットキー
			SecretKey string `mapstructure:"secretKey" yaml:"secretKey"`
			// ForcePathStyle パススタイルアクセスを強制するかどうか (default: false)
			ForcePathStyle bool `mapstructure:"forcePathStyle" yaml:"forcePathStyle"`
		} `mapstructure:"s3" yaml:"s3"`
	} `mapstructure:"blobStorage" yaml:"blobStorage"`

	// Firebase Firebase設定
	Firebase struct {
		// ServiceAccount サービスアカウント設定
		ServiceAccount struct {
			// File クレデンシャルファイル. 空の場合はリモートストアをインメモリにフォールバックする
			File string `mapstructure:"file" yaml:"file"`
		} `mapstructure:"serviceAccount" yaml:"serviceAccount"`
	} `mapstructure:"firebase" yaml:"firebase"`
}

// Configのデフォルト値設定
func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("origin", "http://localhost:3000")
	viper.SetDefault("port", 3000)
	viper.SetDefault("gzip", true)
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("imaging.maxPixels", 2560*1600)
	viper.SetDefault("imaging.concurrency", 1)
	viper.SetDefault("sqlite.path", "./straymaps.db")
	viper.SetDefault("sync.sweepInterval", 300)
	viper.SetDefault("sync.pullOnStart", false)
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.local.dir", "./storage")
	viper.SetDefault("blobStorage.type", "memory")
	viper.SetDefault("blobStorage.local.dir", "./blob-storage")
	viper.SetDefault("blobStorage.gcs.bucket", "")
	viper.SetDefault("blobStorage.gcs.credentialsFile", "")
	viper.SetDefault("blobStorage.s3.bucket", "")
	viper.SetDefault("blobStorage.s3.region", "")
	viper.SetDefault("blobStorage.s3.endpoint", "")
	viper.SetDefault("blobStorage.s3.accessKey", "")
	viper.SetDefault("blobStorage.s3.secretKey", "")
	viper.SetDefault("blobStorage.s3.forcePathStyle", false)
	viper.SetDefault("firebase.serviceAccount.file", "")
}

func (c Config) getDatabase(logger *zap.Logger) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(c.SQLite.Path), &gorm.Config{
		Logger: gormzap.New(logger.Named("gorm")),
	})
}

// getCacheStorage 書き込み時に写真を受けるローカルblobキャッシュ
func (c Config) getCacheStorage() (storage.FileStorage, error) {
	switch c.Storage.Type {
	case "memory":
		return storage.NewInMemoryFileStorage(), nil
	default:
		return storage.NewLocalFileStorage(c.Storage.Local.Dir, c.Origin+"/media"), nil
	}
}

// getBlobStorage リモートblobストア
func (c Config) getBlobStorage() (storage.FileStorage, error) {
	switch c.BlobStorage.Type {
	case "gcs":
		return storage.NewGCSFileStorage(c.BlobStorage.GCS.Bucket, c.BlobStorage.GCS.CredentialsFile)
	case "s3":
		return storage.NewS3FileStorage(
			c.BlobStorage.S3.Bucket,
			c.BlobStorage.S3.Region,
			c.BlobStorage.S3.Endpoint,
			c.BlobStorage.S3.AccessKey,
			c.BlobStorage.S3.SecretKey,
			c.BlobStorage.S3.ForcePathStyle,
		)
	case "local":
		return storage.NewLocalFileStorage(c.BlobStorage.Local.Dir, ""), nil
	default:
		return storage.NewInMemoryFileStorage(), nil
	}
}

func provideImageProcessorConfig(c *Config) imaging.Config {
	return imaging.Config{
		MaxPixels:    c.Imaging.MaxPixels,
		Concurrency:  c.Imaging.Concurrency,
		PhotoMaxSize: image.Pt(1280, 1280),
	}
}
