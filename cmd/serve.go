package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/miles/straymaps/external/firebase"
	rgorm "github.com/miles/straymaps/repository/gorm"
	"github.com/miles/straymaps/router"
	"github.com/miles/straymaps/service/imaging"
	"github.com/miles/straymaps/service/sync"
	"github.com/miles/straymaps/storage"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:   "serve",
		Short: "Serve StrayMaps API",
		Run: func(cmd *cobra.Command, args []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("StrayMaps %s (revision %s)", Version, Revision))

			// Message Hub
			hub := hub.New()

			// Database
			logger.Info("connecting database...")
			engine, err := c.getDatabase(logger)
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()
			logger.Info("database connection was established")

			// ローカルblobキャッシュ
			cache, err := c.getCacheStorage()
			if err != nil {
				logger.Fatal("failed to setup cache storage", zap.Error(err))
			}
			if err := seedPlaceholder(cache); err != nil {
				logger.Fatal("failed to seed placeholder image", zap.Error(err))
			}

			// リモートblobストア
			blobs, err := c.getBlobStorage()
			if err != nil {
				logger.Fatal("failed to setup blob storage", zap.Error(err))
			}

			// リモートドキュメントストア
			var (
				store    sync.DocumentStore
				verifier router.TokenVerifier
			)
			if credFile := c.Firebase.ServiceAccount.File; credFile != "" {
				fb, err := firebase.NewClient(context.Background(), credFile)
				if err != nil {
					logger.Fatal("failed to setup firebase client", zap.Error(err))
				}
				defer fb.Close()
				store = fb
				verifier = fb
			} else {
				logger.Warn("firebase credentials are not configured. falling back to in-memory document store")
				store = firebase.NewInMemoryDocumentStore()
			}

			// Repository
			logger.Info("setting up repository...")
			repo, init, err := rgorm.NewGormRepository(engine, hub, logger, true)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			if init {
				logger.Info("database was initialized")
			}
			logger.Info("repository was set up")

			// 同期エンジン
			engineSync := sync.NewEngine(repo, store, cache, blobs, logger)
			strayAnimals := sync.NewStrayAnimalSyncer(engineSync)
			lostPets := sync.NewLostPetSyncer(engineSync)

			// Router
			e := newEcho(logger)
			handlers := &router.Handlers{
				Repo:         repo,
				StrayAnimals: strayAnimals,
				LostPets:     lostPets,
				Cache:        cache,
				Imaging:      imaging.NewProcessor(provideImageProcessorConfig(&c)),
				Verifier:     verifier,
				Hub:          hub,
				Logger:       logger.Named("router"),
				Version:      Version,
				Revision:     Revision,
			}
			handlers.Setup(e)

			// 定期スイープ
			sweepCtx, stopSweep := context.WithCancel(context.Background())
			defer stopSweep()
			if interval := c.Sync.SweepInterval; interval > 0 {
				go periodicSweep(sweepCtx, logger, time.Duration(interval)*time.Second, strayAnimals, lostPets)
			}
			if c.Sync.PullOnStart {
				go func() {
					if err := strayAnimals.PullAndMerge(sweepCtx); err != nil {
						logger.Warn("initial pull failed", zap.Error(err))
					}
					if err := lostPets.PullAndMerge(sweepCtx); err != nil {
						logger.Warn("initial pull failed", zap.Error(err))
					}
				}()
			}

			go func() {
				if err := e.Start(fmt.Sprintf(":%d", c.Port)); err != nil {
					logger.Info("shutting down the server")
				}
			}()

			logger.Info("StrayMaps started")
			waitSIGINT()
			logger.Info("StrayMaps shutting down...")

			stopSweep()
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
			defer cancel()
			if err := e.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("StrayMaps shutdown")
		},
	}
	return &cmd
}

func newEcho(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))
	if c.Gzip {
		e.Use(middleware.Gzip())
	}
	if c.AccessLog.Enabled {
		al := logger.Named("access_log")
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogStatus:  true,
			LogURI:     true,
			LogMethod:  true,
			LogLatency: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				al.Info("request",
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
				)
				return nil
			},
		}))
	}
	return e
}

// periodicSweep 未同期行を定期的にリモートへ再送します
func periodicSweep(ctx context.Context, logger *zap.Logger, interval time.Duration, strayAnimals *sync.StrayAnimalSyncer, lostPets *sync.LostPetSyncer) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := strayAnimals.Sweep(ctx); err != nil {
				logger.Warn("periodic sweep failed", zap.Error(err))
			}
			if err := lostPets.Sweep(ctx); err != nil {
				logger.Warn("periodic sweep failed", zap.Error(err))
			}
		}
	}
}

// seedPlaceholder 代替画像をローカルblobキャッシュに用意します
func seedPlaceholder(cache storage.FileStorage) error {
	if f, err := cache.OpenFileByKey(imaging.PlaceholderKey); err == nil {
		_ = f.Close()
		return nil
	}
	b, err := imaging.EncodePNG(imaging.GeneratePlaceholder(640, 480))
	if err != nil {
		return err
	}
	return cache.SaveByKey(b, imaging.PlaceholderKey, "image/png")
}
