package gorm

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/miles/straymaps/model"
	"github.com/miles/straymaps/repository"
)

func setup(t *testing.T) (repository.Repository, *assert.Assertions, *require.Assertions) {
	t.Helper()
	engine, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	repo, _, err := NewGormRepository(engine, hub.New(), zap.NewNop(), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		db, _ := engine.DB()
		_ = db.Close()
	})
	return repo, assert.New(t), require.New(t)
}

func getDB(repo repository.Repository) *gorm.DB {
	return repo.(*Repository).db
}

func count(t *testing.T, where *gorm.DB) int {
	t.Helper()
	var c int64
	require.NoError(t, where.Count(&c).Error)
	return int(c)
}

func mustMakeStrayAnimalReport(t *testing.T, repo repository.Repository, typ string) *model.StrayAnimalReport {
	t.Helper()
	r := &model.StrayAnimalReport{
		UniqueID:    uuid.Must(uuid.NewV4()),
		Photo:       model.NoPhoto(),
		Type:        typ,
		Colour:      "black",
		Sex:         "unknown",
		Appearance:  "short fur",
		Location:    "near the station",
		MicrochipID: "",
		Contact:     "test@example.com",
		ReportedAt:  time.Now(),
		ReportedBy:  "tester",
		SyncStatus:  model.SyncStatusLocal,
	}
	require.NoError(t, repo.SaveStrayAnimalReport(r))
	return r
}

func mustMakeLostPetReport(t *testing.T, repo repository.Repository, typ, name string) *model.LostPetReport {
	t.Helper()
	r := &model.LostPetReport{
		UniqueID:    uuid.Must(uuid.NewV4()),
		Photo:       model.NoPhoto(),
		Type:        typ,
		Name:        name,
		Colour:      "white",
		Sex:         "female",
		Appearance:  "long fur",
		Location:    "riverside park",
		MicrochipID: "",
		Contact:     "test@example.com",
		ReportedAt:  time.Now(),
		ReportedBy:  "tester",
		SyncStatus:  model.SyncStatusLocal,
	}
	require.NoError(t, repo.SaveLostPetReport(r))
	return r
}
