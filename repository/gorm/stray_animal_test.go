package gorm

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"

	"github.com/miles/straymaps/model"
	"github.com/miles/straymaps/repository"
)

func TestRepository_SaveStrayAnimalReport(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	t.Run("nil id", func(t *testing.T) {
		assert.ErrorIs(repo.SaveStrayAnimalReport(&model.StrayAnimalReport{}), repository.ErrNilID)
	})

	t.Run("success", func(t *testing.T) {
		r := mustMakeStrayAnimalReport(t, repo, "cat")

		got, err := repo.GetStrayAnimalReportByUniqueID(r.UniqueID)
		require.NoError(err)
		assert.Equal(r.UniqueID, got.UniqueID)
		assert.Equal("cat", got.Type)
		assert.Equal(model.SyncStatusLocal, got.SyncStatus)
	})

	t.Run("upsert by unique id", func(t *testing.T) {
		r := mustMakeStrayAnimalReport(t, repo, "dog")

		r.Colour = "brown"
		r.SyncStatus = model.SyncStatusSynced
		require.NoError(repo.SaveStrayAnimalReport(r))

		got, err := repo.GetStrayAnimalReportByUniqueID(r.UniqueID)
		require.NoError(err)
		assert.Equal("brown", got.Colour)
		assert.Equal(model.SyncStatusSynced, got.SyncStatus)
		// 同じuniqueIdの行は1行に保たれる
		assert.Equal(1, count(t, getDB(repo).Model(&model.StrayAnimalReport{}).Where("unique_id = ?", r.UniqueID)))
	})
}

func TestRepository_GetStrayAnimalReportByUniqueID(t *testing.T) {
	t.Parallel()
	repo, assert, _ := setup(t)

	t.Run("nil id", func(t *testing.T) {
		_, err := repo.GetStrayAnimalReportByUniqueID(uuid.Nil)
		assert.ErrorIs(err, repository.ErrNilID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetStrayAnimalReportByUniqueID(uuid.Must(uuid.NewV4()))
		assert.ErrorIs(err, repository.ErrNotFound)
	})
}

func TestRepository_GetStrayAnimalReports(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	mustMakeStrayAnimalReport(t, repo, "dog")
	mustMakeStrayAnimalReport(t, repo, "cat")
	mustMakeStrayAnimalReport(t, repo, "bird")

	t.Run("order by type", func(t *testing.T) {
		reports, err := repo.GetStrayAnimalReports(repository.OrderByType)
		require.NoError(err)
		require.Len(reports, 3)
		assert.Equal("bird", reports[0].Type)
		assert.Equal("cat", reports[1].Type)
		assert.Equal("dog", reports[2].Type)
	})

	t.Run("default order", func(t *testing.T) {
		reports, err := repo.GetStrayAnimalReports(repository.OrderDefault)
		require.NoError(err)
		assert.Len(reports, 3)
	})

	t.Run("filter by type", func(t *testing.T) {
		reports, err := repo.GetStrayAnimalReportsByType("cat")
		require.NoError(err)
		require.Len(reports, 1)
		assert.Equal("cat", reports[0].Type)
	})
}

func TestRepository_GetPendingStrayAnimalReports(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	local := mustMakeStrayAnimalReport(t, repo, "cat")
	pending := mustMakeStrayAnimalReport(t, repo, "dog")
	require.NoError(repo.UpdateStrayAnimalSyncStatus(pending.UniqueID, model.SyncStatusPending))
	synced := mustMakeStrayAnimalReport(t, repo, "bird")
	require.NoError(repo.UpdateStrayAnimalSyncStatus(synced.UniqueID, model.SyncStatusSynced))

	reports, err := repo.GetPendingStrayAnimalReports()
	require.NoError(err)
	require.Len(reports, 2)
	assert.Equal(local.UniqueID, reports[0].UniqueID)
	assert.Equal(pending.UniqueID, reports[1].UniqueID)
}

func TestRepository_GetStrayAnimalReportByMicrochipID(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	r := mustMakeStrayAnimalReport(t, repo, "cat")
	r.MicrochipID = "CHIP-0042"
	require.NoError(repo.SaveStrayAnimalReport(r))

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetStrayAnimalReportByMicrochipID("CHIP-0042")
		require.NoError(err)
		assert.Equal(r.UniqueID, got.UniqueID)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := repo.GetStrayAnimalReportByMicrochipID("")
		assert.ErrorIs(err, repository.ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetStrayAnimalReportByMicrochipID("CHIP-9999")
		assert.ErrorIs(err, repository.ErrNotFound)
	})
}

func TestRepository_UpdateStrayAnimalSyncStatus(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	r := mustMakeStrayAnimalReport(t, repo, "cat")

	require.NoError(repo.UpdateStrayAnimalSyncStatus(r.UniqueID, model.SyncStatusSynced))
	got, err := repo.GetStrayAnimalReportByUniqueID(r.UniqueID)
	require.NoError(err)
	assert.Equal(model.SyncStatusSynced, got.SyncStatus)

	t.Run("nil id", func(t *testing.T) {
		assert.ErrorIs(repo.UpdateStrayAnimalSyncStatus(uuid.Nil, model.SyncStatusSynced), repository.ErrNilID)
	})

	t.Run("not found", func(t *testing.T) {
		assert.ErrorIs(repo.UpdateStrayAnimalSyncStatus(uuid.Must(uuid.NewV4()), model.SyncStatusSynced), repository.ErrNotFound)
	})
}

func TestRepository_DeleteStrayAnimalReport(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	r := mustMakeStrayAnimalReport(t, repo, "cat")

	require.NoError(repo.DeleteStrayAnimalReport(r.UniqueID))
	_, err := repo.GetStrayAnimalReportByUniqueID(r.UniqueID)
	assert.ErrorIs(err, repository.ErrNotFound)

	t.Run("already deleted", func(t *testing.T) {
		assert.ErrorIs(repo.DeleteStrayAnimalReport(r.UniqueID), repository.ErrNotFound)
	})

	t.Run("nil id", func(t *testing.T) {
		assert.ErrorIs(repo.DeleteStrayAnimalReport(uuid.Nil), repository.ErrNilID)
	})
}

func TestRepository_StrayAnimalDateOrder(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	old := mustMakeStrayAnimalReport(t, repo, "cat")
	old.ReportedAt = time.Now().Add(-24 * time.Hour)
	require.NoError(repo.SaveStrayAnimalReport(old))
	mustMakeStrayAnimalReport(t, repo, "dog")

	reports, err := repo.GetStrayAnimalReports(repository.OrderByDate)
	require.NoError(err)
	require.Len(reports, 2)
	assert.Equal(old.UniqueID, reports[0].UniqueID)
}
