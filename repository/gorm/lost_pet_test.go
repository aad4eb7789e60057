package gorm

import (
	"testing"

	"github.com/gofrs/uuid"

	"github.com/miles/straymaps/model"
	"github.com/miles/straymaps/repository"
)

func TestRepository_SaveLostPetReport(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	t.Run("nil id", func(t *testing.T) {
		assert.ErrorIs(repo.SaveLostPetReport(&model.LostPetReport{}), repository.ErrNilID)
	})

	t.Run("upsert by unique id", func(t *testing.T) {
		r := mustMakeLostPetReport(t, repo, "dog", "Pochi")

		r.Location = "shopping street"
		require.NoError(repo.SaveLostPetReport(r))

		got, err := repo.GetLostPetReportByUniqueID(r.UniqueID)
		require.NoError(err)
		assert.Equal("shopping street", got.Location)
		assert.Equal(1, count(t, getDB(repo).Model(&model.LostPetReport{}).Where("unique_id = ?", r.UniqueID)))
	})
}

func TestRepository_GetLostPetReports(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	mustMakeLostPetReport(t, repo, "dog", "Pochi")
	mustMakeLostPetReport(t, repo, "cat", "Tama")
	mustMakeLostPetReport(t, repo, "cat", "Mike")

	t.Run("order by name", func(t *testing.T) {
		reports, err := repo.GetLostPetReports(repository.OrderByName)
		require.NoError(err)
		require.Len(reports, 3)
		assert.Equal("Mike", reports[0].Name)
		assert.Equal("Pochi", reports[1].Name)
		assert.Equal("Tama", reports[2].Name)
	})

	t.Run("filter by type", func(t *testing.T) {
		reports, err := repo.GetLostPetReportsByType("cat")
		require.NoError(err)
		assert.Len(reports, 2)
	})

	t.Run("filter by name", func(t *testing.T) {
		reports, err := repo.GetLostPetReportsByName("Tama")
		require.NoError(err)
		require.Len(reports, 1)
		assert.Equal("Tama", reports[0].Name)
	})
}

func TestRepository_GetPendingLostPetReports(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	local := mustMakeLostPetReport(t, repo, "dog", "Pochi")
	synced := mustMakeLostPetReport(t, repo, "cat", "Tama")
	require.NoError(repo.UpdateLostPetSyncStatus(synced.UniqueID, model.SyncStatusSynced))

	reports, err := repo.GetPendingLostPetReports()
	require.NoError(err)
	require.Len(reports, 1)
	assert.Equal(local.UniqueID, reports[0].UniqueID)
}

func TestRepository_GetLostPetReportByMicrochipID(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	r := mustMakeLostPetReport(t, repo, "dog", "Pochi")
	r.MicrochipID = "985112000000001"
	require.NoError(repo.SaveLostPetReport(r))

	got, err := repo.GetLostPetReportByMicrochipID("985112000000001")
	require.NoError(err)
	assert.Equal(r.UniqueID, got.UniqueID)

	_, err = repo.GetLostPetReportByMicrochipID("985112999999999")
	assert.ErrorIs(err, repository.ErrNotFound)
}

func TestRepository_DeleteLostPetReport(t *testing.T) {
	t.Parallel()
	repo, assert, require := setup(t)

	r := mustMakeLostPetReport(t, repo, "dog", "Pochi")

	require.NoError(repo.DeleteLostPetReport(r.UniqueID))
	_, err := repo.GetLostPetReportByUniqueID(r.UniqueID)
	assert.ErrorIs(err, repository.ErrNotFound)

	assert.ErrorIs(repo.DeleteLostPetReport(uuid.Must(uuid.NewV4())), repository.ErrNotFound)
}
