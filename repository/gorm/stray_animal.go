package gorm

import (
	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm/clause"

	"github.com/miles/straymaps/event"
	"github.com/miles/straymaps/model"
	"github.com/miles/straymaps/repository"
)

// GetStrayAnimalReports implements StrayAnimalReportRepository interface.
func (repo *Repository) GetStrayAnimalReports(order repository.ReportOrder) (reports []*model.StrayAnimalReport, err error) {
	return reports, repo.db.Order(orderColumn(order)).Find(&reports).Error
}

// GetStrayAnimalReportsByType implements StrayAnimalReportRepository interface.
func (repo *Repository) GetStrayAnimalReportsByType(typ string) (reports []*model.StrayAnimalReport, err error) {
	return reports, repo.db.Where(&model.StrayAnimalReport{Type: typ}).Find(&reports).Error
}

// GetStrayAnimalReportByUniqueID implements StrayAnimalReportRepository interface.
func (repo *Repository) GetStrayAnimalReportByUniqueID(uniqueID uuid.UUID) (*model.StrayAnimalReport, error) {
	if uniqueID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	r := &model.StrayAnimalReport{}
	if err := repo.db.Take(r, &model.StrayAnimalReport{UniqueID: uniqueID}).Error; err != nil {
		return nil, convertError(err)
	}
	return r, nil
}

// GetStrayAnimalReportByMicrochipID implements StrayAnimalReportRepository interface.
func (repo *Repository) GetStrayAnimalReportByMicrochipID(microchipID string) (*model.StrayAnimalReport, error) {
	if len(microchipID) == 0 {
		return nil, repository.ErrNotFound
	}
	r := &model.StrayAnimalReport{}
	if err := repo.db.Take(r, &model.StrayAnimalReport{MicrochipID: microchipID}).Error; err != nil {
		return nil, convertError(err)
	}
	return r, nil
}

// GetPendingStrayAnimalReports implements StrayAnimalReportRepository interface.
func (repo *Repository) GetPendingStrayAnimalReports() (reports []*model.StrayAnimalReport, err error) {
	return reports, repo.db.Where("sync_status <> ?", model.SyncStatusSynced).Order("id").Find(&reports).Error
}

// SaveStrayAnimalReport implements StrayAnimalReportRepository interface.
func (repo *Repository) SaveStrayAnimalReport(r *model.StrayAnimalReport) error {
	if r.UniqueID == uuid.Nil {
		return repository.ErrNilID
	}
	err := repo.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unique_id"}},
			UpdateAll: true,
		}).
		Create(r).Error
	if err != nil {
		return err
	}
	repo.hub.Publish(hub.Message{
		Name: string(event.StrayAnimalReportSaved),
		Fields: hub.Fields{
			"unique_id": r.UniqueID,
			"status":    r.SyncStatus,
		},
	})
	return nil
}

// UpdateStrayAnimalSyncStatus implements StrayAnimalReportRepository interface.
func (repo *Repository) UpdateStrayAnimalSyncStatus(uniqueID uuid.UUID, status model.SyncStatus) error {
	if uniqueID == uuid.Nil {
		return repository.ErrNilID
	}
	result := repo.db.
		Model(&model.StrayAnimalReport{}).
		Where("unique_id = ?", uniqueID).
		Update("sync_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	repo.hub.Publish(hub.Message{
		Name: string(event.StrayAnimalReportSaved),
		Fields: hub.Fields{
			"unique_id": uniqueID,
			"status":    status,
		},
	})
	return nil
}

// DeleteStrayAnimalReport implements StrayAnimalReportRepository interface.
func (repo *Repository) DeleteStrayAnimalReport(uniqueID uuid.UUID) error {
	if uniqueID == uuid.Nil {
		return repository.ErrNilID
	}
	result := repo.db.Where("unique_id = ?", uniqueID).Delete(&model.StrayAnimalReport{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	repo.hub.Publish(hub.Message{
		Name: string(event.StrayAnimalReportDeleted),
		Fields: hub.Fields{
			"unique_id": uniqueID,
		},
	})
	return nil
}
