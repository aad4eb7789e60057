package gorm

import (
	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm/clause"

	"github.com/miles/straymaps/event"
	"github.com/miles/straymaps/model"
	"github.com/miles/straymaps/repository"
)

// GetLostPetReports implements LostPetReportRepository interface.
func (repo *Repository) GetLostPetReports(order repository.ReportOrder) (reports []*model.LostPetReport, err error) {
	return reports, repo.db.Order(orderColumn(order)).Find(&reports).Error
}

// GetLostPetReportsByType implements LostPetReportRepository interface.
func (repo *Repository) GetLostPetReportsByType(typ string) (reports []*model.LostPetReport, err error) {
	return reports, repo.db.Where(&model.LostPetReport{Type: typ}).Find(&reports).Error
}

// GetLostPetReportsByName implements LostPetReportRepository interface.
func (repo *Repository) GetLostPetReportsByName(name string) (reports []*model.LostPetReport, err error) {
	return reports, repo.db.Where(&model.LostPetReport{Name: name}).Find(&reports).Error
}

// GetLostPetReportByUniqueID implements LostPetReportRepository interface.
func (repo *Repository) GetLostPetReportByUniqueID(uniqueID uuid.UUID) (*model.LostPetReport, error) {
	if uniqueID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	r := &model.LostPetReport{}
	if err := repo.db.Take(r, &model.LostPetReport{UniqueID: uniqueID}).Error; err != nil {
		return nil, convertError(err)
	}
	return r, nil
}

// GetLostPetReportByMicrochipID implements LostPetReportRepository interface.
func (repo *Repository) GetLostPetReportByMicrochipID(microchipID string) (*model.LostPetReport, error) {
	if len(microchipID) == 0 {
		return nil, repository.ErrNotFound
	}
	r := &model.LostPetReport{}
	if err := repo.db.Take(r, &model.LostPetReport{MicrochipID: microchipID}).Error; err != nil {
		return nil, convertError(err)
	}
	return r, nil
}

// GetPendingLostPetReports implements LostPetReportRepository interface.
func (repo *Repository) GetPendingLostPetReports() (reports []*model.LostPetReport, err error) {
	return reports, repo.db.Where("sync_status <> ?", model.SyncStatusSynced).Order("id").Find(&reports).Error
}

// SaveLostPetReport implements LostPetReportRepository interface.
func (repo *Repository) SaveLostPetReport(r *model.LostPetReport) error {
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
		Name: string(event.LostPetReportSaved),
		Fields: hub.Fields{
			"unique_id": r.UniqueID,
			"status":    r.SyncStatus,
		},
	})
	return nil
}

// UpdateLostPetSyncStatus implements LostPetReportRepository interface.
func (repo *Repository) UpdateLostPetSyncStatus(uniqueID uuid.UUID, status model.SyncStatus) error {
	if uniqueID == uuid.Nil {
		return repository.ErrNilID
	}
	result := repo.db.
		Model(&model.LostPetReport{}).
		Where("unique_id = ?", uniqueID).
		Update("sync_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	repo.hub.Publish(hub.Message{
		Name: string(event.LostPetReportSaved),
		Fields: hub.Fields{
			"unique_id": uniqueID,
			"status":    status,
		},
	})
	return nil
}

// DeleteLostPetReport implements LostPetReportRepository interface.
func (repo *Repository) DeleteLostPetReport(uniqueID uuid.UUID) error {
	if uniqueID == uuid.Nil {
		return repository.ErrNilID
	}
	result := repo.db.Where("unique_id = ?", uniqueID).Delete(&model.LostPetReport{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	repo.hub.Publish(hub.Message{
		Name: string(event.LostPetReportDeleted),
		Fields: hub.Fields{
			"unique_id": uniqueID,
		},
	})
	return nil
}
