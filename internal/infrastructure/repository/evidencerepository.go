package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"custodian/internal/domain/evidence"
	vo "custodian/internal/domain/evidence/valueobjects"
	"custodian/internal/infrastructure/persistence/mappers"
	"custodian/internal/infrastructure/persistence/models"
	db "custodian/internal/shared/db"
)

type EvidenceRepository struct {
	db     *gorm.DB
	mapper mappers.EvidenceMapper
}

func NewEvidenceRepository(db *gorm.DB) *EvidenceRepository {
	return &EvidenceRepository{
		db:     db,
		mapper: mappers.NewEvidenceMapper(),
	}
}

func (r *EvidenceRepository) Save(ctx context.Context, e *evidence.Evidence) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save evidence: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return err
	}

	return r.appendLogs(tx, e)
}

func (r *EvidenceRepository) Update(ctx context.Context, e *evidence.Evidence) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces zero-able columns (reminder flag, nil retention dates)
	// through.
	result := tx.
		Model(&models.EvidenceModel{}).
		Where("id = ?", model.ID).
		Select("CaseID", "EvidenceType", "Description", "Originator", "Status",
			"RetentionStart", "RetentionDate", "RetentionSent", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update evidence: %w", result.Error)
	}

	return r.appendLogs(tx, e)
}

func (r *EvidenceRepository) appendLogs(tx *gorm.DB, e *evidence.Evidence) error {
	var statusCount int64
	if err := tx.Model(&models.EvidenceStatusModel{}).
		Where("evidence_id = ?", e.ID()).
		Count(&statusCount).Error; err != nil {
		return fmt.Errorf("failed to count evidence status rows: %w", err)
	}

	statusRows := r.mapper.StatusToModels(e.ID(), e.StatusHistory())
	if int(statusCount) < len(statusRows) {
		if err := tx.Create(statusRows[statusCount:]).Error; err != nil {
			return fmt.Errorf("failed to append evidence status rows: %w", err)
		}
	}

	var custodyCount int64
	if err := tx.Model(&models.CustodyModel{}).
		Where("evidence_id = ?", e.ID()).
		Count(&custodyCount).Error; err != nil {
		return fmt.Errorf("failed to count custody rows: %w", err)
	}

	custodyRows := r.mapper.CustodyToModels(e.ID(), e.CustodyLog())
	if int(custodyCount) < len(custodyRows) {
		if err := tx.Create(custodyRows[custodyCount:]).Error; err != nil {
			return fmt.Errorf("failed to append custody rows: %w", err)
		}
	}

	return nil
}

func (r *EvidenceRepository) GetByID(ctx context.Context, id uint) (*evidence.Evidence, error) {
	var model models.EvidenceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("evidence not found")
		}
		return nil, fmt.Errorf("failed to find evidence: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *EvidenceRepository) GetByReference(ctx context.Context, reference string) (*evidence.Evidence, error) {
	var model models.EvidenceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("reference = ?", reference).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("evidence not found")
		}
		return nil, fmt.Errorf("failed to find evidence: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *EvidenceRepository) loadAggregate(tx *gorm.DB, model *models.EvidenceModel) (*evidence.Evidence, error) {
	var statusRows []models.EvidenceStatusModel
	if err := tx.
		Where("evidence_id = ?", model.ID).
		Order("timestamp ASC, id ASC").
		Find(&statusRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load evidence status history: %w", err)
	}

	var custodyRows []models.CustodyModel
	if err := tx.
		Where("evidence_id = ?", model.ID).
		Order("timestamp ASC, id ASC").
		Find(&custodyRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load custody log: %w", err)
	}

	return r.mapper.ToDomain(model, statusRows, custodyRows)
}

func (r *EvidenceRepository) ListByCase(ctx context.Context, caseID uint) ([]*evidence.Evidence, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var evidenceModels []models.EvidenceModel
	if err := tx.
		Where("case_id = ?", caseID).
		Order("id ASC").
		Find(&evidenceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list evidence by case: %w", err)
	}

	return r.loadAll(tx, evidenceModels)
}

func (r *EvidenceRepository) ListUnassociated(ctx context.Context) ([]*evidence.Evidence, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var evidenceModels []models.EvidenceModel
	if err := tx.
		Where("case_id IS NULL").
		Order("id ASC").
		Find(&evidenceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list unassociated evidence: %w", err)
	}

	return r.loadAll(tx, evidenceModels)
}

func (r *EvidenceRepository) List(ctx context.Context, filter evidence.Filter) ([]*evidence.Evidence, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.EvidenceModel{})

	if filter.CaseID != nil {
		query = query.Where("case_id = ?", *filter.CaseID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		query = query.Where("status IN ?", statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count evidence: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var evidenceModels []models.EvidenceModel
	if err := query.Order("id DESC").Find(&evidenceModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list evidence: %w", err)
	}

	items, err := r.loadAll(tx, evidenceModels)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *EvidenceRepository) ListDueForReminder(ctx context.Context) ([]*evidence.Evidence, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	now := time.Now().UTC().UnixMilli()
	var evidenceModels []models.EvidenceModel
	if err := tx.
		Where("status = ?", vo.StatusArchived.String()).
		Where("retention_sent = ?", false).
		Where("retention_date IS NOT NULL AND retention_date <= ?", now).
		Order("retention_date ASC").
		Find(&evidenceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list evidence due for reminder: %w", err)
	}

	return r.loadAll(tx, evidenceModels)
}

func (r *EvidenceRepository) loadAll(tx *gorm.DB, evidenceModels []models.EvidenceModel) ([]*evidence.Evidence, error) {
	items := make([]*evidence.Evidence, 0, len(evidenceModels))
	for i := range evidenceModels {
		e, err := r.loadAggregate(tx, &evidenceModels[i])
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}
