package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"custodian/internal/domain/casefile"
	vo "custodian/internal/domain/casefile/valueobjects"
	"custodian/internal/infrastructure/persistence/mappers"
	"custodian/internal/infrastructure/persistence/models"
	db "custodian/internal/shared/db"
)

type CaseRepository struct {
	db     *gorm.DB
	mapper mappers.CaseMapper
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{
		db:     db,
		mapper: mappers.NewCaseMapper(),
	}
}

func (r *CaseRepository) Save(ctx context.Context, c *casefile.Case) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save case: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	if err := r.appendLogs(tx, c); err != nil {
		return err
	}

	return nil
}

func (r *CaseRepository) Update(ctx context.Context, c *casefile.Case) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CaseModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update case: %w", result.Error)
	}

	return r.appendLogs(tx, c)
}

// appendLogs inserts the status and authorisation rows the database does
// not have yet. Rows are never updated or deleted.
func (r *CaseRepository) appendLogs(tx *gorm.DB, c *casefile.Case) error {
	var statusCount int64
	if err := tx.Model(&models.CaseStatusModel{}).
		Where("case_id = ?", c.ID()).
		Count(&statusCount).Error; err != nil {
		return fmt.Errorf("failed to count case status rows: %w", err)
	}

	statusRows := r.mapper.StatusToModels(c.ID(), c.StatusHistory())
	if int(statusCount) < len(statusRows) {
		if err := tx.Create(statusRows[statusCount:]).Error; err != nil {
			return fmt.Errorf("failed to append case status rows: %w", err)
		}
	}

	var authCount int64
	if err := tx.Model(&models.CaseAuthorisationModel{}).
		Where("case_id = ?", c.ID()).
		Count(&authCount).Error; err != nil {
		return fmt.Errorf("failed to count case authorisation rows: %w", err)
	}

	authRows := r.mapper.AuthorisationsToModels(c.ID(), c.Authorisations())
	if int(authCount) < len(authRows) {
		if err := tx.Create(authRows[authCount:]).Error; err != nil {
			return fmt.Errorf("failed to append case authorisation rows: %w", err)
		}
	}

	return nil
}

func (r *CaseRepository) GetByID(ctx context.Context, id uint) (*casefile.Case, error) {
	var model models.CaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("case not found")
		}
		return nil, fmt.Errorf("failed to find case: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *CaseRepository) GetByName(ctx context.Context, name string) (*casefile.Case, error) {
	var model models.CaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("case not found")
		}
		return nil, fmt.Errorf("failed to find case: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *CaseRepository) loadAggregate(tx *gorm.DB, model *models.CaseModel) (*casefile.Case, error) {
	var statusRows []models.CaseStatusModel
	if err := tx.
		Where("case_id = ?", model.ID).
		Order("timestamp ASC, id ASC").
		Find(&statusRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load case status history: %w", err)
	}

	var authRows []models.CaseAuthorisationModel
	if err := tx.
		Where("case_id = ?", model.ID).
		Order("timestamp ASC, id ASC").
		Find(&authRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load case authorisations: %w", err)
	}

	return r.mapper.ToDomain(model, statusRows, authRows)
}

func (r *CaseRepository) List(ctx context.Context, filter casefile.Filter) ([]*casefile.Case, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CaseModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.Private != nil {
		query = query.Where("private = ?", *filter.Private)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count cases: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var caseModels []models.CaseModel
	if err := query.Order("id DESC").Find(&caseModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list cases: %w", err)
	}

	cases := make([]*casefile.Case, 0, len(caseModels))
	for i := range caseModels {
		c, err := r.loadAggregate(tx, &caseModels[i])
		if err != nil {
			return nil, 0, err
		}
		cases = append(cases, c)
	}

	return cases, total, nil
}

func (r *CaseRepository) CountByStatus(ctx context.Context, status vo.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.CaseModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cases by status: %w", err)
	}
	return count, nil
}
