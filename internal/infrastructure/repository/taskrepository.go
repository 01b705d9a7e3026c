package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"custodian/internal/domain/task"
	"custodian/internal/infrastructure/persistence/mappers"
	"custodian/internal/infrastructure/persistence/models"
	db "custodian/internal/shared/db"
)

type TaskRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:     db,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return r.appendStatusRows(tx, t)
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces zero-able columns (QA flags, nil QA slots) through.
	result := tx.
		Model(&models.TaskModel{}).
		Where("id = ?", model.ID).
		Select("CaseID", "Name", "Background", "Location", "Status",
			"PrincipalQAID", "SecondaryQAID", "PrincQAPassed", "SeconQAPassed", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}

	return r.appendStatusRows(tx, t)
}

func (r *TaskRepository) appendStatusRows(tx *gorm.DB, t *task.Task) error {
	var count int64
	if err := tx.Model(&models.TaskStatusModel{}).
		Where("task_id = ?", t.ID()).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count task status rows: %w", err)
	}

	rows := r.mapper.StatusToModels(t.ID(), t.StatusHistory())
	if int(count) < len(rows) {
		if err := tx.Create(rows[count:]).Error; err != nil {
			return fmt.Errorf("failed to append task status rows: %w", err)
		}
	}

	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*task.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("task not found")
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return r.loadAggregate(tx, &model)
}

func (r *TaskRepository) loadAggregate(tx *gorm.DB, model *models.TaskModel) (*task.Task, error) {
	var statusRows []models.TaskStatusModel
	if err := tx.
		Where("task_id = ?", model.ID).
		Order("timestamp ASC, id ASC").
		Find(&statusRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load task status history: %w", err)
	}

	return r.mapper.ToDomain(model, statusRows)
}

func (r *TaskRepository) ListByCase(ctx context.Context, caseID uint) ([]*task.Task, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var taskModels []models.TaskModel
	if err := tx.
		Where("case_id = ?", caseID).
		Order("id ASC").
		Find(&taskModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks by case: %w", err)
	}

	tasks := make([]*task.Task, 0, len(taskModels))
	for i := range taskModels {
		t, err := r.loadAggregate(tx, &taskModels[i])
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

func (r *TaskRepository) List(ctx context.Context, filter task.Filter) ([]*task.Task, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TaskModel{})

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
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var taskModels []models.TaskModel
	if err := query.Order("id DESC").Find(&taskModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*task.Task, 0, len(taskModels))
	for i := range taskModels {
		t, err := r.loadAggregate(tx, &taskModels[i])
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, t)
	}

	return tasks, total, nil
}
