package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"custodian/internal/domain/assignment"
	vo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/infrastructure/persistence/mappers"
	"custodian/internal/infrastructure/persistence/models"
	db "custodian/internal/shared/db"
)

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.AssignmentMapper
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:     db,
		mapper: mappers.NewAssignmentMapper(),
	}
}

// Replace installs the record's user as the slot holder. A displaced
// holder gets a removed history row; the new holder gets an added row.
// The whole swap runs in one transaction.
func (r *AssignmentRepository) Replace(ctx context.Context, rec *assignment.Record) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC().UnixMilli()

		var existing models.AssignmentModel
		err := tx.
			Where("kind = ? AND object_id = ? AND role = ?",
				rec.Kind.String(), rec.ObjectID, rec.Role.String()).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.UserID == rec.UserID {
				// Same holder, nothing to replace.
				return nil
			}
			if err := tx.Delete(&models.AssignmentModel{}, existing.ID).Error; err != nil {
				return fmt.Errorf("failed to vacate assignment slot: %w", err)
			}
			removedRow := models.AssignmentHistoryModel{
				Kind:      existing.Kind,
				ObjectID:  existing.ObjectID,
				Role:      existing.Role,
				UserID:    existing.UserID,
				Removed:   true,
				ActorID:   rec.AssignedBy,
				Timestamp: now,
			}
			if err := tx.Create(&removedRow).Error; err != nil {
				return fmt.Errorf("failed to record assignment removal: %w", err)
			}
		case err == gorm.ErrRecordNotFound:
			// Slot was vacant.
		default:
			return fmt.Errorf("failed to check assignment slot: %w", err)
		}

		model := r.mapper.ToModel(rec)
		model.ID = 0
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save assignment: %w", err)
		}
		rec.ID = model.ID

		addedRow := models.AssignmentHistoryModel{
			Kind:      model.Kind,
			ObjectID:  model.ObjectID,
			Role:      model.Role,
			UserID:    model.UserID,
			Removed:   false,
			ActorID:   rec.AssignedBy,
			Timestamp: now,
		}
		if err := tx.Create(&addedRow).Error; err != nil {
			return fmt.Errorf("failed to record assignment addition: %w", err)
		}

		return nil
	})
}

// Remove vacates the slot if a holder exists, recording the removal.
func (r *AssignmentRepository) Remove(ctx context.Context, kind vo.Kind, objectID uint, role vo.Role, actorID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		var existing models.AssignmentModel
		err := tx.
			Where("kind = ? AND object_id = ? AND role = ?",
				kind.String(), objectID, role.String()).
			First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to check assignment slot: %w", err)
		}

		if err := tx.Delete(&models.AssignmentModel{}, existing.ID).Error; err != nil {
			return fmt.Errorf("failed to vacate assignment slot: %w", err)
		}

		removedRow := models.AssignmentHistoryModel{
			Kind:      existing.Kind,
			ObjectID:  existing.ObjectID,
			Role:      existing.Role,
			UserID:    existing.UserID,
			Removed:   true,
			ActorID:   actorID,
			Timestamp: time.Now().UTC().UnixMilli(),
		}
		if err := tx.Create(&removedRow).Error; err != nil {
			return fmt.Errorf("failed to record assignment removal: %w", err)
		}

		return nil
	})
}

func (r *AssignmentRepository) CurrentHolder(ctx context.Context, kind vo.Kind, objectID uint, role vo.Role) (*assignment.Record, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.AssignmentModel
	err := tx.
		Where("kind = ? AND object_id = ? AND role = ?",
			kind.String(), objectID, role.String()).
		First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *AssignmentRepository) HoldersFor(ctx context.Context, kind vo.Kind, objectID uint) ([]*assignment.Record, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var assignmentModels []models.AssignmentModel
	if err := tx.
		Where("kind = ? AND object_id = ?", kind.String(), objectID).
		Order("id ASC").
		Find(&assignmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	records := make([]*assignment.Record, 0, len(assignmentModels))
	for i := range assignmentModels {
		records = append(records, r.mapper.ToDomain(&assignmentModels[i]))
	}
	return records, nil
}

func (r *AssignmentRepository) ObjectsForUser(ctx context.Context, kind vo.Kind, userID uint, role vo.Role) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var objectIDs []uint
	if err := tx.Model(&models.AssignmentModel{}).
		Where("kind = ? AND user_id = ? AND role = ?", kind.String(), userID, role.String()).
		Order("object_id ASC").
		Pluck("object_id", &objectIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list objects for user: %w", err)
	}
	return objectIDs, nil
}

func (r *AssignmentRepository) IsAssigned(ctx context.Context, kind vo.Kind, objectID uint, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.AssignmentModel{}).
		Where("kind = ? AND object_id = ? AND user_id = ?", kind.String(), objectID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return count > 0, nil
}

func (r *AssignmentRepository) HoldsRole(ctx context.Context, kind vo.Kind, objectID uint, role vo.Role, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.AssignmentModel{}).
		Where("kind = ? AND object_id = ? AND role = ? AND user_id = ?",
			kind.String(), objectID, role.String(), userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check assignment role: %w", err)
	}
	return count > 0, nil
}

func (r *AssignmentRepository) History(ctx context.Context, kind vo.Kind, objectID uint) ([]*assignment.HistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var historyModels []models.AssignmentHistoryModel
	if err := tx.
		Where("kind = ? AND object_id = ?", kind.String(), objectID).
		Order("timestamp ASC, id ASC").
		Find(&historyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load assignment history: %w", err)
	}

	entries := make([]*assignment.HistoryEntry, 0, len(historyModels))
	for i := range historyModels {
		entries = append(entries, r.mapper.HistoryToDomain(&historyModels[i]))
	}
	return entries, nil
}
