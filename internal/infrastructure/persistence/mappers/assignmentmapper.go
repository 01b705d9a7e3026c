package mappers

import (
	"custodian/internal/domain/assignment"
	vo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/infrastructure/persistence/models"
)

type AssignmentMapper interface {
	ToModel(rec *assignment.Record) *models.AssignmentModel
	ToDomain(model *models.AssignmentModel) *assignment.Record
	HistoryToDomain(model *models.AssignmentHistoryModel) *assignment.HistoryEntry
}

type AssignmentMapperImpl struct{}

func NewAssignmentMapper() AssignmentMapper {
	return &AssignmentMapperImpl{}
}

func (m *AssignmentMapperImpl) ToModel(rec *assignment.Record) *models.AssignmentModel {
	return &models.AssignmentModel{
		ID:         rec.ID,
		Kind:       rec.Kind.String(),
		ObjectID:   rec.ObjectID,
		Role:       rec.Role.String(),
		UserID:     rec.UserID,
		AssignedBy: rec.AssignedBy,
		Timestamp:  rec.Timestamp.UnixMilli(),
	}
}

func (m *AssignmentMapperImpl) ToDomain(model *models.AssignmentModel) *assignment.Record {
	return &assignment.Record{
		ID:         model.ID,
		Kind:       vo.Kind(model.Kind),
		ObjectID:   model.ObjectID,
		Role:       vo.Role(model.Role),
		UserID:     model.UserID,
		AssignedBy: model.AssignedBy,
		Timestamp:  millisToTime(model.Timestamp),
	}
}

func (m *AssignmentMapperImpl) HistoryToDomain(model *models.AssignmentHistoryModel) *assignment.HistoryEntry {
	return &assignment.HistoryEntry{
		Kind:      vo.Kind(model.Kind),
		ObjectID:  model.ObjectID,
		Role:      vo.Role(model.Role),
		UserID:    model.UserID,
		Removed:   model.Removed,
		ActorID:   model.ActorID,
		Timestamp: millisToTime(model.Timestamp),
	}
}
