package mappers

import (
	"custodian/internal/domain/task"
	vo "custodian/internal/domain/task/valueobjects"
	"custodian/internal/infrastructure/persistence/models"
)

type TaskMapper interface {
	ToModel(t *task.Task) *models.TaskModel
	ToDomain(model *models.TaskModel, statusRows []models.TaskStatusModel) (*task.Task, error)
	StatusToModels(taskID uint, entries []task.StatusEntry) []models.TaskStatusModel
}

type TaskMapperImpl struct{}

func NewTaskMapper() TaskMapper {
	return &TaskMapperImpl{}
}

func (m *TaskMapperImpl) ToModel(t *task.Task) *models.TaskModel {
	return &models.TaskModel{
		ID:            t.ID(),
		CaseID:        t.CaseID(),
		Name:          t.Name(),
		Background:    t.Background(),
		Location:      t.Location(),
		Status:        t.Status().String(),
		PrincipalQAID: t.PrincipalQAID(),
		SecondaryQAID: t.SecondaryQAID(),
		PrincQAPassed: t.PrincQAPassed(),
		SeconQAPassed: t.SeconQAPassed(),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}
}

func (m *TaskMapperImpl) ToDomain(model *models.TaskModel, statusRows []models.TaskStatusModel) (*task.Task, error) {
	statusHistory := make([]task.StatusEntry, 0, len(statusRows))
	for _, row := range statusRows {
		statusHistory = append(statusHistory, task.StatusEntry{
			Status:    vo.Status(row.Status),
			Note:      row.Note,
			ActorID:   row.ActorID,
			Timestamp: millisToTime(row.Timestamp),
		})
	}

	return task.ReconstructTask(
		model.ID,
		model.CaseID,
		model.Name,
		model.Background,
		model.Location,
		vo.Status(model.Status),
		statusHistory,
		model.PrincipalQAID,
		model.SecondaryQAID,
		model.PrincQAPassed,
		model.SeconQAPassed,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TaskMapperImpl) StatusToModels(taskID uint, entries []task.StatusEntry) []models.TaskStatusModel {
	rows := make([]models.TaskStatusModel, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, models.TaskStatusModel{
			TaskID:    taskID,
			Status:    entry.Status.String(),
			Note:      entry.Note,
			ActorID:   entry.ActorID,
			Timestamp: entry.Timestamp.UnixMilli(),
		})
	}
	return rows
}
