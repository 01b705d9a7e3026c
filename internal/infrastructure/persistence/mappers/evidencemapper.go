package mappers

import (
	"custodian/internal/domain/evidence"
	vo "custodian/internal/domain/evidence/valueobjects"
	"custodian/internal/infrastructure/persistence/models"
)

type EvidenceMapper interface {
	ToModel(e *evidence.Evidence) *models.EvidenceModel
	ToDomain(model *models.EvidenceModel, statusRows []models.EvidenceStatusModel, custodyRows []models.CustodyModel) (*evidence.Evidence, error)
	StatusToModels(evidenceID uint, entries []evidence.StatusEntry) []models.EvidenceStatusModel
	CustodyToModels(evidenceID uint, entries []evidence.CustodyEntry) []models.CustodyModel
}

type EvidenceMapperImpl struct{}

func NewEvidenceMapper() EvidenceMapper {
	return &EvidenceMapperImpl{}
}

func (m *EvidenceMapperImpl) ToModel(e *evidence.Evidence) *models.EvidenceModel {
	return &models.EvidenceModel{
		ID:             e.ID(),
		CaseID:         e.CaseID(),
		Reference:      e.Reference(),
		EvidenceType:   e.Type(),
		Description:    e.Description(),
		Originator:     e.Originator(),
		Status:         e.Status().String(),
		RetentionStart: timePtrToMillis(e.RetentionStart()),
		RetentionDate:  timePtrToMillis(e.RetentionDate()),
		RetentionSent:  e.RetentionReminderSent(),
		CreatedAt:      e.CreatedAt().UnixMilli(),
		UpdatedAt:      e.UpdatedAt().UnixMilli(),
	}
}

func (m *EvidenceMapperImpl) ToDomain(
	model *models.EvidenceModel,
	statusRows []models.EvidenceStatusModel,
	custodyRows []models.CustodyModel,
) (*evidence.Evidence, error) {
	statusHistory := make([]evidence.StatusEntry, 0, len(statusRows))
	for _, row := range statusRows {
		statusHistory = append(statusHistory, evidence.StatusEntry{
			Status:    vo.Status(row.Status),
			Reason:    row.Reason,
			ActorID:   row.ActorID,
			Timestamp: millisToTime(row.Timestamp),
		})
	}

	custodyLog := make([]evidence.CustodyEntry, 0, len(custodyRows))
	for _, row := range custodyRows {
		custodyLog = append(custodyLog, evidence.CustodyEntry{
			Direction: vo.CustodyDirection(row.Direction),
			Custodian: row.Custodian,
			ActorID:   row.ActorID,
			Comment:   row.Comment,
			ReceiptID: row.ReceiptID,
			Timestamp: millisToTime(row.Timestamp),
		})
	}

	return evidence.ReconstructEvidence(
		model.ID,
		model.CaseID,
		model.Reference,
		model.EvidenceType,
		model.Description,
		model.Originator,
		vo.Status(model.Status),
		statusHistory,
		custodyLog,
		millisPtrToTime(model.RetentionStart),
		millisPtrToTime(model.RetentionDate),
		model.RetentionSent,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *EvidenceMapperImpl) StatusToModels(evidenceID uint, entries []evidence.StatusEntry) []models.EvidenceStatusModel {
	rows := make([]models.EvidenceStatusModel, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, models.EvidenceStatusModel{
			EvidenceID: evidenceID,
			Status:     entry.Status.String(),
			Reason:     entry.Reason,
			ActorID:    entry.ActorID,
			Timestamp:  entry.Timestamp.UnixMilli(),
		})
	}
	return rows
}

func (m *EvidenceMapperImpl) CustodyToModels(evidenceID uint, entries []evidence.CustodyEntry) []models.CustodyModel {
	rows := make([]models.CustodyModel, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, models.CustodyModel{
			EvidenceID: evidenceID,
			Direction:  entry.Direction.String(),
			Custodian:  entry.Custodian,
			ActorID:    entry.ActorID,
			Comment:    entry.Comment,
			ReceiptID:  entry.ReceiptID,
			Timestamp:  entry.Timestamp.UnixMilli(),
		})
	}
	return rows
}
