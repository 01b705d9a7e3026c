package mappers

import (
	"custodian/internal/domain/casefile"
	vo "custodian/internal/domain/casefile/valueobjects"
	"custodian/internal/infrastructure/persistence/models"
)

// CaseMapper handles the conversion between Case domain entities and
// persistence models. Status history and authorisation rows are mapped
// separately so the repository can load them in their own queries.
type CaseMapper interface {
	ToModel(c *casefile.Case) *models.CaseModel
	ToDomain(model *models.CaseModel, statusRows []models.CaseStatusModel, authRows []models.CaseAuthorisationModel) (*casefile.Case, error)
	StatusToModels(caseID uint, entries []casefile.StatusEntry) []models.CaseStatusModel
	AuthorisationsToModels(caseID uint, entries []casefile.AuthorisationEntry) []models.CaseAuthorisationModel
}

type CaseMapperImpl struct{}

func NewCaseMapper() CaseMapper {
	return &CaseMapperImpl{}
}

func (m *CaseMapperImpl) ToModel(c *casefile.Case) *models.CaseModel {
	return &models.CaseModel{
		ID:             c.ID(),
		Name:           c.Name(),
		Private:        c.IsPrivate(),
		Background:     c.Background(),
		Location:       c.Location(),
		Classification: c.Classification(),
		Status:         c.Status().String(),
		CreatedAt:      c.CreatedAt().UnixMilli(),
		UpdatedAt:      c.UpdatedAt().UnixMilli(),
	}
}

func (m *CaseMapperImpl) ToDomain(
	model *models.CaseModel,
	statusRows []models.CaseStatusModel,
	authRows []models.CaseAuthorisationModel,
) (*casefile.Case, error) {
	statusHistory := make([]casefile.StatusEntry, 0, len(statusRows))
	for _, row := range statusRows {
		statusHistory = append(statusHistory, casefile.StatusEntry{
			Status:    vo.Status(row.Status),
			Reason:    row.Reason,
			ActorID:   row.ActorID,
			Timestamp: millisToTime(row.Timestamp),
		})
	}

	authorisations := make([]casefile.AuthorisationEntry, 0, len(authRows))
	for _, row := range authRows {
		authorisations = append(authorisations, casefile.AuthorisationEntry{
			Code:         vo.AuthorisationCode(row.Code),
			Reason:       row.Reason,
			AuthoriserID: row.AuthoriserID,
			Timestamp:    millisToTime(row.Timestamp),
		})
	}

	return casefile.ReconstructCase(
		model.ID,
		model.Name,
		model.Private,
		model.Background,
		model.Location,
		model.Classification,
		vo.Status(model.Status),
		statusHistory,
		authorisations,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *CaseMapperImpl) StatusToModels(caseID uint, entries []casefile.StatusEntry) []models.CaseStatusModel {
	rows := make([]models.CaseStatusModel, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, models.CaseStatusModel{
			CaseID:    caseID,
			Status:    entry.Status.String(),
			Reason:    entry.Reason,
			ActorID:   entry.ActorID,
			Timestamp: entry.Timestamp.UnixMilli(),
		})
	}
	return rows
}

func (m *CaseMapperImpl) AuthorisationsToModels(caseID uint, entries []casefile.AuthorisationEntry) []models.CaseAuthorisationModel {
	rows := make([]models.CaseAuthorisationModel, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, models.CaseAuthorisationModel{
			CaseID:       caseID,
			Code:         entry.Code.String(),
			Reason:       entry.Reason,
			AuthoriserID: entry.AuthoriserID,
			Timestamp:    entry.Timestamp.UnixMilli(),
		})
	}
	return rows
}
