package usecases

import (
	"context"
	"time"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/evidence"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/logger"
)

type GetEvidenceQuery struct {
	EvidenceID uint
	ActorID    uint
}

type CustodyEntryDTO struct {
	Direction string    `json:"direction"`
	Custodian string    `json:"custodian"`
	ActorID   uint      `json:"actor_id"`
	Comment   string    `json:"comment,omitempty"`
	ReceiptID string    `json:"receipt_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type EvidenceDTO struct {
	ID               uint              `json:"id"`
	CaseID           *uint             `json:"case_id,omitempty"`
	Reference        string            `json:"reference"`
	Type             string            `json:"type"`
	Description      string            `json:"description,omitempty"`
	Originator       string            `json:"originator,omitempty"`
	Status           string            `json:"status"`
	CurrentCustodian string            `json:"current_custodian,omitempty"`
	RetentionStart   *time.Time        `json:"retention_start,omitempty"`
	RetentionDate    *time.Time        `json:"retention_date,omitempty"`
	ReminderSent     bool              `json:"reminder_sent"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	CustodyLog       []CustodyEntryDTO `json:"custody_log,omitempty"`
}

type GetEvidenceUseCase struct {
	evidenceRepo evidence.Repository
	caseRepo     casefile.Repository
	userRepo     user.Repository
	perm         *permission.Service
	logger       logger.Interface
}

func NewGetEvidenceUseCase(
	evidenceRepo evidence.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *GetEvidenceUseCase {
	return &GetEvidenceUseCase{
		evidenceRepo: evidenceRepo,
		caseRepo:     caseRepo,
		userRepo:     userRepo,
		perm:         perm,
		logger:       logger,
	}
}

func (uc *GetEvidenceUseCase) Execute(ctx context.Context, q GetEvidenceQuery) (*EvidenceDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, q.ActorID)
	if err != nil {
		return nil, err
	}

	e, parent, err := loadEvidenceWithCase(ctx, uc.evidenceRepo, uc.caseRepo, q.EvidenceID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionView, permission.EvidenceRef(e, parent)); err != nil {
		return nil, err
	}

	return evidenceToDTO(e, true), nil
}

func evidenceToDTO(e *evidence.Evidence, full bool) *EvidenceDTO {
	dto := &EvidenceDTO{
		ID:               e.ID(),
		CaseID:           e.CaseID(),
		Reference:        e.Reference(),
		Type:             e.Type(),
		Description:      e.Description(),
		Originator:       e.Originator(),
		Status:           e.Status().String(),
		CurrentCustodian: e.CurrentCustodian(),
		RetentionStart:   e.RetentionStart(),
		RetentionDate:    e.RetentionDate(),
		ReminderSent:     e.RetentionReminderSent(),
		CreatedAt:        e.CreatedAt(),
		UpdatedAt:        e.UpdatedAt(),
	}
	if !full {
		return dto
	}
	for _, entry := range e.CustodyLog() {
		dto.CustodyLog = append(dto.CustodyLog, CustodyEntryDTO{
			Direction: entry.Direction.String(),
			Custodian: entry.Custodian,
			ActorID:   entry.ActorID,
			Comment:   entry.Comment,
			ReceiptID: entry.ReceiptID,
			Timestamp: entry.Timestamp,
		})
	}
	return dto
}
