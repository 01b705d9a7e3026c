package usecases

import (
	"context"

	"github.com/google/uuid"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/evidence"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type CustodyCommand struct {
	EvidenceID uint
	Custodian  string
	Comment    string
	// ReceiptID is generated when empty, so every custody movement has a
	// receipt to attach paperwork to.
	ReceiptID string
	ActorID   uint
}

type CustodyResult struct {
	EvidenceID uint
	Custodian  string
	ReceiptID  string
}

// CustodyUseCase records chain-of-custody movements. The direction is
// fixed per instance; NewCheckInUseCase and NewCheckOutUseCase build the
// two variants.
type CustodyUseCase struct {
	evidenceRepo evidence.Repository
	caseRepo     casefile.Repository
	userRepo     user.Repository
	perm         *permission.Service
	checkIn      bool
	logger       logger.Interface
}

func NewCheckInUseCase(
	evidenceRepo evidence.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *CustodyUseCase {
	return &CustodyUseCase{
		evidenceRepo: evidenceRepo,
		caseRepo:     caseRepo,
		userRepo:     userRepo,
		perm:         perm,
		checkIn:      true,
		logger:       logger,
	}
}

func NewCheckOutUseCase(
	evidenceRepo evidence.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *CustodyUseCase {
	return &CustodyUseCase{
		evidenceRepo: evidenceRepo,
		caseRepo:     caseRepo,
		userRepo:     userRepo,
		perm:         perm,
		checkIn:      false,
		logger:       logger,
	}
}

func (uc *CustodyUseCase) Execute(ctx context.Context, cmd CustodyCommand) (*CustodyResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	e, parent, err := loadEvidenceWithCase(ctx, uc.evidenceRepo, uc.caseRepo, cmd.EvidenceID)
	if err != nil {
		return nil, err
	}

	action := permission.ActionCheckOut
	if uc.checkIn {
		action = permission.ActionCheckIn
	}
	if err := uc.perm.Check(ctx, actor, action, permission.EvidenceRef(e, parent)); err != nil {
		return nil, err
	}

	receiptID := cmd.ReceiptID
	if receiptID == "" {
		receiptID = uuid.NewString()
	}

	if uc.checkIn {
		err = e.CheckIn(cmd.Custodian, cmd.ActorID, cmd.Comment, receiptID)
	} else {
		err = e.CheckOut(cmd.Custodian, cmd.ActorID, cmd.Comment, receiptID)
	}
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.evidenceRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update evidence", "evidence_id", cmd.EvidenceID, "error", err)
		return nil, err
	}

	uc.logger.Infow("custody movement recorded",
		"evidence_id", e.ID(), "check_in", uc.checkIn, "custodian", cmd.Custodian)
	return &CustodyResult{EvidenceID: e.ID(), Custodian: e.CurrentCustodian(), ReceiptID: receiptID}, nil
}
