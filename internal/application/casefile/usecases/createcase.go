package usecases

import (
	"context"
	"time"

	"custodian/internal/domain/assignment"
	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type CreateCaseCommand struct {
	Name           string
	Background     string
	Location       string
	Classification string
	Private        bool
	// AuthoriserID, when set, is installed as the case's authoriser slot
	// holder at creation so the authorisation request has a recipient.
	AuthoriserID *uint
	ActorID      uint
}

type CreateCaseResult struct {
	CaseID    uint
	Name      string
	Status    string
	CreatedAt time.Time
}

type CreateCaseUseCase struct {
	caseRepo    casefile.Repository
	userRepo    user.Repository
	assignments assignment.Repository
	txMgr       TransactionManager
	perm        *permission.Service
	notifier    Notifier
	logger      logger.Interface
}

func NewCreateCaseUseCase(
	caseRepo casefile.Repository,
	userRepo user.Repository,
	assignments assignment.Repository,
	txMgr TransactionManager,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *CreateCaseUseCase {
	return &CreateCaseUseCase{
		caseRepo:    caseRepo,
		userRepo:    userRepo,
		assignments: assignments,
		txMgr:       txMgr,
		perm:        perm,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateCaseUseCase) Execute(ctx context.Context, cmd CreateCaseCommand) (*CreateCaseResult, error) {
	uc.logger.Infow("executing create case use case", "name", cmd.Name, "actor_id", cmd.ActorID)

	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionCreate, permission.KindRef(permission.KindCase)); err != nil {
		return nil, err
	}

	if existing, err := uc.caseRepo.GetByName(ctx, cmd.Name); err == nil && existing != nil {
		return nil, errors.NewConflictError("case name already in use")
	}

	newCase, err := casefile.NewCase(cmd.Name, cmd.Background, cmd.Location, cmd.Classification, cmd.Private, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The case row and its slots land in one transaction: a case must never
	// exist without its requester. The creator becomes the requester; the
	// named authoriser, when given, takes the authoriser slot so someone can
	// decide the request.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.caseRepo.Save(txCtx, newCase); err != nil {
			uc.logger.Errorw("failed to save case", "error", err)
			return err
		}
		if err := uc.assignSlot(txCtx, newCase.ID(), assignvo.RoleRequester, cmd.ActorID, cmd.ActorID); err != nil {
			return err
		}
		if cmd.AuthoriserID != nil {
			if err := uc.assignSlot(txCtx, newCase.ID(), assignvo.RoleAuthoriser, *cmd.AuthoriserID, cmd.ActorID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.notifier.CaseStatusChanged(ctx, newCase, cmd.ActorID)
	uc.logger.Infow("case created", "case_id", newCase.ID(), "name", newCase.Name())

	return &CreateCaseResult{
		CaseID:    newCase.ID(),
		Name:      newCase.Name(),
		Status:    newCase.Status().String(),
		CreatedAt: newCase.CreatedAt(),
	}, nil
}

func (uc *CreateCaseUseCase) assignSlot(ctx context.Context, caseID uint, role assignvo.Role, userID, actorID uint) error {
	rec, err := assignment.NewRecord(assignvo.KindCase, caseID, role, userID, actorID)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := uc.assignments.Replace(ctx, rec); err != nil {
		uc.logger.Errorw("failed to assign case slot", "case_id", caseID, "role", role, "error", err)
		return err
	}
	return nil
}
