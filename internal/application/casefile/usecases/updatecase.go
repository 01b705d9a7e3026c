package usecases

import (
	"context"
	"fmt"
	"strconv"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/history"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

var caseAuditRecorder = history.NewRecorder([]history.FieldAccessor[*casefile.Case]{
	{Name: "name", Get: func(c *casefile.Case) string { return c.Name() }},
	{Name: "background", Get: func(c *casefile.Case) string { return c.Background() }},
	{Name: "location", Get: func(c *casefile.Case) string { return c.Location() }},
	{Name: "classification", Get: func(c *casefile.Case) string { return c.Classification() }},
	{Name: "private", Get: func(c *casefile.Case) string { return strconv.FormatBool(c.IsPrivate()) }},
})

type UpdateCaseCommand struct {
	CaseID         uint
	Name           string
	Background     string
	Location       string
	Classification string
	Private        *bool
	ActorID        uint
}

type UpdateCaseUseCase struct {
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewUpdateCaseUseCase(
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *UpdateCaseUseCase {
	return &UpdateCaseUseCase{caseRepo: caseRepo, userRepo: userRepo, perm: perm, logger: logger}
}

func (uc *UpdateCaseUseCase) Execute(ctx context.Context, cmd UpdateCaseCommand) (*CaseDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	c, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", cmd.CaseID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionEdit, permission.CaseRef(c)); err != nil {
		return nil, err
	}

	name := cmd.Name
	if name == "" {
		name = c.Name()
	}
	if name != c.Name() {
		if existing, err := uc.caseRepo.GetByName(ctx, name); err == nil && existing != nil {
			return nil, errors.NewConflictError("case name already in use")
		}
	}

	trail := history.NewTrail(caseAuditRecorder)
	trail.Record(c, cmd.ActorID)
	if err := c.UpdateDetails(name, cmd.Background, cmd.Location, cmd.Classification); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Private != nil {
		c.SetPrivate(*cmd.Private)
	}
	trail.Record(c, cmd.ActorID)

	if err := uc.caseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update case", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	for _, change := range trail.LastChange() {
		uc.logger.Infow("case field changed",
			"case_id", c.ID(), "field", change.Field, "from", change.From, "to", change.To,
			"actor_id", cmd.ActorID)
	}
	uc.logger.Infow("case updated", "case_id", c.ID(), "actor_id", cmd.ActorID)
	return caseToDTO(c, false), nil
}
