package evidence

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"custodian/internal/application/evidence/usecases"
	"custodian/internal/shared/utils"
)

type CreateEvidenceRequest struct {
	CaseID      *uint  `json:"case_id,omitempty"`
	Type        string `json:"type" binding:"required,max=100"`
	Description string `json:"description" binding:"max=5000"`
	Originator  string `json:"originator" binding:"max=200"`
}

func (r *CreateEvidenceRequest) ToCommand(actorID uint) usecases.CreateEvidenceCommand {
	return usecases.CreateEvidenceCommand{
		CaseID:      r.CaseID,
		Type:        r.Type,
		Description: r.Description,
		Originator:  r.Originator,
		ActorID:     actorID,
	}
}

type UpdateEvidenceRequest struct {
	Type            string `json:"type" binding:"max=100"`
	Description     string `json:"description" binding:"max=5000"`
	Originator      string `json:"originator" binding:"max=200"`
	AssociateCaseID *uint  `json:"associate_case_id,omitempty"`
}

type SetEvidenceStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"max=500"`
}

type CustodyRequest struct {
	Custodian string `json:"custodian" binding:"required,max=200"`
	Comment   string `json:"comment" binding:"max=2000"`
	ReceiptID string `json:"receipt_id" binding:"max=100"`
}

func parseListEvidenceQuery(c *gin.Context, actorID uint) usecases.ListEvidenceQuery {
	page := utils.ParsePagination(c)

	q := usecases.ListEvidenceQuery{
		Page:     page.Page,
		PageSize: page.PageSize,
		ActorID:  actorID,
	}

	if raw := c.Query("case_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id != 0 {
			caseID := uint(id)
			q.CaseID = &caseID
		}
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				q.Statuses = append(q.Statuses, s)
			}
		}
	}
	return q
}
