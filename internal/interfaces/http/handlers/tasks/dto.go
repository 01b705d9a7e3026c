package tasks

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"custodian/internal/application/task/usecases"
	"custodian/internal/shared/utils"
)

type CreateTaskRequest struct {
	CaseID     uint   `json:"case_id" binding:"required"`
	Name       string `json:"name" binding:"required,max=200"`
	Background string `json:"background" binding:"max=5000"`
	Location   string `json:"location" binding:"max=200"`
}

func (r *CreateTaskRequest) ToCommand(actorID uint) usecases.CreateTaskCommand {
	return usecases.CreateTaskCommand{
		CaseID:     r.CaseID,
		Name:       r.Name,
		Background: r.Background,
		Location:   r.Location,
		ActorID:    actorID,
	}
}

type UpdateTaskRequest struct {
	Name       string `json:"name" binding:"max=200"`
	Background string `json:"background" binding:"max=5000"`
	Location   string `json:"location" binding:"max=200"`
}

type SetTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note" binding:"max=2000"`
}

type AddNoteRequest struct {
	Note string `json:"note" binding:"required,max=2000"`
}

type AssignInvestigatorsRequest struct {
	PrincipalID *uint `json:"principal_id,omitempty"`
	SecondaryID *uint `json:"secondary_id,omitempty"`
}

type AssignQARequest struct {
	PrincipalID *uint  `json:"principal_id,omitempty"`
	SecondaryID *uint  `json:"secondary_id,omitempty"`
	Note        string `json:"note" binding:"max=2000"`
}

type QANoteRequest struct {
	Note string `json:"note" binding:"max=2000"`
}

func parseListTasksQuery(c *gin.Context, actorID uint) usecases.ListTasksQuery {
	page := utils.ParsePagination(c)

	q := usecases.ListTasksQuery{
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
