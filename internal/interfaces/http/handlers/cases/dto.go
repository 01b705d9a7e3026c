package cases

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"custodian/internal/application/casefile/usecases"
	"custodian/internal/shared/utils"
)

type CreateCaseRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	Background     string `json:"background" binding:"max=5000"`
	Location       string `json:"location" binding:"max=200"`
	Classification string `json:"classification" binding:"max=100"`
	Private        bool   `json:"private"`
	AuthoriserID   *uint  `json:"authoriser_id,omitempty"`
}

func (r *CreateCaseRequest) ToCommand(actorID uint) usecases.CreateCaseCommand {
	return usecases.CreateCaseCommand{
		Name:           r.Name,
		Background:     r.Background,
		Location:       r.Location,
		Classification: r.Classification,
		Private:        r.Private,
		AuthoriserID:   r.AuthoriserID,
		ActorID:        actorID,
	}
}

type UpdateCaseRequest struct {
	Name           string `json:"name" binding:"max=200"`
	Background     string `json:"background" binding:"max=5000"`
	Location       string `json:"location" binding:"max=200"`
	Classification string `json:"classification" binding:"max=100"`
	Private        *bool  `json:"private,omitempty"`
}

type SetCaseStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"max=500"`
}

type CloseCaseRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ArchiveCaseRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type AuthoriseCaseRequest struct {
	Granted *bool  `json:"granted" binding:"required"`
	Reason  string `json:"reason" binding:"max=500"`
}

type AssignCaseRoleRequest struct {
	Role   string `json:"role" binding:"required"`
	UserID uint   `json:"user_id" binding:"required"`
}

// parseListCasesQuery reads list filters from the query string. The status
// parameter accepts a comma-separated list.
func parseListCasesQuery(c *gin.Context, actorID uint) usecases.ListCasesQuery {
	page := utils.ParsePagination(c)

	q := usecases.ListCasesQuery{
		Page:     page.Page,
		PageSize: page.PageSize,
		ActorID:  actorID,
	}

	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				q.Statuses = append(q.Statuses, s)
			}
		}
	}
	if raw := c.Query("private"); raw != "" {
		if private, err := strconv.ParseBool(raw); err == nil {
			q.Private = &private
		}
	}
	return q
}
