package cases

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"custodian/internal/application/casefile/usecases"
	"custodian/internal/shared/logger"
	"custodian/internal/shared/utils"
)

// CaseHandler exposes the case lifecycle endpoints.
type CaseHandler struct {
	createCaseUC     createCaseUseCase
	getCaseUC        getCaseUseCase
	listCasesUC      listCasesUseCase
	updateCaseUC     updateCaseUseCase
	setCaseStatusUC  setCaseStatusUseCase
	closeCaseUC      closeCaseUseCase
	archiveCaseUC    archiveCaseUseCase
	authoriseCaseUC  authoriseCaseUseCase
	assignCaseRoleUC assignCaseRoleUseCase
	logger           logger.Interface
}

func NewCaseHandler(
	createCaseUC createCaseUseCase,
	getCaseUC getCaseUseCase,
	listCasesUC listCasesUseCase,
	updateCaseUC updateCaseUseCase,
	setCaseStatusUC setCaseStatusUseCase,
	closeCaseUC closeCaseUseCase,
	archiveCaseUC archiveCaseUseCase,
	authoriseCaseUC authoriseCaseUseCase,
	assignCaseRoleUC assignCaseRoleUseCase,
	log logger.Interface,
) *CaseHandler {
	return &CaseHandler{
		createCaseUC:     createCaseUC,
		getCaseUC:        getCaseUC,
		listCasesUC:      listCasesUC,
		updateCaseUC:     updateCaseUC,
		setCaseStatusUC:  setCaseStatusUC,
		closeCaseUC:      closeCaseUC,
		archiveCaseUC:    archiveCaseUC,
		authoriseCaseUC:  authoriseCaseUC,
		assignCaseRoleUC: assignCaseRoleUC,
		logger:           log,
	}
}

// CreateCase handles POST /cases
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create case", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCaseUC.Execute(c.Request.Context(), req.ToCommand(actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Case created successfully")
}

// GetCase handles GET /cases/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	caseID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCaseUC.Execute(c.Request.Context(), usecases.GetCaseQuery{
		CaseID:  caseID,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCases handles GET /cases
func (h *CaseHandler) ListCases(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q := parseListCasesQuery(c, actorID)
	result, err := h.listCasesUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Cases, result.Total, q.Page, q.PageSize)
}

// UpdateCase handles PATCH /cases/:id
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	caseID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateCaseUC.Execute(c.Request.Context(), usecases.UpdateCaseCommand{
		CaseID:         caseID,
		Name:           req.Name,
		Background:     req.Background,
		Location:       req.Location,
		Classification: req.Classification,
		Private:        req.Private,
		ActorID:        actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case updated successfully", result)
}

// SetStatus handles POST /cases/:id/status
func (h *CaseHandler) SetStatus(c *gin.Context) {
	caseID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetCaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setCaseStatusUC.Execute(c.Request.Context(), usecases.SetCaseStatusCommand{
		CaseID:  caseID,
		Status:  req.Status,
		Reason:  req.Reason,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CloseCase handles POST /cases/:id/close
func (h *CaseHandler) CloseCase(c *gin.Context) {
	caseID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.closeCaseUC.Execute(c.Request.Context(), usecases.CloseCaseCommand{
		CaseID:  caseID,
		Reason:  req.Reason,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case closed successfully", result)
}

// ArchiveCase handles POST /cases/:id/archive
func (h *CaseHandler) ArchiveCase(c *gin.Context) {
	caseID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ArchiveCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.archiveCaseUC.Execute(c.Request.Context(), usecases.ArchiveCaseCommand{
		CaseID:  caseID,
		Reason:  req.Reason,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case archived successfully", result)
}

// Authorise handles POST /cases/:id/authorise
func (h *CaseHandler) Authorise(c *gin.Context) {
	caseID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AuthoriseCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.authoriseCaseUC.Execute(c.Request.Context(), usecases.AuthoriseCaseCommand{
		CaseID:  caseID,
		Granted: *req.Granted,
		Reason:  req.Reason,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignRole handles POST /cases/:id/roles
func (h *CaseHandler) AssignRole(c *gin.Context) {
	caseID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignCaseRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignCaseRoleUC.Execute(c.Request.Context(), usecases.AssignCaseRoleCommand{
		CaseID:  caseID,
		Role:    req.Role,
		UserID:  req.UserID,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Case role assigned successfully", result)
}

func (h *CaseHandler) parseTarget(c *gin.Context) (caseID, actorID uint, err error) {
	caseID, err = utils.ParseIDParam(c, "id", "case")
	if err != nil {
		return 0, 0, err
	}
	actorID, err = utils.CurrentUserID(c)
	if err != nil {
		return 0, 0, err
	}
	return caseID, actorID, nil
}
