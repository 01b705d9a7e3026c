package evidence

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"custodian/internal/application/evidence/usecases"
	"custodian/internal/shared/logger"
	"custodian/internal/shared/utils"
)

// EvidenceHandler exposes the evidence and chain-of-custody endpoints.
type EvidenceHandler struct {
	createEvidenceUC    createEvidenceUseCase
	getEvidenceUC       getEvidenceUseCase
	listEvidenceUC      listEvidenceUseCase
	updateEvidenceUC    updateEvidenceUseCase
	setEvidenceStatusUC setEvidenceStatusUseCase
	checkInUC           custodyUseCase
	checkOutUC          custodyUseCase
	logger              logger.Interface
}

func NewEvidenceHandler(
	createEvidenceUC createEvidenceUseCase,
	getEvidenceUC getEvidenceUseCase,
	listEvidenceUC listEvidenceUseCase,
	updateEvidenceUC updateEvidenceUseCase,
	setEvidenceStatusUC setEvidenceStatusUseCase,
	checkInUC custodyUseCase,
	checkOutUC custodyUseCase,
	log logger.Interface,
) *EvidenceHandler {
	return &EvidenceHandler{
		createEvidenceUC:    createEvidenceUC,
		getEvidenceUC:       getEvidenceUC,
		listEvidenceUC:      listEvidenceUC,
		updateEvidenceUC:    updateEvidenceUC,
		setEvidenceStatusUC: setEvidenceStatusUC,
		checkInUC:           checkInUC,
		checkOutUC:          checkOutUC,
		logger:              log,
	}
}

// CreateEvidence handles POST /evidence
func (h *EvidenceHandler) CreateEvidence(c *gin.Context) {
	var req CreateEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create evidence", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createEvidenceUC.Execute(c.Request.Context(), req.ToCommand(actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Evidence created successfully")
}

// GetEvidence handles GET /evidence/:id
func (h *EvidenceHandler) GetEvidence(c *gin.Context) {
	evidenceID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getEvidenceUC.Execute(c.Request.Context(), usecases.GetEvidenceQuery{
		EvidenceID: evidenceID,
		ActorID:    actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListEvidence handles GET /evidence
func (h *EvidenceHandler) ListEvidence(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	q := parseListEvidenceQuery(c, actorID)
	result, err := h.listEvidenceUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Evidence, result.Total, q.Page, q.PageSize)
}

// UpdateEvidence handles PATCH /evidence/:id
func (h *EvidenceHandler) UpdateEvidence(c *gin.Context) {
	evidenceID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateEvidenceUC.Execute(c.Request.Context(), usecases.UpdateEvidenceCommand{
		EvidenceID:      evidenceID,
		Type:            req.Type,
		Description:     req.Description,
		Originator:      req.Originator,
		AssociateCaseID: req.AssociateCaseID,
		ActorID:         actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Evidence updated successfully", result)
}

// SetStatus handles POST /evidence/:id/status
func (h *EvidenceHandler) SetStatus(c *gin.Context) {
	evidenceID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetEvidenceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setEvidenceStatusUC.Execute(c.Request.Context(), usecases.SetEvidenceStatusCommand{
		EvidenceID: evidenceID,
		Status:     req.Status,
		Reason:     req.Reason,
		ActorID:    actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckIn handles POST /evidence/:id/check-in
func (h *EvidenceHandler) CheckIn(c *gin.Context) {
	h.custody(c, h.checkInUC, "Evidence checked in successfully")
}

// CheckOut handles POST /evidence/:id/check-out
func (h *EvidenceHandler) CheckOut(c *gin.Context) {
	h.custody(c, h.checkOutUC, "Evidence checked out successfully")
}

func (h *EvidenceHandler) custody(c *gin.Context, uc custodyUseCase, message string) {
	evidenceID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CustodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := uc.Execute(c.Request.Context(), usecases.CustodyCommand{
		EvidenceID: evidenceID,
		Custodian:  req.Custodian,
		Comment:    req.Comment,
		ReceiptID:  req.ReceiptID,
		ActorID:    actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}

func (h *EvidenceHandler) parseTarget(c *gin.Context) (evidenceID, actorID uint, err error) {
	evidenceID, err = utils.ParseIDParam(c, "id", "evidence")
	if err != nil {
		return 0, 0, err
	}
	actorID, err = utils.CurrentUserID(c)
	if err != nil {
		return 0, 0, err
	}
	return evidenceID, actorID, nil
}
