package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"custodian/internal/application/user/usecases"
	"custodian/internal/shared/logger"
	"custodian/internal/shared/utils"
)

// UserHandler exposes the account management endpoints.
type UserHandler struct {
	registerUserUC registerUserUseCase
	getUserUC      getUserUseCase
	listUsersUC    listUsersUseCase
	updateUserUC   updateUserUseCase
	grantRoleUC    grantRoleUseCase
	revokeRoleUC   revokeRoleUseCase
	setManagerUC   setManagerUseCase
	logger         logger.Interface
}

func NewUserHandler(
	registerUserUC registerUserUseCase,
	getUserUC getUserUseCase,
	listUsersUC listUsersUseCase,
	updateUserUC updateUserUseCase,
	grantRoleUC grantRoleUseCase,
	revokeRoleUC revokeRoleUseCase,
	setManagerUC setManagerUseCase,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		registerUserUC: registerUserUC,
		getUserUC:      getUserUC,
		listUsersUC:    listUsersUC,
		updateUserUC:   updateUserUC,
		grantRoleUC:    grantRoleUC,
		revokeRoleUC:   revokeRoleUC,
		setManagerUC:   setManagerUC,
		logger:         log,
	}
}

// RegisterUser handles POST /users
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUserUC.Execute(c.Request.Context(), req.ToCommand(actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID:  userID,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetCurrentUser handles GET /users/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID:  actorID,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	actorID, err := utils.CurrentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := utils.ParsePagination(c)
	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Role:     c.Query("role"),
		Page:     page.Page,
		PageSize: page.PageSize,
		ActorID:  actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, page.Page, page.PageSize)
}

// UpdateUser handles PATCH /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:   userID,
		Forename: req.Forename,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
		ActorID:  actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// GrantRole handles POST /users/:id/roles
func (h *UserHandler) GrantRole(c *gin.Context) {
	userID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.grantRoleUC.Execute(c.Request.Context(), usecases.GrantRoleCommand{
		UserID:  userID,
		Role:    req.Role,
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role granted successfully", result)
}

// RevokeRole handles DELETE /users/:id/roles/:role
func (h *UserHandler) RevokeRole(c *gin.Context) {
	userID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.revokeRoleUC.Execute(c.Request.Context(), usecases.RevokeRoleCommand{
		UserID:  userID,
		Role:    c.Param("role"),
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role revoked successfully", result)
}

// SetManager handles PUT /users/:id/manager
func (h *UserHandler) SetManager(c *gin.Context) {
	userID, actorID, err := h.parseTarget(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setManagerUC.Execute(c.Request.Context(), usecases.SetManagerCommand{
		UserID:    userID,
		ManagerID: req.ManagerID,
		ActorID:   actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Manager updated successfully", result)
}

func (h *UserHandler) parseTarget(c *gin.Context) (userID, actorID uint, err error) {
	userID, err = utils.ParseIDParam(c, "id", "user")
	if err != nil {
		return 0, 0, err
	}
	actorID, err = utils.CurrentUserID(c)
	if err != nil {
		return 0, 0, err
	}
	return userID, actorID, nil
}
