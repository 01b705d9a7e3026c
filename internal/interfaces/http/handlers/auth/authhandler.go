package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"custodian/internal/application/user/usecases"
	"custodian/internal/shared/logger"
	"custodian/internal/shared/utils"
)

type authenticateUseCase interface {
	Execute(ctx context.Context, cmd usecases.AuthenticateCommand) (*usecases.AuthenticateResult, error)
}

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	authenticateUC authenticateUseCase
	logger         logger.Interface
}

func NewAuthHandler(authenticateUC authenticateUseCase, log logger.Interface) *AuthHandler {
	return &AuthHandler{authenticateUC: authenticateUC, logger: log}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID    uint     `json:"user_id"`
	Username  string   `json:"username"`
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expires_at"`
	Roles     []string `json:"roles"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.authenticateUC.Execute(c.Request.Context(), usecases.AuthenticateCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", LoginResponse{
		UserID:    result.UserID,
		Username:  result.Username,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
		Roles:     result.Roles,
	})
}
