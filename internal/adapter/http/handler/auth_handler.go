package handler

import (
	"wallet-transaction-engine/internal/adapter/http/dto"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/pkg/apperror"
	"wallet-transaction-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	registrationSvc ports.RegistrationService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(registrationSvc ports.RegistrationService) *AuthHandler {
	return &AuthHandler{registrationSvc: registrationSvc}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pair, err := h.registrationSvc.Register(c.Request.Context(), ports.RegisterParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToTokenResponse(pair))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pair, err := h.registrationSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToTokenResponse(pair))
}

// Refresh handles POST /api/v1/auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pair, err := h.registrationSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToTokenResponse(pair))
}
