package handler

import (
	"wallet-transaction-engine/internal/adapter/http/dto"
	"wallet-transaction-engine/internal/adapter/http/middleware"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/pkg/apperror"
	"wallet-transaction-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet and wallet type endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// CreateWallet handles POST /api/v1/wallets.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	userUid, ok := middleware.UserUid(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken(nil))
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.walletSvc.CreateWallet(c.Request.Context(), ports.CreateWalletParams{
		UserUid:       userUid,
		WalletTypeUid: uuid.MustParse(req.WalletTypeUid),
		Name:          req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToWalletResponse(wallet))
}

// GetWallet handles GET /api/v1/wallets/:uid. Wallets belonging to other
// users are reported as not found.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userUid, ok := middleware.UserUid(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken(nil))
		return
	}

	walletUid, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid wallet uid"))
		return
	}

	wallet, err := h.walletSvc.GetWallet(c.Request.Context(), walletUid)
	if err != nil {
		response.Error(c, err)
		return
	}
	if wallet.UserUid != userUid {
		response.Error(c, apperror.ErrWalletNotFound(walletUid.String()))
		return
	}

	response.OK(c, dto.ToWalletResponse(wallet))
}

// ListWallets handles GET /api/v1/wallets.
func (h *WalletHandler) ListWallets(c *gin.Context) {
	userUid, ok := middleware.UserUid(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken(nil))
		return
	}

	wallets, err := h.walletSvc.GetWalletsByUser(c.Request.Context(), userUid)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WalletResponse, 0, len(wallets))
	for i := range wallets {
		items = append(items, dto.ToWalletResponse(&wallets[i]))
	}
	response.OK(c, items)
}

// ListWalletTypes handles GET /api/v1/wallet-types.
func (h *WalletHandler) ListWalletTypes(c *gin.Context) {
	types, err := h.walletSvc.ListWalletTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WalletTypeResponse, 0, len(types))
	for i := range types {
		items = append(items, dto.ToWalletTypeResponse(&types[i]))
	}
	response.OK(c, items)
}
