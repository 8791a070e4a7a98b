package handler

import (
	"time"

	"wallet-transaction-engine/internal/adapter/http/dto"
	"wallet-transaction-engine/internal/adapter/http/middleware"
	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/pkg/apperror"
	"wallet-transaction-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles the init/confirm protocol and transaction queries.
type TransactionHandler struct {
	txnSvc ports.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txnSvc ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{txnSvc: txnSvc}
}

// paymentTypeFromPath maps the {type} path segment to a payment type.
func paymentTypeFromPath(s string) (domain.PaymentType, bool) {
	switch s {
	case "deposit":
		return domain.PaymentTypeDeposit, true
	case "withdrawal":
		return domain.PaymentTypeWithdrawal, true
	case "transfer":
		return domain.PaymentTypeTransfer, true
	}
	return "", false
}

// Init handles POST /api/v1/transactions/:type/init.
func (h *TransactionHandler) Init(c *gin.Context) {
	paymentType, ok := paymentTypeFromPath(c.Param("type"))
	if !ok {
		response.Error(c, apperror.Validation("unknown transaction type: "+c.Param("type")))
		return
	}

	var req dto.InitTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation("invalid amount"))
		return
	}

	params := ports.InitParams{
		Type:            paymentType,
		WalletUid:       uuid.MustParse(req.WalletUid),
		Amount:          amount,
		PaymentMethodID: req.PaymentMethodID,
	}
	if req.TargetWalletUid != nil {
		target := uuid.MustParse(*req.TargetWalletUid)
		params.TargetWalletUid = &target
	}

	initReq, err := h.txnSvc.Init(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToInitResponse(initReq))
}

// Confirm handles POST /api/v1/transactions/:type/confirm.
func (h *TransactionHandler) Confirm(c *gin.Context) {
	paymentType, ok := paymentTypeFromPath(c.Param("type"))
	if !ok {
		response.Error(c, apperror.Validation("unknown transaction type: "+c.Param("type")))
		return
	}

	var req dto.ConfirmTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.Validation("invalid amount"))
		return
	}

	txn, err := h.txnSvc.Confirm(c.Request.Context(), ports.ConfirmParams{
		RequestUid: uuid.MustParse(req.RequestUid),
		Type:       paymentType,
		WalletUid:  uuid.MustParse(req.WalletUid),
		Amount:     amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToTransactionResponse(txn))
}

// GetStatus handles GET /api/v1/transactions/:uid/status. Transactions
// belonging to other users are reported as not found.
func (h *TransactionHandler) GetStatus(c *gin.Context) {
	userUid, ok := middleware.UserUid(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken(nil))
		return
	}

	txnUid, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid transaction uid"))
		return
	}

	result, err := h.txnSvc.GetStatus(c.Request.Context(), txnUid)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result.Transaction.UserUid != userUid {
		response.Error(c, apperror.ErrTransactionNotFound(txnUid.String()))
		return
	}

	response.OK(c, dto.ToTransactionStatusResponse(result))
}

// Search handles GET /api/v1/transactions. Results are always scoped to the
// authenticated user.
func (h *TransactionHandler) Search(c *gin.Context) {
	userUid, ok := middleware.UserUid(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken(nil))
		return
	}

	var query dto.SearchTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	params := ports.TransactionSearchParams{
		UserUid:  userUid,
		Page:     query.Page,
		PageSize: query.Size,
	}
	if query.WalletUid != nil {
		walletUid := uuid.MustParse(*query.WalletUid)
		params.WalletUid = &walletUid
	}
	if query.Type != nil {
		paymentType := domain.PaymentType(*query.Type)
		params.Type = &paymentType
	}
	if query.Status != nil {
		status := domain.TransactionStatus(*query.Status)
		params.Status = &status
	}
	if query.DateFrom != nil {
		from, err := parseSearchDate(*query.DateFrom)
		if err != nil {
			response.Error(c, apperror.Validation("invalid date_from"))
			return
		}
		params.DateFrom = &from
	}
	if query.DateTo != nil {
		to, err := parseSearchDate(*query.DateTo)
		if err != nil {
			response.Error(c, apperror.Validation("invalid date_to"))
			return
		}
		params.DateTo = &to
	}

	page, err := h.txnSvc.Search(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToTransactionListResponse(page))
}

// parseSearchDate accepts RFC3339 timestamps or bare dates.
func parseSearchDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
