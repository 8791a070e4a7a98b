package dto

import (
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"
)

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=254"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the request body for refreshing an expired access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is the credential set returned after registration or login.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	WalletTypeUid string `json:"wallet_type_uid" binding:"required,uuid"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
}

// InitTransactionRequest is the request body for the init phase. The payment
// type comes from the URL path. Amount is a decimal string to avoid float
// rounding on the wire.
type InitTransactionRequest struct {
	WalletUid       string  `json:"wallet_uid" binding:"required,uuid"`
	TargetWalletUid *string `json:"target_wallet_uid,omitempty" binding:"omitempty,uuid"`
	Amount          string  `json:"amount" binding:"required,decimal_amount"`
	PaymentMethodID *int64  `json:"payment_method_id,omitempty"`
}

// ConfirmTransactionRequest is the request body for the confirm phase. Wallet
// and amount must repeat the init values exactly; the type comes from the URL
// path and must match too.
type ConfirmTransactionRequest struct {
	RequestUid string `json:"request_uid" binding:"required,uuid"`
	WalletUid  string `json:"wallet_uid" binding:"required,uuid"`
	Amount     string `json:"amount" binding:"required,decimal_amount"`
}

// SearchTransactionsQuery holds the query parameters for transaction search.
// Page is zero-based.
type SearchTransactionsQuery struct {
	WalletUid *string `form:"wallet_uid" binding:"omitempty,uuid"`
	Type      *string `form:"type" binding:"omitempty,oneof=DEPOSIT WITHDRAWAL TRANSFER"`
	Status    *string `form:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED"`
	DateFrom  *string `form:"date_from" binding:"omitempty"`
	DateTo    *string `form:"date_to" binding:"omitempty"`
	Page      int     `form:"page"`
	Size      int     `form:"size"`
}

// InitResponse is the response body for a successful init.
type InitResponse struct {
	RequestUid      string  `json:"request_uid"`
	WalletUid       string  `json:"wallet_uid"`
	TargetWalletUid *string `json:"target_wallet_uid,omitempty"`
	Type            string  `json:"type"`
	Amount          string  `json:"amount"`
	Fee             string  `json:"fee"`
	TotalAmount     string  `json:"total_amount"`
	CurrencyCode    string  `json:"currency_code"`
	ExpiresAt       string  `json:"expires_at"`
}

// TransactionResponse is the response body for transaction results.
type TransactionResponse struct {
	Uid             string  `json:"uid"`
	WalletUid       string  `json:"wallet_uid"`
	TargetWalletUid *string `json:"target_wallet_uid,omitempty"`
	Amount          string  `json:"amount"`
	Fee             string  `json:"fee"`
	TotalAmount     string  `json:"total_amount"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	FailureReason   *string `json:"failure_reason,omitempty"`
	CurrencyCode    string  `json:"currency_code,omitempty"`
	CreatedAt       string  `json:"created_at"`
	ModifiedAt      string  `json:"modified_at"`
}

// TransactionListResponse wraps one page of transaction search results.
type TransactionListResponse struct {
	Content       []TransactionResponse `json:"content"`
	Page          int                   `json:"page"`
	Size          int                   `json:"size"`
	TotalElements int64                 `json:"total_elements"`
	TotalPages    int                   `json:"total_pages"`
}

// WalletResponse is the response body for wallet queries.
type WalletResponse struct {
	Uid           string `json:"uid"`
	Name          string `json:"name"`
	WalletTypeUid string `json:"wallet_type_uid"`
	CurrencyCode  string `json:"currency_code"`
	Status        string `json:"status"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"created_at"`
}

// WalletTypeResponse is the response body for wallet type listings.
type WalletTypeResponse struct {
	Uid          string `json:"uid"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currency_code"`
	Status       string `json:"status"`
}

// ToTokenResponse converts a domain token pair to its DTO.
func ToTokenResponse(pair *domain.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		TokenType:    pair.TokenType,
	}
}

// ToInitResponse converts an init request to its DTO.
func ToInitResponse(req *domain.InitRequest) InitResponse {
	resp := InitResponse{
		RequestUid:   req.RequestUid.String(),
		WalletUid:    req.WalletUid.String(),
		Type:         string(req.Type),
		Amount:       req.Amount.String(),
		Fee:          req.Fee.String(),
		TotalAmount:  req.TotalAmount.String(),
		CurrencyCode: req.CurrencyCode,
		ExpiresAt:    req.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if req.TargetWalletUid != nil {
		s := req.TargetWalletUid.String()
		resp.TargetWalletUid = &s
	}
	return resp
}

// ToTransactionResponse converts a domain transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		Uid:         txn.Uid.String(),
		WalletUid:   txn.WalletUid.String(),
		Amount:      txn.Amount.String(),
		Fee:         txn.Fee.String(),
		TotalAmount: txn.TotalAmount().String(),
		Type:        string(txn.Type),
		Status:      string(txn.Status),
		CreatedAt:   txn.CreatedAt.UTC().Format(time.RFC3339),
		ModifiedAt:  txn.ModifiedAt.UTC().Format(time.RFC3339),
	}
	if txn.TargetWalletUid != nil {
		s := txn.TargetWalletUid.String()
		resp.TargetWalletUid = &s
	}
	if txn.FailureReason != nil {
		reason := *txn.FailureReason
		resp.FailureReason = &reason
	}
	return resp
}

// ToTransactionStatusResponse converts a status lookup result, which carries
// the wallet currency alongside the transaction.
func ToTransactionStatusResponse(result *ports.TransactionStatusResult) TransactionResponse {
	resp := ToTransactionResponse(result.Transaction)
	resp.CurrencyCode = result.CurrencyCode
	return resp
}

// ToTransactionListResponse converts a search page to its DTO.
func ToTransactionListResponse(page *ports.TransactionPage) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(page.Content))
	for i := range page.Content {
		items = append(items, ToTransactionResponse(&page.Content[i]))
	}
	return TransactionListResponse{
		Content:       items,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

// ToWalletResponse converts a domain wallet to its DTO.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		Uid:           w.Uid.String(),
		Name:          w.Name,
		WalletTypeUid: w.WalletTypeUid.String(),
		CurrencyCode:  w.CurrencyCode,
		Status:        string(w.Status),
		Balance:       w.Balance.String(),
		CreatedAt:     w.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToWalletTypeResponse converts a domain wallet type to its DTO.
func ToWalletTypeResponse(wt *domain.WalletType) WalletTypeResponse {
	return WalletTypeResponse{
		Uid:          wt.Uid.String(),
		Name:         wt.Name,
		CurrencyCode: wt.CurrencyCode,
		Status:       string(wt.Status),
	}
}
