package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallets (WLT) ----

func ErrWalletNotFound(walletUid string) *AppError {
	return New("WLT_001", fmt.Sprintf("Wallet not found: %s", walletUid), http.StatusNotFound)
}

func ErrWalletTypeNotFound(walletTypeUid string) *AppError {
	return New("WLT_002", fmt.Sprintf("Wallet type not found: %s", walletTypeUid), http.StatusNotFound)
}

func ErrDuplicateWallet(userUid, walletTypeUid string) *AppError {
	return New("WLT_003",
		fmt.Sprintf("User %s already has a wallet of type %s", userUid, walletTypeUid),
		http.StatusConflict)
}

func ErrWalletInactive(walletUid string) *AppError {
	return New("WLT_004", fmt.Sprintf("Wallet is not active: %s", walletUid), http.StatusBadRequest)
}

// ---- Transactions (TXN) ----

func ErrTransactionNotFound(transactionUid string) *AppError {
	return New("TXN_001", fmt.Sprintf("Transaction not found: %s", transactionUid), http.StatusNotFound)
}

func ErrInvalidAmount() *AppError {
	return New("TXN_002", "Amount must be positive", http.StatusBadRequest)
}

func ErrInsufficientBalance(walletUid string) *AppError {
	return New("TXN_003",
		fmt.Sprintf("Insufficient balance in wallet %s", walletUid),
		http.StatusPaymentRequired)
}

func ErrTransactionMismatch(detail string) *AppError {
	return New("TXN_004", "Confirm request does not match init request: "+detail, http.StatusBadRequest)
}

func ErrTargetWalletRequired() *AppError {
	return New("TXN_005", "Target wallet is required for transfer", http.StatusBadRequest)
}

func ErrSameWalletTransfer() *AppError {
	return New("TXN_006", "Cannot transfer to the same wallet", http.StatusBadRequest)
}

func ErrCurrencyMismatch() *AppError {
	return New("TXN_007", "Wallets must have the same currency", http.StatusBadRequest)
}

// Validation returns a generic bad-request error for malformed input.
func Validation(message string) *AppError {
	return New("TXN_008", message, http.StatusBadRequest)
}

// ---- Init requests (REQ) ----

func ErrRequestNotFound(requestUid string) *AppError {
	return New("REQ_001", fmt.Sprintf("Init request not found: %s", requestUid), http.StatusNotFound)
}

func ErrRequestExpired(requestUid string) *AppError {
	return New("REQ_002", fmt.Sprintf("Init request expired: %s", requestUid), http.StatusBadRequest)
}

// ---- Registration (REG) ----

func ErrRegistrationFailed(err error) *AppError {
	return Wrap("REG_001", "Registration failed", http.StatusBadGateway, err)
}

func ErrInvalidCredentials() *AppError {
	return New("REG_002", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken(err error) *AppError {
	return Wrap("REG_003", "Invalid or expired token", http.StatusUnauthorized, err)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
