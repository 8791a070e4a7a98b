package ports

import (
	"context"

	"wallet-transaction-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateWalletParams is the input for wallet creation.
type CreateWalletParams struct {
	UserUid       uuid.UUID
	WalletTypeUid uuid.UUID
	Name          string
}

// WalletService manages wallet lifecycle and lookups.
type WalletService interface {
	CreateWallet(ctx context.Context, params CreateWalletParams) (*domain.Wallet, error)
	GetWallet(ctx context.Context, walletUid uuid.UUID) (*domain.Wallet, error)
	GetWalletsByUser(ctx context.Context, userUid uuid.UUID) ([]domain.Wallet, error)
	ListWalletTypes(ctx context.Context) ([]domain.WalletType, error)
}

// InitParams is the input for the init phase of the two-phase protocol.
type InitParams struct {
	Type            domain.PaymentType
	WalletUid       uuid.UUID
	TargetWalletUid *uuid.UUID
	Amount          decimal.Decimal
	PaymentMethodID *int64
}

// ConfirmParams is the input for the confirm phase. Type, wallet and amount
// must match the cached init request exactly.
type ConfirmParams struct {
	Type       domain.PaymentType
	RequestUid uuid.UUID
	WalletUid  uuid.UUID
	Amount     decimal.Decimal
}

// TransactionStatusResult pairs a transaction with its wallet's currency.
type TransactionStatusResult struct {
	Transaction  *domain.Transaction
	CurrencyCode string
}

// TransactionPage is one page of search results.
type TransactionPage struct {
	Content       []domain.Transaction
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// TransactionService orchestrates the init/confirm protocol and queries.
type TransactionService interface {
	Init(ctx context.Context, params InitParams) (*domain.InitRequest, error)
	Confirm(ctx context.Context, params ConfirmParams) (*domain.Transaction, error)
	GetStatus(ctx context.Context, transactionUid uuid.UUID) (*TransactionStatusResult, error)
	Search(ctx context.Context, params TransactionSearchParams) (*TransactionPage, error)
}

// SettlementService applies terminal state to previously-confirmed
// transactions in reaction to settlement outcome events.
type SettlementService interface {
	HandleDepositCompleted(ctx context.Context, event domain.DepositCompletedEvent) error
	HandleWithdrawalCompleted(ctx context.Context, event domain.WithdrawalCompletedEvent) error
	HandleWithdrawalFailed(ctx context.Context, event domain.WithdrawalFailedEvent) error
}

// RegisterParams is the input for user registration.
type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// RegistrationService runs the create-person -> create-identity -> login saga
// with a compensating person delete when identity creation fails.
type RegistrationService interface {
	Register(ctx context.Context, params RegisterParams) (*domain.TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}

// TokenClaims are the verified claims the auth middleware extracts.
type TokenClaims struct {
	UserUid uuid.UUID
	Email   string
}

// TokenService validates bearer tokens issued by the identity provider.
type TokenService interface {
	Validate(token string) (*TokenClaims, error)
}
