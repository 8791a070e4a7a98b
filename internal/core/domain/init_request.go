package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InitRequest is the ephemeral intent created by the init phase and consumed
// exactly once by confirm. It is never written to durable storage; losing the
// cache on restart only forces clients to re-init.
type InitRequest struct {
	RequestUid      uuid.UUID
	UserUid         uuid.UUID
	WalletUid       uuid.UUID
	TargetWalletUid *uuid.UUID
	Type            PaymentType
	Amount          decimal.Decimal
	Fee             decimal.Decimal
	TotalAmount     decimal.Decimal
	CurrencyCode    string
	PaymentMethodID *int64
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

// IsExpired reports whether the request is past its TTL.
func (r *InitRequest) IsExpired() bool {
	return time.Now().After(r.ExpiresAt)
}

// IsTransfer returns true for transfer intents.
func (r *InitRequest) IsTransfer() bool {
	return r.Type == PaymentTypeTransfer
}
