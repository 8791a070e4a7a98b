package domain

import (
	"wallet-transaction-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletStatus represents the lifecycle state of a wallet.
type WalletStatus string

const (
	WalletStatusActive   WalletStatus = "ACTIVE"
	WalletStatusInactive WalletStatus = "INACTIVE"
)

// Wallet holds a single user's balance in one currency. A user may hold at
// most one wallet per wallet type. Balance is fixed-point, scale 4, and never
// goes negative.
type Wallet struct {
	Uid           uuid.UUID       `json:"uid"`
	Name          string          `json:"name"`
	UserUid       uuid.UUID       `json:"user_uid"`
	WalletTypeUid uuid.UUID       `json:"wallet_type_uid"`
	CurrencyCode  string          `json:"currency_code"`
	Status        WalletStatus    `json:"status"`
	Balance       decimal.Decimal `json:"balance"`
	Auditable
}

// IsActive returns true if the wallet accepts operations.
func (w *Wallet) IsActive() bool {
	return w.Status == WalletStatusActive
}

// HasSufficientBalance reports whether balance >= amount.
func (w *Wallet) HasSufficientBalance(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}

// Credit adds amount to the balance. Amount must be strictly positive.
func (w *Wallet) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperror.ErrInvalidAmount()
	}
	w.Balance = w.Balance.Add(amount)
	return nil
}

// Debit subtracts amount from the balance. Amount must be strictly positive
// and covered by the current balance; on failure the balance is untouched.
func (w *Wallet) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return apperror.ErrInvalidAmount()
	}
	if !w.HasSufficientBalance(amount) {
		return apperror.ErrInsufficientBalance(w.Uid.String())
	}
	w.Balance = w.Balance.Sub(amount)
	return nil
}
