package domain

import (
	"github.com/google/uuid"
)

// WalletTypeStatus represents the lifecycle state of a wallet type.
type WalletTypeStatus string

const (
	WalletTypeStatusActive   WalletTypeStatus = "ACTIVE"
	WalletTypeStatusArchived WalletTypeStatus = "ARCHIVED"
)

// WalletType is a reference entity describing a class of wallets (name +
// currency). It is broadcast: every storage partition holds an identical copy.
type WalletType struct {
	Uid          uuid.UUID        `json:"uid"`
	Name         string           `json:"name"`
	CurrencyCode string           `json:"currency_code"` // ISO 4217, 3 letters
	Status       WalletTypeStatus `json:"status"`
	Auditable
}

// IsActive returns true if the wallet type can back new wallets.
func (wt *WalletType) IsActive() bool {
	return wt.Status == WalletTypeStatusActive
}
