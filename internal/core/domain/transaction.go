package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType represents the kind of money movement.
type PaymentType string

const (
	PaymentTypeDeposit    PaymentType = "DEPOSIT"
	PaymentTypeWithdrawal PaymentType = "WITHDRAWAL"
	PaymentTypeTransfer   PaymentType = "TRANSFER"
)

// TransactionStatus represents the lifecycle state of a transaction.
// PENDING is the only non-terminal state; a transaction never leaves
// COMPLETED or FAILED.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is the persisted record of a settled or settling money movement.
// Created only at confirm time; mutated only by the settlement saga (and, for
// cross-shard transfers, by the transfer compensation path).
type Transaction struct {
	Uid             uuid.UUID         `json:"uid"`
	UserUid         uuid.UUID         `json:"user_uid"`
	WalletUid       uuid.UUID         `json:"wallet_uid"`
	TargetWalletUid *uuid.UUID        `json:"target_wallet_uid,omitempty"` // transfers only
	Amount          decimal.Decimal   `json:"amount"`
	Fee             decimal.Decimal   `json:"fee"`
	Type            PaymentType       `json:"type"`
	Status          TransactionStatus `json:"status"`
	FailureReason   *string           `json:"failure_reason,omitempty"`
	PaymentMethodID *int64            `json:"payment_method_id,omitempty"`
	Auditable
}

// TotalAmount returns amount + fee, the full sum debited from the source side.
func (t *Transaction) TotalAmount() decimal.Decimal {
	return t.Amount.Add(t.Fee)
}

// IsPending returns true while the transaction awaits settlement.
func (t *Transaction) IsPending() bool {
	return t.Status == TransactionStatusPending
}

// Complete marks the transaction COMPLETED.
func (t *Transaction) Complete() {
	t.Status = TransactionStatusCompleted
}

// Fail marks the transaction FAILED with the given reason.
func (t *Transaction) Fail(reason string) {
	t.Status = TransactionStatusFailed
	t.FailureReason = &reason
}
