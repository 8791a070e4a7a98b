package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventMeta carries the fields common to every settlement event.
type EventMeta struct {
	EventID        uuid.UUID `json:"event_id"`
	Timestamp      time.Time `json:"timestamp"`
	TransactionUid uuid.UUID `json:"transaction_uid"`
	UserUid        uuid.UUID `json:"user_uid"`
}

// DepositRequestedEvent asks the external payment provider to pull funds.
// Produced by confirm(deposit).
type DepositRequestedEvent struct {
	EventMeta
	WalletUid       uuid.UUID       `json:"wallet_uid"`
	Amount          decimal.Decimal `json:"amount"`
	Fee             decimal.Decimal `json:"fee"`
	CurrencyCode    string          `json:"currency_code"`
	PaymentMethodID *int64          `json:"payment_method_id,omitempty"`
}

// WithdrawalRequestedEvent asks the external payment provider to push the
// already-reserved funds out. Produced by confirm(withdrawal).
type WithdrawalRequestedEvent struct {
	EventMeta
	WalletUid       uuid.UUID       `json:"wallet_uid"`
	Amount          decimal.Decimal `json:"amount"`
	Fee             decimal.Decimal `json:"fee"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CurrencyCode    string          `json:"currency_code"`
	PaymentMethodID *int64          `json:"payment_method_id,omitempty"`
}

// DepositCompletedEvent reports that provider funds arrived; the wallet is
// credited and the transaction completed on consumption.
type DepositCompletedEvent struct {
	EventMeta
	WalletUid uuid.UUID       `json:"wallet_uid"`
	Amount    decimal.Decimal `json:"amount"`
}

// WithdrawalCompletedEvent reports a successful payout. No wallet mutation:
// the funds were debited at confirm time.
type WithdrawalCompletedEvent struct {
	EventMeta
	WalletUid uuid.UUID       `json:"wallet_uid"`
	Amount    decimal.Decimal `json:"amount"`
}

// WithdrawalFailedEvent reports a failed payout; the reserved funds are
// credited back and the transaction marked FAILED on consumption.
type WithdrawalFailedEvent struct {
	EventMeta
	WalletUid    uuid.UUID       `json:"wallet_uid"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	Reason       string          `json:"reason"`
}

// NewEventMeta stamps a fresh event envelope for the given transaction.
func NewEventMeta(transactionUid, userUid uuid.UUID) EventMeta {
	return EventMeta{
		EventID:        uuid.New(),
		Timestamp:      time.Now().UTC(),
		TransactionUid: transactionUid,
		UserUid:        userUid,
	}
}
