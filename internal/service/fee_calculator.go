package service

import (
	"wallet-transaction-engine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// FeePolicy holds the configured fee fraction per payment type
// (0.01 = 1%).
type FeePolicy struct {
	DepositPercent    decimal.Decimal
	WithdrawalPercent decimal.Decimal
	TransferPercent   decimal.Decimal
}

// FeeCalculator computes fees as a pure function of amount and payment type.
type FeeCalculator struct {
	policy FeePolicy
}

// NewFeeCalculator creates a calculator over the given policy.
func NewFeeCalculator(policy FeePolicy) *FeeCalculator {
	return &FeeCalculator{policy: policy}
}

// CalculateFee returns amount * feePercent(type), rounded half-up to 4
// decimal places. Non-positive amounts yield a zero fee.
func (f *FeeCalculator) CalculateFee(amount decimal.Decimal, paymentType domain.PaymentType) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	// Round is half-away-from-zero, which equals HALF_UP for the
	// non-negative products produced here.
	return amount.Mul(f.FeePercent(paymentType)).Round(4)
}

// FeePercent returns the configured fraction for the payment type.
func (f *FeeCalculator) FeePercent(paymentType domain.PaymentType) decimal.Decimal {
	switch paymentType {
	case domain.PaymentTypeDeposit:
		return f.policy.DepositPercent
	case domain.PaymentTypeWithdrawal:
		return f.policy.WithdrawalPercent
	case domain.PaymentTypeTransfer:
		return f.policy.TransferPercent
	default:
		return decimal.Zero
	}
}

// CalculateTotal returns amount + CalculateFee(amount, type).
func (f *FeeCalculator) CalculateTotal(amount decimal.Decimal, paymentType domain.PaymentType) decimal.Decimal {
	return amount.Add(f.CalculateFee(amount, paymentType))
}
