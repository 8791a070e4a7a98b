package service

import (
	"context"
	"fmt"
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SettlementServiceImpl consumes settlement outcome events and moves PENDING
// transactions to their terminal state. Handlers are idempotent: a transaction
// already past PENDING is acknowledged without effect, and an unknown
// transaction uid is an error so the broker redelivers (the confirm commit may
// not be visible yet).
type SettlementServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	dedup      ports.EventDedupStore
	transactor ports.DBTransactor
	dedupTTL   time.Duration
	log        zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	dedup ports.EventDedupStore,
	transactor ports.DBTransactor,
	dedupTTL time.Duration,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		dedup:      dedup,
		transactor: transactor,
		dedupTTL:   dedupTTL,
		log:        log,
	}
}

// HandleDepositCompleted credits the wallet and completes the transaction.
func (s *SettlementServiceImpl) HandleDepositCompleted(ctx context.Context, event domain.DepositCompletedEvent) error {
	if s.alreadyProcessed(ctx, event.EventID) {
		return nil
	}
	err := s.settle(ctx, event.UserUid, event.TransactionUid, func(tx txHandle, txn *domain.Transaction, now time.Time) error {
		wallet, err := s.walletRepo.GetForUpdate(ctx, tx, txn.WalletUid)
		if err != nil {
			return fmt.Errorf("lock wallet: %w", err)
		}
		if wallet == nil {
			return fmt.Errorf("wallet %s not found for deposit settlement", txn.WalletUid)
		}
		if err := wallet.Credit(event.Amount); err != nil {
			return err
		}
		if err := s.walletRepo.UpdateBalance(ctx, tx, wallet.Uid, wallet.Balance, now); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		txn.Complete()
		return s.txRepo.UpdateStatus(ctx, tx, txn.Uid, txn.Status, nil, now)
	})
	if err != nil {
		return err
	}
	s.markProcessed(ctx, event.EventID)
	return nil
}

// HandleWithdrawalCompleted completes the transaction. The funds were already
// debited at confirm time, so no balance change happens here.
func (s *SettlementServiceImpl) HandleWithdrawalCompleted(ctx context.Context, event domain.WithdrawalCompletedEvent) error {
	if s.alreadyProcessed(ctx, event.EventID) {
		return nil
	}
	err := s.settle(ctx, event.UserUid, event.TransactionUid, func(tx txHandle, txn *domain.Transaction, now time.Time) error {
		txn.Complete()
		return s.txRepo.UpdateStatus(ctx, tx, txn.Uid, txn.Status, nil, now)
	})
	if err != nil {
		return err
	}
	s.markProcessed(ctx, event.EventID)
	return nil
}

// HandleWithdrawalFailed refunds the reserved amount and fails the
// transaction.
func (s *SettlementServiceImpl) HandleWithdrawalFailed(ctx context.Context, event domain.WithdrawalFailedEvent) error {
	if s.alreadyProcessed(ctx, event.EventID) {
		return nil
	}
	err := s.settle(ctx, event.UserUid, event.TransactionUid, func(tx txHandle, txn *domain.Transaction, now time.Time) error {
		refund := event.RefundAmount
		if refund.LessThanOrEqual(decimal.Zero) {
			refund = txn.TotalAmount()
		}
		wallet, err := s.walletRepo.GetForUpdate(ctx, tx, txn.WalletUid)
		if err != nil {
			return fmt.Errorf("lock wallet: %w", err)
		}
		if wallet == nil {
			return fmt.Errorf("wallet %s not found for withdrawal refund", txn.WalletUid)
		}
		if err := wallet.Credit(refund); err != nil {
			return err
		}
		if err := s.walletRepo.UpdateBalance(ctx, tx, wallet.Uid, wallet.Balance, now); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		txn.Fail(event.Reason)
		return s.txRepo.UpdateStatus(ctx, tx, txn.Uid, txn.Status, txn.FailureReason, now)
	})
	if err != nil {
		return err
	}
	s.markProcessed(ctx, event.EventID)
	return nil
}

// settle runs fn against the PENDING transaction under row lock. Transactions
// already in a terminal state are skipped; a missing transaction is an error
// so the event gets redelivered.
func (s *SettlementServiceImpl) settle(
	ctx context.Context,
	userUid, transactionUid uuid.UUID,
	fn func(tx txHandle, txn *domain.Transaction, now time.Time) error,
) error {
	return runInUserTx(ctx, s.transactor, userUid, func(tx txHandle) error {
		txn, err := s.txRepo.GetByUidForUpdate(ctx, tx, transactionUid)
		if err != nil {
			return fmt.Errorf("lock transaction: %w", err)
		}
		if txn == nil {
			return fmt.Errorf("transaction %s not found, awaiting redelivery", transactionUid)
		}
		if !txn.IsPending() {
			s.log.Warn().
				Str("tx_uid", txn.Uid.String()).
				Str("status", string(txn.Status)).
				Msg("settlement event for non-pending transaction, skipping")
			return nil
		}
		return fn(tx, txn, time.Now().UTC())
	})
}

// alreadyProcessed consults the dedup store without writing. It is best
// effort only: a store failure is logged and treated as unseen, the PENDING
// check above remains the authoritative guard.
func (s *SettlementServiceImpl) alreadyProcessed(ctx context.Context, eventID uuid.UUID) bool {
	seen, err := s.dedup.Seen(ctx, eventID.String())
	if err != nil {
		s.log.Warn().Err(err).
			Str("event_id", eventID.String()).
			Msg("event dedup store unavailable, proceeding without it")
		return false
	}
	if seen {
		s.log.Debug().
			Str("event_id", eventID.String()).
			Msg("duplicate settlement event dropped")
	}
	return seen
}

// markProcessed records the event id once handling succeeded. Marking must
// not happen earlier: a handler error leaves the offset uncommitted and the
// redelivered event has to run again, not hit its own marker.
func (s *SettlementServiceImpl) markProcessed(ctx context.Context, eventID uuid.UUID) {
	if _, err := s.dedup.MarkProcessed(ctx, eventID.String(), s.dedupTTL); err != nil {
		s.log.Warn().Err(err).
			Str("event_id", eventID.String()).
			Msg("failed to record settlement event marker")
	}
}
