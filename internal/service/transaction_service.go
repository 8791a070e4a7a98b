package service

import (
	"context"
	"fmt"
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/internal/sharding"
	"wallet-transaction-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TransactionServiceImpl implements ports.TransactionService: the two-phase
// init/confirm protocol plus status and search queries.
type TransactionServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	feeCalc    *FeeCalculator
	initCache  ports.InitRequestCache
	publisher  ports.EventPublisher
	transactor ports.DBTransactor
	router     *sharding.Router
	log        zerolog.Logger
}

// NewTransactionService creates a new TransactionServiceImpl.
func NewTransactionService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	feeCalc *FeeCalculator,
	initCache ports.InitRequestCache,
	publisher ports.EventPublisher,
	transactor ports.DBTransactor,
	router *sharding.Router,
	log zerolog.Logger,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		feeCalc:    feeCalc,
		initCache:  initCache,
		publisher:  publisher,
		transactor: transactor,
		router:     router,
		log:        log,
	}
}

// Init validates the intent, computes the fee and stores an InitRequest in
// the cache. Durable storage is never touched here; the balance pre-check is
// advisory and fully re-validated under lock at confirm time.
func (s *TransactionServiceImpl) Init(ctx context.Context, params ports.InitParams) (*domain.InitRequest, error) {
	if params.Amount.LessThanOrEqual(decimalZero) {
		return nil, apperror.ErrInvalidAmount()
	}

	if params.Type == domain.PaymentTypeTransfer {
		if params.TargetWalletUid == nil {
			return nil, apperror.ErrTargetWalletRequired()
		}
		if *params.TargetWalletUid == params.WalletUid {
			return nil, apperror.ErrSameWalletTransfer()
		}
	}

	wallet, err := s.getWallet(ctx, params.WalletUid)
	if err != nil {
		return nil, err
	}
	if !wallet.IsActive() {
		return nil, apperror.ErrWalletInactive(wallet.Uid.String())
	}

	fee := s.feeCalc.CalculateFee(params.Amount, params.Type)
	total := params.Amount.Add(fee)

	if params.Type == domain.PaymentTypeWithdrawal || params.Type == domain.PaymentTypeTransfer {
		if !wallet.HasSufficientBalance(total) {
			return nil, apperror.ErrInsufficientBalance(wallet.Uid.String())
		}
	}

	if params.Type == domain.PaymentTypeTransfer {
		target, err := s.getWallet(ctx, *params.TargetWalletUid)
		if err != nil {
			return nil, err
		}
		if !target.IsActive() {
			return nil, apperror.ErrWalletInactive(target.Uid.String())
		}
		if wallet.CurrencyCode != target.CurrencyCode {
			return nil, apperror.ErrCurrencyMismatch()
		}
	}

	now := time.Now().UTC()
	request := &domain.InitRequest{
		RequestUid:      uuid.New(),
		UserUid:         wallet.UserUid,
		WalletUid:       wallet.Uid,
		TargetWalletUid: params.TargetWalletUid,
		Type:            params.Type,
		Amount:          params.Amount,
		Fee:             fee,
		TotalAmount:     total,
		CurrencyCode:    wallet.CurrencyCode,
		PaymentMethodID: params.PaymentMethodID,
		CreatedAt:       now,
		ExpiresAt:       s.initCache.ExpiresAt(now),
	}
	s.initCache.Put(request)

	s.log.Info().
		Str("request_uid", request.RequestUid.String()).
		Str("wallet_uid", wallet.Uid.String()).
		Str("type", string(params.Type)).
		Str("amount", params.Amount.String()).
		Str("fee", fee.String()).
		Time("expires_at", request.ExpiresAt).
		Msg("created init request")

	return request, nil
}

// Confirm consumes the init request exactly once and commits the movement
// under exclusive wallet lock(s) in one atomic unit of work.
func (s *TransactionServiceImpl) Confirm(ctx context.Context, params ports.ConfirmParams) (*domain.Transaction, error) {
	initReq, err := s.initCache.GetAndRemove(params.RequestUid)
	if err != nil {
		return nil, err
	}

	if initReq.Type != params.Type {
		return nil, apperror.ErrTransactionMismatch(
			fmt.Sprintf("expected type %s, got %s", params.Type, initReq.Type))
	}
	if initReq.WalletUid != params.WalletUid {
		return nil, apperror.ErrTransactionMismatch("wallet uid")
	}
	if !initReq.Amount.Equal(params.Amount) {
		return nil, apperror.ErrTransactionMismatch("amount")
	}

	if initReq.IsTransfer() {
		return s.confirmTransfer(ctx, initReq)
	}
	return s.confirmSingleWallet(ctx, initReq)
}

// confirmSingleWallet handles deposit and withdrawal confirms: a PENDING
// transaction plus, for withdrawal, an immediate debit reserving the funds.
func (s *TransactionServiceImpl) confirmSingleWallet(ctx context.Context, initReq *domain.InitRequest) (*domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx, initReq.UserUid)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetForUpdate(ctx, dbTx, initReq.WalletUid)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(initReq.WalletUid.String())
	}

	now := time.Now().UTC()

	if initReq.Type == domain.PaymentTypeWithdrawal {
		// Balance may have changed since init; re-validate under lock.
		if !wallet.HasSufficientBalance(initReq.TotalAmount) {
			return nil, apperror.ErrInsufficientBalance(wallet.Uid.String())
		}
		if err := wallet.Debit(initReq.TotalAmount); err != nil {
			return nil, err
		}
		if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.Uid, wallet.Balance, now); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}
	}

	txn := &domain.Transaction{
		Uid:             uuid.New(),
		UserUid:         initReq.UserUid,
		WalletUid:       wallet.Uid,
		Amount:          initReq.Amount,
		Fee:             initReq.Fee,
		Type:            initReq.Type,
		Status:          domain.TransactionStatusPending,
		PaymentMethodID: initReq.PaymentMethodID,
	}
	txn.InitTimestamps(now)

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publishRequested(ctx, txn, initReq)

	s.log.Info().
		Str("tx_uid", txn.Uid.String()).
		Str("wallet_uid", wallet.Uid.String()).
		Str("type", string(txn.Type)).
		Str("amount", txn.Amount.String()).
		Msg("confirmed pending transaction")

	return txn, nil
}

// confirmTransfer completes synchronously: both wallet sides are mutated
// before the call returns. Same-shard pairs commit in one database
// transaction persisted COMPLETED outright; cross-shard pairs persist the
// record PENDING alongside the debit and promote or fail it once the target
// credit resolves.
func (s *TransactionServiceImpl) confirmTransfer(ctx context.Context, initReq *domain.InitRequest) (*domain.Transaction, error) {
	target, err := s.getWallet(ctx, *initReq.TargetWalletUid)
	if err != nil {
		return nil, err
	}

	if s.router.ShardFor(initReq.UserUid) == s.router.ShardFor(target.UserUid) {
		return s.transferSameShard(ctx, initReq, target)
	}
	return s.transferCrossShard(ctx, initReq, target)
}

func (s *TransactionServiceImpl) transferSameShard(ctx context.Context, initReq *domain.InitRequest, target *domain.Wallet) (*domain.Transaction, error) {
	dbTx, err := s.transactor.Begin(ctx, initReq.UserUid)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Fixed lock order by wallet uid so concurrent A->B and B->A transfers
	// cannot deadlock.
	firstUid, secondUid := initReq.WalletUid, target.Uid
	if secondUid.String() < firstUid.String() {
		firstUid, secondUid = secondUid, firstUid
	}

	locked := make(map[uuid.UUID]*domain.Wallet, 2)
	for _, uid := range []uuid.UUID{firstUid, secondUid} {
		w, err := s.walletRepo.GetForUpdate(ctx, dbTx, uid)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
		}
		if w == nil {
			return nil, apperror.ErrWalletNotFound(uid.String())
		}
		locked[uid] = w
	}
	source, targetLocked := locked[initReq.WalletUid], locked[target.Uid]

	if !source.HasSufficientBalance(initReq.TotalAmount) {
		return nil, apperror.ErrInsufficientBalance(source.Uid.String())
	}
	if err := source.Debit(initReq.TotalAmount); err != nil {
		return nil, err
	}
	if err := targetLocked.Credit(initReq.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, source.Uid, source.Balance, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update source balance: %w", err))
	}
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, targetLocked.Uid, targetLocked.Balance, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update target balance: %w", err))
	}

	txn := s.newTransferTransaction(initReq, target.Uid, domain.TransactionStatusCompleted, now)
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_uid", txn.Uid.String()).
		Str("source_wallet_uid", source.Uid.String()).
		Str("target_wallet_uid", target.Uid.String()).
		Str("amount", initReq.Amount.String()).
		Msg("transfer completed")

	return txn, nil
}

// transferCrossShard debits the source and persists the transaction PENDING
// on the source shard, credits the target on its own shard, then promotes the
// transaction to COMPLETED. The record only reaches a terminal state once the
// outcome is known: a reader between the two shard commits sees PENDING, not
// a COMPLETED transfer whose funds may never arrive. A failed credit triggers
// a compensating refund of the source and marks the transaction FAILED,
// mirroring the settlement saga's refund shape.
func (s *TransactionServiceImpl) transferCrossShard(ctx context.Context, initReq *domain.InitRequest, target *domain.Wallet) (*domain.Transaction, error) {
	now := time.Now().UTC()
	txn := s.newTransferTransaction(initReq, target.Uid, domain.TransactionStatusPending, now)

	err := s.inUserTx(ctx, initReq.UserUid, func(dbTx txHandle) error {
		source, err := s.walletRepo.GetForUpdate(ctx, dbTx, initReq.WalletUid)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock source wallet: %w", err))
		}
		if source == nil {
			return apperror.ErrWalletNotFound(initReq.WalletUid.String())
		}
		if !source.HasSufficientBalance(initReq.TotalAmount) {
			return apperror.ErrInsufficientBalance(source.Uid.String())
		}
		if err := source.Debit(initReq.TotalAmount); err != nil {
			return err
		}
		if err := s.walletRepo.UpdateBalance(ctx, dbTx, source.Uid, source.Balance, now); err != nil {
			return apperror.InternalError(fmt.Errorf("update source balance: %w", err))
		}
		if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
			return apperror.InternalError(fmt.Errorf("create transaction: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	creditErr := s.inUserTx(ctx, target.UserUid, func(dbTx txHandle) error {
		targetLocked, err := s.walletRepo.GetForUpdate(ctx, dbTx, target.Uid)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("lock target wallet: %w", err))
		}
		if targetLocked == nil {
			return apperror.ErrWalletNotFound(target.Uid.String())
		}
		if err := targetLocked.Credit(initReq.Amount); err != nil {
			return err
		}
		if err := s.walletRepo.UpdateBalance(ctx, dbTx, targetLocked.Uid, targetLocked.Balance, now); err != nil {
			return apperror.InternalError(fmt.Errorf("update target balance: %w", err))
		}
		return nil
	})
	if creditErr == nil {
		promoteErr := s.inUserTx(ctx, initReq.UserUid, func(dbTx txHandle) error {
			return s.txRepo.UpdateStatus(ctx, dbTx, txn.Uid, domain.TransactionStatusCompleted, nil, time.Now().UTC())
		})
		if promoteErr != nil {
			// Both balances are committed; the record stays PENDING until
			// reconciled.
			s.log.Error().Err(promoteErr).
				Str("tx_uid", txn.Uid.String()).
				Msg("CRITICAL: transfer settled but status promotion failed, manual reconciliation required")
			return txn, nil
		}
		txn.Complete()
		s.log.Info().
			Str("tx_uid", txn.Uid.String()).
			Str("target_wallet_uid", target.Uid.String()).
			Msg("cross-shard transfer completed")
		return txn, nil
	}

	// Compensate: restore the source and mark the transaction FAILED.
	compErr := s.inUserTx(ctx, initReq.UserUid, func(dbTx txHandle) error {
		source, err := s.walletRepo.GetForUpdate(ctx, dbTx, initReq.WalletUid)
		if err != nil {
			return fmt.Errorf("lock source wallet: %w", err)
		}
		if source == nil {
			return fmt.Errorf("source wallet %s disappeared", initReq.WalletUid)
		}
		if err := source.Credit(initReq.TotalAmount); err != nil {
			return err
		}
		compNow := time.Now().UTC()
		if err := s.walletRepo.UpdateBalance(ctx, dbTx, source.Uid, source.Balance, compNow); err != nil {
			return fmt.Errorf("restore source balance: %w", err)
		}
		txn.Fail("transfer target credit failed")
		return s.txRepo.UpdateStatus(ctx, dbTx, txn.Uid, txn.Status, txn.FailureReason, compNow)
	})
	if compErr != nil {
		s.log.Error().Err(compErr).
			Str("tx_uid", txn.Uid.String()).
			Str("source_wallet_uid", initReq.WalletUid.String()).
			Msg("CRITICAL: transfer compensation failed, manual reconciliation required")
	}
	return nil, apperror.InternalError(fmt.Errorf("transfer target credit: %w", creditErr))
}

// GetStatus returns the full status record with the wallet's currency.
func (s *TransactionServiceImpl) GetStatus(ctx context.Context, transactionUid uuid.UUID) (*ports.TransactionStatusResult, error) {
	txn, err := s.txRepo.GetByUid(ctx, transactionUid)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrTransactionNotFound(transactionUid.String())
	}

	wallet, err := s.getWallet(ctx, txn.WalletUid)
	if err != nil {
		return nil, err
	}

	return &ports.TransactionStatusResult{
		Transaction:  txn,
		CurrencyCode: wallet.CurrencyCode,
	}, nil
}

// Search returns one page of the caller's transactions, newest first.
func (s *TransactionServiceImpl) Search(ctx context.Context, params ports.TransactionSearchParams) (*ports.TransactionPage, error) {
	if params.Page < 0 {
		params.Page = 0
	}
	if params.PageSize <= 0 {
		params.PageSize = 20
	}

	content, total, err := s.txRepo.Search(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("search transactions: %w", err))
	}

	totalPages := int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
	return &ports.TransactionPage{
		Content:       content,
		Page:          params.Page,
		Size:          params.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (s *TransactionServiceImpl) getWallet(ctx context.Context, walletUid uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUid(ctx, walletUid)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(walletUid.String())
	}
	return wallet, nil
}

func (s *TransactionServiceImpl) newTransferTransaction(initReq *domain.InitRequest, targetUid uuid.UUID, status domain.TransactionStatus, now time.Time) *domain.Transaction {
	txn := &domain.Transaction{
		Uid:             uuid.New(),
		UserUid:         initReq.UserUid,
		WalletUid:       initReq.WalletUid,
		TargetWalletUid: &targetUid,
		Amount:          initReq.Amount,
		Fee:             initReq.Fee,
		Type:            domain.PaymentTypeTransfer,
		Status:          status,
	}
	txn.InitTimestamps(now)
	return txn
}

func (s *TransactionServiceImpl) publishRequested(ctx context.Context, txn *domain.Transaction, initReq *domain.InitRequest) {
	var err error
	switch txn.Type {
	case domain.PaymentTypeDeposit:
		err = s.publisher.PublishDepositRequested(ctx, domain.DepositRequestedEvent{
			EventMeta:       domain.NewEventMeta(txn.Uid, txn.UserUid),
			WalletUid:       txn.WalletUid,
			Amount:          txn.Amount,
			Fee:             txn.Fee,
			CurrencyCode:    initReq.CurrencyCode,
			PaymentMethodID: txn.PaymentMethodID,
		})
	case domain.PaymentTypeWithdrawal:
		err = s.publisher.PublishWithdrawalRequested(ctx, domain.WithdrawalRequestedEvent{
			EventMeta:       domain.NewEventMeta(txn.Uid, txn.UserUid),
			WalletUid:       txn.WalletUid,
			Amount:          txn.Amount,
			Fee:             txn.Fee,
			TotalAmount:     txn.TotalAmount(),
			CurrencyCode:    initReq.CurrencyCode,
			PaymentMethodID: txn.PaymentMethodID,
		})
	}
	if err != nil {
		// The transaction is committed; a lost request event is an
		// operational condition, not a caller-visible failure.
		s.log.Error().Err(err).
			Str("tx_uid", txn.Uid.String()).
			Str("type", string(txn.Type)).
			Msg("failed to publish settlement request event")
	}
}
