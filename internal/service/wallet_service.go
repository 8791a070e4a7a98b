package service

import (
	"context"
	"fmt"
	"time"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo     ports.WalletRepository
	walletTypeRepo ports.WalletTypeRepository
	log            zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(walletRepo ports.WalletRepository, walletTypeRepo ports.WalletTypeRepository, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo:     walletRepo,
		walletTypeRepo: walletTypeRepo,
		log:            log,
	}
}

// CreateWallet opens a zero-balance ACTIVE wallet for the user. At most one
// wallet per (user, wallet type) pair is allowed.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, params ports.CreateWalletParams) (*domain.Wallet, error) {
	walletType, err := s.walletTypeRepo.GetByUid(ctx, params.WalletTypeUid)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet type: %w", err))
	}
	if walletType == nil {
		return nil, apperror.ErrWalletTypeNotFound(params.WalletTypeUid.String())
	}
	if !walletType.IsActive() {
		return nil, apperror.ErrWalletTypeNotFound(params.WalletTypeUid.String())
	}

	exists, err := s.walletRepo.ExistsByUserAndType(ctx, params.UserUid, params.WalletTypeUid)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing wallet: %w", err))
	}
	if exists {
		return nil, apperror.ErrDuplicateWallet(params.UserUid.String(), params.WalletTypeUid.String())
	}

	wallet := &domain.Wallet{
		Uid:           uuid.New(),
		Name:          params.Name,
		UserUid:       params.UserUid,
		WalletTypeUid: walletType.Uid,
		CurrencyCode:  walletType.CurrencyCode,
		Status:        domain.WalletStatusActive,
		Balance:       decimal.Zero,
	}
	wallet.InitTimestamps(time.Now().UTC())

	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_uid", wallet.Uid.String()).
		Str("user_uid", wallet.UserUid.String()).
		Str("wallet_type_uid", walletType.Uid.String()).
		Str("currency", wallet.CurrencyCode).
		Msg("created wallet")

	return wallet, nil
}

// GetWallet returns one wallet by uid.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, walletUid uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUid(ctx, walletUid)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound(walletUid.String())
	}
	return wallet, nil
}

// GetWalletsByUser returns every wallet the user holds.
func (s *WalletServiceImpl) GetWalletsByUser(ctx context.Context, userUid uuid.UUID) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.GetByUser(ctx, userUid)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}
	return wallets, nil
}

// ListWalletTypes returns the wallet type catalog.
func (s *WalletServiceImpl) ListWalletTypes(ctx context.Context) ([]domain.WalletType, error) {
	types, err := s.walletTypeRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallet types: %w", err))
	}
	return types, nil
}
