package service

import (
	"context"
	"testing"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type walletTestDeps struct {
	svc            *WalletServiceImpl
	walletRepo     *mocks.MockWalletRepository
	walletTypeRepo *mocks.MockWalletTypeRepository
	ctrl           *gomock.Controller
}

func setupWalletService(t *testing.T) *walletTestDeps {
	ctrl := gomock.NewController(t)
	d := &walletTestDeps{
		walletRepo:     mocks.NewMockWalletRepository(ctrl),
		walletTypeRepo: mocks.NewMockWalletTypeRepository(ctrl),
		ctrl:           ctrl,
	}
	d.svc = NewWalletService(d.walletRepo, d.walletTypeRepo, zerolog.Nop())
	return d
}

func usdWalletType() *domain.WalletType {
	return &domain.WalletType{
		Uid:          uuid.New(),
		Name:         "standard",
		CurrencyCode: "USD",
		Status:       domain.WalletTypeStatusActive,
	}
}

func TestWalletService_CreateWallet(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userUid := uuid.New()
	walletType := usdWalletType()

	d.walletTypeRepo.EXPECT().GetByUid(ctx, walletType.Uid).Return(walletType, nil)
	d.walletRepo.EXPECT().ExistsByUserAndType(ctx, userUid, walletType.Uid).Return(false, nil)
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, w *domain.Wallet) error {
			assert.Equal(t, userUid, w.UserUid)
			assert.Equal(t, "USD", w.CurrencyCode)
			assert.Equal(t, domain.WalletStatusActive, w.Status)
			assert.True(t, w.Balance.IsZero())
			assert.False(t, w.CreatedAt.IsZero())
			return nil
		})

	wallet, err := d.svc.CreateWallet(ctx, ports.CreateWalletParams{
		UserUid:       userUid,
		WalletTypeUid: walletType.Uid,
		Name:          "my wallet",
	})
	require.NoError(t, err)
	assert.Equal(t, "my wallet", wallet.Name)
	assert.NotEqual(t, uuid.Nil, wallet.Uid)
}

func TestWalletService_CreateWallet_TypeNotFound(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	typeUid := uuid.New()
	d.walletTypeRepo.EXPECT().GetByUid(ctx, typeUid).Return(nil, nil)

	_, err := d.svc.CreateWallet(ctx, ports.CreateWalletParams{
		UserUid:       uuid.New(),
		WalletTypeUid: typeUid,
	})
	assertAppError(t, err, "WLT_002")
}

func TestWalletService_CreateWallet_ArchivedType(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletType := usdWalletType()
	walletType.Status = domain.WalletTypeStatusArchived
	d.walletTypeRepo.EXPECT().GetByUid(ctx, walletType.Uid).Return(walletType, nil)

	_, err := d.svc.CreateWallet(ctx, ports.CreateWalletParams{
		UserUid:       uuid.New(),
		WalletTypeUid: walletType.Uid,
	})
	assertAppError(t, err, "WLT_002")
}

func TestWalletService_CreateWallet_Duplicate(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userUid := uuid.New()
	walletType := usdWalletType()

	d.walletTypeRepo.EXPECT().GetByUid(ctx, walletType.Uid).Return(walletType, nil)
	d.walletRepo.EXPECT().ExistsByUserAndType(ctx, userUid, walletType.Uid).Return(true, nil)

	_, err := d.svc.CreateWallet(ctx, ports.CreateWalletParams{
		UserUid:       userUid,
		WalletTypeUid: walletType.Uid,
	})
	assertAppError(t, err, "WLT_003")
}

func TestWalletService_GetWallet_NotFound(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletUid := uuid.New()
	d.walletRepo.EXPECT().GetByUid(ctx, walletUid).Return(nil, nil)

	_, err := d.svc.GetWallet(ctx, walletUid)
	assertAppError(t, err, "WLT_001")
}

func TestWalletService_GetWalletsByUser(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userUid := uuid.New()
	wallets := []domain.Wallet{*activeWallet(userUid, "10"), *activeWallet(userUid, "20")}
	d.walletRepo.EXPECT().GetByUser(ctx, userUid).Return(wallets, nil)

	got, err := d.svc.GetWalletsByUser(ctx, userUid)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWalletService_ListWalletTypes(t *testing.T) {
	d := setupWalletService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.walletTypeRepo.EXPECT().List(ctx).Return([]domain.WalletType{*usdWalletType()}, nil)

	types, err := d.svc.ListWalletTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 1)
}
