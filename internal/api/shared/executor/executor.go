package executor

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/api/shared/constants"
	"github.com/feral-file/invoice-lottery/internal/api/shared/dto"
	apierrors "github.com/feral-file/invoice-lottery/internal/api/shared/errors"
	"github.com/feral-file/invoice-lottery/internal/auth"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/lottery"
	"github.com/feral-file/invoice-lottery/internal/oracle"
	"github.com/feral-file/invoice-lottery/internal/providers/ethereum"
	"github.com/feral-file/invoice-lottery/internal/relayer"
	"github.com/feral-file/invoice-lottery/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// RegisterUser binds a carrier code to a wallet
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*dto.UserResponse, error)
	// GetUser retrieves a user by wallet address, nil when absent
	GetUser(ctx context.Context, walletAddress string) (*dto.UserResponse, error)
	// UpdateUser updates a user's pool and donation percent
	UpdateUser(ctx context.Context, walletAddress string, req dto.UpdateUserRequest) (*dto.UserResponse, error)

	// RegisterInvoice stores an invoice and mints its token to the carrier's wallet
	RegisterInvoice(ctx context.Context, req dto.RegisterInvoiceRequest) (*domain.InvoiceRegistrationResult, error)
	// BatchRegisterInvoices registers invoices one by one and reports per-item outcomes
	BatchRegisterInvoices(ctx context.Context, req dto.BatchRegisterInvoicesRequest) (*domain.BatchRegistrationSummary, error)
	// GetInvoicesByWallet lists the invoices of a wallet
	GetInvoicesByWallet(ctx context.Context, walletAddress string, limit *int, offset *uint64) (*dto.InvoiceListResponse, error)
	// GetUndrawnInvoices lists the undrawn invoices of a lottery day
	GetUndrawnInvoices(ctx context.Context, lotteryDay string) ([]dto.InvoiceResponse, error)

	// RegisterPool registers a charity pool, signed by the admin
	RegisterPool(ctx context.Context, req dto.RegisterPoolRequest) (*domain.TxResult, error)
	// UpdateMinDonationPercent changes a pool's minimum donation percent, signed by the beneficiary
	UpdateMinDonationPercent(ctx context.Context, poolID string, req dto.UpdateMinDonationPercentRequest) (*domain.TxResult, error)
	// WithdrawDonation withdraws a pool's pending donations, signed by the beneficiary
	WithdrawDonation(ctx context.Context, poolID string, req dto.SignedRequest) (*domain.TxResult, error)
	// UpdateBeneficiary replaces a pool's beneficiary, signed by the admin
	UpdateBeneficiary(ctx context.Context, poolID string, req dto.UpdateBeneficiaryRequest) (*domain.TxResult, error)
	// DeactivatePool deactivates a pool, signed by the admin
	DeactivatePool(ctx context.Context, poolID string, req dto.SignedRequest) (*domain.TxResult, error)
	// ListPools returns every registered pool id
	ListPools(ctx context.Context) (*dto.PoolListResponse, error)
	// GetPool retrieves a pool record
	GetPool(ctx context.Context, poolID string) (*domain.PoolInfo, error)

	// ClaimReward claims a reward on behalf of a wallet, signed by the wallet
	ClaimReward(ctx context.Context, req dto.ClaimRewardRequest) (*domain.TxResult, error)
	// GetClaimableReward reads the reward a wallet can still claim for a token type
	GetClaimableReward(ctx context.Context, walletAddress string, tokenTypeID string) (*dto.ClaimableRewardResponse, error)

	// GetTokenType reads the on-chain data of a token type
	GetTokenType(ctx context.Context, tokenTypeID string) (*domain.TokenTypeData, error)

	// SetTokenURI changes the invoice token metadata URI, signed by the admin
	SetTokenURI(ctx context.Context, req dto.SetTokenURIRequest) (*domain.TxResult, error)
	// SetPoolContract points the invoice token at a pool contract, signed by the admin
	SetPoolContract(ctx context.Context, req dto.SetPoolContractRequest) (*domain.TxResult, error)

	// ProcessLottery runs the manual lottery notification for a lottery date
	ProcessLottery(ctx context.Context, req dto.ProcessLotteryRequest) (*domain.NotifySummary, error)
}

// Config holds the policies applied by the executor
type Config struct {
	// AdminAddress is the expected signer of admin-only operations
	AdminAddress string
	// DonationPolicy validates user donation percents
	DonationPolicy domain.DonationPolicy
}

type executor struct {
	config  Config
	store   store.Store
	relayer relayer.Relayer
	client  ethereum.EthereumClient
	oracle  oracle.Oracle
}

func NewExecutor(cfg Config, st store.Store, r relayer.Relayer, client ethereum.EthereumClient, o oracle.Oracle) Executor {
	return &executor{config: cfg, store: st, relayer: r, client: client, oracle: o}
}

func checksum(address string) string {
	return common.HexToAddress(address).Hex()
}

func (e *executor) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(e.config.DonationPolicy); err != nil {
		return nil, err
	}

	poolID, _ := dto.ParseUint256("poolId", req.PoolID)
	user, err := e.store.CreateUser(ctx, store.CreateUserInput{
		WalletAddress:   checksum(req.WalletAddress),
		CarrierNumber:   req.CarrierNumber,
		PoolID:          poolID.String(),
		DonationPercent: req.DonationPercent,
	})
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to register user")
	}

	logger.InfoCtx(ctx, "User registered", zap.String("walletAddress", user.WalletAddress))
	return dto.MapUserToDTO(user), nil
}

func (e *executor) GetUser(ctx context.Context, walletAddress string) (*dto.UserResponse, error) {
	if err := dto.ValidateAddress("walletAddress", walletAddress); err != nil {
		return nil, err
	}

	user, err := e.store.GetUserByWallet(ctx, checksum(walletAddress))
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get user").WithCause(err)
	}
	if user == nil {
		return nil, nil
	}

	return dto.MapUserToDTO(user), nil
}

func (e *executor) UpdateUser(ctx context.Context, walletAddress string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := dto.ValidateAddress("walletAddress", walletAddress); err != nil {
		return nil, err
	}
	if err := req.Validate(e.config.DonationPolicy); err != nil {
		return nil, err
	}

	input := store.UpdateUserInput{DonationPercent: req.DonationPercent}
	if req.PoolID != nil {
		poolID, _ := dto.ParseUint256("poolId", *req.PoolID)
		canonical := poolID.String()
		input.PoolID = &canonical
	}

	user, err := e.store.UpdateUser(ctx, checksum(walletAddress), input)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to update user").WithCause(err)
	}
	if user == nil {
		return nil, apierrors.NewNotFoundError("User not found")
	}

	return dto.MapUserToDTO(user), nil
}

func (e *executor) RegisterInvoice(ctx context.Context, req dto.RegisterInvoiceRequest) (*domain.InvoiceRegistrationResult, error) {
	result, err := e.registerInvoice(ctx, req)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to register invoice")
	}
	return result, nil
}

// registerInvoice stores the invoice, mints its token and records the token type.
// A mint that definitely failed removes the stored invoice so the number can be registered again.
// A mint whose transaction may have landed keeps the invoice with no token type.
func (e *executor) registerInvoice(ctx context.Context, req dto.RegisterInvoiceRequest) (*domain.InvoiceRegistrationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	purchaseDate, _ := lottery.ParseLotteryDate(req.PurchaseDate)
	lotteryDay, _ := lottery.ParseLotteryDate(req.LotteryDay)

	user, err := e.store.GetUserByCarrier(ctx, req.CarrierNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by carrier: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("carrier %s not registered: %w", req.CarrierNumber, domain.ErrNotFound)
	}

	poolID, ok := new(big.Int).SetString(user.PoolID, 10)
	if !ok {
		return nil, fmt.Errorf("%w: user pool id %q", domain.ErrValidation, user.PoolID)
	}

	invoice, err := e.store.CreateInvoice(ctx, store.CreateInvoiceInput{
		InvoiceNumber:   req.InvoiceNumber,
		CarrierNumber:   req.CarrierNumber,
		WalletAddress:   user.WalletAddress,
		PoolID:          user.PoolID,
		DonationPercent: user.DonationPercent,
		Amount:          req.Amount,
		PurchaseDate:    purchaseDate,
		LotteryDay:      lotteryDay,
	})
	if err != nil {
		return nil, err
	}

	mint, err := e.relayer.Mint(ctx, user.WalletAddress, uint8(user.DonationPercent), poolID, lotteryDay) //nolint:gosec,G115
	if err != nil {
		if mintMayHaveLanded(err) {
			logger.ErrorCtx(ctx, err,
				zap.String("message", "Mint outcome unknown, keeping invoice without token type"),
				zap.String("invoiceNumber", req.InvoiceNumber),
				zap.Uint64("invoiceId", invoice.ID))
			return nil, fmt.Errorf("failed to confirm mint of invoice %s: %w", req.InvoiceNumber, err)
		}
		if delErr := e.store.DeleteInvoice(ctx, invoice.ID); delErr != nil {
			logger.ErrorCtx(ctx, delErr,
				zap.String("message", "Failed to remove invoice after mint failure"),
				zap.String("invoiceNumber", req.InvoiceNumber))
		}
		return nil, fmt.Errorf("failed to mint invoice %s: %w", req.InvoiceNumber, err)
	}

	if err := e.store.AssignInvoiceTokenType(ctx, invoice.ID, mint.TokenTypeID); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Minted invoice could not be linked to its token type"),
			zap.String("invoiceNumber", req.InvoiceNumber),
			zap.String("tokenTypeId", mint.TokenTypeID),
			zap.String("txHash", mint.TxHash))
		return nil, fmt.Errorf("failed to assign token type: %w", err)
	}

	logger.InfoCtx(ctx, "Invoice registered",
		zap.String("invoiceNumber", req.InvoiceNumber),
		zap.String("tokenTypeId", mint.TokenTypeID),
		zap.String("txHash", mint.TxHash))

	return &domain.InvoiceRegistrationResult{
		InvoiceNumber: req.InvoiceNumber,
		Success:       true,
		InvoiceID:     invoice.ID,
		TokenTypeID:   mint.TokenTypeID,
		TxHash:        mint.TxHash,
	}, nil
}

// mintMayHaveLanded reports whether a mint error leaves the transaction possibly mined
func mintMayHaveLanded(err error) bool {
	return errors.Is(err, domain.ErrTransactionPending) || errors.Is(err, ethereum.ErrEventNotFound)
}

func (e *executor) BatchRegisterInvoices(ctx context.Context, req dto.BatchRegisterInvoicesRequest) (*domain.BatchRegistrationSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	summary := &domain.BatchRegistrationSummary{Results: []domain.InvoiceRegistrationResult{}}
	for _, item := range req.Invoices {
		result, err := e.registerInvoice(ctx, item)
		if err != nil {
			summary.Add(domain.InvoiceRegistrationResult{
				InvoiceNumber: item.InvoiceNumber,
				Error:         itemError(err),
			})
			continue
		}
		summary.Add(*result)
	}

	logger.InfoCtx(ctx, "Invoice batch registered",
		zap.Int("total", summary.Total),
		zap.Int("success", summary.Success),
		zap.Int("failed", summary.Failed))

	return summary, nil
}

// itemError renders a per-item failure without leaking server internals
func itemError(err error) string {
	apiErr := apierrors.FromError(err, "registration failed")
	if apiErr.Details != "" {
		return apiErr.Details
	}
	return apiErr.Message
}

func (e *executor) GetInvoicesByWallet(ctx context.Context, walletAddress string, limit *int, offset *uint64) (*dto.InvoiceListResponse, error) {
	if err := dto.ValidateAddress("walletAddress", walletAddress); err != nil {
		return nil, err
	}
	if limit == nil {
		defaultLimit := constants.DEFAULT_INVOICES_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	invoices, total, err := e.store.GetInvoicesByWallet(ctx, checksum(walletAddress), *limit, *offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get invoices").WithCause(err)
	}

	var nextOffset *uint64
	if *offset+uint64(len(invoices)) < total {
		next := *offset + uint64(len(invoices))
		nextOffset = &next
	}

	return &dto.InvoiceListResponse{
		Invoices:   dto.MapInvoicesToDTO(invoices),
		Total:      total,
		NextOffset: nextOffset,
	}, nil
}

func (e *executor) GetUndrawnInvoices(ctx context.Context, lotteryDay string) ([]dto.InvoiceResponse, error) {
	day, err := lottery.ParseLotteryDate(lotteryDay)
	if err != nil {
		return nil, apierrors.FromError(err, "Invalid lottery day")
	}

	invoices, err := e.store.GetUndrawnInvoices(ctx, day)
	if err != nil {
		return nil, apierrors.NewDatabaseError("Failed to get invoices").WithCause(err)
	}

	return dto.MapInvoicesToDTO(invoices), nil
}

// authorize checks that the message was signed by the expected signer
func (e *executor) authorize(ctx context.Context, message, signature, expectedSigner string) error {
	signer, err := auth.Authorize(message, signature, expectedSigner)
	if err != nil {
		logger.WarnCtx(ctx, "Signature rejected", zap.String("expected", expectedSigner), zap.Error(err))
		return apierrors.FromError(err, "Signature verification failed")
	}

	logger.DebugCtx(ctx, "Signature accepted", zap.String("signer", signer.Hex()))
	return nil
}

// existingPool reads a pool, ErrNotFound when its on-chain id reads 0
func (e *executor) existingPool(ctx context.Context, poolID *big.Int) (*domain.PoolInfo, error) {
	pool, err := e.client.GetPool(ctx, poolID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apierrors.NewNotFoundError(fmt.Sprintf("Pool %s not found", poolID.String()))
		}
		return nil, apierrors.NewServiceError("Failed to get pool").WithCause(err)
	}
	return pool, nil
}

func (e *executor) RegisterPool(ctx context.Context, req dto.RegisterPoolRequest) (*domain.TxResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	poolID, _ := dto.ParseUint256("poolId", req.PoolID)
	lotteryMonth, _ := dto.ParseUint256("lotteryMonth", req.LotteryMonth)

	if err := e.authorize(ctx, auth.RegisterPoolMessage(poolID.String(), req.Beneficiary), req.Signature, e.config.AdminAddress); err != nil {
		return nil, err
	}

	result, err := e.relayer.RegisterPool(ctx, poolID, req.Beneficiary, req.Name, lotteryMonth)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to register pool")
	}
	return result, nil
}

func (e *executor) UpdateMinDonationPercent(ctx context.Context, poolID string, req dto.UpdateMinDonationPercentRequest) (*domain.TxResult, error) {
	id, err := dto.ParseUint256("poolId", poolID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pool, err := e.existingPool(ctx, id)
	if err != nil {
		return nil, err
	}

	percent := *req.MinDonationPercent
	if err := e.authorize(ctx, auth.UpdateMinDonationPercentMessage(id.String(), percent), req.Signature, pool.Beneficiary); err != nil {
		return nil, err
	}

	result, err := e.relayer.UpdateMinDonationPercent(ctx, id, uint8(percent)) //nolint:gosec,G115
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to update min donation percent")
	}
	return result, nil
}

func (e *executor) WithdrawDonation(ctx context.Context, poolID string, req dto.SignedRequest) (*domain.TxResult, error) {
	id, err := dto.ParseUint256("poolId", poolID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pool, err := e.existingPool(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := e.authorize(ctx, auth.WithdrawDonationMessage(id.String()), req.Signature, pool.Beneficiary); err != nil {
		return nil, err
	}

	result, err := e.relayer.WithdrawDonation(ctx, id)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to withdraw donation")
	}
	return result, nil
}

func (e *executor) UpdateBeneficiary(ctx context.Context, poolID string, req dto.UpdateBeneficiaryRequest) (*domain.TxResult, error) {
	id, err := dto.ParseUint256("poolId", poolID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := e.existingPool(ctx, id); err != nil {
		return nil, err
	}

	if err := e.authorize(ctx, auth.UpdateBeneficiaryMessage(id.String(), req.Beneficiary), req.Signature, e.config.AdminAddress); err != nil {
		return nil, err
	}

	result, err := e.relayer.UpdateBeneficiary(ctx, id, req.Beneficiary)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to update beneficiary")
	}
	return result, nil
}

func (e *executor) DeactivatePool(ctx context.Context, poolID string, req dto.SignedRequest) (*domain.TxResult, error) {
	id, err := dto.ParseUint256("poolId", poolID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := e.existingPool(ctx, id); err != nil {
		return nil, err
	}

	if err := e.authorize(ctx, auth.DeactivatePoolMessage(id.String()), req.Signature, e.config.AdminAddress); err != nil {
		return nil, err
	}

	result, err := e.relayer.DeactivatePool(ctx, id)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to deactivate pool")
	}
	return result, nil
}

func (e *executor) ListPools(ctx context.Context) (*dto.PoolListResponse, error) {
	ids, err := e.client.GetAllPoolIDs(ctx)
	if err != nil {
		return nil, apierrors.NewServiceError("Failed to get pools").WithCause(err)
	}

	poolIDs := make([]string, len(ids))
	for i, id := range ids {
		poolIDs[i] = id.String()
	}
	return &dto.PoolListResponse{PoolIDs: poolIDs}, nil
}

func (e *executor) GetPool(ctx context.Context, poolID string) (*domain.PoolInfo, error) {
	id, err := dto.ParseUint256("poolId", poolID)
	if err != nil {
		return nil, err
	}
	return e.existingPool(ctx, id)
}

func (e *executor) ClaimReward(ctx context.Context, req dto.ClaimRewardRequest) (*domain.TxResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tokenTypeID, _ := dto.ParseUint256("tokenTypeId", req.TokenTypeID)

	if err := e.authorize(ctx, auth.ClaimRewardMessage(tokenTypeID.String()), req.Signature, req.WalletAddress); err != nil {
		return nil, err
	}

	result, err := e.relayer.ClaimReward(ctx, req.WalletAddress, tokenTypeID)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to claim reward")
	}
	return result, nil
}

func (e *executor) GetClaimableReward(ctx context.Context, walletAddress string, tokenTypeID string) (*dto.ClaimableRewardResponse, error) {
	if err := dto.ValidateAddress("walletAddress", walletAddress); err != nil {
		return nil, err
	}
	id, err := dto.ParseUint256("tokenTypeId", tokenTypeID)
	if err != nil {
		return nil, err
	}

	reward, err := e.client.GetClaimableReward(ctx, walletAddress, id)
	if err != nil {
		return nil, apierrors.NewServiceError("Failed to get claimable reward").WithCause(err)
	}

	return &dto.ClaimableRewardResponse{
		WalletAddress:   checksum(walletAddress),
		TokenTypeID:     id.String(),
		ClaimableReward: reward.String(),
	}, nil
}

func (e *executor) GetTokenType(ctx context.Context, tokenTypeID string) (*domain.TokenTypeData, error) {
	id, err := dto.ParseUint256("tokenTypeId", tokenTypeID)
	if err != nil {
		return nil, err
	}

	data, err := e.client.GetTokenTypeData(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apierrors.NewNotFoundError(fmt.Sprintf("Token type %s not found", id.String()))
		}
		return nil, apierrors.NewServiceError("Failed to get token type").WithCause(err)
	}
	return data, nil
}

func (e *executor) SetTokenURI(ctx context.Context, req dto.SetTokenURIRequest) (*domain.TxResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := e.authorize(ctx, auth.SetTokenURIMessage(req.URI), req.Signature, e.config.AdminAddress); err != nil {
		return nil, err
	}

	result, err := e.relayer.SetURI(ctx, req.URI)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to set token URI")
	}
	return result, nil
}

func (e *executor) SetPoolContract(ctx context.Context, req dto.SetPoolContractRequest) (*domain.TxResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := e.authorize(ctx, auth.SetPoolContractMessage(req.Address), req.Signature, e.config.AdminAddress); err != nil {
		return nil, err
	}

	result, err := e.relayer.SetPoolContract(ctx, req.Address)
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to set pool contract")
	}
	return result, nil
}

func (e *executor) ProcessLottery(ctx context.Context, req dto.ProcessLotteryRequest) (*domain.NotifySummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	lotteryDay, _ := lottery.ParseLotteryDate(req.LotteryDate)

	start := time.Now()
	summary, err := e.oracle.ProcessManual(ctx, lotteryDay, req.WinningNumbers())
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to process lottery")
	}

	logger.InfoCtx(ctx, "Manual lottery processed",
		zap.String("lotteryDate", req.LotteryDate),
		zap.Duration("duration", time.Since(start)))
	return summary, nil
}
