package relayer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/alert"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/providers/ethereum"
	"github.com/feral-file/invoice-lottery/internal/store"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

// Gas limits per call
const (
	GasLimitMint                     uint64 = 200000
	GasLimitNotifyLotteryResult      uint64 = 300000
	GasLimitUpdateRewardPerToken     uint64 = 100000
	GasLimitBatchClaimPerHolder      uint64 = 500000
	GasLimitMarkAsDistributed        uint64 = 100000
	GasLimitRegisterPool             uint64 = 250000
	GasLimitUpdateMinDonationPercent uint64 = 150000
	GasLimitAdmin                    uint64 = 200000
)

// Signers holds the keys the relayer sends from
type Signers struct {
	// Relayer pays for mints
	Relayer *ethereum.Signer
	// Oracle sends settlement calls to the pool contract
	Oracle *ethereum.Signer
	// Admin sends pool administration, claimReward and token configuration calls
	Admin *ethereum.Signer
}

// NewSigners parses the configured keys. Empty oracle and admin keys fall back to the relayer key.
func NewSigners(relayerKey, oracleKey, adminKey string) (*Signers, error) {
	relayerSigner, err := ethereum.NewSigner(relayerKey)
	if err != nil {
		return nil, fmt.Errorf("relayer key: %w", err)
	}

	signers := &Signers{Relayer: relayerSigner, Oracle: relayerSigner, Admin: relayerSigner}
	if oracleKey != "" {
		if signers.Oracle, err = ethereum.NewSigner(oracleKey); err != nil {
			return nil, fmt.Errorf("oracle key: %w", err)
		}
	}
	if adminKey != "" {
		if signers.Admin, err = ethereum.NewSigner(adminKey); err != nil {
			return nil, fmt.Errorf("admin key: %w", err)
		}
	}
	return signers, nil
}

// Config holds the contract addresses and the balance threshold of the relayer
type Config struct {
	InvoiceTokenAddress string
	PoolAddress         string
	// MinBalance is the native balance below which a low balance alert is raised
	MinBalance *big.Int
}

// Relayer is the single path for state-changing contract calls.
// Every call is recorded in relayer_transactions and awaited until confirmation.
//
//go:generate mockgen -source=relayer.go -destination=../mocks/relayer.go -package=mocks -mock_names=Relayer=MockRelayer
type Relayer interface {
	// Mint mints one invoice token and returns the token type id emitted by the contract
	Mint(ctx context.Context, to string, donationPercent uint8, poolID *big.Int, lotteryDay time.Time) (*domain.MintResult, error)
	// NotifyLotteryResult records the prize of a token type, prizeAmount is in wei
	NotifyLotteryResult(ctx context.Context, tokenTypeID *big.Int, prizeAmount *big.Int) (*domain.TxResult, error)
	// UpdateRewardPerToken overwrites the reward per unit of a token type
	UpdateRewardPerToken(ctx context.Context, tokenTypeID *big.Int, rewardPerToken *big.Int) (*domain.TxResult, error)
	// BatchClaimReward claims the reward of a token type for each wallet
	BatchClaimReward(ctx context.Context, walletAddresses []string, tokenTypeID *big.Int) (*domain.TxResult, error)
	// MarkAsDistributed flips the distributed flag of a token type
	MarkAsDistributed(ctx context.Context, tokenTypeID *big.Int) (*domain.TxResult, error)

	// RegisterPool registers a charity pool
	RegisterPool(ctx context.Context, poolID *big.Int, beneficiary string, name string, lotteryMonth *big.Int) (*domain.TxResult, error)
	// UpdateMinDonationPercent updates the minimum donation percent of a pool
	UpdateMinDonationPercent(ctx context.Context, poolID *big.Int, percent uint8) (*domain.TxResult, error)
	// WithdrawDonation withdraws the pending donations of a pool to its beneficiary
	WithdrawDonation(ctx context.Context, poolID *big.Int) (*domain.TxResult, error)
	// UpdateBeneficiary replaces the beneficiary of a pool
	UpdateBeneficiary(ctx context.Context, poolID *big.Int, beneficiary string) (*domain.TxResult, error)
	// DeactivatePool deactivates a pool
	DeactivatePool(ctx context.Context, poolID *big.Int) (*domain.TxResult, error)

	// ClaimReward claims the reward of a token type on behalf of a wallet
	ClaimReward(ctx context.Context, walletAddress string, tokenTypeID *big.Int) (*domain.TxResult, error)
	// SetURI sets the metadata URI of the invoice token
	SetURI(ctx context.Context, uri string) (*domain.TxResult, error)
	// SetPoolContract points the invoice token at a pool contract
	SetPoolContract(ctx context.Context, address string) (*domain.TxResult, error)

	// CheckBalance returns the relayer native balance and raises an alert when it is below the minimum
	CheckBalance(ctx context.Context) (*big.Int, error)

	// ReconcilePending looks up the receipts of the pending transactions of a type for a token type,
	// records their outcome and reports whether one of them succeeded. Unmined transactions stay pending.
	ReconcilePending(ctx context.Context, txType schema.RelayerTxType, tokenTypeID string) (bool, error)
}

type relayer struct {
	cfg          Config
	signers      *Signers
	invoiceToken common.Address
	pool         common.Address
	transactor   ethereum.Transactor
	client       ethereum.EthereumClient
	store        store.Store
	alerter      alert.Alerter
	clock        adapter.Clock
}

// New creates a new relayer
func New(
	cfg Config,
	signers *Signers,
	transactor ethereum.Transactor,
	client ethereum.EthereumClient,
	st store.Store,
	alerter alert.Alerter,
	clock adapter.Clock,
) Relayer {
	return &relayer{
		cfg:          cfg,
		signers:      signers,
		invoiceToken: common.HexToAddress(cfg.InvoiceTokenAddress),
		pool:         common.HexToAddress(cfg.PoolAddress),
		transactor:   transactor,
		client:       client,
		store:        st,
		alerter:      alerter,
		clock:        clock,
	}
}

// contractCall describes one state-changing call
type contractCall struct {
	txType   schema.RelayerTxType
	signer   *ethereum.Signer
	to       common.Address
	data     []byte
	gasLimit uint64
	metadata map[string]interface{}
}

// submit sends a call, records it as pending, waits for the receipt and records the outcome once.
// When the wait times out or is cancelled the row stays pending since the outcome is unknown.
func (r *relayer) submit(ctx context.Context, call contractCall) (*types.Receipt, error) {
	tx, err := r.transactor.Send(ctx, call.signer, call.to, call.data, call.gasLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", call.txType, err)
	}
	txHash := tx.Hash()

	if _, err := r.store.CreateRelayerTransaction(ctx, store.CreateRelayerTransactionInput{
		TxHash:      txHash.Hex(),
		TxType:      call.txType,
		FromAddress: call.signer.Address.Hex(),
		ToAddress:   call.to.Hex(),
		Metadata:    call.metadata,
	}); err != nil {
		// the transaction is already broadcast, keep waiting for it
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to record relayer transaction"),
			zap.String("txHash", txHash.Hex()),
			zap.String("txType", string(call.txType)))
	}

	receipt, err := r.transactor.WaitMined(ctx, txHash)
	if receipt != nil && receipt.TxHash == (common.Hash{}) {
		receipt.TxHash = txHash
	}
	if err != nil {
		if receipt == nil {
			logger.WarnCtx(ctx, "Transaction outcome unknown",
				zap.String("txHash", txHash.Hex()),
				zap.String("txType", string(call.txType)),
				zap.Error(err))
			return nil, fmt.Errorf("%s: %w", call.txType, &domain.PendingTransactionError{TxHash: txHash.Hex(), Err: err})
		}

		errMsg := err.Error()
		r.finalize(ctx, txHash.Hex(), store.FinalizeRelayerTransactionInput{
			Status:       schema.RelayerTxStatusFailed,
			GasUsed:      gasUsed(receipt),
			GasPrice:     gasPrice(tx, receipt),
			ErrorMessage: &errMsg,
			ConfirmedAt:  r.clock.Now(),
		})
		return receipt, fmt.Errorf("%s %s: %w", call.txType, txHash.Hex(), err)
	}

	r.finalize(ctx, txHash.Hex(), store.FinalizeRelayerTransactionInput{
		Status:      schema.RelayerTxStatusSuccess,
		GasUsed:     gasUsed(receipt),
		GasPrice:    gasPrice(tx, receipt),
		ConfirmedAt: r.clock.Now(),
	})

	return receipt, nil
}

func (r *relayer) finalize(ctx context.Context, txHash string, input store.FinalizeRelayerTransactionInput) {
	if _, err := r.store.FinalizeRelayerTransaction(ctx, txHash, input); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to finalize relayer transaction"),
			zap.String("txHash", txHash),
			zap.String("status", string(input.Status)))
	}
}

func (r *relayer) ReconcilePending(ctx context.Context, txType schema.RelayerTxType, tokenTypeID string) (bool, error) {
	pending, err := r.store.GetPendingTokenTypeTransactions(ctx, txType, tokenTypeID)
	if err != nil {
		return false, err
	}

	succeeded := false
	for _, tx := range pending {
		receipt, err := r.client.TransactionReceipt(ctx, tx.TxHash)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logger.WarnCtx(ctx, "Pending transaction still not mined",
					zap.String("txHash", tx.TxHash),
					zap.String("txType", string(txType)))
				continue
			}
			return false, err
		}

		input := store.FinalizeRelayerTransactionInput{
			Status:      schema.RelayerTxStatusSuccess,
			GasUsed:     gasUsed(receipt),
			ConfirmedAt: r.clock.Now(),
		}
		if receipt.EffectiveGasPrice != nil {
			price := receipt.EffectiveGasPrice.String()
			input.GasPrice = &price
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			errMsg := domain.ErrTransactionReverted.Error()
			input.Status = schema.RelayerTxStatusFailed
			input.ErrorMessage = &errMsg
		} else {
			succeeded = true
		}

		logger.InfoCtx(ctx, "Reconciled pending transaction",
			zap.String("txHash", tx.TxHash),
			zap.String("txType", string(txType)),
			zap.String("status", string(input.Status)))
		r.finalize(ctx, tx.TxHash, input)
	}

	return succeeded, nil
}

func gasUsed(receipt *types.Receipt) *string {
	v := strconv.FormatUint(receipt.GasUsed, 10)
	return &v
}

func gasPrice(tx *types.Transaction, receipt *types.Receipt) *string {
	price := receipt.EffectiveGasPrice
	if price == nil {
		price = tx.GasPrice()
	}
	if price == nil {
		return nil
	}
	v := price.String()
	return &v
}

func txResult(receipt *types.Receipt) *domain.TxResult {
	result := &domain.TxResult{
		TxHash:  receipt.TxHash.Hex(),
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return result
}

func pack(contractABI interface {
	Pack(name string, args ...interface{}) ([]byte, error)
}, method string, args ...interface{}) ([]byte, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode %s: %w", domain.ErrValidation, method, err)
	}
	return data, nil
}

func parseAddress(address string) (common.Address, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("%w: invalid address %q", domain.ErrValidation, address)
	}
	return common.HexToAddress(address), nil
}

// call sends a call and converts its receipt into a TxResult
func (r *relayer) call(ctx context.Context, call contractCall) (*domain.TxResult, error) {
	receipt, err := r.submit(ctx, call)
	if err != nil {
		return nil, err
	}
	return txResult(receipt), nil
}

func (r *relayer) Mint(ctx context.Context, to string, donationPercent uint8, poolID *big.Int, lotteryDay time.Time) (*domain.MintResult, error) {
	recipient, err := parseAddress(to)
	if err != nil {
		return nil, err
	}

	data, err := pack(ethereum.InvoiceTokenABI, "mint",
		recipient, donationPercent, poolID, big.NewInt(lotteryDay.Unix()), big.NewInt(1))
	if err != nil {
		return nil, err
	}

	receipt, err := r.submit(ctx, contractCall{
		txType:   schema.RelayerTxTypeMint,
		signer:   r.signers.Relayer,
		to:       r.invoiceToken,
		data:     data,
		gasLimit: GasLimitMint,
		metadata: map[string]interface{}{
			"to":               recipient.Hex(),
			"donation_percent": donationPercent,
			"pool_id":          poolID.String(),
			"lottery_day":      lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT),
		},
	})
	if err != nil {
		return nil, err
	}

	tokenTypeID, err := ethereum.ParseTokensMinted(receipt, r.invoiceToken)
	if err != nil {
		return nil, fmt.Errorf("mint %s: %w", receipt.TxHash.Hex(), err)
	}

	return &domain.MintResult{TxResult: *txResult(receipt), TokenTypeID: tokenTypeID.String()}, nil
}

func (r *relayer) NotifyLotteryResult(ctx context.Context, tokenTypeID *big.Int, prizeAmount *big.Int) (*domain.TxResult, error) {
	data, err := pack(ethereum.PoolABI, "notifyLotteryResult", tokenTypeID, prizeAmount)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeNotifyLotteryResult,
		signer:   r.signers.Oracle,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitNotifyLotteryResult,
		metadata: map[string]interface{}{
			"token_type_id": tokenTypeID.String(),
			"prize_amount":  prizeAmount.String(),
		},
	})
}

func (r *relayer) UpdateRewardPerToken(ctx context.Context, tokenTypeID *big.Int, rewardPerToken *big.Int) (*domain.TxResult, error) {
	data, err := pack(ethereum.PoolABI, "updateRewardPerToken", tokenTypeID, rewardPerToken)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeUpdateRewardPerToken,
		signer:   r.signers.Oracle,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitUpdateRewardPerToken,
		metadata: map[string]interface{}{
			"token_type_id":    tokenTypeID.String(),
			"reward_per_token": rewardPerToken.String(),
		},
	})
}

func (r *relayer) BatchClaimReward(ctx context.Context, walletAddresses []string, tokenTypeID *big.Int) (*domain.TxResult, error) {
	if len(walletAddresses) == 0 {
		return nil, fmt.Errorf("%w: no wallets to claim for", domain.ErrValidation)
	}

	users := make([]common.Address, 0, len(walletAddresses))
	tokenTypeIDs := make([]*big.Int, 0, len(walletAddresses))
	for _, wallet := range walletAddresses {
		address, err := parseAddress(wallet)
		if err != nil {
			return nil, err
		}
		users = append(users, address)
		tokenTypeIDs = append(tokenTypeIDs, tokenTypeID)
	}

	data, err := pack(ethereum.PoolABI, "batchClaimReward", users, tokenTypeIDs)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeBatchClaimReward,
		signer:   r.signers.Oracle,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitBatchClaimPerHolder * uint64(len(users)),
		metadata: map[string]interface{}{
			"token_type_id": tokenTypeID.String(),
			"holder_count":  len(users),
		},
	})
}

func (r *relayer) MarkAsDistributed(ctx context.Context, tokenTypeID *big.Int) (*domain.TxResult, error) {
	data, err := pack(ethereum.PoolABI, "markAsDistributed", tokenTypeID)
	if err != nil {
		return nil, err
	}

	return r.call(ctx, contractCall{
		txType:   schema.RelayerTxTypeMarkAsDistributed,
		signer:   r.signers.Oracle,
		to:       r.pool,
		data:     data,
		gasLimit: GasLimitMarkAsDistributed,
		metadata: map[string]interface{}{
			"token_type_id": tokenTypeID.String(),
		},
	})
}

// CheckBalance returns the relayer native balance and raises an alert when it is below the minimum
func (r *relayer) CheckBalance(ctx context.Context) (*big.Int, error) {
	address := r.signers.Relayer.Address.Hex()
	balance, err := r.client.NativeBalance(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get relayer balance: %w", err)
	}

	logger.InfoCtx(ctx, "Relayer balance", zap.String("address", address), zap.String("balance", balance.String()))

	if r.cfg.MinBalance != nil && balance.Cmp(r.cfg.MinBalance) < 0 {
		message := fmt.Sprintf("Relayer %s balance %s wei is below %s wei", address, balance, r.cfg.MinBalance)
		if err := r.alerter.SendAlert(ctx, alert.TypeLowBalance, message); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to send low balance alert"))
		}
	}

	return balance, nil
}
