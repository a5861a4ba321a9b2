package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
)

// Signer is a private key allowed to send transactions
type Signer struct {
	key     *ecdsa.PrivateKey
	Address common.Address
}

// NewSigner parses a hex encoded private key, with or without 0x prefix
func NewSigner(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &Signer{key: key, Address: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// TransactorConfig holds the signing and confirmation settings of a transactor
type TransactorConfig struct {
	ChainID             int64
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
}

// Transactor signs, broadcasts and confirms contract calls
//
//go:generate mockgen -source=transactor.go -destination=../../mocks/ethereum_transactor.go -package=mocks -mock_names=Transactor=MockTransactor
type Transactor interface {
	// Send signs and broadcasts a call from signer to a contract
	Send(ctx context.Context, signer *Signer, to common.Address, data []byte, gasLimit uint64) (*types.Transaction, error)

	// WaitMined polls for the receipt of a transaction until the confirmation timeout.
	// A mined but failed transaction returns its receipt together with ErrTransactionReverted.
	WaitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type transactor struct {
	client  adapter.EthClient
	nonces  *NonceManager
	mu      sync.Mutex
	senders map[common.Hash]common.Address
	chainID *big.Int
	timeout time.Duration
	poll    time.Duration
}

// NewTransactor creates a transactor sharing the given nonce manager
func NewTransactor(cfg TransactorConfig, client adapter.EthClient, nonces *NonceManager) Transactor {
	timeout := cfg.ConfirmationTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = 2 * time.Second
	}

	return &transactor{
		client:  client,
		nonces:  nonces,
		senders: make(map[common.Hash]common.Address),
		chainID: big.NewInt(cfg.ChainID),
		timeout: timeout,
		poll:    poll,
	}
}

// Send signs and broadcasts a call from signer to a contract
func (t *transactor) Send(ctx context.Context, signer *Signer, to common.Address, data []byte, gasLimit uint64) (*types.Transaction, error) {
	lease, err := t.nonces.Acquire(ctx, signer.Address, func(ctx context.Context) (uint64, error) {
		nonce, err := t.client.PendingNonceAt(ctx, signer.Address)
		if err != nil {
			return 0, fmt.Errorf("failed to get pending nonce: %w", err)
		}
		return nonce, nil
	})
	if err != nil {
		return nil, err
	}
	defer lease.Release()

	gasPrice, err := t.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    lease.Nonce,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(t.chainID), signer.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := t.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}
	lease.Commit()
	t.trackSender(signed.Hash(), signer.Address)

	logger.InfoCtx(ctx, "Transaction sent",
		zap.String("txHash", signed.Hash().Hex()),
		zap.String("from", signer.Address.Hex()),
		zap.String("to", to.Hex()),
		zap.Uint64("nonce", lease.Nonce))

	return signed, nil
}

// WaitMined polls for the receipt of a transaction until the confirmation timeout
func (t *transactor) WaitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	operation := func() (*types.Receipt, error) {
		receipt, err := t.client.TransactionReceipt(waitCtx, txHash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				logger.WarnCtx(ctx, "Failed to fetch receipt, retrying",
					zap.String("txHash", txHash.Hex()),
					zap.Error(err))
			}
			return nil, err
		}
		return receipt, nil
	}

	receipt, err := backoff.RetryWithData(operation, backoff.WithContext(backoff.NewConstantBackOff(t.poll), waitCtx))
	if err != nil {
		if ctx.Err() == nil && waitCtx.Err() != nil {
			t.resetSenderNonce(ctx, txHash)
			return nil, fmt.Errorf("%w: %s after %s", domain.ErrConfirmationTimeout, txHash.Hex(), t.timeout)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	t.forgetSender(txHash)

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s", domain.ErrTransactionReverted, txHash.Hex())
	}

	logger.InfoCtx(ctx, "Transaction confirmed",
		zap.String("txHash", txHash.Hex()),
		zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()),
		zap.Uint64("gasUsed", receipt.GasUsed))

	return receipt, nil
}

func (t *transactor) trackSender(txHash common.Hash, address common.Address) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.senders[txHash] = address
}

func (t *transactor) forgetSender(txHash common.Hash) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.senders, txHash)
}

// resetSenderNonce drops the local nonce counter of the account that sent a timed out transaction
func (t *transactor) resetSenderNonce(ctx context.Context, txHash common.Hash) {
	t.mu.Lock()
	address, ok := t.senders[txHash]
	delete(t.senders, txHash)
	t.mu.Unlock()
	if !ok {
		return
	}

	t.nonces.Reset(address)
	logger.WarnCtx(ctx, "Nonce counter reset after confirmation timeout",
		zap.String("txHash", txHash.Hex()),
		zap.String("from", address.Hex()))
}
