package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/time/rate"

	"github.com/feral-file/invoice-lottery/internal/adapter"
	"github.com/feral-file/invoice-lottery/internal/domain"
)

// EthereumClient reads the InvoiceToken and Pool contracts and exposes the raw calls the relayer needs
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_client.go -package=mocks -mock_names=EthereumClient=MockEthereumClient
type EthereumClient interface {
	// BalanceOf returns the balance of a token type held by a wallet
	BalanceOf(ctx context.Context, walletAddress string, tokenTypeID *big.Int) (*big.Int, error)

	// GetTokenTypeData returns the immutable data of a token type, ErrNotFound when the donation percent is 0
	GetTokenTypeData(ctx context.Context, tokenTypeID *big.Int) (*domain.TokenTypeData, error)

	// GetPool returns a pool record, ErrNotFound when the stored pool id is 0
	GetPool(ctx context.Context, poolID *big.Int) (*domain.PoolInfo, error)

	// GetAllPoolIDs returns every registered pool id
	GetAllPoolIDs(ctx context.Context) ([]*big.Int, error)

	// GetClaimableReward returns the reward a wallet can still claim for a token type
	GetClaimableReward(ctx context.Context, walletAddress string, tokenTypeID *big.Int) (*big.Int, error)

	// NativeBalance returns the native coin balance of an account
	NativeBalance(ctx context.Context, address string) (*big.Int, error)

	// TransactionReceipt returns the receipt of a mined transaction, ErrNotFound while it is not mined
	TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error)

	// HeaderByNumber returns a header by number, nil for the latest
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// SubscribeFilterLogs subscribes to filter logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// Close closes the connection
	Close()
}

// ClientConfig holds the contract addresses and RPC budget of a client
type ClientConfig struct {
	InvoiceTokenAddress string
	PoolAddress         string
	// RateLimit is the number of RPC calls per second, 0 disables limiting
	RateLimit float64
	Burst     int
}

type ethereumClient struct {
	client       adapter.EthClient
	invoiceToken common.Address
	pool         common.Address
	limiter      *rate.Limiter
}

// NewClient creates a contract client on top of a dialed ethclient
func NewClient(cfg ClientConfig, client adapter.EthClient) EthereumClient {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &ethereumClient{
		client:       client,
		invoiceToken: common.HexToAddress(cfg.InvoiceTokenAddress),
		pool:         common.HexToAddress(cfg.PoolAddress),
		limiter:      limiter,
	}
}

// call packs a view call, waits for RPC budget, executes it and unpacks the outputs
func (c *ethereumClient) call(ctx context.Context, contract common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	outputs, err := contractABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}

	return outputs, nil
}

// BalanceOf returns the balance of a token type held by a wallet
func (c *ethereumClient) BalanceOf(ctx context.Context, walletAddress string, tokenTypeID *big.Int) (*big.Int, error) {
	if !common.IsHexAddress(walletAddress) {
		return nil, fmt.Errorf("%w: invalid wallet address %s", domain.ErrValidation, walletAddress)
	}

	outputs, err := c.call(ctx, c.invoiceToken, InvoiceTokenABI, "balanceOf", common.HexToAddress(walletAddress), tokenTypeID)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(outputs[0], new(big.Int)).(*big.Int), nil
}

// GetTokenTypeData returns the immutable data of a token type
func (c *ethereumClient) GetTokenTypeData(ctx context.Context, tokenTypeID *big.Int) (*domain.TokenTypeData, error) {
	outputs, err := c.call(ctx, c.invoiceToken, InvoiceTokenABI, "getTokenTypeData", tokenTypeID)
	if err != nil {
		return nil, err
	}

	donationPercent := outputs[0].(uint8)
	if donationPercent == 0 {
		return nil, fmt.Errorf("token type %s: %w", tokenTypeID.String(), domain.ErrNotFound)
	}

	poolID := abi.ConvertType(outputs[1], new(big.Int)).(*big.Int)
	lotteryDay := abi.ConvertType(outputs[2], new(big.Int)).(*big.Int)

	return &domain.TokenTypeData{
		TokenTypeID:     tokenTypeID.String(),
		DonationPercent: donationPercent,
		PoolID:          poolID.String(),
		LotteryDay:      time.Unix(lotteryDay.Int64(), 0).UTC(),
		HasBeenDrawn:    outputs[3].(bool),
	}, nil
}

// GetPool returns a pool record
func (c *ethereumClient) GetPool(ctx context.Context, poolID *big.Int) (*domain.PoolInfo, error) {
	outputs, err := c.call(ctx, c.pool, PoolABI, "pools", poolID)
	if err != nil {
		return nil, err
	}

	storedID := abi.ConvertType(outputs[0], new(big.Int)).(*big.Int)
	if storedID.Sign() == 0 {
		return nil, fmt.Errorf("pool %s: %w", poolID.String(), domain.ErrNotFound)
	}

	lastWithdrawal := abi.ConvertType(outputs[8], new(big.Int)).(*big.Int)

	return &domain.PoolInfo{
		PoolID:                storedID.String(),
		Beneficiary:           outputs[1].(common.Address).Hex(),
		Name:                  outputs[2].(string),
		LotteryMonth:          abi.ConvertType(outputs[3], new(big.Int)).(*big.Int).String(),
		Active:                outputs[4].(bool),
		MinDonationPercent:    outputs[5].(uint8),
		TotalDonationReceived: abi.ConvertType(outputs[6], new(big.Int)).(*big.Int).String(),
		PendingDonation:       abi.ConvertType(outputs[7], new(big.Int)).(*big.Int).String(),
		LastWithdrawalTime:    time.Unix(lastWithdrawal.Int64(), 0).UTC(),
	}, nil
}

// GetAllPoolIDs returns every registered pool id
func (c *ethereumClient) GetAllPoolIDs(ctx context.Context) ([]*big.Int, error) {
	outputs, err := c.call(ctx, c.pool, PoolABI, "getAllPoolIds")
	if err != nil {
		return nil, err
	}

	return *abi.ConvertType(outputs[0], new([]*big.Int)).(*[]*big.Int), nil
}

// GetClaimableReward returns the reward a wallet can still claim for a token type
func (c *ethereumClient) GetClaimableReward(ctx context.Context, walletAddress string, tokenTypeID *big.Int) (*big.Int, error) {
	if !common.IsHexAddress(walletAddress) {
		return nil, fmt.Errorf("%w: invalid wallet address %s", domain.ErrValidation, walletAddress)
	}

	outputs, err := c.call(ctx, c.pool, PoolABI, "getClaimableReward", common.HexToAddress(walletAddress), tokenTypeID)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(outputs[0], new(big.Int)).(*big.Int), nil
}

// NativeBalance returns the native coin balance of an account
func (c *ethereumClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	balance, err := c.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// TransactionReceipt returns the receipt of a mined transaction
func (c *ethereumClient) TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("receipt %s: %w", txHash, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get receipt %s: %w", txHash, err)
	}
	return receipt, nil
}

// HeaderByNumber returns a header by number
func (c *ethereumClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

// SubscribeFilterLogs subscribes to filter logs
func (c *ethereumClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

// Close closes the connection
func (c *ethereumClient) Close() {
	c.client.Close()
}
