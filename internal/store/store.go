package store

import (
	"context"
	"time"

	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

// CreateUserInput represents the input for registering a user
type CreateUserInput struct {
	WalletAddress   string
	CarrierNumber   string
	PoolID          string
	DonationPercent int
}

// UpdateUserInput represents the mutable settings of a user
type UpdateUserInput struct {
	PoolID          *string
	DonationPercent *int
}

// CreateInvoiceInput represents the input for storing a new invoice before it is minted
type CreateInvoiceInput struct {
	InvoiceNumber   string
	CarrierNumber   string
	WalletAddress   string
	PoolID          string
	DonationPercent int
	Amount          string
	PurchaseDate    time.Time
	LotteryDay      time.Time
}

// CreateRelayerTransactionInput represents a freshly submitted transaction
type CreateRelayerTransactionInput struct {
	TxHash      string
	TxType      schema.RelayerTxType
	FromAddress string
	ToAddress   string
	Metadata    map[string]interface{}
}

// FinalizeRelayerTransactionInput represents the confirmed outcome of a relayer transaction
type FinalizeRelayerTransactionInput struct {
	Status       schema.RelayerTxStatus
	GasUsed      *string
	GasPrice     *string
	ErrorMessage *string
	ConfirmedAt  time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateUser registers a carrier code for a wallet, ErrAlreadyExists when either is taken
	CreateUser(ctx context.Context, input CreateUserInput) (*schema.User, error)
	// GetUserByWallet retrieves a user by wallet address, nil when absent
	GetUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error)
	// GetUserByCarrier retrieves a user by carrier number, nil when absent
	GetUserByCarrier(ctx context.Context, carrierNumber string) (*schema.User, error)
	// UpdateUser updates the pool and donation settings of a user, nil when absent
	UpdateUser(ctx context.Context, walletAddress string, input UpdateUserInput) (*schema.User, error)

	// CreateInvoice stores an unminted invoice, ErrAlreadyExists when the number is taken
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*schema.Invoice, error)
	// DeleteInvoice removes an invoice that never got a token type
	DeleteInvoice(ctx context.Context, invoiceID uint64) error
	// AssignInvoiceTokenType records the minted token type on the invoice and links it to its pool
	AssignInvoiceTokenType(ctx context.Context, invoiceID uint64, tokenTypeID string) error
	// GetInvoiceByNumber retrieves an invoice by number, nil when absent
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (*schema.Invoice, error)
	// GetInvoicesByWallet lists invoices minted to a wallet, newest first, with the total count
	GetInvoicesByWallet(ctx context.Context, walletAddress string, limit int, offset uint64) ([]schema.Invoice, uint64, error)
	// GetUndrawnInvoices lists invoices eligible for a lottery day that have not been drawn
	GetUndrawnInvoices(ctx context.Context, lotteryDay time.Time) ([]schema.Invoice, error)
	// GetUndrawnInvoicesByNumbers lists undrawn invoices of a lottery day whose number is in the given set
	GetUndrawnInvoicesByNumbers(ctx context.Context, lotteryDay time.Time, invoiceNumbers []string) ([]schema.Invoice, error)
	// MarkInvoiceDrawn flips drawn to true and records the prize, false when it was already drawn
	MarkInvoiceDrawn(ctx context.Context, invoiceID uint64, prizeAmount int64) (bool, error)
	// GetInvoiceWalletsByTokenType returns the distinct owners of invoices minted into a token type
	GetInvoiceWalletsByTokenType(ctx context.Context, tokenTypeID string) ([]string, error)
	// GetClaimedWalletsByTokenType returns the wallets whose invoices of a token type are all claimed
	GetClaimedWalletsByTokenType(ctx context.Context, tokenTypeID string) ([]string, error)
	// MarkInvoicesClaimed flips claimed for the unclaimed invoices of a token type owned by the given wallets
	MarkInvoicesClaimed(ctx context.Context, tokenTypeID string, walletAddresses []string, claimedAt time.Time) (int64, error)

	// GetTokenHolders returns every cached balance of a token type regardless of age
	GetTokenHolders(ctx context.Context, tokenTypeID string) ([]schema.TokenHolder, error)
	// UpsertTokenHolders inserts or refreshes cached balances
	UpsertTokenHolders(ctx context.Context, holders []schema.TokenHolder) error

	// CreateRelayerTransaction records a submitted transaction as pending
	CreateRelayerTransaction(ctx context.Context, input CreateRelayerTransactionInput) (*schema.RelayerTransaction, error)
	// FinalizeRelayerTransaction moves a pending transaction to its final status, false when it was not pending
	FinalizeRelayerTransaction(ctx context.Context, txHash string, input FinalizeRelayerTransactionInput) (bool, error)
	// GetRelayerTransactionByHash retrieves a relayer transaction, nil when absent
	GetRelayerTransactionByHash(ctx context.Context, txHash string) (*schema.RelayerTransaction, error)
	// HasSuccessfulTokenTypeTransaction reports whether a transaction of the type succeeded for a token type
	HasSuccessfulTokenTypeTransaction(ctx context.Context, txType schema.RelayerTxType, tokenTypeID string) (bool, error)
	// GetPendingTokenTypeTransactions lists the still pending transactions of a type for a token type, oldest first
	GetPendingTokenTypeTransactions(ctx context.Context, txType schema.RelayerTxType, tokenTypeID string) ([]schema.RelayerTransaction, error)

	// CreateSystemLog appends an entry to the system log
	CreateSystemLog(ctx context.Context, level schema.SystemLogLevel, message string, logContext map[string]interface{}) error

	// GetBlockCursor retrieves the last processed block number for a cursor name
	GetBlockCursor(ctx context.Context, name string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a cursor name
	SetBlockCursor(ctx context.Context, name string, blockNumber uint64) error
}
