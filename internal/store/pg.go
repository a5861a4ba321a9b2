package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/invoice-lottery/internal/domain"
	"github.com/feral-file/invoice-lottery/internal/logger"
	"github.com/feral-file/invoice-lottery/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, the defaults of NormalizeConnectionPoolSettings are used.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 10
	}
	if maxIdleConns == 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateUser registers a carrier code for a wallet
func (s *pgStore) CreateUser(ctx context.Context, input CreateUserInput) (*schema.User, error) {
	user := schema.User{
		WalletAddress:   input.WalletAddress,
		CarrierNumber:   input.CarrierNumber,
		PoolID:          input.PoolID,
		DonationPercent: input.DonationPercent,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("wallet or carrier number already registered: %w", domain.ErrAlreadyExists)
	}

	return &user, nil
}

// GetUserByWallet retrieves a user by wallet address
func (s *pgStore) GetUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return &user, nil
}

// GetUserByCarrier retrieves a user by carrier number
func (s *pgStore) GetUserByCarrier(ctx context.Context, carrierNumber string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("carrier_number = ?", carrierNumber).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by carrier: %w", err)
	}
	return &user, nil
}

// UpdateUser updates the pool and donation settings of a user
func (s *pgStore) UpdateUser(ctx context.Context, walletAddress string, input UpdateUserInput) (*schema.User, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if input.PoolID != nil {
		updates["pool_id"] = *input.PoolID
	}
	if input.DonationPercent != nil {
		updates["donation_percent"] = *input.DonationPercent
	}

	result := s.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("wallet_address = ?", walletAddress).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return s.GetUserByWallet(ctx, walletAddress)
}

// CreateInvoice stores an unminted invoice
func (s *pgStore) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*schema.Invoice, error) {
	invoice := schema.Invoice{
		InvoiceNumber:   input.InvoiceNumber,
		CarrierNumber:   input.CarrierNumber,
		WalletAddress:   input.WalletAddress,
		PoolID:          input.PoolID,
		DonationPercent: input.DonationPercent,
		Amount:          input.Amount,
		PurchaseDate:    input.PurchaseDate,
		LotteryDay:      input.LotteryDay,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "invoice_number"}},
			DoNothing: true,
		}).
		Create(&invoice)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("invoice %s already registered: %w", input.InvoiceNumber, domain.ErrAlreadyExists)
	}

	return &invoice, nil
}

// DeleteInvoice removes an invoice that never got a token type
func (s *pgStore) DeleteInvoice(ctx context.Context, invoiceID uint64) error {
	err := s.db.WithContext(ctx).
		Where("id = ? AND token_type_id IS NULL", invoiceID).
		Delete(&schema.Invoice{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// AssignInvoiceTokenType records the minted token type on the invoice and inserts its pool_invoices row
func (s *pgStore) AssignInvoiceTokenType(ctx context.Context, invoiceID uint64, tokenTypeID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice schema.Invoice
		if err := tx.Where("id = ?", invoiceID).First(&invoice).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("invoice %d: %w", invoiceID, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		if err := tx.Model(&schema.Invoice{}).
			Where("id = ?", invoiceID).
			Updates(map[string]interface{}{
				"token_type_id": tokenTypeID,
				"updated_at":    time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to set token type: %w", err)
		}

		poolInvoice := schema.PoolInvoice{
			PoolID:        invoice.PoolID,
			TokenTypeID:   tokenTypeID,
			InvoiceNumber: invoice.InvoiceNumber,
			LotteryDay:    invoice.LotteryDay,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "invoice_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"token_type_id"}),
		}).Create(&poolInvoice).Error; err != nil {
			return fmt.Errorf("failed to create pool invoice: %w", err)
		}

		return nil
	})
}

// GetInvoiceByNumber retrieves an invoice by number
func (s *pgStore) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (*schema.Invoice, error) {
	var invoice schema.Invoice
	err := s.db.WithContext(ctx).Where("invoice_number = ?", invoiceNumber).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return &invoice, nil
}

// GetInvoicesByWallet lists invoices minted to a wallet
func (s *pgStore) GetInvoicesByWallet(ctx context.Context, walletAddress string, limit int, offset uint64) ([]schema.Invoice, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Invoice{}).Where("wallet_address = ?", walletAddress)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var invoices []schema.Invoice
	if err := query.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&invoices).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, uint64(total), nil //nolint:gosec,G115
}

// GetUndrawnInvoices lists invoices eligible for a lottery day that have not been drawn
func (s *pgStore) GetUndrawnInvoices(ctx context.Context, lotteryDay time.Time) ([]schema.Invoice, error) {
	var invoices []schema.Invoice
	err := s.db.WithContext(ctx).
		Where("lottery_day = ? AND drawn = false", lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT)).
		Order("id ASC").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get undrawn invoices: %w", err)
	}
	return invoices, nil
}

// GetUndrawnInvoicesByNumbers lists undrawn invoices of a lottery day whose number is in the given set
func (s *pgStore) GetUndrawnInvoicesByNumbers(ctx context.Context, lotteryDay time.Time, invoiceNumbers []string) ([]schema.Invoice, error) {
	if len(invoiceNumbers) == 0 {
		return []schema.Invoice{}, nil
	}

	var invoices []schema.Invoice
	err := s.db.WithContext(ctx).
		Where("lottery_day = ? AND drawn = false", lotteryDay.Format(domain.LOTTERY_DATE_LAYOUT)).
		Where("invoice_number IN ?", invoiceNumbers).
		Order("id ASC").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get undrawn invoices by numbers: %w", err)
	}
	return invoices, nil
}

// MarkInvoiceDrawn flips drawn to true and records the prize amount
func (s *pgStore) MarkInvoiceDrawn(ctx context.Context, invoiceID uint64, prizeAmount int64) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Invoice{}).
		Where("id = ? AND drawn = false", invoiceID).
		Updates(map[string]interface{}{
			"drawn":        true,
			"prize_amount": prizeAmount,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark invoice drawn: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetInvoiceWalletsByTokenType returns the distinct owners of invoices minted into a token type
func (s *pgStore) GetInvoiceWalletsByTokenType(ctx context.Context, tokenTypeID string) ([]string, error) {
	var wallets []string
	err := s.db.WithContext(ctx).
		Model(&schema.Invoice{}).
		Distinct("wallet_address").
		Where("token_type_id = ?", tokenTypeID).
		Order("wallet_address").
		Pluck("wallet_address", &wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice wallets: %w", err)
	}
	return wallets, nil
}

// GetClaimedWalletsByTokenType returns the wallets whose invoices of a token type are all claimed
func (s *pgStore) GetClaimedWalletsByTokenType(ctx context.Context, tokenTypeID string) ([]string, error) {
	var wallets []string
	err := s.db.WithContext(ctx).
		Model(&schema.Invoice{}).
		Select("wallet_address").
		Where("token_type_id = ?", tokenTypeID).
		Group("wallet_address").
		Having("bool_and(claimed)").
		Pluck("wallet_address", &wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get claimed wallets: %w", err)
	}
	return wallets, nil
}

// MarkInvoicesClaimed flips claimed for the unclaimed invoices of a token type owned by the given wallets
func (s *pgStore) MarkInvoicesClaimed(ctx context.Context, tokenTypeID string, walletAddresses []string, claimedAt time.Time) (int64, error) {
	if len(walletAddresses) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Invoice{}).
		Where("token_type_id = ? AND wallet_address IN ? AND claimed = false", tokenTypeID, walletAddresses).
		Updates(map[string]interface{}{
			"claimed":    true,
			"claimed_at": claimedAt,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark invoices claimed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// GetTokenHolders returns every cached balance of a token type
func (s *pgStore) GetTokenHolders(ctx context.Context, tokenTypeID string) ([]schema.TokenHolder, error) {
	var holders []schema.TokenHolder
	err := s.db.WithContext(ctx).
		Where("token_type_id = ?", tokenTypeID).
		Order("wallet_address").
		Find(&holders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get token holders: %w", err)
	}
	return holders, nil
}

// UpsertTokenHolders inserts or refreshes cached balances
func (s *pgStore) UpsertTokenHolders(ctx context.Context, holders []schema.TokenHolder) error {
	if len(holders) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_type_id"}, {Name: "wallet_address"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance", "last_updated"}),
		}).
		CreateInBatches(&holders, 500).Error
	if err != nil {
		return fmt.Errorf("failed to upsert token holders: %w", err)
	}
	return nil
}

// CreateRelayerTransaction records a submitted transaction as pending
func (s *pgStore) CreateRelayerTransaction(ctx context.Context, input CreateRelayerTransactionInput) (*schema.RelayerTransaction, error) {
	var metadata datatypes.JSON
	if input.Metadata != nil {
		raw, err := json.Marshal(input.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadata = raw
	}

	tx := schema.RelayerTransaction{
		TxHash:      input.TxHash,
		TxType:      input.TxType,
		FromAddress: input.FromAddress,
		ToAddress:   input.ToAddress,
		Status:      schema.RelayerTxStatusPending,
		Metadata:    metadata,
	}

	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return nil, fmt.Errorf("failed to create relayer transaction: %w", err)
	}
	return &tx, nil
}

// FinalizeRelayerTransaction moves a pending transaction to its final status
func (s *pgStore) FinalizeRelayerTransaction(ctx context.Context, txHash string, input FinalizeRelayerTransactionInput) (bool, error) {
	updates := map[string]interface{}{
		"status":        input.Status,
		"gas_used":      input.GasUsed,
		"gas_price":     input.GasPrice,
		"error_message": input.ErrorMessage,
		"confirmed_at":  input.ConfirmedAt,
		"updated_at":    time.Now(),
	}

	result := s.db.WithContext(ctx).
		Model(&schema.RelayerTransaction{}).
		Where("tx_hash = ? AND status = ?", txHash, schema.RelayerTxStatusPending).
		Updates(updates)
	if result.Error != nil {
		return false, fmt.Errorf("failed to finalize relayer transaction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		logger.WarnCtx(ctx, "Relayer transaction was not pending, final status ignored",
			zap.String("txHash", txHash),
			zap.String("status", string(input.Status)))
		return false, nil
	}

	return true, nil
}

// GetRelayerTransactionByHash retrieves a relayer transaction
func (s *pgStore) GetRelayerTransactionByHash(ctx context.Context, txHash string) (*schema.RelayerTransaction, error) {
	var tx schema.RelayerTransaction
	err := s.db.WithContext(ctx).Where("tx_hash = ?", txHash).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get relayer transaction: %w", err)
	}
	return &tx, nil
}

// HasSuccessfulTokenTypeTransaction reports whether a transaction of the type succeeded for a token type
func (s *pgStore) HasSuccessfulTokenTypeTransaction(ctx context.Context, txType schema.RelayerTxType, tokenTypeID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.RelayerTransaction{}).
		Where("tx_type = ? AND status = ?", txType, schema.RelayerTxStatusSuccess).
		Where(datatypes.JSONQuery("metadata").Equals(tokenTypeID, "token_type_id")).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check relayer transactions: %w", err)
	}
	return count > 0, nil
}

// GetPendingTokenTypeTransactions lists the still pending transactions of a type for a token type
func (s *pgStore) GetPendingTokenTypeTransactions(ctx context.Context, txType schema.RelayerTxType, tokenTypeID string) ([]schema.RelayerTransaction, error) {
	var txs []schema.RelayerTransaction
	err := s.db.WithContext(ctx).
		Where("tx_type = ? AND status = ?", txType, schema.RelayerTxStatusPending).
		Where(datatypes.JSONQuery("metadata").Equals(tokenTypeID, "token_type_id")).
		Order("id ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending relayer transactions: %w", err)
	}
	return txs, nil
}

// CreateSystemLog appends an entry to the system log
func (s *pgStore) CreateSystemLog(ctx context.Context, level schema.SystemLogLevel, message string, logContext map[string]interface{}) error {
	var contextJSON datatypes.JSON
	if logContext != nil {
		raw, err := json.Marshal(logContext)
		if err != nil {
			return fmt.Errorf("failed to marshal log context: %w", err)
		}
		contextJSON = raw
	}

	entry := schema.SystemLog{
		Level:   level,
		Message: message,
		Context: contextJSON,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to create system log: %w", err)
	}
	return nil
}
