package schema

import "time"

// Invoice represents the invoices table
type Invoice struct {
	// ID is an auto-incrementing primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// InvoiceNumber is the printed invoice number, digits with an optional 2-letter prefix
	InvoiceNumber string `gorm:"column:invoice_number;not null;uniqueIndex;type:varchar(16)"`
	// CarrierNumber links the invoice to its registered user
	CarrierNumber string `gorm:"column:carrier_number;not null;type:varchar(64)"`
	// WalletAddress is the owner at mint time
	WalletAddress string `gorm:"column:wallet_address;not null;type:varchar(42)"`
	// PoolID is the charity pool the token is bound to
	PoolID string `gorm:"column:pool_id;not null;type:varchar(78)"`
	// DonationPercent is copied from the user at registration time
	DonationPercent int `gorm:"column:donation_percent;not null"`
	// Amount is the invoice amount in TWD
	Amount string `gorm:"column:amount;not null;type:numeric(20,2)"`
	// PurchaseDate is the day the invoice was issued
	PurchaseDate time.Time `gorm:"column:purchase_date;not null;type:date"`
	// LotteryDay is the draw the invoice is eligible for
	LotteryDay time.Time `gorm:"column:lottery_day;not null;type:date"`
	// TokenTypeID is assigned after the mint confirms
	TokenTypeID *string `gorm:"column:token_type_id;type:varchar(78)"`
	// Drawn flips to true once a non-zero prize has been notified on-chain
	Drawn bool `gorm:"column:drawn;not null;default:false"`
	// PrizeAmount is the matched prize in TWD
	PrizeAmount int64 `gorm:"column:prize_amount;not null;default:0"`
	// Claimed flips to true once a batch claim covering this token type and owner confirms
	Claimed bool `gorm:"column:claimed;not null;default:false"`
	// ClaimedAt is the time of the confirming batch claim
	ClaimedAt *time.Time `gorm:"column:claimed_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// PoolInvoice represents the pool_invoices table - which token type each invoice minted into
type PoolInvoice struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	PoolID        string    `gorm:"column:pool_id;not null;type:varchar(78)"`
	TokenTypeID   string    `gorm:"column:token_type_id;not null;type:varchar(78)"`
	InvoiceNumber string    `gorm:"column:invoice_number;not null;uniqueIndex;type:varchar(16)"`
	LotteryDay    time.Time `gorm:"column:lottery_day;not null;type:date"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PoolInvoice model
func (PoolInvoice) TableName() string {
	return "pool_invoices"
}
