package schema

import "time"

// User represents the users table - a carrier code bound to a wallet and its donation settings
type User struct {
	// ID is an auto-incrementing primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletAddress is the checksummed wallet that receives minted invoice tokens
	WalletAddress string `gorm:"column:wallet_address;not null;uniqueIndex;type:varchar(42)"`
	// CarrierNumber is the user's electronic-invoice carrier code
	CarrierNumber string `gorm:"column:carrier_number;not null;uniqueIndex;type:varchar(64)"`
	// PoolID is the charity pool new invoices are bound to
	PoolID string `gorm:"column:pool_id;not null;type:varchar(78)"`
	// DonationPercent is the share of a prize routed to the pool
	DonationPercent int `gorm:"column:donation_percent;not null"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
