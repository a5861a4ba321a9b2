package schema

import "time"

// TokenHolder represents the token_holders table - a cached on-chain balance per token type and wallet
type TokenHolder struct {
	// TokenTypeID is the token type identifier
	TokenTypeID string `gorm:"column:token_type_id;primaryKey;type:varchar(78)"`
	// WalletAddress is the checksummed holder address
	WalletAddress string `gorm:"column:wallet_address;primaryKey;type:varchar(42)"`
	// Balance is the balance at LastUpdated, kept as a decimal string
	Balance string `gorm:"column:balance;not null;type:numeric(78,0)"`
	// LastUpdated is when the balance was read from the chain
	LastUpdated time.Time `gorm:"column:last_updated;not null;type:timestamptz"`
}

// TableName specifies the table name for the TokenHolder model
func (TokenHolder) TableName() string {
	return "token_holders"
}
