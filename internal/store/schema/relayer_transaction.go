package schema

import (
	"time"

	"gorm.io/datatypes"
)

// RelayerTxType is the kind of state-changing call a relayer transaction carries
type RelayerTxType string

const (
	RelayerTxTypeMint                     RelayerTxType = "mint"
	RelayerTxTypeNotifyLotteryResult      RelayerTxType = "notify_lottery_result"
	RelayerTxTypeUpdateRewardPerToken     RelayerTxType = "update_reward_per_token"
	RelayerTxTypeBatchClaimReward         RelayerTxType = "batch_claim_reward"
	RelayerTxTypeMarkAsDistributed        RelayerTxType = "mark_as_distributed"
	RelayerTxTypeRegisterPool             RelayerTxType = "register_pool"
	RelayerTxTypeUpdateMinDonationPercent RelayerTxType = "update_min_donation_percent"
	RelayerTxTypeWithdrawDonation         RelayerTxType = "withdraw_donation"
	RelayerTxTypeUpdateBeneficiary        RelayerTxType = "update_beneficiary"
	RelayerTxTypeDeactivatePool           RelayerTxType = "deactivate_pool"
	RelayerTxTypeClaimReward              RelayerTxType = "claim_reward"
	RelayerTxTypeSetURI                   RelayerTxType = "set_uri"
	RelayerTxTypeSetPoolContract          RelayerTxType = "set_pool_contract"
)

// RelayerTxStatus is the status of a relayer transaction
type RelayerTxStatus string

const (
	// RelayerTxStatusPending is set at submission time
	RelayerTxStatusPending RelayerTxStatus = "pending"
	// RelayerTxStatusSuccess is set once the receipt reports success
	RelayerTxStatusSuccess RelayerTxStatus = "success"
	// RelayerTxStatusFailed is set when the receipt reports failure or submission errored after broadcast
	RelayerTxStatusFailed RelayerTxStatus = "failed"
)

// RelayerTransaction represents the relayer_transactions table - audit log of submitted transactions
type RelayerTransaction struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TxHash is the transaction hash
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex;type:varchar(66)"`
	// TxType is the kind of call
	TxType RelayerTxType `gorm:"column:tx_type;not null;type:varchar(50)"`
	// FromAddress is the signing account
	FromAddress string `gorm:"column:from_address;not null;type:varchar(42)"`
	// ToAddress is the called contract
	ToAddress string `gorm:"column:to_address;not null;type:varchar(42)"`
	// Status is pending until the transaction is confirmed or fails
	Status RelayerTxStatus `gorm:"column:status;not null;default:pending;type:varchar(20)"`
	// GasUsed is taken from the receipt
	GasUsed *string `gorm:"column:gas_used;type:numeric(78,0)"`
	// GasPrice is the effective gas price from the receipt
	GasPrice *string `gorm:"column:gas_price;type:numeric(78,0)"`
	// ErrorMessage is set when the transaction failed
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// ConfirmedAt is when the final status was recorded
	ConfirmedAt *time.Time `gorm:"column:confirmed_at;type:timestamptz"`
	// Metadata carries call parameters such as token_type_id and pool_id
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RelayerTransaction model
func (RelayerTransaction) TableName() string {
	return "relayer_transactions"
}
