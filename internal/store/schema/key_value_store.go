package schema

import "time"

// KeyValueStore stores small pieces of service state such as the event listener's block cursor
type KeyValueStore struct {
	Key       string    `gorm:"column:key;primaryKey;type:text"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}
