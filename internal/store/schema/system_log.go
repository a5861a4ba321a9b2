package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SystemLogLevel is the severity of a system log entry
type SystemLogLevel string

const (
	SystemLogLevelInfo  SystemLogLevel = "info"
	SystemLogLevelWarn  SystemLogLevel = "warn"
	SystemLogLevelError SystemLogLevel = "error"
	SystemLogLevelAlert SystemLogLevel = "alert"
)

// SystemLog represents the system_logs table - append-only operational log used for alerting
type SystemLog struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	Level     SystemLogLevel `gorm:"column:level;not null;type:varchar(20)"`
	Message   string         `gorm:"column:message;not null;type:text"`
	Context   datatypes.JSON `gorm:"column:context;type:jsonb"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SystemLog model
func (SystemLog) TableName() string {
	return "system_logs"
}
