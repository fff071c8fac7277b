// Package sequencerepo stores the per (kind, year) counters and the record
// of every issued code.
package sequencerepo

import "time"

type CounterDTO struct {
	Kind  string `gorm:"type:varchar(16);primaryKey"`
	Year  int    `gorm:"column:yy;type:smallint;primaryKey;autoIncrement:false"`
	Value int64  `gorm:"type:bigint;not null"`
}

func (CounterDTO) TableName() string {
	return "sequence_counters"
}

// IssuedCodeDTO makes (kind, code) unique across all scopes.
type IssuedCodeDTO struct {
	Kind     string    `gorm:"type:varchar(16);primaryKey"`
	Code     string    `gorm:"type:varchar(32);primaryKey"`
	ScopeKey string    `gorm:"type:varchar(64);not null;index"`
	IssuedAt time.Time `gorm:"not null"`
}

func (IssuedCodeDTO) TableName() string {
	return "issued_codes"
}
