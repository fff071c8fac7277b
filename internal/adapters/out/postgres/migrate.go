package postgres

import (
	"hubops/internal/adapters/out/postgres/batchrepo"
	"hubops/internal/adapters/out/postgres/consignmentrepo"
	"hubops/internal/adapters/out/postgres/documentrepo"
	"hubops/internal/adapters/out/postgres/pricingrepo"
	"hubops/internal/adapters/out/postgres/sequencerepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service in creation order.
func Models() []any {
	return []any{
		&consignmentrepo.ConsignmentDTO{},
		&consignmentrepo.HistoryDTO{},
		&batchrepo.BatchDTO{},
		&documentrepo.DocumentDTO{},
		&documentrepo.MemberDTO{},
		&pricingrepo.RuleDTO{},
		&sequencerepo.CounterDTO{},
		&sequencerepo.IssuedCodeDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
