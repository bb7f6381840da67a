package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS generated_documents (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		kind VARCHAR(32) NOT NULL CHECK (kind IN ('purchase_contract', 'deposit_agreement', 'invoice', 'proforma_invoice')),
		number VARCHAR(64),
		file_name VARCHAR(255) NOT NULL,
		content_hash CHAR(64) NOT NULL,
		page_count INTEGER NOT NULL,
		gross_price NUMERIC(18,2) NOT NULL,
		tax_base NUMERIC(18,2) NOT NULL,
		tax_amount NUMERIC(18,2) NOT NULL,
		customer_name VARCHAR(255),
		plate VARCHAR(32),
		created_by UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_generated_documents_number ON generated_documents (kind, number) WHERE number IS NOT NULL AND number <> '';`,
	`CREATE INDEX IF NOT EXISTS idx_generated_documents_created_at ON generated_documents (created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_generated_documents_plate ON generated_documents (plate) WHERE plate IS NOT NULL;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
