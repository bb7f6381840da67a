package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GeneratedDocument is the metadata kept for an issued document. The PDF
// itself is returned to the caller and not stored.
type GeneratedDocument struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind         DocumentKind    `gorm:"type:varchar(32);not null"`
	Number       string          `gorm:"type:varchar(64)"`
	FileName     string          `gorm:"type:varchar(255);not null"`
	ContentHash  string          `gorm:"type:char(64);not null"`
	PageCount    int             `gorm:"not null"`
	GrossPrice   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TaxBase      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	TaxAmount    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	CustomerName string          `gorm:"type:varchar(255)"`
	Plate        string          `gorm:"type:varchar(32)"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid"`
	CreatedAt    time.Time       `gorm:"not null"`
}

func (GeneratedDocument) TableName() string { return "generated_documents" }
