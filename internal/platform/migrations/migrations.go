package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the shipping schema. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&orderItemRecord{})
}

// Order item schema mirrors the shipping Postgres adapter: composite primary
// key over order and product identifiers.
type orderItemRecord struct {
	OrderID         int       `gorm:"primaryKey;column:order_id"`
	ProductID       int       `gorm:"primaryKey;column:product_id"`
	OrderedQuantity int       `gorm:"column:ordered_quantity"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (orderItemRecord) TableName() string { return "order_items" }
