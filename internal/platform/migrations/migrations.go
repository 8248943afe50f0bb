package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&orderRecord{},
		&lineItemRecord{},
	)
}

// Product schema mirrors the products Postgres adapter.
type productRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	Name      string          `gorm:"column:name;type:varchar(250)"`
	Quantity  int32           `gorm:"column:quantity"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(19,2)"`
	CreatedAt time.Time       `gorm:"column:created_at;index"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID        int64            `gorm:"primaryKey;column:id"`
	Total     decimal.Decimal  `gorm:"column:total;type:numeric(19,2)"`
	LineItems []lineItemRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `gorm:"column:created_at;index"`
	UpdatedAt time.Time        `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Line item schema holds the frozen name and price captured at order time.
type lineItemRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	OrderID   int64           `gorm:"column:order_id;index"`
	ProductID int64           `gorm:"column:product_id"`
	Name      string          `gorm:"column:name;type:varchar(250)"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(19,2)"`
	Quantity  int32           `gorm:"column:quantity"`
}

func (lineItemRecord) TableName() string { return "order_details" }
