package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/domain"
	"github.com/OleksandIadvigun/drugstore/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM. Compound operations run
// inside a transaction with the order row locked, so concurrent updates on one
// id serialize at the database.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{}, &lineItemRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table.
type orderRecord struct {
	ID        int64            `gorm:"primaryKey;column:id"`
	Total     decimal.Decimal  `gorm:"column:total;type:numeric(19,2)"`
	LineItems []lineItemRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time        `gorm:"column:created_at;index"`
	UpdatedAt time.Time        `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// lineItemRecord stores the frozen product snapshot per purchased item.
type lineItemRecord struct {
	ID        int64           `gorm:"primaryKey;column:id"`
	OrderID   int64           `gorm:"column:order_id;index"`
	ProductID int64           `gorm:"column:product_id"`
	Name      string          `gorm:"column:name;type:varchar(250)"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(19,2)"`
	Quantity  int32           `gorm:"column:quantity"`
}

func (lineItemRecord) TableName() string { return "order_details" }

// Save inserts an order together with its line items.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order with its line items.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).Preload("LineItems").First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all orders with their line items.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Preload("LineItems").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Update locks the order row, applies mutate, and replaces the line item set
// wholesale within one transaction.
func (r *Repository) Update(ctx context.Context, id int64, mutate func(*domain.Order) error) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var updated *domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := lockOrder(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Preload("LineItems").First(record, "id = ?", id).Error; err != nil {
			return err
		}
		order := record.toDomain()
		if err := mutate(order); err != nil {
			return err
		}
		order.ID = id
		if err := tx.Where("order_id = ?", id).Delete(&lineItemRecord{}).Error; err != nil {
			return err
		}
		replacement := toRecord(order)
		replacement.CreatedAt = record.CreatedAt
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&replacement).Error; err != nil {
			return err
		}
		var reloaded orderRecord
		if err := tx.Preload("LineItems").First(&reloaded, "id = ?", id).Error; err != nil {
			return err
		}
		updated = reloaded.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes the order and returns its pre-deletion state within one
// transaction.
func (r *Repository) Remove(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var removed *domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := lockOrder(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Preload("LineItems").First(record, "id = ?", id).Error; err != nil {
			return err
		}
		removed = record.toDomain()
		if err := tx.Where("order_id = ?", id).Delete(&lineItemRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&orderRecord{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func lockOrder(tx *gorm.DB, id int64) (*orderRecord, error) {
	var record orderRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	record := orderRecord{ID: order.ID, Total: order.Total}
	for _, item := range order.LineItems {
		record.LineItems = append(record.LineItems, lineItemRecord{
			ID:        item.ID,
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return record
}

func (r orderRecord) toDomain() *domain.Order {
	order := &domain.Order{ID: r.ID, Total: r.Total}
	for _, item := range r.LineItems {
		order.LineItems = append(order.LineItems, domain.LineItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return order
}
