package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/microcommerce/shipping-service/internal/shared/apperrors"
	"github.com/microcommerce/shipping-service/internal/shipping/domain"
	"github.com/microcommerce/shipping-service/internal/shipping/ports"
)

var _ ports.Repository = (*Repository)(nil)

// uniqueViolation is the PostgreSQL SQLSTATE for unique/primary key
// constraint violations.
const uniqueViolation = "23505"

// Repository persists order items in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// orderItemRecord maps the order item entity to its relational table. The
// composite primary key spans order_id and product_id.
type orderItemRecord struct {
	OrderID         int       `gorm:"primaryKey;column:order_id"`
	ProductID       int       `gorm:"primaryKey;column:product_id"`
	OrderedQuantity int       `gorm:"column:ordered_quantity"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (orderItemRecord) TableName() string { return "order_items" }

// List returns all order items in store iteration order.
func (r *Repository) List(ctx context.Context) ([]domain.OrderItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderItemRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, translateError(err)
	}
	items := make([]domain.OrderItem, 0, len(records))
	for i := range records {
		items = append(items, records[i].toDomain())
	}
	return items, nil
}

// GetByID fetches one order item by its composite identity.
func (r *Repository) GetByID(ctx context.Context, id domain.OrderItemID) (*domain.OrderItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderItemRecord
	err := r.db.WithContext(ctx).
		First(&record, "order_id = ? AND product_id = ?", id.OrderID, id.ProductID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, translateError(err)
	}
	item := record.toDomain()
	return &item, nil
}

// Save inserts or overwrites the row at the item's composite identity.
func (r *Repository) Save(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("order item is nil")
	}
	record := toRecord(item)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"ordered_quantity": record.OrderedQuantity,
				"updated_at":       gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error
	if err != nil {
		return nil, translateError(err)
	}
	return r.GetByID(ctx, item.ID())
}

// Delete removes the row at the given identity. Absent rows are not an error.
func (r *Repository) Delete(ctx context.Context, id domain.OrderItemID) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", id.OrderID, id.ProductID).
		Delete(&orderItemRecord{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order item repository not configured")
	}
	return nil
}

// translateError surfaces constraint violations as the integrity failure
// category; everything else passes through untouched.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.NewIntegrity(err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewIntegrity(err)
	}
	return err
}

func toRecord(item *domain.OrderItem) orderItemRecord {
	return orderItemRecord{
		OrderID:         item.OrderID,
		ProductID:       item.ProductID,
		OrderedQuantity: item.OrderedQuantity,
	}
}

func (r orderItemRecord) toDomain() domain.OrderItem {
	return domain.OrderItem{
		OrderID:         r.OrderID,
		ProductID:       r.ProductID,
		OrderedQuantity: r.OrderedQuantity,
	}
}
