package repository

import (
	"context"
	"database/sql"
	"fmt"

	"shopdash/internal/domain"
	"shopdash/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, external_id, email, total_price, product, date, status,
		       created_at, updated_at
		FROM orders
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.ExternalID, &order.Email, &order.TotalPrice,
			&order.Product, &order.Date, &order.Status,
			&order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// FindByExternalID resolves the upstream platform's order id to the stored
// record. The external_id column carries a unique index, so this is a point
// lookup rather than a scan over the whole table.
func (r *MySQLOrderRepository) FindByExternalID(ctx context.Context, externalID string) (*domain.Order, error) {
	query := `
		SELECT id, external_id, email, total_price, product, date, status,
		       created_at, updated_at
		FROM orders
		WHERE external_id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, externalID).Scan(
		&order.ID, &order.ExternalID, &order.Email, &order.TotalPrice,
		&order.Product, &order.Date, &order.Status,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with external id %s not found", externalID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by external id: %w", err)
	}

	return &order, nil
}

// SaveOrder inserts a new record and returns the store-assigned key.
func (r *MySQLOrderRepository) SaveOrder(ctx context.Context, order *domain.Order) (uint64, error) {
	query := `
		INSERT INTO orders (external_id, email, total_price, product, date, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		order.ExternalID, order.Email, order.TotalPrice,
		order.Product, order.Date, order.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting insert id: %w", err)
	}

	return uint64(id), nil
}

// EditOrder overwrites the mutable fields of the record addressed by its
// store key.
func (r *MySQLOrderRepository) EditOrder(ctx context.Context, id uint64, order domain.Order) error {
	query := `
		UPDATE orders
		SET external_id = ?, email = ?, total_price = ?, product = ?, date = ?, status = ?
		WHERE id = ?
	`

	// No rows-affected check here: MySQL reports zero affected rows for an
	// update that changes nothing, which a re-delivered identical webhook
	// legitimately produces.
	_, err := r.db.ExecContext(ctx, query,
		order.ExternalID, order.Email, order.TotalPrice,
		order.Product, order.Date, order.Status, id,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) DeleteOrder(ctx context.Context, id uint64) error {
	query := `DELETE FROM orders WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
