package repositories

import (
	"context"
	"testing"

	"frushh/models"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderInsertArgs = 31

func newTestOrder() *models.Order {
	return &models.Order{
		ID:             "7f0c2a8e-3c1b-4d5e-9a57-0b1d2c3e4f50",
		OrderNumber:    "FR-20261016-0042",
		IdempotencyKey: "abc123",
		UserID:         1,
		Status:         models.StatusPending,
		Subtotal:       188,
		Total:          188,
	}
}

func TestOrderRepo_Create(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectBegin()
	pool.ExpectExec(`INSERT INTO orders`).WithArgs(anyArgs(orderInsertArgs)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	pool.ExpectExec(`INSERT INTO order_status_history`).
		WithArgs("7f0c2a8e-3c1b-4d5e-9a57-0b1d2c3e4f50", "pending", "Order placed successfully", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	pool.ExpectCommit()

	order := newTestOrder()
	require.NoError(t, NewOrderRepository(pool).Create(context.Background(), order))
	assert.False(t, order.CreatedAt.IsZero())
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestOrderRepo_CreateDuplicateKey(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectBegin()
	pool.ExpectExec(`INSERT INTO orders`).WithArgs(anyArgs(orderInsertArgs)...).
		WillReturnError(uniqueErr("orders_user_idempotency_key_key"))
	pool.ExpectRollback()

	err := NewOrderRepository(pool).Create(context.Background(), newTestOrder())
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestOrderRepo_CreateOrderNumberClashIsNotReplay(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectBegin()
	pool.ExpectExec(`INSERT INTO orders`).WithArgs(anyArgs(orderInsertArgs)...).
		WillReturnError(uniqueErr("orders_order_number_key"))
	pool.ExpectRollback()

	err := NewOrderRepository(pool).Create(context.Background(), newTestOrder())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestOrderRepo_FindByIdempotencyKeyIsScopedToCustomer(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(`FROM orders WHERE user_id = \$1 AND idempotency_key = \$2`).
		WithArgs(2, "abc123").
		WillReturnError(pgx.ErrNoRows)

	_, err := NewOrderRepository(pool).FindByIdempotencyKey(context.Background(), 2, "abc123")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestOrderRepo_UpdateStatusLostRace(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectBegin()
	pool.ExpectExec(`UPDATE orders SET status = \$1, updated_at = \$2 WHERE id = \$3 AND status = \$4`).
		WithArgs("confirmed", pgxmock.AnyArg(), "order-1", "pending").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	pool.ExpectRollback()

	err := NewOrderRepository(pool).UpdateStatus(context.Background(), "order-1",
		models.StatusPending, models.StatusConfirmed, "")
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, pool.ExpectationsWereMet())
}
