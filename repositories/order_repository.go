package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"frushh/models"
)

type OrderRepo struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderFields = `order_number, idempotency_key, user_id, status, items, subtotal, total_protein,
	discount, discount_code, discount_type, coupon_id, referral_code_id, referrer_user_id, delivery_fee,
	total, points_earned, first_order, delivery_address, delivery_landmark, delivery_area, delivery_slot,
	delivery_date, customer_name, customer_phone, customer_email, notes, payment_method, payment_status,
	created_at, updated_at`

const (
	orderColumns       = `id, ` + orderFields
	orderSelectColumns = `id::text, ` + orderFields
)

func scanOrder(row interface{ Scan(...any) error }) (*models.Order, error) {
	var (
		o            models.Order
		items        []byte
		discountType *string
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.IdempotencyKey, &o.UserID, &o.Status, &items, &o.Subtotal, &o.TotalProtein,
		&o.Discount, &o.DiscountCode, &discountType, &o.CouponID, &o.ReferralCodeID, &o.ReferrerUserID,
		&o.DeliveryFee, &o.Total, &o.PointsEarned, &o.FirstOrder, &o.Delivery.Address, &o.Delivery.Landmark,
		&o.Delivery.Area, &o.Delivery.SlotName, &o.Delivery.Date, &o.Customer.Name, &o.Customer.Phone,
		&o.Customer.Email, &o.Notes, &o.PaymentMethod, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if discountType != nil {
		kind := models.DiscountKind(*discountType)
		o.DiscountKind = &kind
	}
	return &o, nil
}

func (r *OrderRepo) Create(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	var discountType *string
	if order.DiscountKind != nil {
		kind := string(*order.DiscountKind)
		discountType = &kind
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31)`,
		order.ID, order.OrderNumber, order.IdempotencyKey, order.UserID, string(order.Status), items, order.Subtotal,
		order.TotalProtein, order.Discount, order.DiscountCode, discountType, order.CouponID, order.ReferralCodeID,
		order.ReferrerUserID, order.DeliveryFee, order.Total, order.PointsEarned, order.FirstOrder,
		order.Delivery.Address, order.Delivery.Landmark, order.Delivery.Area, order.Delivery.SlotLabel(),
		order.Delivery.Date, order.Customer.Name, order.Customer.Phone, order.Customer.Email, order.Notes,
		order.PaymentMethod, order.PaymentStatus, now, now,
	)
	if err != nil {
		if isUniqueViolation(err, "orders_user_idempotency_key_key") {
			return ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO order_status_history (order_id, status, notes, created_at) VALUES ($1, $2, $3, $4)`,
		order.ID, string(order.Status), "Order placed successfully", now)
	if err != nil {
		return fmt.Errorf("insert status history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}

	order.CreatedAt = now
	order.UpdatedAt = now
	order.Delivery.SlotName = order.Delivery.SlotLabel()
	order.Delivery.SlotStart, order.Delivery.SlotEnd = "", ""
	return nil
}

func (r *OrderRepo) FindByIdempotencyKey(ctx context.Context, userID int, key string) (*models.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderSelectColumns+` FROM orders WHERE user_id = $1 AND idempotency_key = $2`, userID, key))
	if err != nil {
		return nil, translate(err)
	}
	return order, nil
}

func (r *OrderRepo) FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderSelectColumns+` FROM orders WHERE order_number = $1`, orderNumber))
	if err != nil {
		return nil, translate(err)
	}
	return order, nil
}

func (r *OrderRepo) OrderNumberExists(ctx context.Context, orderNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE order_number = $1)`, orderNumber).Scan(&exists)
	return exists, err
}

func (r *OrderRepo) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int, error) {
	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.UserID != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, *filter.UserID)
		argIndex++
	}
	if filter.Status != "" && filter.Status != "All" {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.Search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("order_number ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	where := ""
	if len(whereConditions) > 0 {
		where = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		orderSelectColumns, where, argIndex, argIndex+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus, notes string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin status update: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	tag, err := tx.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`,
		string(to), now, orderID, string(from))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}

	if notes == "" {
		notes = fmt.Sprintf("Status updated to %s", to)
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO order_status_history (order_id, status, notes, created_at) VALUES ($1, $2, $3, $4)`,
		orderID, string(to), notes, now)
	if err != nil {
		return fmt.Errorf("insert status history: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *OrderRepo) StatusHistory(ctx context.Context, orderID string) ([]models.OrderStatusHistory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_id::text, status, notes, created_at FROM order_status_history WHERE order_id = $1 ORDER BY created_at, id`,
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.OrderStatusHistory{}
	for rows.Next() {
		var h models.OrderStatusHistory
		if err := rows.Scan(&h.ID, &h.OrderID, &h.Status, &h.Notes, &h.CreatedAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
