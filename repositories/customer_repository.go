package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"frushh/models"
)

type CustomerRepo struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password, role, name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.Password,
		user.Role,
		user.Name,
		user.Phone,
		now,
		now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if isUniqueViolation(err, "") {
		return ErrDuplicate
	}
	return err
}

func (r *CustomerRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *CustomerRepo) FindByID(ctx context.Context, id int) (*models.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *CustomerRepo) findOne(ctx context.Context, where string, arg any) (*models.User, error) {
	query := `SELECT id, email, password, role, name, phone, created_at, updated_at FROM users ` + where

	user := &models.User{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.Name,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// TierMultiplier defaults to 1 for customers without a loyalty account.
func (r *CustomerRepo) TierMultiplier(ctx context.Context, userID int) (float64, error) {
	var multiplier float64
	err := r.db.QueryRow(ctx,
		`SELECT tier_multiplier::float8 FROM loyalty_points WHERE user_id = $1`, userID).Scan(&multiplier)
	if err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return 1, nil
		}
		return 0, err
	}
	if multiplier <= 0 {
		return 1, nil
	}
	return multiplier, nil
}

func (r *CustomerRepo) IsFirstTimeCustomer(ctx context.Context, userID int, email, phone string) (bool, error) {
	query := `
		SELECT NOT EXISTS (SELECT 1 FROM orders WHERE user_id = $1)
		   AND NOT EXISTS (
		       SELECT 1 FROM first_order_tracking
		       WHERE email = $2 OR ($3 <> '' AND phone = $3)
		   )
	`
	var first bool
	if err := r.db.QueryRow(ctx, query, userID, email, phone).Scan(&first); err != nil {
		return false, fmt.Errorf("check first order: %w", err)
	}
	return first, nil
}

func (r *CustomerRepo) RecordFirstOrder(ctx context.Context, email, phone string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO first_order_tracking (email, phone) VALUES ($1, $2)
		 ON CONFLICT (email, phone) DO NOTHING`,
		email, phone)
	return err
}
